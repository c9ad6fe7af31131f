//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/tainzy/fluttergen/internal/cli"
)

// setupProject creates an isolated working directory, points the config
// home at a temp dir, and chdirs into the project. When withLib is true the
// project contains an empty lib/.
func setupProject(t *testing.T, withLib bool) string {
	t.Helper()

	t.Setenv("FLUTTERGEN_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	if withLib {
		if err := os.Mkdir(filepath.Join(dir, "lib"), 0755); err != nil {
			t.Fatalf("creating lib/: %v", err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// runCLI runs fluttergen with args and returns stdout and the error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cli.Run(args, &out, &errOut)
	if errOut.Len() > 0 {
		t.Logf("stderr: %s", errOut.String())
	}
	return out.String(), err
}

// nativeLines converts forward slashes in expected output lines to the host
// separator, leaving the lib/main.dart lines alone.
func nativeLines(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		if !strings.Contains(l, "lib/main.dart") {
			l = filepath.FromSlash(l)
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertEmptyFile fails unless path is a zero-byte regular file.
func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("expected %s to be a regular file, mode %v", path, info.Mode())
	}
	if info.Size() != 0 {
		t.Errorf("expected %s to be empty, size %d", path, info.Size())
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContent fails unless the file holds exactly want.
func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s = %q, want %q", path, data, want)
	}
}
