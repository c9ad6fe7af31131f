//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tainzy/fluttergen/internal/manifest"
	"github.com/tainzy/fluttergen/internal/scaffold"
)

var freshRun = nativeLines(
	"Created directory: lib/app/config",
	"Created file: lib/app/config/app_router.dart",
	"Created file: lib/app/config/app_theme.dart",
	"Created directory: lib/app/models",
	"Created file: lib/app/models/patient_model.dart",
	"Created file: lib/app/models/doctor_model.dart",
	"Created file: lib/app/models/product_model.dart",
	"Created file: lib/app/models/transaction_model.dart",
	"Created directory: lib/app/services",
	"Created file: lib/app/services/firestore_service.dart",
	"Created directory: lib/app/widgets",
	"Created file: lib/app/widgets/.gitkeep",
	"Created directory: lib/features/dashboard/screens",
	"Created file: lib/features/dashboard/screens/dashboard_screen.dart",
	"Created directory: lib/features/patient/providers",
	"Created file: lib/features/patient/providers/patient_providers.dart",
	"Created directory: lib/features/patient/screens",
	"Created file: lib/features/patient/screens/add_edit_patient_screen.dart",
	"Created file: lib/features/patient/screens/patient_list_screen.dart",
	"Created directory: lib/features/doctor/providers",
	"Created file: lib/features/doctor/providers/doctor_providers.dart",
	"Created directory: lib/features/doctor/screens",
	"Created file: lib/features/doctor/screens/add_edit_doctor_screen.dart",
	"Created file: lib/features/doctor/screens/doctor_list_screen.dart",
	"Created directory: lib/features/product/providers",
	"Created file: lib/features/product/providers/product_providers.dart",
	"Created directory: lib/features/product/screens",
	"Created file: lib/features/product/screens/add_edit_product_screen.dart",
	"Created file: lib/features/product/screens/product_list_screen.dart",
	"Created directory: lib/features/transaction/providers",
	"Created file: lib/features/transaction/providers/transaction_providers.dart",
	"Created directory: lib/features/transaction/screens",
	"Created file: lib/features/transaction/screens/add_transaction_screen.dart",
	"Created file: lib/features/transaction/screens/transaction_list_screen.dart",
)

var (
	mainWarning = nativeLines("Warning: lib/main.dart not found. A Flutter project should have this file.")
	mainSkipped = nativeLines("Skipped (already exists): lib/main.dart")
	summary     = "\n✅ Project structure generated successfully!\n"
)

// S1: only an empty lib/ exists.
func TestFreshRun(t *testing.T) {
	dir := setupProject(t, true)

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := freshRun + mainWarning + summary; out != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", out, want)
	}

	for _, e := range manifest.Entries() {
		assertEmptyFile(t, filepath.Join(dir, filepath.FromSlash(e)))
	}
	assertFileNotExists(t, filepath.Join(dir, "lib", "main.dart"))
}

// S2: no lib/ in the working directory.
func TestMissingRoot(t *testing.T) {
	dir := setupProject(t, false)

	out, err := runCLI(t)
	if !scaffold.IsMissingRoot(err) {
		t.Fatalf("run error = %v, want missing root", err)
	}
	want := "Error: 'lib' directory not found. Please run this script from the root of a Flutter project.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("filesystem mutated: %v", entries)
	}
}

// S3: some entries and lib/main.dart already exist.
func TestPartialPreExistence(t *testing.T) {
	dir := setupProject(t, true)

	patient := filepath.Join(dir, "lib", "app", "models", "patient_model.dart")
	writeFile(t, patient, "class Patient {}\n")
	writeFile(t, filepath.Join(dir, "lib", "main.dart"), "void main() {}\n")
	old := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(patient, old, old); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := strings.Replace(freshRun,
		nativeLines("Created directory: lib/app/models", "Created file: lib/app/models/patient_model.dart"),
		nativeLines("Skipped (already exists): lib/app/models/patient_model.dart"), 1)
	want += mainSkipped + summary
	if out != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", out, want)
	}

	assertFileContent(t, patient, "class Patient {}\n")
	info, err := os.Stat(patient)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("mtime changed: %v", info.ModTime())
	}
	assertFileContent(t, filepath.Join(dir, "lib", "main.dart"), "void main() {}\n")
}

// S4: second run after S1.
func TestSecondRun(t *testing.T) {
	setupProject(t, true)

	if _, err := runCLI(t); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}

	var lines []string
	for _, e := range manifest.Entries() {
		lines = append(lines, "Skipped (already exists): "+e)
	}
	if want := nativeLines(lines...) + mainWarning + summary; out != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", out, want)
	}
}

// S5: the marker file keeps its leading dot.
func TestMarkerFile(t *testing.T) {
	dir := setupProject(t, true)

	if _, err := runCLI(t); err != nil {
		t.Fatalf("run error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "lib", "app", "widgets"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".gitkeep" {
		t.Errorf("widgets/ contains %v, want only .gitkeep", entries)
	}
	assertEmptyFile(t, filepath.Join(dir, "lib", "app", "widgets", ".gitkeep"))
}

// S6: a regular file blocks lib/app.
func TestPathConflict(t *testing.T) {
	dir := setupProject(t, true)
	writeFile(t, filepath.Join(dir, "lib", "app"), "not a directory")

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	for _, e := range manifest.Entries() {
		p := filepath.FromSlash(e)
		if strings.HasPrefix(e, "lib/app/") {
			if !strings.Contains(out, "Error: "+p+": path conflict") {
				t.Errorf("no error line for %s", e)
			}
			continue
		}
		assertEmptyFile(t, filepath.Join(dir, p))
	}

	if !strings.HasSuffix(out, mainWarning+summary) {
		t.Errorf("summary missing:\n%s", out)
	}
	assertFileContent(t, filepath.Join(dir, "lib", "app"), "not a directory")
}

// The dry run agrees with the real run and changes nothing.
func TestStatusThenRun(t *testing.T) {
	dir := setupProject(t, true)

	planned, err := runCLI(t, "status")
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "lib"))
	if len(entries) != 0 {
		t.Fatalf("status mutated lib/: %v", entries)
	}

	want := strings.NewReplacer("Created ", "Would create ").Replace(freshRun)
	if !strings.HasPrefix(planned, want) {
		t.Errorf("status output mismatch\n--- got ---\n%s\n--- want prefix ---\n%s", planned, want)
	}
}
