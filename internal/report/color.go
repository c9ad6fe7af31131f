package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a config value. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// resolve decides whether to color output written to w, and returns the
// writer to use. On Windows consoles the writer is wrapped so ANSI escapes
// render.
func (m ColorMode) resolve(w io.Writer) (io.Writer, bool) {
	f, isFile := w.(*os.File)
	switch m {
	case ColorNever:
		return w, false
	case ColorAlways:
		if isFile {
			return colorable.NewColorable(f), true
		}
		return w, true
	}

	if !isFile || os.Getenv("NO_COLOR") != "" {
		return w, false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return w, false
	}
	return colorable.NewColorable(f), true
}
