package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes one line per scaffolding event.
type Printer struct {
	w io.Writer

	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
	dimColor     *color.Color
}

// New returns a Printer writing to w with automatic color detection.
func New(w io.Writer) *Printer {
	return NewWithColor(w, ColorAuto)
}

// NewWithColor returns a Printer writing to w using the given color mode.
func NewWithColor(w io.Writer, mode ColorMode) *Printer {
	out, enabled := mode.resolve(w)
	p := &Printer{
		w:            out,
		successColor: color.New(color.FgGreen, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		errorColor:   color.New(color.FgRed, color.Bold),
		dimColor:     color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.successColor, p.warningColor, p.errorColor, p.dimColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// CreatedDirectory reports a newly created directory.
func (p *Printer) CreatedDirectory(dir string) {
	fmt.Fprintf(p.w, "Created directory: %s\n", dir)
}

// CreatedFile reports a newly created empty file.
func (p *Printer) CreatedFile(path string) {
	fmt.Fprintf(p.w, "Created file: %s\n", path)
}

// Skipped reports a path left alone because something already occupies it.
func (p *Printer) Skipped(path string) {
	_, _ = p.dimColor.Fprintf(p.w, "Skipped (already exists): %s\n", path)
}

// Failed reports a per-entry filesystem error.
func (p *Printer) Failed(path string, err error) {
	_, _ = p.errorColor.Fprintf(p.w, "Error: %s: %v\n", path, err)
}

// MissingRoot reports that the root marker directory is absent.
func (p *Printer) MissingRoot(root string) {
	_, _ = p.errorColor.Fprintf(p.w,
		"Error: '%s' directory not found. Please run this script from the root of a Flutter project.\n", root)
}

// MissingReserved warns that the application entry point is absent.
func (p *Printer) MissingReserved(path string) {
	_, _ = p.warningColor.Fprintf(p.w,
		"Warning: %s not found. A Flutter project should have this file.\n", path)
}

// Done prints the closing summary, preceded by a blank line.
func (p *Printer) Done() {
	fmt.Fprintln(p.w)
	_, _ = p.successColor.Fprintln(p.w, "✅ Project structure generated successfully!")
}

// WouldCreateDirectory reports a directory a run would create.
func (p *Printer) WouldCreateDirectory(dir string) {
	fmt.Fprintf(p.w, "Would create directory: %s\n", dir)
}

// WouldCreateFile reports a file a run would create.
func (p *Printer) WouldCreateFile(path string) {
	fmt.Fprintf(p.w, "Would create file: %s\n", path)
}

// WouldFail reports an entry a run would fail to create.
func (p *Printer) WouldFail(path string, err error) {
	_, _ = p.errorColor.Fprintf(p.w, "Would fail: %s: %v\n", path, err)
}

// Summary prints a free-form closing line, preceded by a blank line.
func (p *Printer) Summary(msg string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, msg)
}
