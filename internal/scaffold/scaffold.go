package scaffold

import (
	"errors"
	"fmt"

	"github.com/tainzy/fluttergen/internal/manifest"
	"github.com/tainzy/fluttergen/internal/platform"
)

// ErrMissingRoot is returned when the root marker directory is absent.
var ErrMissingRoot = errors.New("root marker directory not found")

// Probe is the filesystem surface the scaffolder needs. *platform.Probe
// implements it.
type Probe interface {
	Exists(path string) (bool, error)
	IsDir(path string) (bool, error)
	EnsureDirectory(dir string) error
	CreateEmpty(path string) error
	Conflict(dir string) (string, error)
}

// Reporter receives one call per event of a run, in order.
type Reporter interface {
	CreatedDirectory(dir string)
	CreatedFile(path string)
	Skipped(path string)
	Failed(path string, err error)
	MissingRoot(root string)
	MissingReserved(path string)
	Done()
}

// Outcome is what happened to a single entry.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// EntryResult holds the outcome of materializing one entry.
type EntryResult struct {
	Path       string // Native path of the entry
	Outcome    Outcome
	DirCreated bool  // Parent directory chain was created for this entry
	Err        error // Set when Outcome is OutcomeFailed
}

// Result holds the totals of a run.
type Result struct {
	FilesCreated    int
	DirsCreated     int
	Skipped         int
	Failed          int
	ReservedPresent bool
	Entries         []EntryResult
}

// Materialize ensures the parent directory of entry exists and creates an
// empty file at entry if nothing occupies it. entry is a forward-slash
// layout path. The parent directory is reported before the file.
func Materialize(probe Probe, r Reporter, entry string) EntryResult {
	p := platform.NativePath(entry)
	res := EntryResult{Path: p}

	fail := func(err error) EntryResult {
		res.Outcome = OutcomeFailed
		res.Err = err
		r.Failed(p, err)
		return res
	}

	if dir := platform.ParentDir(p); dir != "" {
		exists, err := probe.Exists(dir)
		if err != nil {
			return fail(err)
		}
		if !exists {
			if err := probe.EnsureDirectory(dir); err != nil {
				return fail(err)
			}
			res.DirCreated = true
			r.CreatedDirectory(dir)
		}
	}

	exists, err := probe.Exists(p)
	if err != nil {
		return fail(err)
	}
	if exists {
		res.Outcome = OutcomeSkipped
		r.Skipped(p)
		return res
	}

	if err := probe.CreateEmpty(p); err != nil {
		return fail(err)
	}
	res.Outcome = OutcomeCreated
	r.CreatedFile(p)
	return res
}

// Generate materializes the compiled-in layout relative to the probe's
// root. It returns ErrMissingRoot, after reporting it, when the root marker
// directory is absent; nothing is created in that case. Per-entry failures
// are reported and counted but never stop the run.
func Generate(probe Probe, r Reporter) (*Result, error) {
	return GenerateEntries(probe, r, manifest.Entries())
}

// GenerateEntries is Generate over an explicit list of layout paths.
func GenerateEntries(probe Probe, r Reporter, entries []string) (*Result, error) {
	if err := preflight(probe, r.MissingRoot); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, entry := range entries {
		er := Materialize(probe, r, entry)
		result.add(er)
	}

	present, err := probe.Exists(platform.NativePath(manifest.ReservedPath))
	switch {
	case err != nil:
		result.Failed++
		r.Failed(manifest.ReservedPath, err)
	case present:
		result.ReservedPresent = true
		r.Skipped(manifest.ReservedPath)
	default:
		r.MissingReserved(manifest.ReservedPath)
	}

	r.Done()
	return result, nil
}

func (res *Result) add(er EntryResult) {
	res.Entries = append(res.Entries, er)
	if er.DirCreated {
		res.DirsCreated++
	}
	switch er.Outcome {
	case OutcomeCreated:
		res.FilesCreated++
	case OutcomeSkipped:
		res.Skipped++
	case OutcomeFailed:
		res.Failed++
	}
}

// preflight checks that the root marker is a directory.
func preflight(probe Probe, missing func(root string)) error {
	root := platform.NativePath(manifest.RootMarker)
	ok, err := probe.IsDir(root)
	if err != nil {
		return fmt.Errorf("checking %s: %w", root, err)
	}
	if !ok {
		missing(manifest.RootMarker)
		return ErrMissingRoot
	}
	return nil
}
