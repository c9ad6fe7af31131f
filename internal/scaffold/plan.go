package scaffold

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tainzy/fluttergen/internal/manifest"
	"github.com/tainzy/fluttergen/internal/platform"
)

var printer = message.NewPrinter(language.English)

// PlanReporter receives one call per entry of a dry run.
type PlanReporter interface {
	WouldCreateDirectory(dir string)
	WouldCreateFile(path string)
	WouldFail(path string, err error)
	Skipped(path string)
	MissingRoot(root string)
	MissingReserved(path string)
	Summary(msg string)
}

// PlanResult holds the totals of a dry run.
type PlanResult struct {
	FilesToCreate   int
	DirsToCreate    int
	Present         int
	WouldFail       int
	ReservedPresent bool
}

// String renders the totals as a single summary line.
func (pr *PlanResult) String() string {
	return printer.Sprintf("%d files to create, %d directories to create, %d already present, %d would fail",
		pr.FilesToCreate, pr.DirsToCreate, pr.Present, pr.WouldFail)
}

// Plan reports what Generate would do without touching the filesystem.
func Plan(probe Probe, r PlanReporter) (*PlanResult, error) {
	return PlanEntries(probe, r, manifest.Entries())
}

// PlanEntries is Plan over an explicit list of layout paths.
func PlanEntries(probe Probe, r PlanReporter, entries []string) (*PlanResult, error) {
	if err := preflight(probe, r.MissingRoot); err != nil {
		return nil, err
	}

	result := &PlanResult{}
	planned := make(map[string]bool)

	for _, entry := range entries {
		p := platform.NativePath(entry)

		fresh := false
		if dir := platform.ParentDir(p); dir != "" && !planned[dir] {
			blocker, err := probe.Conflict(dir)
			if err != nil {
				result.WouldFail++
				r.WouldFail(p, err)
				continue
			}
			if blocker != "" {
				result.WouldFail++
				r.WouldFail(p, fmt.Errorf("%w: %s exists and is not a directory", platform.ErrPathConflict, blocker))
				continue
			}

			exists, err := probe.Exists(dir)
			if err != nil {
				result.WouldFail++
				r.WouldFail(p, err)
				continue
			}
			if !exists {
				// MkdirAll creates the whole chain; later entries under any
				// of these ancestors must not report them again.
				for a := dir; a != "" && !planned[a]; a = platform.ParentDir(a) {
					planned[a] = true
				}
				fresh = true
				result.DirsToCreate++
				r.WouldCreateDirectory(dir)
			}
		}

		if planned[p] {
			result.Present++
			r.Skipped(p)
			continue
		}
		if !fresh {
			exists, err := probe.Exists(p)
			if err != nil {
				result.WouldFail++
				r.WouldFail(p, err)
				continue
			}
			if exists {
				result.Present++
				r.Skipped(p)
				continue
			}
		}

		planned[p] = true
		result.FilesToCreate++
		r.WouldCreateFile(p)
	}

	present, err := probe.Exists(platform.NativePath(manifest.ReservedPath))
	switch {
	case err != nil:
		result.WouldFail++
		r.WouldFail(manifest.ReservedPath, err)
	case present:
		result.ReservedPresent = true
		r.Skipped(manifest.ReservedPath)
	default:
		r.MissingReserved(manifest.ReservedPath)
	}

	r.Summary(result.String())
	return result, nil
}

// IsMissingRoot reports whether err came from a failed preflight.
func IsMissingRoot(err error) bool {
	return errors.Is(err, ErrMissingRoot)
}
