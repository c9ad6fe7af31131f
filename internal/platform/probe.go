package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// ErrPathConflict is returned when a non-directory occupies a path that
// must be a directory.
var ErrPathConflict = errors.New("path conflict")

// Probe answers existence questions and performs the only two mutations
// the scaffolder makes: creating directories and creating empty files.
type Probe struct {
	fs afero.Fs
}

// NewProbe returns a Probe over fs.
func NewProbe(fs afero.Fs) *Probe {
	return &Probe{fs: fs}
}

// NewOSProbe returns a Probe over the real filesystem, resolving relative
// paths against the current working directory.
func NewOSProbe() *Probe {
	return NewProbe(afero.NewOsFs())
}

// Exists reports whether any entry (file, directory, symlink, or other)
// resides at path. Symlinks are not followed, so a dangling link counts as
// existing. A path under a regular file does not exist.
func (p *Probe) Exists(path string) (bool, error) {
	_, err := p.lstat(path)
	if err == nil {
		return true, nil
	}
	if notExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path resolves to a directory, following symlinks.
func (p *Probe) IsDir(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if notExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureDirectory creates dir and any missing ancestors. An existing
// directory is left untouched. If dir or one of its existing ancestors is
// not a directory, an error wrapping ErrPathConflict is returned and
// nothing is created.
func (p *Probe) EnsureDirectory(dir string) error {
	if blocker, err := p.Conflict(dir); err != nil {
		return err
	} else if blocker != "" {
		return fmt.Errorf("%w: %s exists and is not a directory", ErrPathConflict, blocker)
	}

	if err := p.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// CreateEmpty creates a zero-byte regular file at path. It refuses to open
// an existing file, so content that appeared after an existence check is
// never truncated.
func (p *Probe) CreateEmpty(path string) (err error) {
	f, err := p.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", path, cerr)
		}
	}()
	return nil
}

// Conflict walks from dir toward the root and returns the nearest existing
// path that is not a directory, or "" if the first existing ancestor is a
// directory. It never mutates anything.
func (p *Probe) Conflict(dir string) (string, error) {
	for cur := filepath.Clean(dir); ; {
		info, err := p.fs.Stat(cur)
		switch {
		case err == nil:
			if info.IsDir() {
				return "", nil
			}
			return cur, nil
		case !notExist(err):
			return "", fmt.Errorf("checking %s: %w", cur, err)
		}

		parent := filepath.Dir(cur)
		if parent == cur || parent == "." {
			return "", nil
		}
		cur = parent
	}
}

// lstat uses Lstat when the filesystem supports it.
func (p *Probe) lstat(path string) (os.FileInfo, error) {
	if l, ok := p.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return p.fs.Stat(path)
}

// notExist reports whether err means nothing is at the path. afero wrappers
// may nest *os.PathError, so the whole chain is checked.
func notExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || isNotDir(err)
}
