//go:build !windows

package platform

import (
	"errors"
	"syscall"
)

// isNotDir reports whether err means a path component is not a directory.
// Stat on "file/child" fails this way rather than with not-exist.
func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
