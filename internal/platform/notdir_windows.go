//go:build windows

package platform

import (
	"errors"
	"syscall"
)

// isNotDir reports whether err means a path component is not a directory.
func isNotDir(err error) bool {
	return errors.Is(err, syscall.ERROR_PATH_NOT_FOUND)
}
