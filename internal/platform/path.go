package platform

import "path/filepath"

// NativePath converts a forward-slash relative path to the host's separator
// and collapses redundant separators and "." segments. It is purely lexical:
// symlinks are not resolved and the result is never made absolute. The leaf
// name is preserved as written, including a leading dot.
func NativePath(p string) string {
	return filepath.Clean(filepath.FromSlash(p))
}

// ParentDir returns the directory portion of a native path, or "" when the
// path has no directory component.
func ParentDir(p string) string {
	dir := filepath.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}
