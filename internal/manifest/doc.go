// Package manifest holds the compiled-in Flutter source layout that
// fluttergen materializes: the ordered list of file paths, the reserved
// entry-point path, and the root marker directory. The layout is checked
// against an embedded JSON schema to keep it well-formed.
package manifest
