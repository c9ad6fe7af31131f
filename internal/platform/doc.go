// Package platform provides the cross-platform filesystem pieces fluttergen
// needs: lexical conversion of layout paths to the host's native form, and a
// Probe that answers existence questions and creates directories and empty
// files on top of an afero.Fs. Using afero keeps the same code running
// against the OS, a sandboxed base path, or memory.
package platform
