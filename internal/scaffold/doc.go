// Package scaffold materializes the Flutter source layout. It powers the
// root "fluttergen" command: after checking that lib/ exists it walks the
// layout in order, creating missing parent directories and empty files and
// never touching anything that already exists. Plan reports what a run
// would do without mutating the filesystem.
package scaffold
