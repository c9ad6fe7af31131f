// Package cli defines the Cobra command tree for the fluttergen CLI. The
// root command materializes the Flutter layout in the current directory;
// each other file registers one subcommand. Commands delegate to internal
// packages for the work and only handle flags and output.
package cli
