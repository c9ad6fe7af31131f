// Package config manages user-level settings stored at
// ~/.fluttergen/config.yaml, overridable with FLUTTERGEN_* environment
// variables. Settings only affect presentation (such as colored output);
// the generated layout is always the same.
package config
