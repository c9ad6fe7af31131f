// Package report renders scaffolding events as human-readable lines. Each
// event produces exactly one line; warning, error and success lines are
// colored only when the destination is a terminal and color is enabled.
package report
