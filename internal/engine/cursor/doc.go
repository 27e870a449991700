// Package cursor provides cursor addressing over a wrapped line layout.
//
// It converts between linear character offsets and two-dimensional
// (line, char) indices, computes adjacent cursor positions, and maps
// indices to and from screen geometry. All operations are parameterized
// by a line.Info sequence; indices become stale the moment the layout
// changes and must be re-derived.
package cursor
