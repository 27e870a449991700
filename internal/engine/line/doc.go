// Package line computes the wrapped line layout of a text run.
//
// Layout is a pure function of (text, glyph oracle, font size, wrap
// policy, width budget). Callers cache the resulting Info sequence and
// replace it only when Equal reports a structural difference, so
// unchanged passes trigger no downstream recomputation.
package line
