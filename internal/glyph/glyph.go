// Package glyph defines the glyph-width oracle consumed by the line
// layout engine and the geometry mapper. The engine never measures
// glyphs itself; it asks an Oracle for rendered advance widths.
package glyph

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Oracle reports rendered advance widths for characters at a given
// font size. Implementations must be deterministic for a fixed font
// size.
type Oracle interface {
	// Advance returns the advance width of a single character
	// (grapheme cluster) rendered at the given font size.
	Advance(fontSize float64, cluster string) float64
}

// StringAdvance returns the total advance width of a string by summing
// the oracle's per-character advances. Characters are grapheme
// clusters, so a multi-rune cluster is measured as a single unit.
func StringAdvance(o Oracle, fontSize float64, s string) float64 {
	var total float64
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += o.Advance(fontSize, cluster)
	}
	return total
}

// Monospace is an Oracle for fixed-pitch rendering. Every character
// advances by its terminal cell count scaled by the font size and an
// aspect ratio. With Aspect 1 and font size 1 the advance equals the
// cell count, which is what a terminal host wants.
type Monospace struct {
	// Aspect scales the per-cell advance relative to the font size.
	// Zero means DefaultAspect.
	Aspect float64
}

// DefaultAspect approximates the advance-to-height ratio of common
// fixed-pitch fonts.
const DefaultAspect = 0.5

// Advance implements Oracle.
func (m Monospace) Advance(fontSize float64, cluster string) float64 {
	aspect := m.Aspect
	if aspect == 0 {
		aspect = DefaultAspect
	}
	return float64(runewidth.StringWidth(cluster)) * fontSize * aspect
}

// Fixed is an Oracle that reports the same advance for every
// character regardless of font size. Intended for tests, where exact
// widths make layout assertions trivial.
type Fixed struct {
	// W is the advance width reported for every character.
	W float64
}

// Advance implements Oracle.
func (f Fixed) Advance(fontSize float64, cluster string) float64 {
	return f.W
}
