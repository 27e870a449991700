// Package geom provides scalar geometry primitives for text layout:
// points, ranges, rectangles, and alignment.
package geom

import "fmt"

// Point represents a position in the widget coordinate space.
// X grows rightward, Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns a new point offset by the given deltas.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Range represents a one-dimensional span [Start, End).
type Range struct {
	Start, End float64
}

// NewRange creates a range from start to end.
func NewRange(start, end float64) Range {
	return Range{Start: start, End: end}
}

// Len returns the length of the range.
func (r Range) Len() float64 {
	return r.End - r.Start
}

// Middle returns the midpoint of the range.
func (r Range) Middle() float64 {
	return (r.Start + r.End) / 2
}

// IsOver returns true if the value falls within the range.
func (r Range) IsOver(v float64) bool {
	return v >= r.Start && v < r.End
}

// Shift returns the range translated by delta.
func (r Range) Shift(delta float64) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// AlignTo returns a range of this range's length positioned within the
// target range according to the alignment.
func (r Range) AlignTo(al Align, to Range) Range {
	length := r.Len()
	switch al {
	case AlignMiddle:
		start := to.Middle() - length/2
		return Range{Start: start, End: start + length}
	case AlignEnd:
		return Range{Start: to.End - length, End: to.End}
	default:
		return Range{Start: to.Start, End: to.Start + length}
	}
}

// Equals returns true if two ranges are identical.
func (r Range) Equals(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// Align specifies how content is positioned within a containing range.
type Align uint8

const (
	// AlignStart positions content at the start (left or top).
	AlignStart Align = iota
	// AlignMiddle centers content.
	AlignMiddle
	// AlignEnd positions content at the end (right or bottom).
	AlignEnd
)

// String returns a string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// AlignFromString converts a string to an alignment.
func AlignFromString(s string) Align {
	switch s {
	case "middle", "center", "centre":
		return AlignMiddle
	case "end", "right", "bottom":
		return AlignEnd
	default:
		return AlignStart
	}
}

// Rect represents an axis-aligned rectangle. X and Y locate the
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromRanges creates a rectangle from horizontal and vertical ranges.
func RectFromRanges(x, y Range) Rect {
	return Rect{X: x.Start, Y: y.Start, W: x.Len(), H: y.Len()}
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// XRange returns the horizontal extent of the rectangle.
func (r Rect) XRange() Range { return Range{Start: r.X, End: r.X + r.W} }

// YRange returns the vertical extent of the rectangle.
func (r Rect) YRange() Range { return Range{Start: r.Y, End: r.Y + r.H} }

// Middle returns the center point of the rectangle.
func (r Rect) Middle() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point falls within the rectangle.
func (r Rect) Contains(p Point) bool {
	return r.XRange().IsOver(p.X) && r.YRange().IsOver(p.Y)
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns a rectangle shrunk by pad on every side.
// The result is clamped to zero size rather than inverting.
func (r Rect) Inset(pad float64) Rect {
	w := r.W - 2*pad
	h := r.H - 2*pad
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + pad, Y: r.Y + pad, W: w, H: h}
}

// Equals returns true if two rectangles are identical.
func (r Rect) Equals(other Rect) bool {
	return r.X == other.X && r.Y == other.Y && r.W == other.W && r.H == other.H
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
