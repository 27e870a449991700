package cursor

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/glyph"
)

// xAt returns the x coordinate of the cursor position charIdx within a
// line, by summing glyph advances from the line's left edge.
func xAt(text string, in line.Info, r geom.Rect, o glyph.Oracle, fontSize float64, charIdx int) float64 {
	x := r.X
	rest := in.Text(text)
	state := -1
	for i := 0; i < charIdx && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		x += o.Advance(fontSize, cluster)
	}
	return x
}

// XYAt returns the screen position of a cursor index: the caret x
// coordinate and the vertical extent of its line. ok is false when the
// index cannot be resolved against the layout; the caller must then
// substitute a fallback position rather than fail.
func XYAt(text string, infos []line.Info, rects []geom.Rect, o glyph.Oracle, fontSize float64, idx Index) (float64, geom.Range, bool) {
	if idx.Line < 0 || idx.Line >= len(infos) || idx.Line >= len(rects) {
		return 0, geom.Range{}, false
	}
	in := infos[idx.Line]
	if idx.Char < 0 || idx.Char > in.CharCount {
		return 0, geom.Range{}, false
	}
	x := xAt(text, in, rects[idx.Line], o, fontSize, idx.Char)
	return x, rects[idx.Line].YRange(), true
}

// ClosestIndex returns the cursor index nearest to a screen point,
// along with the exact screen position of that index. ok is false only
// when the text is empty.
//
// The search is greedy: lines are scanned top to bottom until one
// vertically contains the point or the vertical distance starts
// increasing, then glyph positions on the chosen line are scanned left
// to right with the same stop-at-increase rule. Ties resolve to the
// first position encountered.
func ClosestIndex(p geom.Point, text string, infos []line.Info, rects []geom.Rect, o glyph.Oracle, fontSize float64) (Index, geom.Point, bool) {
	if text == "" || len(infos) == 0 || len(rects) < len(infos) {
		return Index{}, geom.Point{}, false
	}

	closestLine := 0
	bestDiff := math.Inf(1)
	for i := 0; i < len(infos); i++ {
		ys := rects[i].YRange()
		if ys.IsOver(p.Y) {
			closestLine = i
			break
		}
		diff := math.Abs(p.Y - ys.Middle())
		if diff < bestDiff {
			closestLine = i
			bestDiff = diff
		} else {
			break
		}
	}

	in := infos[closestLine]
	r := rects[closestLine]

	// The start of the line is always a valid position.
	closestChar := 0
	closestX := r.X
	bestXDiff := math.Abs(p.X - r.X)

	x := r.X
	rest := in.Text(text)
	state := -1
	for i := 1; i <= in.CharCount && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		x += o.Advance(fontSize, cluster)
		diff := math.Abs(p.X - x)
		if diff < bestXDiff {
			closestChar = i
			closestX = x
			bestXDiff = diff
		} else {
			break
		}
	}

	idx := Index{Line: closestLine, Char: closestChar}
	pos := geom.Point{X: closestX, Y: r.YRange().Middle()}
	return idx, pos, true
}

// SelectedRects returns one highlight rectangle per line touched by the
// selection between start and end, each clipped to the selected
// sub-range of its line. The endpoints are normalized first, so the
// result is independent of anchor direction. A collapsed selection
// produces no rectangles.
func SelectedRects(text string, infos []line.Info, rects []geom.Rect, o glyph.Oracle, fontSize float64, start, end Index) []geom.Rect {
	if start.Compare(end) > 0 {
		start, end = end, start
	}
	if start == end || len(infos) == 0 {
		return nil
	}

	firstLine := start.Line
	if firstLine < 0 {
		firstLine = 0
	}
	lastLine := end.Line
	if lastLine >= len(infos) {
		lastLine = len(infos) - 1
	}

	var out []geom.Rect
	for li := firstLine; li <= lastLine && li < len(rects); li++ {
		in := infos[li]
		sc, ec := 0, in.CharCount
		if li == start.Line && start.Char > 0 {
			sc = start.Char
		}
		if li == end.Line && end.Char < ec {
			ec = end.Char
		}
		if sc > in.CharCount {
			sc = in.CharCount
		}
		if ec < sc {
			ec = sc
		}
		x1 := xAt(text, in, rects[li], o, fontSize, sc)
		x2 := xAt(text, in, rects[li], o, fontSize, ec)
		out = append(out, geom.Rect{X: x1, Y: rects[li].Y, W: x2 - x1, H: rects[li].H})
	}
	return out
}
