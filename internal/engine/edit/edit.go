// Package edit applies single-shot editing operations to a text buffer
// and cursor. Every mutating operation recomputes the line layout from
// the new text before returning; rejected operations leave buffer,
// cursor, and layout untouched.
package edit

import (
	"github.com/dshills/textbox/internal/engine/buffer"
	"github.com/dshills/textbox/internal/engine/cursor"
	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/glyph"
)

// Engine holds the per-pass layout parameters the editing operations
// need: re-layout inputs and the vertical budget for the height guard.
// Engine is a value type, rebuilt each update pass from the current
// style and available rectangle.
type Engine struct {
	Oracle      glyph.Oracle
	FontSize    float64
	Wrap        line.Wrap
	LineSpacing float64
	Bounds      geom.Rect // available text area: width wraps, height guards
}

// Layout computes the wrapped line layout for the given text under the
// engine's parameters.
func (e Engine) Layout(text string) []line.Info {
	return line.Layout(text, e.Oracle, e.FontSize, e.Wrap, e.Bounds.W)
}

// Insert splices s into the buffer, replacing the cursor's span (empty
// for a caret), and places the caret after the inserted text.
//
// The edit is all-or-nothing: the prospective text is laid out first,
// and if its rendered height does not fit strictly within the vertical
// budget the buffer, cursor, and layout are all left unchanged.
// Empty input is rejected outright. Returns the new cursor, the layout
// of the (possibly unchanged) text, and whether the edit was applied.
func (e Engine) Insert(buf *buffer.Buffer, cur cursor.Cursor, infos []line.Info, s string) (cursor.Cursor, []line.Info, bool) {
	if s == "" {
		return cur, infos, false
	}

	startOff, ok := cursor.IndexAfterCursor(infos, cur.Start())
	if !ok {
		startOff = 0
	}
	endOff, ok := cursor.IndexAfterCursor(infos, cur.End())
	if !ok {
		endOff = 0
	}
	if endOff < startOff {
		endOff = startOff
	}

	prospective, err := buf.Spliced(startOff, endOff, s)
	if err != nil {
		return cur, infos, false
	}
	newInfos := e.Layout(prospective)
	height := line.Height(len(newInfos), e.FontSize, e.LineSpacing)
	if height >= e.Bounds.H {
		return cur, infos, false
	}

	if err := buf.Splice(startOff, endOff, s); err != nil {
		return cur, infos, false
	}

	inserted := buffer.CharCount(s)
	newIdx, ok := cursor.IndexBeforeChar(newInfos, startOff+inserted)
	if !ok {
		newIdx = cursor.Index{Line: 0, Char: inserted}
	}
	return cursor.At(newIdx), newInfos, true
}

// Backspace deletes the character before a caret, or the entire
// normalized span of a selection. The caret lands at the start of the
// deleted span. Deleting at the very start of the text is a no-op.
// There is no height guard: text only shrinks.
func (e Engine) Backspace(buf *buffer.Buffer, cur cursor.Cursor, infos []line.Info) (cursor.Cursor, []line.Info, bool) {
	var startOff, endOff int

	if cur.IsSelection() {
		s, ok := cursor.IndexAfterCursor(infos, cur.Start())
		if !ok {
			return cur, infos, false
		}
		t, ok := cursor.IndexAfterCursor(infos, cur.End())
		if !ok {
			return cur, infos, false
		}
		startOff, endOff = s, t
	} else {
		off, ok := cursor.IndexAfterCursor(infos, cur.Head())
		if !ok || off == 0 {
			return cur, infos, false
		}
		startOff, endOff = off-1, off
	}

	if err := buf.Splice(startOff, endOff, ""); err != nil {
		return cur, infos, false
	}

	newInfos := e.Layout(buf.String())
	newIdx, ok := cursor.IndexBeforeChar(newInfos, startOff)
	if !ok {
		newIdx = cursor.Index{}
	}
	return cursor.At(newIdx), newInfos, true
}

// SelectAll returns a selection spanning the whole buffer, anchored at
// the very first position.
func (e Engine) SelectAll(buf *buffer.Buffer, infos []line.Info) cursor.Cursor {
	start := cursor.Index{Line: 0, Char: 0}
	end, ok := cursor.IndexBeforeChar(infos, buf.CharCount())
	if !ok {
		end = start
	}
	return cursor.Between(start, end)
}
