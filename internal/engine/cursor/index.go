package cursor

import (
	"fmt"

	"github.com/dshills/textbox/internal/engine/line"
)

// Index is a two-dimensional cursor address into a wrapped layout:
// a line number and a character offset within that line. Char counts
// characters, not bytes, and may equal the line's character count
// (the end-of-line position).
//
// An Index is only meaningful relative to the line.Info sequence it was
// derived from; it must be re-derived after any layout change.
type Index struct {
	Line int
	Char int
}

// String returns a human-readable representation of the index.
func (i Index) String() string {
	return fmt.Sprintf("(%d:%d)", i.Line, i.Char)
}

// Compare returns -1 if i < other, 0 if equal, 1 if i > other.
func (i Index) Compare(other Index) int {
	if i.Line != other.Line {
		if i.Line < other.Line {
			return -1
		}
		return 1
	}
	if i.Char != other.Char {
		if i.Char < other.Char {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if i comes before other.
func (i Index) Before(other Index) bool {
	return i.Compare(other) < 0
}

// IndexAfterCursor returns the linear character offset of the character
// immediately following the cursor, which equals the number of
// characters before the cursor. ok is false when the index is out of
// range for the layout.
func IndexAfterCursor(infos []line.Info, idx Index) (int, bool) {
	if idx.Line < 0 || idx.Line >= len(infos) || idx.Char < 0 {
		return 0, false
	}
	in := infos[idx.Line]
	if idx.Char > in.CharCount {
		return 0, false
	}
	return in.StartChar + idx.Char, true
}

// IndexBeforeChar is the inverse of IndexAfterCursor: it returns the
// cursor index addressing the given linear character offset. When the
// offset falls exactly on a line break that consumes no characters,
// the end of the earlier line is preferred over the start of the next,
// keeping caret placement stable while typing at line end.
// ok is false when the offset exceeds the layout's character count.
func IndexBeforeChar(infos []line.Info, charIdx int) (Index, bool) {
	if charIdx < 0 {
		return Index{}, false
	}
	for li, in := range infos {
		if charIdx >= in.StartChar && charIdx <= in.EndChar() {
			return Index{Line: li, Char: charIdx - in.StartChar}, true
		}
	}
	return Index{}, false
}

// Previous returns the adjacent cursor position before i, or ok=false
// when i is already at the very first position (no wrap-around).
func (i Index) Previous(infos []line.Info) (Index, bool) {
	off, ok := IndexAfterCursor(infos, i)
	if !ok || off == 0 {
		return Index{}, false
	}
	return IndexBeforeChar(infos, off-1)
}

// Next returns the adjacent cursor position after i, or ok=false when
// i is already at the very last position (no wrap-around). Moving past
// the last character of a line steps onto the next line.
func (i Index) Next(infos []line.Info) (Index, bool) {
	off, ok := IndexAfterCursor(infos, i)
	if !ok || off+1 > line.TotalChars(infos) {
		return Index{}, false
	}
	return IndexBeforeChar(infos, off+1)
}
