package line

import (
	"testing"

	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/glyph"
)

// unit gives every character width 1, so widths equal character counts.
var unit = glyph.Fixed{W: 1}

func TestLayoutSingleLine(t *testing.T) {
	// Width fits both words: exactly one line spanning the whole text.
	infos := Layout("hello world", unit, 10, WrapWhitespace, 11)
	if len(infos) != 1 {
		t.Fatalf("expected 1 line, got %d", len(infos))
	}
	in := infos[0]
	if in.StartByte != 0 || in.EndByte != 11 {
		t.Errorf("unexpected byte range [%d,%d)", in.StartByte, in.EndByte)
	}
	if in.CharCount != 11 || in.Width != 11 {
		t.Errorf("unexpected chars=%d width=%g", in.CharCount, in.Width)
	}
	if in.Break.Kind != BreakEnd {
		t.Errorf("expected BreakEnd, got %v", in.Break.Kind)
	}
}

func TestLayoutWhitespaceWrap(t *testing.T) {
	infos := Layout("hello world", unit, 10, WrapWhitespace, 8)
	if len(infos) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(infos))
	}
	first, second := infos[0], infos[1]

	if first.Text("hello world") != "hello" {
		t.Errorf("first line = %q, want %q", first.Text("hello world"), "hello")
	}
	if first.Break.Kind != BreakWhitespace || first.Break.Chars != 1 || first.Break.Bytes != 1 {
		t.Errorf("unexpected first break %+v", first.Break)
	}
	if first.Width != 5 {
		t.Errorf("break character must be excluded from width, got %g", first.Width)
	}

	if second.Text("hello world") != "world" {
		t.Errorf("second line = %q, want %q", second.Text("hello world"), "world")
	}
	if second.StartByte != 6 || second.StartChar != 6 {
		t.Errorf("unexpected second line start byte=%d char=%d", second.StartByte, second.StartChar)
	}
	if second.Break.Kind != BreakEnd {
		t.Errorf("expected BreakEnd, got %v", second.Break.Kind)
	}
}

func TestLayoutContiguousRanges(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	infos := Layout(text, unit, 10, WrapWhitespace, 10)

	if infos[0].StartByte != 0 {
		t.Errorf("first line must start at byte 0, got %d", infos[0].StartByte)
	}
	for i := 1; i < len(infos); i++ {
		prev := infos[i-1]
		if infos[i].StartByte != prev.EndByte+prev.Break.Bytes {
			t.Errorf("line %d: gap or overlap: start=%d, prev end=%d + break=%d",
				i, infos[i].StartByte, prev.EndByte, prev.Break.Bytes)
		}
		if infos[i].StartChar != prev.EndChar()+prev.Break.Chars {
			t.Errorf("line %d: char offsets not contiguous", i)
		}
	}
	last := infos[len(infos)-1]
	if last.EndByte != len(text) {
		t.Errorf("last line must end at byte %d, got %d", len(text), last.EndByte)
	}
}

func TestLayoutLongTokenFallsBackToMidTokenBreak(t *testing.T) {
	infos := Layout("abcdefgh", unit, 10, WrapWhitespace, 3)
	if len(infos) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(infos))
	}
	wantTexts := []string{"abc", "def", "gh"}
	for i, want := range wantTexts {
		if got := infos[i].Text("abcdefgh"); got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
	if infos[0].Break.Kind != BreakWrap || infos[0].Break.Chars != 0 {
		t.Errorf("mid-token break must consume no characters, got %+v", infos[0].Break)
	}
}

func TestLayoutCharacterWrap(t *testing.T) {
	infos := Layout("hello", unit, 10, WrapCharacter, 2)
	if len(infos) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(infos))
	}
	wantTexts := []string{"he", "ll", "o"}
	for i, want := range wantTexts {
		if got := infos[i].Text("hello"); got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
}

func TestLayoutNewline(t *testing.T) {
	infos := Layout("ab\ncd", unit, 10, WrapWhitespace, 100)
	if len(infos) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(infos))
	}
	if infos[0].Break.Kind != BreakNewline || infos[0].Break.Bytes != 1 || infos[0].Break.Chars != 1 {
		t.Errorf("unexpected newline break %+v", infos[0].Break)
	}
	if infos[1].StartChar != 3 {
		t.Errorf("expected second line to start at char 3, got %d", infos[1].StartChar)
	}
}

func TestLayoutCRLF(t *testing.T) {
	infos := Layout("a\r\nb", unit, 10, WrapWhitespace, 100)
	if len(infos) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(infos))
	}
	// CRLF is a single grapheme cluster: two bytes, one character.
	if infos[0].Break.Bytes != 2 || infos[0].Break.Chars != 1 {
		t.Errorf("unexpected CRLF break %+v", infos[0].Break)
	}
	if infos[1].Text("a\r\nb") != "b" {
		t.Errorf("second line = %q, want %q", infos[1].Text("a\r\nb"), "b")
	}
}

func TestLayoutEmptyText(t *testing.T) {
	infos := Layout("", unit, 10, WrapWhitespace, 100)
	if len(infos) != 1 {
		t.Fatalf("expected a single empty line, got %d lines", len(infos))
	}
	in := infos[0]
	if in.CharCount != 0 || in.Width != 0 || in.Break.Kind != BreakEnd {
		t.Errorf("unexpected empty line %+v", in)
	}
}

func TestLayoutDeterminism(t *testing.T) {
	text := "hello wide world of wrapping"
	a := Layout(text, unit, 12, WrapWhitespace, 9)
	b := Layout(text, unit, 12, WrapWhitespace, 9)
	if !Equal(a, b) {
		t.Error("identical inputs must yield identical layouts")
	}
}

func TestEqual(t *testing.T) {
	text := "hello world"
	a := Layout(text, unit, 10, WrapWhitespace, 8)
	b := Layout(text, unit, 10, WrapWhitespace, 8)
	c := Layout(text, unit, 10, WrapWhitespace, 11)

	if !Equal(a, b) {
		t.Error("expected equal layouts")
	}
	if Equal(a, c) {
		t.Error("different widths must produce unequal layouts")
	}
	if !Equal(nil, nil) {
		t.Error("nil layouts are equal")
	}
}

func TestTotalChars(t *testing.T) {
	infos := Layout("hello world", unit, 10, WrapWhitespace, 8)
	if got := TotalChars(infos); got != 11 {
		t.Errorf("TotalChars = %d, want 11", got)
	}
	if got := TotalChars(nil); got != 0 {
		t.Errorf("TotalChars(nil) = %d, want 0", got)
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		n        int
		fontSize float64
		spacing  float64
		want     float64
	}{
		{0, 10, 2, 0},
		{1, 10, 2, 10},
		{3, 10, 2, 34},
	}
	for _, tt := range tests {
		if got := Height(tt.n, tt.fontSize, tt.spacing); got != tt.want {
			t.Errorf("Height(%d,%g,%g) = %g, want %g", tt.n, tt.fontSize, tt.spacing, got, tt.want)
		}
	}
}

func TestRects(t *testing.T) {
	text := "hello world"
	infos := Layout(text, unit, 10, WrapWhitespace, 8)
	bounds := geom.Rect{X: 0, Y: 0, W: 20, H: 40}

	rects := Rects(infos, 10, bounds, geom.AlignStart, geom.AlignStart, 2)
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	if !rects[0].Equals(geom.Rect{X: 0, Y: 0, W: 5, H: 10}) {
		t.Errorf("unexpected first rect %+v", rects[0])
	}
	if !rects[1].Equals(geom.Rect{X: 0, Y: 12, W: 5, H: 10}) {
		t.Errorf("unexpected second rect %+v", rects[1])
	}
}

func TestRectsAlignment(t *testing.T) {
	infos := Layout("hi", unit, 10, WrapWhitespace, 100)
	bounds := geom.Rect{X: 0, Y: 0, W: 10, H: 30}

	right := Rects(infos, 10, bounds, geom.AlignEnd, geom.AlignEnd, 0)
	if right[0].X != 8 {
		t.Errorf("expected right-aligned x 8, got %g", right[0].X)
	}
	if right[0].Y != 20 {
		t.Errorf("expected bottom-aligned y 20, got %g", right[0].Y)
	}

	center := Rects(infos, 10, bounds, geom.AlignMiddle, geom.AlignMiddle, 0)
	if center[0].X != 4 {
		t.Errorf("expected centered x 4, got %g", center[0].X)
	}
	if center[0].Y != 10 {
		t.Errorf("expected centered y 10, got %g", center[0].Y)
	}
}

func TestRectsEmpty(t *testing.T) {
	if got := Rects(nil, 10, geom.Rect{}, geom.AlignStart, geom.AlignStart, 0); got != nil {
		t.Errorf("expected nil rects for empty layout, got %v", got)
	}
}
