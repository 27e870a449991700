package line

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/textbox/internal/glyph"
)

// Wrap specifies where a line may break when it exceeds the width budget.
type Wrap uint8

const (
	// WrapWhitespace breaks at whitespace boundaries, falling back to a
	// mid-token break only when a single token exceeds the budget.
	WrapWhitespace Wrap = iota
	// WrapCharacter breaks between any two characters once the budget
	// is exceeded.
	WrapCharacter
)

// String returns a string representation of the wrap policy.
func (w Wrap) String() string {
	switch w {
	case WrapCharacter:
		return "character"
	default:
		return "whitespace"
	}
}

// WrapFromString converts a string to a wrap policy.
func WrapFromString(s string) Wrap {
	switch s {
	case "character", "char":
		return WrapCharacter
	default:
		return WrapWhitespace
	}
}

// BreakKind categorizes how a line ends.
type BreakKind uint8

const (
	// BreakEnd marks the final line of the text.
	BreakEnd BreakKind = iota
	// BreakWrap marks a mid-token wrap; no character is consumed.
	BreakWrap
	// BreakWhitespace marks a wrap at a whitespace character, which is
	// consumed by the break and excluded from the measured width.
	BreakWhitespace
	// BreakNewline marks an explicit newline character.
	BreakNewline
)

// Break describes the boundary terminating a line. Bytes and Chars
// count the break characters consumed between this line and the next;
// they are zero for BreakEnd and BreakWrap.
type Break struct {
	Kind  BreakKind
	Bytes int
	Chars int
}

// Info describes one wrapped line's extent within the source text.
// The byte range [StartByte, EndByte) excludes the break characters.
// Info sequences are contiguous: the next line starts at
// EndByte + Break.Bytes.
type Info struct {
	StartByte int
	EndByte   int
	StartChar int     // linear character offset of the first character
	CharCount int     // characters on the line, excluding break characters
	Width     float64 // measured width, excluding the break character
	Break     Break
}

// Text returns the line's substring of the source text.
func (in Info) Text(text string) string {
	return text[in.StartByte:in.EndByte]
}

// EndChar returns the linear character offset just past the last
// character of the line (the end-of-line cursor position).
func (in Info) EndChar() int {
	return in.StartChar + in.CharCount
}

// TotalChars returns the total character count covered by the layout,
// including break characters.
func TotalChars(infos []Info) int {
	if len(infos) == 0 {
		return 0
	}
	last := infos[len(infos)-1]
	return last.EndChar() + last.Break.Chars
}

// Equal reports whether two layouts are structurally identical. The
// caller uses this to keep the previously cached sequence (and skip all
// dependent recomputation) when nothing changed.
func Equal(a, b []Info) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Height returns the total rendered height of n lines at the given
// font size and line spacing.
func Height(n int, fontSize, spacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*fontSize + float64(n-1)*spacing
}

// Layout partitions text into wrapped lines within maxWidth. It is a
// pure function: identical inputs yield identical Info sequences.
//
// Empty text produces a single empty line so the cursor always has a
// valid home position.
func Layout(text string, o glyph.Oracle, fontSize float64, wrap Wrap, maxWidth float64) []Info {
	infos := make([]Info, 0, 1)

	startByte, startChar := 0, 0
	width := 0.0
	chars := 0

	// Most recent whitespace break candidate on the current line.
	candByte := -1
	candChars := 0
	candWidth := 0.0
	candAdv := 0.0
	candBytes := 0

	flush := func(endByte int, w float64, charCount int, br Break) {
		infos = append(infos, Info{
			StartByte: startByte,
			EndByte:   endByte,
			StartChar: startChar,
			CharCount: charCount,
			Width:     w,
			Break:     br,
		})
		startByte = endByte + br.Bytes
		startChar += charCount + br.Chars
		width, chars = 0, 0
		candByte = -1
	}

	pos := 0
	state := -1
	for pos < len(text) {
		cluster, _, _, nextState := uniseg.FirstGraphemeClusterInString(text[pos:], state)
		r, _ := utf8.DecodeRuneInString(cluster)

		if r == '\n' || r == '\r' {
			flush(pos, width, chars, Break{Kind: BreakNewline, Bytes: len(cluster), Chars: 1})
			pos += len(cluster)
			state = nextState
			continue
		}

		adv := o.Advance(fontSize, cluster)
		space := unicode.IsSpace(r)

		if !space && chars > 0 && width+adv > maxWidth {
			if wrap == WrapWhitespace && candByte >= 0 {
				// Break at the last whitespace; the characters after it
				// carry over to the new line.
				carriedWidth := width - candWidth - candAdv
				carriedChars := chars - candChars - 1
				flush(candByte, candWidth, candChars, Break{Kind: BreakWhitespace, Bytes: candBytes, Chars: 1})
				width = carriedWidth + adv
				chars = carriedChars + 1
			} else {
				flush(pos, width, chars, Break{Kind: BreakWrap})
				width = adv
				chars = 1
			}
			pos += len(cluster)
			state = nextState
			continue
		}

		if space {
			candByte = pos
			candChars = chars
			candWidth = width
			candAdv = adv
			candBytes = len(cluster)
		}

		width += adv
		chars++
		pos += len(cluster)
		state = nextState
	}

	flush(len(text), width, chars, Break{Kind: BreakEnd})
	return infos
}
