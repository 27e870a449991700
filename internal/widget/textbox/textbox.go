package textbox

import (
	"github.com/dshills/textbox/internal/engine/buffer"
	"github.com/dshills/textbox/internal/engine/cursor"
	"github.com/dshills/textbox/internal/engine/edit"
	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/glyph"
	"github.com/dshills/textbox/internal/input"
	"github.com/dshills/textbox/internal/render"
)

// highlightAlpha is the opacity of selection highlight rectangles.
const highlightAlpha = 0.25

// caretWidth is the stroke width of the caret line segment.
const caretWidth = 1.0

// TextBox is the interaction state machine of one text-editing widget.
// It persists across update passes: cursor, drag mode, the cached line
// layout, and the render node identities all live here. The text buffer
// itself is owned by the host and borrowed per pass.
//
// A TextBox is not safe for concurrent use; the host event loop runs
// one update pass at a time.
type TextBox struct {
	style   Style
	oracle  glyph.Oracle
	enabled bool
	focused bool
	react   func(text string)

	cursor cursor.Cursor
	drag   cursor.Drag
	infos  []line.Info

	rectID       render.NodeID
	textID       render.NodeID
	caretID      render.NodeID
	highlightIDs []render.NodeID
}

// Option configures a TextBox.
type Option func(*TextBox)

// WithStyle sets the initial style.
func WithStyle(s Style) Option {
	return func(tb *TextBox) { tb.style = s }
}

// WithReact sets the commit callback. It is reserved for the Enter key
// and is currently never invoked.
func WithReact(f func(text string)) Option {
	return func(tb *TextBox) { tb.react = f }
}

// WithEnabled sets whether the widget consumes input events.
func WithEnabled(enabled bool) Option {
	return func(tb *TextBox) { tb.enabled = enabled }
}

// New creates a text box using the given glyph-width oracle.
func New(oracle glyph.Oracle, opts ...Option) *TextBox {
	tb := &TextBox{
		style:   DefaultStyle(),
		oracle:  oracle,
		enabled: true,
		cursor:  cursor.At(cursor.Index{}),
		rectID:  render.NewNodeID(),
		textID:  render.NewNodeID(),
		caretID: render.NewNodeID(),
	}
	for _, opt := range opts {
		opt(tb)
	}
	return tb
}

// Style returns the current style.
func (tb *TextBox) Style() Style {
	return tb.style
}

// SetStyle replaces the style. It takes effect on the next update pass.
func (tb *TextBox) SetStyle(s Style) {
	tb.style = s
}

// Enabled returns whether the widget consumes input events.
func (tb *TextBox) Enabled() bool {
	return tb.enabled
}

// SetEnabled sets whether the widget consumes input events. A disabled
// widget still renders.
func (tb *TextBox) SetEnabled(enabled bool) {
	tb.enabled = enabled
}

// Focused returns whether the widget shows a caret.
func (tb *TextBox) Focused() bool {
	return tb.focused
}

// SetFocused sets whether the widget shows a caret.
func (tb *TextBox) SetFocused(focused bool) {
	tb.focused = focused
}

// Cursor returns the current cursor.
func (tb *TextBox) Cursor() cursor.Cursor {
	return tb.cursor
}

// DragMode returns the current drag mode.
func (tb *TextBox) DragMode() cursor.Drag {
	return tb.drag
}

// Frame is the render output of one update pass: a background
// rectangle, the text run, selection highlights, and the caret, each
// tagged with a stable NodeID.
type Frame struct {
	Background render.RectOp
	Text       render.TextOp
	Highlights []render.RectOp

	// Caret is only meaningful when HasCaret is true; the widget emits
	// a caret only while focused.
	Caret    render.LineOp
	HasCaret bool

	// Changed reports whether the cursor, drag mode, or line layout
	// differs from the previous pass.
	Changed bool
}

// Update runs one pass: re-layout under the current rectangle, fold the
// event batch in arrival order, write back state that changed, and emit
// the frame. Events are positioned in the same coordinate space as
// rect.
func (tb *TextBox) Update(buf *buffer.Buffer, rect geom.Rect, events []input.Event) Frame {
	inner := rect.Inset(tb.style.Padding)
	eng := edit.Engine{
		Oracle:      tb.oracle,
		FontSize:    tb.style.FontSize,
		Wrap:        tb.style.Wrap,
		LineSpacing: tb.style.LineSpacing,
		Bounds:      inner,
	}

	changed := false

	// Re-layout for external text or geometry changes. The cached
	// sequence is only replaced when the structure differs.
	if fresh := eng.Layout(buf.String()); !line.Equal(fresh, tb.infos) {
		tb.infos = fresh
		changed = true
	}

	cur, drag, infos := tb.cursor, tb.drag, tb.infos

	if tb.enabled {
		for _, ev := range events {
			cur, drag, infos = tb.step(eng, buf, cur, drag, infos, ev)
		}
	}

	// Write back at most once per field.
	if !cur.Equals(tb.cursor) {
		tb.cursor = cur
		changed = true
	}
	if drag != tb.drag {
		tb.drag = drag
		changed = true
	}
	if !line.Equal(infos, tb.infos) {
		tb.infos = infos
		changed = true
	}

	return tb.frame(buf, rect, inner, changed)
}

// step applies a single event to the running state.
func (tb *TextBox) step(eng edit.Engine, buf *buffer.Buffer, cur cursor.Cursor, drag cursor.Drag, infos []line.Info, ev input.Event) (cursor.Cursor, cursor.Drag, []line.Info) {
	text := buf.String()
	rects := line.Rects(infos, tb.style.FontSize, eng.Bounds, tb.style.XAlign, tb.style.YAlign, tb.style.LineSpacing)

	switch ev := ev.(type) {
	case input.Press:
		if ev.Button != input.ButtonPrimary {
			return cur, drag, infos
		}
		idx, _, ok := cursor.ClosestIndex(ev.Pos, text, infos, rects, tb.oracle, tb.style.FontSize)
		if !ok {
			idx = cursor.Index{}
		}
		return cursor.At(idx), cursor.DragSelecting, infos

	case input.Drag:
		if ev.Button != input.ButtonPrimary {
			return cur, drag, infos
		}
		switch drag {
		case cursor.DragSelecting:
			idx, _, ok := cursor.ClosestIndex(ev.Pos, text, infos, rects, tb.oracle, tb.style.FontSize)
			if !ok {
				return cur, drag, infos
			}
			return cursor.Between(cur.Anchor(), idx), drag, infos
		case cursor.DragMoveSelection:
			// Reserved: dragging selected text is not implemented.
			return cur, drag, infos
		default:
			return cur, drag, infos
		}

	case input.Release:
		if ev.Button != input.ButtonPrimary {
			return cur, drag, infos
		}
		return cur, cursor.DragNone, infos

	case input.KeyPress:
		return tb.stepKey(eng, buf, cur, drag, infos, ev)

	case input.Text:
		if ev.Mods.HasCtrl() || ev.Str == "" || input.IsArrowArtifact(ev.Str) {
			return cur, drag, infos
		}
		cur, infos, _ = eng.Insert(buf, cur, infos, ev.Str)
		return cur, drag, infos
	}
	return cur, drag, infos
}

func (tb *TextBox) stepKey(eng edit.Engine, buf *buffer.Buffer, cur cursor.Cursor, drag cursor.Drag, infos []line.Info, ev input.KeyPress) (cursor.Cursor, cursor.Drag, []line.Info) {
	switch ev.Key {
	case input.KeyBackspace:
		cur, infos, _ = eng.Backspace(buf, cur, infos)
		return cur, drag, infos

	case input.KeyLeft:
		if ev.Mods.HasCtrl() {
			return cur, drag, infos
		}
		if cur.IsSelection() {
			return cursor.At(cur.Start()), drag, infos
		}
		if prev, ok := cur.Head().Previous(infos); ok {
			return cursor.At(prev), drag, infos
		}
		return cur, drag, infos

	case input.KeyRight:
		if ev.Mods.HasCtrl() {
			return cur, drag, infos
		}
		if cur.IsSelection() {
			return cursor.At(cur.End()), drag, infos
		}
		if next, ok := cur.Head().Next(infos); ok {
			return cursor.At(next), drag, infos
		}
		return cur, drag, infos

	case input.KeyRune:
		if ev.Mods.HasCtrl() {
			switch ev.Rune {
			case 'a':
				return eng.SelectAll(buf, infos), drag, infos
			case 'e':
				// Reserved: move to end is not implemented.
				return cur, drag, infos
			}
		}
		return cur, drag, infos

	case input.KeyUp, input.KeyDown:
		// Reserved: vertical caret movement is not implemented.
		return cur, drag, infos

	case input.KeyEnter:
		// Reserved: the commit callback (tb.react) is wired but not
		// invoked.
		return cur, drag, infos
	}
	return cur, drag, infos
}

// frame assembles the render output from the post-pass state.
func (tb *TextBox) frame(buf *buffer.Buffer, rect, inner geom.Rect, changed bool) Frame {
	text := buf.String()
	rects := line.Rects(tb.infos, tb.style.FontSize, inner, tb.style.XAlign, tb.style.YAlign, tb.style.LineSpacing)

	f := Frame{
		Background: render.RectOp{ID: tb.rectID, Rect: rect, Color: tb.style.Color},
		Text: render.TextOp{
			ID:          tb.textID,
			Text:        text,
			Rect:        inner,
			Color:       tb.style.TextColor,
			FontSize:    tb.style.FontSize,
			LineSpacing: tb.style.LineSpacing,
			Wrap:        tb.style.Wrap,
			XAlign:      tb.style.XAlign,
			YAlign:      tb.style.YAlign,
			Layout:      tb.infos,
		},
		Changed: changed,
	}

	if tb.cursor.IsSelection() {
		sel := cursor.SelectedRects(text, tb.infos, rects, tb.oracle, tb.style.FontSize, tb.cursor.Start(), tb.cursor.End())
		for len(tb.highlightIDs) < len(sel) {
			tb.highlightIDs = append(tb.highlightIDs, render.NewNodeID())
		}
		hl := tb.style.TextColor.Highlighted().WithAlpha(highlightAlpha)
		for i, r := range sel {
			f.Highlights = append(f.Highlights, render.RectOp{ID: tb.highlightIDs[i], Rect: r, Color: hl})
		}
	}

	if tb.focused {
		x, yr, ok := cursor.XYAt(text, tb.infos, rects, tb.oracle, tb.style.FontSize, tb.cursor.Head())
		if !ok {
			// Stale index against the current layout: fall back to the
			// left edge, vertically placed by alignment and font size.
			x = inner.X
			yr = geom.NewRange(0, tb.style.FontSize).AlignTo(tb.style.YAlign, inner.YRange())
		}
		f.Caret = render.LineOp{
			ID:    tb.caretID,
			Start: geom.Point{X: x, Y: yr.Start},
			End:   geom.Point{X: x, Y: yr.End},
			Color: tb.style.TextColor,
			Width: caretWidth,
		}
		f.HasCaret = true
	}

	return f
}
