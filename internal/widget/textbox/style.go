package textbox

import (
	"github.com/dshills/textbox/internal/config"
	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/render"
)

// Style holds the appearance parameters of a text box. All values are
// supplied per pass; the widget never owns font metrics or colors.
type Style struct {
	// Color fills the background rectangle.
	Color render.Color

	// TextColor draws the text, the caret, and (lightened) the
	// selection highlight.
	TextColor render.Color

	// FontSize is the nominal glyph height passed to the oracle.
	FontSize float64

	// XAlign positions each line horizontally within the text area.
	XAlign geom.Align

	// YAlign positions the line block vertically within the text area.
	YAlign geom.Align

	// LineSpacing is the vertical gap between adjacent lines.
	LineSpacing float64

	// Wrap selects the line wrapping policy.
	Wrap line.Wrap

	// Padding insets the text area from the widget rectangle.
	Padding float64
}

// DefaultStyle returns the default appearance.
func DefaultStyle() Style {
	return Style{
		Color:       render.ColorWhite,
		TextColor:   render.ColorBlack,
		FontSize:    24,
		XAlign:      geom.AlignStart,
		YAlign:      geom.AlignEnd,
		LineSpacing: 1.0,
		Wrap:        line.WrapWhitespace,
		Padding:     5,
	}
}

// StyleFromConfig builds a style from a loaded configuration. Colors
// that fail to parse fall back to the defaults; the config package
// validates them on load, so this only matters for hand-built configs.
func StyleFromConfig(cfg config.Config) Style {
	s := DefaultStyle()
	s.FontSize = cfg.FontSize
	s.LineSpacing = cfg.LineSpacing
	s.Padding = cfg.Padding
	s.Wrap = line.WrapFromString(cfg.Wrap)
	s.XAlign = geom.AlignFromString(cfg.XAlign)
	s.YAlign = geom.AlignFromString(cfg.YAlign)
	if c, err := render.ColorFromHex(cfg.TextColor); err == nil {
		s.TextColor = c
	}
	if c, err := render.ColorFromHex(cfg.Color); err == nil {
		s.Color = c
	}
	return s
}
