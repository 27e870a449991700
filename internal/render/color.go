package render

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 1}
	ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
	ColorGray  = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// ColorFromRGB creates an opaque color from components in [0, 1].
func ColorFromRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ColorFromHex creates an opaque color from a hex string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		// Short form: RGB -> RRGGBB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Highlighted returns a noticeably lighter version of the color, used
// for selection highlights. Lightness moves halfway toward white in
// HSL space; alpha is preserved.
func (c Color) Highlighted() Color {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	l += (1 - l) * 0.5
	out := colorful.Hsl(h, s, l).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	return c == other
}

// String returns a string representation of the color.
func (c Color) String() string {
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	return fmt.Sprintf("%s@%.2f", strings.ToUpper(hex), c.A)
}
