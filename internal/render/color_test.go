package render

import (
	"math"
	"testing"
)

func colorNear(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#000000", ColorBlack},
		{"#FFFFFF", ColorWhite},
		{"FFFFFF", ColorWhite},
		{"#FFF", ColorWhite},
		{"F00", Color{R: 1, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		got, err := ColorFromHex(tt.hex)
		if err != nil {
			t.Errorf("ColorFromHex(%q) error: %v", tt.hex, err)
			continue
		}
		if !colorNear(got, tt.want, 1e-9) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestColorFromHexInvalid(t *testing.T) {
	for _, hex := range []string{"", "#12", "#12345", "#GGGGGG", "nonsense"} {
		if _, err := ColorFromHex(hex); err == nil {
			t.Errorf("ColorFromHex(%q) must fail", hex)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorWhite.WithAlpha(0.25)
	if c.A != 0.25 {
		t.Errorf("alpha = %g, want 0.25", c.A)
	}
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Error("WithAlpha must not touch the color channels")
	}
}

func TestHighlighted(t *testing.T) {
	// Black moves halfway to white.
	got := ColorBlack.Highlighted()
	if !colorNear(got, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, 1e-6) {
		t.Errorf("black highlighted = %v, want mid gray", got)
	}

	// White has no headroom and stays white.
	got = ColorWhite.Highlighted()
	if !colorNear(got, ColorWhite, 1e-6) {
		t.Errorf("white highlighted = %v, want white", got)
	}

	// Alpha passes through.
	got = ColorBlack.WithAlpha(0.3).Highlighted()
	if got.A != 0.3 {
		t.Errorf("highlighted alpha = %g, want 0.3", got.A)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorWhite.String(); got != "#FFFFFF@1.00" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewNodeID(t *testing.T) {
	a, b := NewNodeID(), NewNodeID()
	if a == b {
		t.Error("node identities must be distinct")
	}
}
