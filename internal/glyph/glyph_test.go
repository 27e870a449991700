package glyph

import "testing"

func TestFixedAdvance(t *testing.T) {
	o := Fixed{W: 7}
	if got := o.Advance(24, "a"); got != 7 {
		t.Errorf("expected advance 7, got %g", got)
	}
	// Font size is ignored by Fixed.
	if got := o.Advance(99, "a"); got != 7 {
		t.Errorf("expected advance 7, got %g", got)
	}
}

func TestStringAdvance(t *testing.T) {
	o := Fixed{W: 2}
	if got := StringAdvance(o, 10, "hello"); got != 10 {
		t.Errorf("expected 10, got %g", got)
	}
	if got := StringAdvance(o, 10, ""); got != 0 {
		t.Errorf("expected 0 for empty string, got %g", got)
	}
}

func TestStringAdvanceGraphemeClusters(t *testing.T) {
	o := Fixed{W: 1}
	// Combining mark forms a single cluster with its base.
	if got := StringAdvance(o, 10, "é"); got != 1 {
		t.Errorf("expected combining sequence to measure as one character, got %g", got)
	}
}

func TestMonospaceAdvance(t *testing.T) {
	o := Monospace{Aspect: 1}
	if got := o.Advance(1, "a"); got != 1 {
		t.Errorf("expected narrow char advance 1, got %g", got)
	}
	if got := o.Advance(1, "世"); got != 2 {
		t.Errorf("expected wide char advance 2, got %g", got)
	}
	// Advance scales with font size.
	if got := o.Advance(3, "a"); got != 3 {
		t.Errorf("expected advance 3 at font size 3, got %g", got)
	}
}

func TestMonospaceDefaultAspect(t *testing.T) {
	o := Monospace{}
	if got := o.Advance(2, "a"); got != 2*DefaultAspect {
		t.Errorf("expected default aspect advance %g, got %g", 2*DefaultAspect, got)
	}
}
