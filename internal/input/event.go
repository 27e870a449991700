// Package input defines the device events a text box consumes and an
// adapter that produces them from tcell. Events are plain values; the
// widget folds them over its state one at a time, in arrival order.
package input

import (
	"strings"

	"github.com/dshills/textbox/internal/geom"
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// Key identifies a non-text key the widget reacts to.
type Key uint8

const (
	// KeyNone is the zero key.
	KeyNone Key = iota
	// KeyRune is a printable key, carried alongside its rune.
	KeyRune
	// KeyBackspace deletes backward.
	KeyBackspace
	// KeyLeft moves the cursor left.
	KeyLeft
	// KeyRight moves the cursor right.
	KeyRight
	// KeyUp is reserved for vertical movement.
	KeyUp
	// KeyDown is reserved for vertical movement.
	KeyDown
	// KeyEnter is reserved for commit handling.
	KeyEnter
)

// String returns the key's name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	default:
		return "none"
	}
}

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone means no button.
	ButtonNone Button = iota
	// ButtonPrimary is the primary (usually left) button.
	ButtonPrimary
	// ButtonSecondary is the secondary (usually right) button.
	ButtonSecondary
	// ButtonMiddle is the middle button.
	ButtonMiddle
)

// Event is a single device event. The concrete types are Press, Drag,
// Release, KeyPress, and Text.
type Event interface {
	isEvent()
}

// Press reports a pointer button going down at a position.
type Press struct {
	Pos    geom.Point
	Button Button
}

// Drag reports pointer movement while a button is held.
type Drag struct {
	Pos    geom.Point
	Button Button
}

// Release reports a pointer button going up.
type Release struct {
	Button Button
}

// KeyPress reports a non-text key, with its rune for KeyRune.
type KeyPress struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// Text reports entered text, one or more characters at a time.
type Text struct {
	Str  string
	Mods Modifier
}

func (Press) isEvent()    {}
func (Drag) isEvent()     {}
func (Release) isEvent()  {}
func (KeyPress) isEvent() {}
func (Text) isEvent()     {}

// IsArrowArtifact reports whether s consists entirely of the private
// use code points U+F700 through U+F703 that some platforms deliver as
// text when arrow keys are pressed. Such strings must never be
// inserted into a buffer.
func IsArrowArtifact(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '\uF700' || r > '\uF703' {
			return false
		}
	}
	return true
}
