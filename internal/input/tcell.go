package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textbox/internal/geom"
)

// Adapter translates tcell events into widget events. It is stateful:
// mouse press, drag, and release are synthesized from transitions of
// tcell's button mask, so one adapter must see every event of a
// screen in order.
type Adapter struct {
	held tcell.ButtonMask
}

// NewAdapter creates an adapter with no buttons held.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Translate converts a tcell event into zero or more widget events.
// Events tcell reports that the widget has no use for produce nil.
func (a *Adapter) Translate(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.translateKey(ev)
	case *tcell.EventMouse:
		return a.translateMouse(ev)
	default:
		return nil
	}
}

func (a *Adapter) translateKey(ev *tcell.EventKey) []Event {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []Event{KeyPress{Key: KeyBackspace, Mods: mods}}
	case tcell.KeyLeft:
		return []Event{KeyPress{Key: KeyLeft, Mods: mods}}
	case tcell.KeyRight:
		return []Event{KeyPress{Key: KeyRight, Mods: mods}}
	case tcell.KeyUp:
		return []Event{KeyPress{Key: KeyUp, Mods: mods}}
	case tcell.KeyDown:
		return []Event{KeyPress{Key: KeyDown, Mods: mods}}
	case tcell.KeyEnter:
		return []Event{KeyPress{Key: KeyEnter, Mods: mods}}
	case tcell.KeyRune:
		if mods.HasCtrl() {
			return []Event{KeyPress{Key: KeyRune, Rune: ev.Rune(), Mods: mods}}
		}
		return []Event{Text{Str: string(ev.Rune()), Mods: mods}}
	}

	// tcell folds Ctrl+letter into dedicated key codes; recover the
	// letter so shortcuts can match on it.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return []Event{KeyPress{Key: KeyRune, Rune: r, Mods: mods | ModCtrl}}
	}
	return nil
}

func (a *Adapter) translateMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	pos := geom.Point{X: float64(x), Y: float64(y)}

	mask := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := a.held
	a.held = mask

	var out []Event
	for _, b := range [...]struct {
		bit tcell.ButtonMask
		btn Button
	}{
		{tcell.Button1, ButtonPrimary},
		{tcell.Button2, ButtonSecondary},
		{tcell.Button3, ButtonMiddle},
	} {
		now := mask&b.bit != 0
		was := prev&b.bit != 0
		switch {
		case now && !was:
			out = append(out, Press{Pos: pos, Button: b.btn})
		case now && was:
			out = append(out, Drag{Pos: pos, Button: b.btn})
		case !now && was:
			out = append(out, Release{Button: b.btn})
		}
	}
	return out
}

func translateMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	return out
}
