package cursor

import "fmt"

// Cursor is either a caret at a single index or a selection between
// two indices. A selection keeps its anchor identity: the anchor is
// where the selection started and stays fixed while the head extends
// during a drag, so the pair is never stored pre-sorted.
// Cursor is an immutable value type.
type Cursor struct {
	anchor    Index
	head      Index
	selection bool
}

// At returns a caret cursor at the given index.
func At(idx Index) Cursor {
	return Cursor{anchor: idx, head: idx}
}

// Between returns a selection cursor from anchor to head. The head may
// be before or after the anchor.
func Between(anchor, head Index) Cursor {
	return Cursor{anchor: anchor, head: head, selection: true}
}

// IsSelection returns true if the cursor is a selection rather than a
// caret. A selection whose endpoints coincide is still a selection;
// collapsing it is an explicit operation.
func (c Cursor) IsSelection() bool {
	return c.selection
}

// Head returns the moving end of the cursor: the caret index, or the
// selection endpoint that extends during a drag.
func (c Cursor) Head() Index {
	return c.head
}

// Anchor returns the fixed end of the cursor: the caret index, or the
// selection endpoint that stays put during a drag.
func (c Cursor) Anchor() Index {
	return c.anchor
}

// Start returns the lesser endpoint in layout order.
func (c Cursor) Start() Index {
	if c.head.Before(c.anchor) {
		return c.head
	}
	return c.anchor
}

// End returns the greater endpoint in layout order.
func (c Cursor) End() Index {
	if c.head.Before(c.anchor) {
		return c.anchor
	}
	return c.head
}

// Equals returns true if two cursors are identical, including anchor
// direction and caret/selection kind.
func (c Cursor) Equals(other Cursor) bool {
	return c == other
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	if !c.selection {
		return fmt.Sprintf("Caret%v", c.head)
	}
	return fmt.Sprintf("Selection{%v→%v}", c.anchor, c.head)
}

// Drag tracks an in-progress pointer drag across events.
type Drag uint8

const (
	// DragNone means no drag is in progress.
	DragNone Drag = iota
	// DragSelecting means the drag is extending a selection.
	DragSelecting
	// DragMoveSelection is reserved for dragging selected text to a new
	// position; it currently has no effect.
	DragMoveSelection
)

// String returns a string representation of the drag mode.
func (d Drag) String() string {
	switch d {
	case DragSelecting:
		return "selecting"
	case DragMoveSelection:
		return "move-selection"
	default:
		return "none"
	}
}
