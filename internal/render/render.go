// Package render defines the primitive drawing operations a text box
// emits each update pass. Operations are plain data; a host backend
// interprets them however it draws.
//
// Every operation carries a stable NodeID so a retained-mode backend
// can match operations across passes and update in place instead of
// recreating its scene.
package render

import (
	"github.com/google/uuid"

	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
)

// NodeID identifies a drawing operation across update passes.
type NodeID = uuid.UUID

// NewNodeID allocates a fresh operation identity.
func NewNodeID() NodeID {
	return uuid.New()
}

// RectOp fills an axis-aligned rectangle.
type RectOp struct {
	ID    NodeID
	Rect  geom.Rect
	Color Color
}

// TextOp draws wrapped text inside a rectangle. The layout is included
// so backends need not re-wrap; it matches Text under the given
// parameters.
type TextOp struct {
	ID          NodeID
	Text        string
	Rect        geom.Rect
	Color       Color
	FontSize    float64
	LineSpacing float64
	Wrap        line.Wrap
	XAlign      geom.Align
	YAlign      geom.Align
	Layout      []line.Info
}

// LineOp draws a straight line segment, used for the caret.
type LineOp struct {
	ID         NodeID
	Start, End geom.Point
	Color      Color
	Width      float64
}
