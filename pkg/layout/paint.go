package layout

import (
	"github.com/tomortec/drift-expandable/pkg/gestures"
	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// HitTestResult collects hit test entries, deepest first.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
	if painted, ok := child.(interface{ ClearNeedsPaint() }); ok {
		painted.ClearNeedsPaint()
	}
}

// HitTestChild forwards a hit test to a child positioned at its parent data
// offset. Position is in the parent's coordinates.
func HitTestChild(child RenderBox, position graphics.Offset, result *HitTestResult) bool {
	if child == nil {
		return false
	}
	offset := ChildOffset(child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	return child.HitTest(local, result)
}
