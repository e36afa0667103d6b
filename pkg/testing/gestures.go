package testing

import (
	"fmt"

	"github.com/tomortec/drift-expandable/pkg/engine"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tap simulates a tap at the center of the first element matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	ro := extractRenderObject(result.First())
	if ro == nil {
		return fmt.Errorf("Tap: element has no render object: %s", finder.Description())
	}
	return t.TapAt(renderCenter(ro))
}

// TapAt simulates a tap at the given logical position.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	id := allocPointerID()
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// DragFrom simulates a press at start, a move by delta and a release.
func (t *WidgetTester) DragFrom(start, delta graphics.Offset) error {
	id := allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	end := graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}
	if err := t.SendPointerMove(end, id); err != nil {
		return err
	}
	return t.SendPointerUp(end, id)
}

// SendPointerDown sends a pointer-down event at pos.
func (t *WidgetTester) SendPointerDown(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(engine.PointerPhaseDown, pos, pointerID)
}

// SendPointerMove sends a pointer-move event at pos.
func (t *WidgetTester) SendPointerMove(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(engine.PointerPhaseMove, pos, pointerID)
}

// SendPointerUp sends a pointer-up event at pos.
func (t *WidgetTester) SendPointerUp(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(engine.PointerPhaseUp, pos, pointerID)
}

// SendPointerCancel sends a pointer-cancel event.
func (t *WidgetTester) SendPointerCancel(pointerID int64) error {
	return t.sendPointer(engine.PointerPhaseCancel, graphics.Offset{}, pointerID)
}

func (t *WidgetTester) sendPointer(phase engine.PointerPhase, pos graphics.Offset, pointerID int64) error {
	if t.engine.RootRender() == nil {
		return fmt.Errorf("no widget mounted")
	}
	t.engine.HandlePointer(engine.PointerEvent{
		PointerID: pointerID,
		Phase:     phase,
		X:         pos.X,
		Y:         pos.Y,
	})
	return nil
}

// renderCenter returns the center of a render object in root coordinates.
func renderCenter(ro layout.RenderObject) graphics.Offset {
	size := ro.Size()
	abs := absoluteOffset(ro)
	return graphics.Offset{X: abs.X + size.Width/2, Y: abs.Y + size.Height/2}
}

// RenderRect returns the root-relative bounds of a render object.
func RenderRect(ro layout.RenderObject) graphics.Rect {
	abs := absoluteOffset(ro)
	size := ro.Size()
	return graphics.RectFromLTWH(abs.X, abs.Y, size.Width, size.Height)
}

// absoluteOffset walks up the parent chain accumulating offsets from
// BoxParentData.
func absoluteOffset(ro layout.RenderObject) graphics.Offset {
	offset := graphics.Offset{}
	cur := ro
	for cur != nil {
		if pd, ok := cur.ParentData().(*layout.BoxParentData); ok {
			offset.X += pd.Offset.X
			offset.Y += pd.Offset.Y
		}
		parent, ok := cur.(interface{ Parent() layout.RenderObject })
		if !ok {
			break
		}
		cur = parent.Parent()
	}
	return offset
}
