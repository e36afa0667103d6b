package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/gestures"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// GestureDetector wraps a child widget with tap recognition.
//
//	GestureDetector{
//	    OnTap: func() { s.toggle() },
//	    Child: header,
//	}
//
// The detector takes part in hit testing even where its child is
// transparent, so the whole box is tappable. Taps compete in
// [gestures.DefaultArena]; the deepest detector under the pointer wins.
type GestureDetector struct {
	core.RenderObjectBase
	Child       core.Widget
	OnTap       func()
	OnTapCancel func()
}

func (g GestureDetector) ChildWidget() core.Widget {
	return g.Child
}

func (g GestureDetector) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	detector := &renderGestureDetector{}
	detector.SetSelf(detector)
	detector.configure(g)
	return detector
}

func (g GestureDetector) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if detector, ok := renderObject.(*renderGestureDetector); ok {
		detector.configure(g)
	}
}

type renderGestureDetector struct {
	layout.RenderBoxBase
	singleChild
	tap *gestures.TapGestureRecognizer
}

func (r *renderGestureDetector) configure(g GestureDetector) {
	if g.OnTap == nil {
		if r.tap != nil {
			r.tap.Dispose()
			r.tap = nil
		}
		return
	}
	if r.tap == nil {
		r.tap = gestures.NewTapGestureRecognizer(gestures.DefaultArena)
	}
	r.tap.OnTap = g.OnTap
	r.tap.OnTapCancel = g.OnTapCancel
}

func (r *renderGestureDetector) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderGestureDetector) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Biggest())
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}

func (r *renderGestureDetector) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderGestureDetector) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}

// HandlePointer feeds pointer events routed by hit testing to the tap
// recognizer.
func (r *renderGestureDetector) HandlePointer(event gestures.PointerEvent) {
	if r.tap == nil {
		return
	}
	if event.Phase == gestures.PointerPhaseDown {
		r.tap.AddPointer(event)
		return
	}
	r.tap.HandleEvent(event)
}

// Dispose releases the recognizer when the detector leaves the tree.
func (r *renderGestureDetector) Dispose() {
	if r.tap != nil {
		r.tap.Dispose()
		r.tap = nil
	}
}
