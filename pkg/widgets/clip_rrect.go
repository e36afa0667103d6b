package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// ClipRRect clips its child using rounded corners. Painting and hit testing
// are both confined to the rounded shape.
type ClipRRect struct {
	core.RenderObjectBase
	Child  core.Widget
	Radius float64
}

func (c ClipRRect) ChildWidget() core.Widget {
	return c.Child
}

func (c ClipRRect) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderClipRRect{radius: max(c.Radius, 0)}
	box.SetSelf(box)
	return box
}

func (c ClipRRect) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderClipRRect); ok {
		radius := max(c.Radius, 0)
		if box.radius != radius {
			box.radius = radius
			box.MarkNeedsPaint()
		}
	}
}

type renderClipRRect struct {
	layout.RenderBoxBase
	singleChild
	radius float64
}

func (r *renderClipRRect) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderClipRRect) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}

func (r *renderClipRRect) clip() graphics.RRect {
	size := r.Size()
	return graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, size.Width, size.Height),
		graphics.CircularRadius(r.radius),
	)
}

func (r *renderClipRRect) Paint(ctx *layout.PaintContext) {
	if r.child == nil || r.Size().IsEmpty() {
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.ClipRRect(r.clip())
	ctx.PaintChild(r.child, getChildOffset(r.child))
	ctx.Canvas.Restore()
}

func (r *renderClipRRect) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !r.clip().Contains(position) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
