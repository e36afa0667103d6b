package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// OverflowBox takes the size its parent gives it but lays its child out
// with the incoming width and an unbounded height. The child keeps its
// natural height and may overflow the box; combine with [ClipRRect] to
// reveal it progressively.
//
// The child is pinned to the top of the box and aligned horizontally by
// Alignment.X.
type OverflowBox struct {
	core.RenderObjectBase
	Child     core.Widget
	Alignment layout.Alignment
}

func (o OverflowBox) ChildWidget() core.Widget {
	return o.Child
}

func (o OverflowBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderOverflowBox{alignment: o.Alignment}
	r.SetSelf(r)
	return r
}

func (o OverflowBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderOverflowBox); ok && r.alignment != o.Alignment {
		r.alignment = o.Alignment
		r.MarkNeedsLayout()
	}
}

type renderOverflowBox struct {
	layout.RenderBoxBase
	singleChild
	alignment layout.Alignment
}

func (r *renderOverflowBox) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderOverflowBox) PerformLayout() {
	constraints := r.Constraints()
	size := constraints.Biggest()
	r.SetSize(size)
	if r.child == nil {
		return
	}
	r.child.Layout(constraints.WithUnboundedHeight(), true) // true: we read child.Size()
	childSize := r.child.Size()
	x := r.alignment.Inscribe(childSize, size).X
	r.child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x}})
}

func (r *renderOverflowBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderOverflowBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if layout.HitTestChild(r.child, position, result) {
		return true
	}
	result.Add(r)
	return true
}
