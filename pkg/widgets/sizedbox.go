package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// SizedBox constrains its child to a specific width and/or height.
//
// A negative Width or Height leaves that axis to the child; zero is a real
// size, so SizedBox{Height: 0} collapses. Use [Unsized] to mark an axis as
// unset:
//
//	// Fixed-size box
//	SizedBox{Width: 300, Height: 50, Child: header}
//
//	// Fixed width, child picks its height
//	SizedBox{Width: 300, Height: Unsized, Child: body}
type SizedBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Child  core.Widget
}

// Unsized marks a SizedBox axis as sized by the child.
const Unsized = -1.0

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok {
		if box.width == s.Width && box.height == s.Height {
			return
		}
		box.width = s.Width
		box.height = s.Height
		box.MarkNeedsLayout()
	}
}

type renderSizedBox struct {
	layout.RenderBoxBase
	singleChild
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := constraints.Tighten(r.width, r.height)

	if r.child == nil {
		r.SetSize(childConstraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(childConstraints, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(childConstraints.Constrain(r.child.Size()))
}

func (r *renderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderSizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
