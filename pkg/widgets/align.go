package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// Align positions its child within itself according to the given alignment.
//
// Align expands to fill bounded axes and shrinks to the child on unbounded
// ones. The child is given loose constraints, allowing it to size itself.
//
//	Align{
//	    Alignment: layout.AlignmentTopCenter,
//	    Child:     card,
//	}
type Align struct {
	core.RenderObjectBase
	Child     core.Widget
	Alignment layout.Alignment
}

func (a Align) ChildWidget() core.Widget {
	return a.Child
}

func (a Align) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderAlign{alignment: a.Alignment}
	r.SetSelf(r)
	return r
}

func (a Align) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderAlign); ok && r.alignment != a.Alignment {
		r.alignment = a.Alignment
		r.MarkNeedsLayout()
	}
}

// Center centers its child within itself.
type Center struct {
	core.RenderObjectBase
	Child core.Widget
}

func (c Center) ChildWidget() core.Widget {
	return c.Child
}

func (c Center) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderAlign{alignment: layout.AlignmentCenter}
	r.SetSelf(r)
	return r
}

func (c Center) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderAlign struct {
	layout.RenderBoxBase
	singleChild
	alignment layout.Alignment
}

func (r *renderAlign) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderAlign) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Biggest())
		return
	}
	r.child.Layout(constraints.Loosen(), true)
	childSize := r.child.Size()

	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if !constraints.HasBoundedWidth() {
		size.Width = childSize.Width
	}
	if !constraints.HasBoundedHeight() {
		size.Height = childSize.Height
	}
	size = constraints.Constrain(size)
	r.SetSize(size)
	r.child.SetParentData(&layout.BoxParentData{Offset: r.alignment.Inscribe(childSize, size)})
}

func (r *renderAlign) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderAlign) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if layout.HitTestChild(r.child, position, result) {
		return true
	}
	result.Add(r)
	return true
}
