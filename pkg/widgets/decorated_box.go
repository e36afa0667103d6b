package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// DecoratedBox paints a shadow and a background behind its child.
//
// Decorations are applied in this order:
//  1. Shadow (drawn behind, naturally overflows bounds)
//  2. Background color, rounded by BorderRadius
//  3. Child widget
//
// The box sizes itself to the child; without a child it fills the
// constraints.
type DecoratedBox struct {
	core.RenderObjectBase
	Child        core.Widget
	Color        graphics.Color
	BorderRadius float64
	Shadow       *graphics.BoxShadow
}

func (d DecoratedBox) ChildWidget() core.Widget {
	return d.Child
}

func (d DecoratedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderDecoratedBox{}
	box.SetSelf(box)
	box.configure(d)
	return box
}

func (d DecoratedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderDecoratedBox); ok && box.configure(d) {
		box.MarkNeedsPaint()
	}
}

type renderDecoratedBox struct {
	layout.RenderBoxBase
	singleChild
	color        graphics.Color
	borderRadius float64
	shadow       *graphics.BoxShadow
}

func (r *renderDecoratedBox) configure(d DecoratedBox) bool {
	radius := max(d.BorderRadius, 0)
	var shadow *graphics.BoxShadow
	if d.Shadow != nil {
		copied := *d.Shadow
		shadow = &copied
	}
	changed := r.color != d.Color || r.borderRadius != radius || !sameShadow(r.shadow, shadow)
	r.color = d.Color
	r.borderRadius = radius
	r.shadow = shadow
	return changed
}

func sameShadow(a, b *graphics.BoxShadow) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (r *renderDecoratedBox) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderDecoratedBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Biggest())
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}

func (r *renderDecoratedBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if size.Width > 0 && size.Height > 0 {
		rrect := graphics.RRectFromRectAndRadius(
			graphics.RectFromLTWH(0, 0, size.Width, size.Height),
			graphics.CircularRadius(r.borderRadius),
		)
		if r.shadow != nil && r.shadow.IsVisible() {
			ctx.Canvas.DrawRRectShadow(rrect, *r.shadow)
		}
		if r.color.Alpha() > 0 {
			paint := graphics.DefaultPaint()
			paint.Color = r.color
			if r.borderRadius > 0 {
				ctx.Canvas.DrawRRect(rrect, paint)
			} else {
				ctx.Canvas.DrawRect(rrect.Rect, paint)
			}
		}
	}
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderDecoratedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
