package expandable

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// SizeProbe lays out its child at the incoming width with unbounded height
// and reports the child's height whenever it changes.
//
// Reports are delivered after layout through the pipeline owner, so a
// callback may call SetState without re-entering layout. Several layout
// passes before delivery coalesce into one report of the latest height.
//
//	SizeProbe{
//	    OnHeight: func(h float64) { s.setMeasured(h) },
//	    Child:    content,
//	}
type SizeProbe struct {
	core.RenderObjectBase
	Child    core.Widget
	OnHeight func(height float64)
}

func (p SizeProbe) ChildWidget() core.Widget {
	return p.Child
}

func (p SizeProbe) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	probe := &renderSizeProbe{onHeight: p.OnHeight, reported: -1}
	probe.SetSelf(probe)
	return probe
}

func (p SizeProbe) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if probe, ok := renderObject.(*renderSizeProbe); ok {
		probe.onHeight = p.OnHeight
	}
}

type renderSizeProbe struct {
	layout.RenderBoxBase
	child    layout.RenderBox
	onHeight func(float64)

	// reported is the last height handed to the pipeline; -1 before the
	// first layout.
	reported float64
}

func (r *renderSizeProbe) SetChild(child layout.RenderObject) {
	if r.child != nil && layout.RenderObject(r.child) != child {
		layout.SetParentOnChild(r.child, nil)
	}
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderSizeProbe) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSizeProbe) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		r.report(0)
		return
	}
	r.child.Layout(constraints.WithUnboundedHeight(), true)
	r.child.SetParentData(&layout.BoxParentData{})
	size := r.child.Size()
	r.SetSize(graphics.Size{Width: constraints.Constrain(size).Width, Height: size.Height})
	r.report(size.Height)
}

func (r *renderSizeProbe) report(height float64) {
	if height == r.reported {
		return
	}
	r.reported = height
	owner := r.Owner()
	if owner == nil {
		return
	}
	owner.AddPostLayoutCallback(r, r.deliver)
}

func (r *renderSizeProbe) deliver() {
	if r.onHeight != nil {
		r.onHeight(r.reported)
	}
}

// Height returns the most recent measured child height.
func (r *renderSizeProbe) Height() float64 {
	return max(r.reported, 0)
}

func (r *renderSizeProbe) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderSizeProbe) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}

// Dispose drops the callback so a late delivery after unmount is a no-op.
func (r *renderSizeProbe) Dispose() {
	r.onHeight = nil
}
