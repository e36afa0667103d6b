package layout

import "github.com/tomortec/drift-expandable/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes. Embed it and call
// SetSelf with the concrete value before the object is attached.
type RenderBoxBase struct {
	size             graphics.Size
	parentData       any
	owner            *PipelineOwner
	self             RenderObject
	parent           RenderObject
	depth            int
	relayoutBoundary RenderObject
	needsLayout      bool
	needsPaint       bool
	constraints      Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size and schedules a repaint when it changes.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	if next, ok := data.(*BoxParentData); ok {
		prev, had := r.parentData.(*BoxParentData)
		if (!had || prev.Offset != next.Offset) && r.parent != nil {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

// MarkNeedsLayout marks this box dirty and walks up to the nearest relayout
// boundary, which is scheduled with the pipeline owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.owner == nil || r.self == nil {
		return
	}
	if r.relayoutBoundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint flags the box for painting. The headless pipeline repaints
// the whole tree, so the owner only tracks that a paint is pending.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.owner != nil {
		r.owner.SchedulePaint()
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, or nil before attachment.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and recomputes depth. Cached
// boundary and constraint state is dropped so the next layout starts fresh.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	switch getter, ok := parent.(interface{ Depth() int }); {
	case parent == nil:
		r.depth = 0
	case ok:
		r.depth = getter.Depth() + 1
	default:
		r.depth = 1
	}
	r.relayoutBoundary = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// RelayoutBoundary returns the cached nearest relayout boundary.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject {
	return r.relayoutBoundary
}

// NeedsLayout reports whether this box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint reports whether this box changed since it was last painted.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks the box as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout decides the relayout boundary and runs PerformLayout when the box
// is dirty or the constraints changed.
//
// A box is a relayout boundary when its constraints are tight, it is the
// root, or its parent does not read its size. Dirty marks stop at the
// boundary, so ancestors of a boundary are not laid out again.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if constraints.IsTight() || r.parent == nil || !parentUsesSize {
		r.relayoutBoundary = r.self
	} else if getter, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
		r.relayoutBoundary = getter.RelayoutBoundary()
	}

	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object and
// marks both the old and the new parent as needing layout.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	var current RenderObject
	if getter, ok := child.(interface{ Parent() RenderObject }); ok {
		current = getter.Parent()
	}
	if current == parent {
		return
	}
	setter.SetParent(parent)
	if current != nil {
		current.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// AsRenderBox converts a RenderObject to a RenderBox.
// Returns nil if the child is nil or not a RenderBox.
func AsRenderBox(child RenderObject) RenderBox {
	box, _ := child.(RenderBox)
	return box
}

// ChildOffset returns the offset stored in the child's BoxParentData.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
