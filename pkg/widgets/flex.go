package widgets

import (
	"fmt"
	"math"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// CrossAxisAlignment positions children horizontally inside a Column.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the left edge.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentCenter centers children.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentEnd places children at the right edge.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentStretch forces children to the column's width.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Column lays out children vertically, top to bottom.
//
// Children receive an unbounded height and size themselves. Spacing is
// inserted between consecutive children and may be negative, in which case
// later children overlap the bottom of earlier ones and paint above them.
//
//	Column{
//	    Spacing:            -24,
//	    CrossAxisAlignment: CrossAxisAlignmentCenter,
//	    Children:           []core.Widget{header, card},
//	}
type Column struct {
	core.RenderObjectBase
	Children           []core.Widget
	Spacing            float64
	CrossAxisAlignment CrossAxisAlignment
}

// ColumnOf creates a start-aligned column with the given children.
func ColumnOf(children ...core.Widget) Column {
	return Column{Children: children}
}

// ChildrenWidgets returns the child widgets.
func (c Column) ChildrenWidgets() []core.Widget {
	return c.Children
}

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderColumn{spacing: c.Spacing, crossAxis: c.CrossAxisAlignment}
	r.SetSelf(r)
	return r
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderColumn); ok {
		if r.spacing == c.Spacing && r.crossAxis == c.CrossAxisAlignment {
			return
		}
		r.spacing = c.Spacing
		r.crossAxis = c.CrossAxisAlignment
		r.MarkNeedsLayout()
	}
}

type renderColumn struct {
	layout.RenderBoxBase
	children  []layout.RenderBox
	spacing   float64
	crossAxis CrossAxisAlignment
}

// SetChildren sets the child render objects.
func (r *renderColumn) SetChildren(children []layout.RenderObject) {
	next := make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box, ok := child.(layout.RenderBox); ok {
			next = append(next, box)
		}
	}
	if sameChildren(r.children, next) {
		return
	}
	r.children = next
	r.MarkNeedsLayout()
}

// VisitChildren calls the visitor for each child.
func (r *renderColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderColumn) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := layout.Constraints{MaxWidth: constraints.MaxWidth, MaxHeight: layout.Unbounded}
	if r.crossAxis == CrossAxisAlignmentStretch && constraints.HasBoundedWidth() {
		childConstraints.MinWidth = constraints.MaxWidth
	}

	width, height := 0.0, 0.0
	for i, child := range r.children {
		child.Layout(childConstraints, true) // true: we read child.Size()
		size := child.Size()
		width = math.Max(width, size.Width)
		if i > 0 {
			height += r.spacing
		}
		height += size.Height
	}
	if r.crossAxis == CrossAxisAlignmentStretch && constraints.HasBoundedWidth() {
		width = constraints.MaxWidth
	}
	size := constraints.Constrain(graphics.Size{Width: width, Height: math.Max(0, height)})
	r.SetSize(size)

	y := 0.0
	for _, child := range r.children {
		childSize := child.Size()
		var x float64
		switch r.crossAxis {
		case CrossAxisAlignmentCenter:
			x = (size.Width - childSize.Width) / 2
		case CrossAxisAlignmentEnd:
			x = size.Width - childSize.Width
		}
		child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x, Y: y}})
		y += childSize.Height + r.spacing
	}
}

func (r *renderColumn) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, getChildOffset(child))
	}
}

func (r *renderColumn) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if hitTestChildrenReverse(r.children, position, result) {
		return true
	}
	result.Add(r)
	return true
}

func sameChildren(a, b []layout.RenderBox) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
