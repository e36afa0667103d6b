package widgets

import (
	"math"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// Stack overlays children on top of each other.
//
// Children are painted in order, with the first child at the bottom and
// the last child on top. Hit testing proceeds in reverse (topmost first).
//
// The Stack sizes itself to the largest non-positioned child; under tight
// constraints it takes the forced size. Non-positioned children are placed
// by Alignment. For absolute positioning, wrap children in [Positioned]:
//
//	Stack{
//	    Alignment: layout.AlignmentTopCenter,
//	    Children: []core.Widget{
//	        Positioned(card).Top(26).Width(300).Height(h),
//	        Positioned(header).Top(0),
//	    },
//	}
//
// Axes a Positioned child leaves unset fall back to the stack's Alignment.
type Stack struct {
	core.RenderObjectBase
	// Children are the widgets to overlay. First child is at the bottom,
	// last child is on top.
	Children []core.Widget
	// Alignment positions non-positioned children and the unset axes of
	// positioned ones. The zero value centers.
	Alignment layout.Alignment
}

// StackOf creates a stack with the given children.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

// ChildrenWidgets returns the child widgets.
func (s Stack) ChildrenWidgets() []core.Widget {
	return s.Children
}

func (s Stack) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	stack := &renderStack{alignment: s.Alignment}
	stack.SetSelf(stack)
	return stack
}

func (s Stack) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if stack, ok := renderObject.(*renderStack); ok && stack.alignment != s.Alignment {
		stack.alignment = s.Alignment
		stack.MarkNeedsLayout()
	}
}

type renderStack struct {
	layout.RenderBoxBase
	children  []layout.RenderBox
	alignment layout.Alignment
}

// SetChildren sets the child render objects.
func (r *renderStack) SetChildren(children []layout.RenderObject) {
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
func (r *renderStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderStack) PerformLayout() {
	constraints := r.Constraints()

	// First pass: non-positioned children decide the stack size.
	var width, height float64
	loose := constraints.Loosen()
	for _, child := range r.children {
		if _, ok := child.(*renderPositioned); ok {
			continue
		}
		child.Layout(loose, true) // true: we read child.Size()
		size := child.Size()
		width = math.Max(width, size.Width)
		height = math.Max(height, size.Height)
	}
	size := constraints.Constrain(graphics.Size{Width: width, Height: height})
	r.SetSize(size)

	// Second pass: place everything inside the final size.
	for _, child := range r.children {
		if pos, ok := child.(*renderPositioned); ok {
			layoutPositionedChild(pos, size, r.alignment)
			continue
		}
		offset := r.alignment.Inscribe(child.Size(), size)
		child.SetParentData(&layout.BoxParentData{Offset: offset})
	}
}

// layoutPositionedChild sizes a positioned child from its explicit extents
// and edge distances, then offsets it. Unset axes use the stack alignment.
func layoutPositionedChild(pos *renderPositioned, stackSize graphics.Size, alignment layout.Alignment) {
	c := layout.Loose(stackSize)
	switch {
	case pos.width != nil:
		c.MinWidth, c.MaxWidth = *pos.width, *pos.width
	case pos.left != nil && pos.right != nil:
		w := math.Max(0, stackSize.Width-*pos.left-*pos.right)
		c.MinWidth, c.MaxWidth = w, w
	}
	switch {
	case pos.height != nil:
		c.MinHeight, c.MaxHeight = *pos.height, *pos.height
	case pos.top != nil && pos.bottom != nil:
		h := math.Max(0, stackSize.Height-*pos.top-*pos.bottom)
		c.MinHeight, c.MaxHeight = h, h
	}
	pos.Layout(c, true) // true: we read pos.Size()
	size := pos.Size()

	aligned := alignment.Inscribe(size, stackSize)
	offset := aligned
	switch {
	case pos.left != nil:
		offset.X = *pos.left
	case pos.right != nil:
		offset.X = stackSize.Width - *pos.right - size.Width
	}
	switch {
	case pos.top != nil:
		offset.Y = *pos.top
	case pos.bottom != nil:
		offset.Y = stackSize.Height - *pos.bottom - size.Height
	}
	pos.SetParentData(&layout.BoxParentData{Offset: offset})
}

func (r *renderStack) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, getChildOffset(child))
	}
}

func (r *renderStack) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if hitTestChildrenReverse(r.children, position, result) {
		return true
	}
	result.Add(r)
	return true
}

// PositionedWidget places its child at explicit edges or with explicit
// extents inside a [Stack]. Build one with [Positioned].
type PositionedWidget struct {
	core.RenderObjectBase
	Child  core.Widget
	left   *float64
	top    *float64
	right  *float64
	bottom *float64
	width  *float64
	height *float64
}

// Positioned wraps child for absolute placement inside a Stack:
//
//	Positioned(badge).Top(8).Right(8)
func Positioned(child core.Widget) PositionedWidget {
	return PositionedWidget{Child: child}
}

// Left sets the distance from the stack's left edge.
func (p PositionedWidget) Left(v float64) PositionedWidget { p.left = &v; return p }

// Top sets the distance from the stack's top edge.
func (p PositionedWidget) Top(v float64) PositionedWidget { p.top = &v; return p }

// Right sets the distance from the stack's right edge.
func (p PositionedWidget) Right(v float64) PositionedWidget { p.right = &v; return p }

// Bottom sets the distance from the stack's bottom edge.
func (p PositionedWidget) Bottom(v float64) PositionedWidget { p.bottom = &v; return p }

// Width forces the child's width.
func (p PositionedWidget) Width(v float64) PositionedWidget { p.width = &v; return p }

// Height forces the child's height.
func (p PositionedWidget) Height(v float64) PositionedWidget { p.height = &v; return p }

// Size forces both extents.
func (p PositionedWidget) Size(size graphics.Size) PositionedWidget {
	return p.Width(size.Width).Height(size.Height)
}

func (p PositionedWidget) ChildWidget() core.Widget {
	return p.Child
}

func (p PositionedWidget) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderPositioned{}
	r.SetSelf(r)
	r.configure(p)
	return r
}

func (p PositionedWidget) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderPositioned); ok && r.configure(p) {
		r.MarkNeedsLayout()
	}
}

type renderPositioned struct {
	layout.RenderBoxBase
	singleChild
	left, top, right, bottom, width, height *float64
}

// configure copies the placement and reports whether it changed.
func (r *renderPositioned) configure(p PositionedWidget) bool {
	changed := !sameFloat(r.left, p.left) || !sameFloat(r.top, p.top) ||
		!sameFloat(r.right, p.right) || !sameFloat(r.bottom, p.bottom) ||
		!sameFloat(r.width, p.width) || !sameFloat(r.height, p.height)
	r.left, r.top, r.right, r.bottom = p.left, p.top, p.right, p.bottom
	r.width, r.height = p.width, p.height
	return changed
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (r *renderPositioned) SetChild(child layout.RenderObject) {
	r.setChild(child, r)
}

func (r *renderPositioned) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Biggest())
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}

func (r *renderPositioned) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderPositioned) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	return r.child != nil && r.child.HitTest(position, result)
}
