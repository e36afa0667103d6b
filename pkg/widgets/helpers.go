package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

func setParentOnChild(child, parent layout.RenderObject) {
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, parent)
}

func setChildFromRenderObject(child layout.RenderObject) layout.RenderBox {
	return layout.AsRenderBox(child)
}

func getChildOffset(child layout.RenderObject) graphics.Offset {
	return layout.ChildOffset(child)
}

func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return layout.WithinBounds(position, size)
}

// hitTestChildrenReverse tests children topmost first and stops at the
// first hit.
func hitTestChildrenReverse(children []layout.RenderBox, position graphics.Offset, result *layout.HitTestResult) bool {
	for i := len(children) - 1; i >= 0; i-- {
		if layout.HitTestChild(children[i], position, result) {
			return true
		}
	}
	return false
}

// singleChild holds the child slot shared by single-child render boxes.
type singleChild struct {
	child layout.RenderBox
}

func (s *singleChild) setChild(child layout.RenderObject, parent layout.RenderObject) {
	if s.child != nil && layout.RenderObject(s.child) != child {
		setParentOnChild(s.child, nil)
	}
	s.child = setChildFromRenderObject(child)
	setParentOnChild(s.child, parent)
}

func (s *singleChild) VisitChildren(visitor func(layout.RenderObject)) {
	if s.child != nil {
		visitor(s.child)
	}
}

// Child returns the child render box, or nil.
func (s *singleChild) Child() layout.RenderBox {
	return s.child
}
