package core

import "github.com/tomortec/drift-expandable/pkg/layout"

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	// Key identifies a widget among its siblings. Widgets with different
	// keys never share an element.
	Key() any
}

// StatelessWidget builds its subtree from its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that outlives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	SetElement(element *StatefulElement)
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// RenderObjectWidget creates a render object directly.
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// Element is a widget mounted at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	// RenderObject returns the nearest render object at or below this
	// element, or nil.
	RenderObject() layout.RenderObject
}

// BuildContext is the handle a widget's Build receives.
type BuildContext interface {
	Widget() Widget
	Depth() int
	FindAncestor(predicate func(Element) bool) Element
	Owner() *BuildOwner
}

// Disposable is anything that holds resources until Dispose.
type Disposable interface {
	Dispose()
}

// Listenable notifies listeners of changes. AddListener returns a function
// that removes the listener.
type Listenable interface {
	AddListener(listener func()) func()
}
