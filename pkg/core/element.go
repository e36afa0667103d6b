package core

import (
	"reflect"
	"time"

	"github.com/tomortec/drift-expandable/pkg/errors"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// elementBase carries the bookkeeping every element kind shares.
type elementBase struct {
	widget     Widget
	parent     Element
	self       Element
	slot       any
	depth      int
	buildOwner *BuildOwner
	dirty      bool
	mounted    bool
}

func (e *elementBase) Widget() Widget { return e.widget }
func (e *elementBase) Depth() int { return e.depth }
func (e *elementBase) Owner() *BuildOwner { return e.buildOwner }
func (e *elementBase) parentElement() Element { return e.parent }
func (e *elementBase) isMounted() bool { return e.mounted }

func (e *elementBase) setSelf(self Element) { e.self = self }
func (e *elementBase) setWidget(widget Widget) { e.widget = widget }
func (e *elementBase) setBuildOwner(owner *BuildOwner) { e.buildOwner = owner }

// MarkNeedsBuild queues the element for the next build pass. It is a no-op
// on unmounted or already dirty elements.
func (e *elementBase) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

// FindAncestor returns the closest ancestor accepted by predicate.
func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	for current := e.parent; current != nil; {
		if predicate(current) {
			return current
		}
		up, ok := current.(interface{ parentElement() Element })
		if !ok {
			return nil
		}
		current = up.parentElement()
	}
	return nil
}

func (e *elementBase) mount(parent Element, slot any) {
	e.parent, e.slot = parent, slot
	e.depth = 0
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

// needsRebuild clears the dirty flag and reports whether a rebuild should
// run.
func (e *elementBase) needsRebuild() bool {
	if !e.dirty || !e.mounted {
		return false
	}
	e.dirty = false
	return true
}

// safeBuild runs build and turns a panic into a reported BuildError. The
// failed subtree is left empty.
func (e *elementBase) safeBuild(build func() Widget) (built Widget) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportBuildError(&errors.BuildError{
				Widget:     reflect.TypeOf(e.widget).String(),
				Element:    reflect.TypeOf(e.self).String(),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			built = nil
		}
	}()
	return build()
}

// componentElement owns the single child produced by a Build method.
type componentElement struct {
	elementBase
	child Element
}

func (e *componentElement) rebuild(build func() Widget) {
	if e.needsRebuild() {
		e.child = updateChild(e.child, e.safeBuild(build), e.self, e.buildOwner, nil)
	}
}

func (e *componentElement) unmountChild() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *componentElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func (e *componentElement) RenderObject() layout.RenderObject {
	if e.child == nil {
		return nil
	}
	return e.child.RenderObject()
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	componentElement
}

// NewStatelessElement creates an unmounted StatelessElement.
func NewStatelessElement() *StatelessElement {
	e := &StatelessElement{}
	e.setSelf(e)
	return e
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Unmount() { e.unmountChild() }

func (e *StatelessElement) RebuildIfNeeded() {
	e.rebuild(func() Widget { return e.widget.(StatelessWidget).Build(e) })
}

// StatefulElement hosts a StatefulWidget and the State it creates on first
// mount.
type StatefulElement struct {
	componentElement
	state State
}

// NewStatefulElement creates an unmounted StatefulElement.
func NewStatefulElement() *StatefulElement {
	e := &StatefulElement{}
	e.setSelf(e)
	return e
}

// State returns the element's state, or nil before mount.
func (e *StatefulElement) State() State { return e.state }

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	if e.state == nil {
		e.state = e.widget.(StatefulWidget).CreateState()
		e.state.SetElement(e)
		e.state.InitState()
	}
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	previous := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(previous)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Unmount() {
	e.unmountChild()
	if e.state != nil {
		e.state.Dispose()
		e.state.SetElement(nil)
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	e.rebuild(func() Widget { return e.state.Build(e) })
}

type singleChildWidget interface{ ChildWidget() Widget }

type multiChildWidget interface{ ChildrenWidgets() []Widget }

type singleChildRender interface{ SetChild(layout.RenderObject) }

type multiChildRender interface{ SetChildren([]layout.RenderObject) }

// RenderObjectElement hosts a RenderObject and its child elements.
// Widgets with one child implement ChildWidget and pair with a render
// object that implements SetChild. Widgets with a list implement
// ChildrenWidgets and pair with SetChildren.
type RenderObjectElement struct {
	elementBase
	renderObject layout.RenderObject
	renderParent *RenderObjectElement
	children     []Element
}

// NewRenderObjectElement creates an unmounted RenderObjectElement.
func NewRenderObjectElement() *RenderObjectElement {
	e := &RenderObjectElement{}
	e.setSelf(e)
	return e
}

func (e *RenderObjectElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.renderObject = e.widget.(RenderObjectWidget).CreateRenderObject(e)
	if e.buildOwner != nil {
		e.renderObject.SetOwner(e.buildOwner.Pipeline())
	}
	// The render object joins its parent before children attach to it.
	if found := e.FindAncestor(isRenderObjectElement); found != nil {
		e.renderParent = found.(*RenderObjectElement)
		e.renderParent.attachChildRender(e.renderObject)
	}
	e.RebuildIfNeeded()
}

func isRenderObjectElement(el Element) bool {
	_, ok := el.(*RenderObjectElement)
	return ok
}

func (e *RenderObjectElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *RenderObjectElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	if e.renderParent != nil {
		e.renderParent.detachChildRender(e.renderObject)
		e.renderParent = nil
	}
	if disposable, ok := e.renderObject.(Disposable); ok {
		disposable.Dispose()
	}
}

func (e *RenderObjectElement) RebuildIfNeeded() {
	if !e.needsRebuild() {
		return
	}
	e.widget.(RenderObjectWidget).UpdateRenderObject(e, e.renderObject)
	switch w := e.widget.(type) {
	case singleChildWidget:
		e.updateSingle(w.ChildWidget())
	case multiChildWidget:
		e.updateList(w.ChildrenWidgets())
		e.syncRenderChildren()
	}
}

func (e *RenderObjectElement) updateSingle(widget Widget) {
	var existing Element
	if len(e.children) > 0 {
		existing = e.children[0]
	}
	e.children = e.children[:0]
	if child := updateChild(existing, widget, e, e.buildOwner, nil); child != nil {
		e.children = append(e.children, child)
	}
}

// updateList reconciles children by position. Surplus old children are
// unmounted.
func (e *RenderObjectElement) updateList(widgets []Widget) {
	next := make([]Element, 0, len(widgets))
	for i, w := range widgets {
		var existing Element
		if i < len(e.children) {
			existing = e.children[i]
		}
		if child := updateChild(existing, w, e, e.buildOwner, i); child != nil {
			next = append(next, child)
		}
	}
	for _, stale := range e.children[min(len(widgets), len(e.children)):] {
		stale.Unmount()
	}
	e.children = next
}

func (e *RenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// RenderObject returns the element's own render object.
func (e *RenderObjectElement) RenderObject() layout.RenderObject {
	return e.renderObject
}

func (e *RenderObjectElement) attachChildRender(child layout.RenderObject) {
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, e.renderObject)
	e.relinkChildRender(child)
}

func (e *RenderObjectElement) detachChildRender(child layout.RenderObject) {
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, nil)
	e.relinkChildRender(nil)
}

// relinkChildRender sets a single child directly. Lists are rebuilt once
// the element's children settle, at the end of its own rebuild or when the
// build owner flushes.
func (e *RenderObjectElement) relinkChildRender(child layout.RenderObject) {
	if single, ok := e.renderObject.(singleChildRender); ok {
		single.SetChild(child)
		return
	}
	if e.buildOwner != nil {
		e.buildOwner.scheduleRenderSync(e)
	}
}

func (e *RenderObjectElement) syncRenderChildren() {
	multi, ok := e.renderObject.(multiChildRender)
	if !ok {
		return
	}
	objects := make([]layout.RenderObject, 0, len(e.children))
	for _, child := range e.children {
		if ro := child.RenderObject(); ro != nil {
			objects = append(objects, ro)
		}
	}
	multi.SetChildren(objects)
}

// MountRoot inflates widget as the root of a new element tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	return UpdateRoot(nil, widget, owner)
}

// UpdateRoot reconciles the root element with a new root widget. The
// element is reused when the widget type and key match.
func UpdateRoot(existing Element, widget Widget, owner *BuildOwner) Element {
	element := updateChild(existing, widget, nil, owner, nil)
	if owner != nil {
		owner.flushRenderSync()
	}
	return element
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	switch {
	case widget == nil:
		if existing != nil {
			existing.Unmount()
		}
		return nil
	case existing != nil && canUpdateWidget(existing.Widget(), widget):
		existing.Update(widget)
		return existing
	case existing != nil:
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, slot)
	return element
}

func canUpdateWidget(existing, next Widget) bool {
	if existing == nil || next == nil || reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	element := widget.CreateElement()
	if base, ok := element.(interface {
		setWidget(Widget)
		setBuildOwner(*BuildOwner)
		setSelf(Element)
	}); ok {
		base.setWidget(widget)
		base.setBuildOwner(owner)
		base.setSelf(element)
	}
	return element
}
