package core

import (
	"testing"

	"github.com/tomortec/drift-expandable/pkg/errors"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

type testStatelessWidget struct {
	StatelessBase
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

type testStatefulWidget struct {
	StatefulBase
	label   string
	newFn   func() State
	keyFunc func() any
}

func (w testStatefulWidget) Key() any {
	if w.keyFunc != nil {
		return w.keyFunc()
	}
	return nil
}

func (w testStatefulWidget) CreateState() State {
	if w.newFn != nil {
		return w.newFn()
	}
	return &testState{}
}

type testState struct {
	StateBase
	builds   int
	updates  int
	disposed bool
	child    Widget
}

func (s *testState) Build(ctx BuildContext) Widget {
	s.builds++
	return s.child
}

func (s *testState) DidUpdateWidget(old StatefulWidget) { s.updates++ }

func (s *testState) Dispose() {
	s.disposed = true
	s.StateBase.Dispose()
}

// testBox is a leaf render object.
type testBox struct {
	layout.RenderBoxBase
	disposed bool
}

func newTestBox() *testBox {
	b := &testBox{}
	b.SetSelf(b)
	return b
}

func (b *testBox) PerformLayout()                                     { b.SetSize(b.Constraints().Biggest()) }
func (b *testBox) Paint(ctx *layout.PaintContext)                     {}
func (b *testBox) HitTest(graphics.Offset, *layout.HitTestResult) bool { return false }
func (b *testBox) Dispose()                                           { b.disposed = true }

// testList is a multi-child render object.
type testList struct {
	layout.RenderBoxBase
	children []layout.RenderObject
}

func (l *testList) SetChildren(children []layout.RenderObject) { l.children = children }
func (l *testList) PerformLayout()                             {}
func (l *testList) Paint(ctx *layout.PaintContext)             {}
func (l *testList) HitTest(graphics.Offset, *layout.HitTestResult) bool {
	return false
}

type leafWidget struct {
	RenderObjectBase
	box *testBox
}

func (w leafWidget) CreateRenderObject(ctx BuildContext) layout.RenderObject {
	if w.box != nil {
		return w.box
	}
	return newTestBox()
}

func (w leafWidget) UpdateRenderObject(ctx BuildContext, ro layout.RenderObject) {}

type listWidget struct {
	RenderObjectBase
	Children []Widget
}

func (w listWidget) ChildrenWidgets() []Widget { return w.Children }

func (w listWidget) CreateRenderObject(ctx BuildContext) layout.RenderObject {
	l := &testList{}
	l.SetSelf(l)
	return l
}

func (w listWidget) UpdateRenderObject(ctx BuildContext, ro layout.RenderObject) {}

type buildErrorRecorder struct {
	errors.LogHandler
	builds []*errors.BuildError
}

func (h *buildErrorRecorder) HandleBuildError(err *errors.BuildError) {
	h.builds = append(h.builds, err)
}

func TestStatelessBuildPanicIsReported(t *testing.T) {
	handler := &buildErrorRecorder{}
	prev := errors.SetHandler(handler)
	defer errors.SetHandler(prev)

	widget := testStatelessWidget{buildFn: func(BuildContext) Widget {
		panic("test panic in stateless build")
	}}
	root := MountRoot(widget, NewBuildOwner())

	if len(handler.builds) != 1 {
		t.Fatalf("expected 1 build error, got %d", len(handler.builds))
	}
	err := handler.builds[0]
	if err.Recovered != "test panic in stateless build" {
		t.Errorf("Recovered = %v", err.Recovered)
	}
	if err.Widget != "core.testStatelessWidget" {
		t.Errorf("Widget = %q", err.Widget)
	}
	if root.RenderObject() != nil {
		t.Error("failed build should leave an empty subtree")
	}
}

func TestStatefulLifecycle(t *testing.T) {
	state := &testState{child: leafWidget{}}
	owner := NewBuildOwner()
	root := MountRoot(testStatefulWidget{newFn: func() State { return state }}, owner)

	if state.builds != 1 {
		t.Fatalf("builds after mount = %d, want 1", state.builds)
	}
	if state.Element() != root {
		t.Fatal("state should be bound to its element")
	}

	state.SetState(nil)
	if !owner.HasDirtyElements() {
		t.Fatal("SetState should schedule a rebuild")
	}
	owner.FlushBuild()
	if state.builds != 2 {
		t.Fatalf("builds after SetState = %d, want 2", state.builds)
	}

	root = UpdateRoot(root, testStatefulWidget{label: "next", newFn: func() State { return state }}, owner)
	if state.updates != 1 || state.builds != 3 {
		t.Fatalf("updates=%d builds=%d, want 1 and 3", state.updates, state.builds)
	}

	root.Unmount()
	if !state.disposed || !state.IsDisposed() {
		t.Fatal("unmount should dispose the state")
	}
	state.SetState(func() { t.Error("SetState after dispose must not run fn") })
}

func TestKeyChangeReplacesState(t *testing.T) {
	owner := NewBuildOwner()
	var created []*testState
	widgetFor := func(key string) testStatefulWidget {
		return testStatefulWidget{
			newFn: func() State {
				s := &testState{}
				created = append(created, s)
				return s
			},
			keyFunc: func() any { return key },
		}
	}

	root := MountRoot(widgetFor("a"), owner)
	root = UpdateRoot(root, widgetFor("a"), owner)
	if len(created) != 1 {
		t.Fatalf("same key should keep state, created %d", len(created))
	}
	UpdateRoot(root, widgetFor("b"), owner)
	if len(created) != 2 || !created[0].disposed {
		t.Fatalf("new key should replace state, created %d", len(created))
	}
}

func TestRenderChildrenFollowElements(t *testing.T) {
	owner := NewBuildOwner()
	first, second := newTestBox(), newTestBox()

	root := MountRoot(listWidget{Children: []Widget{leafWidget{box: first}, leafWidget{box: second}}}, owner)
	list := root.RenderObject().(*testList)
	if len(list.children) != 2 || list.children[0] != first || list.children[1] != second {
		t.Fatalf("children = %v", list.children)
	}
	if first.Parent() != list {
		t.Fatal("child should point at its render parent")
	}

	UpdateRoot(root, listWidget{Children: []Widget{leafWidget{}}}, owner)
	if len(list.children) != 1 || list.children[0] != first {
		t.Fatalf("children after shrink = %v", list.children)
	}
	if !second.disposed || second.Parent() != nil {
		t.Fatal("dropped child should be detached and disposed")
	}
}

func TestNestedRebuildResyncsRenderChildren(t *testing.T) {
	owner := NewBuildOwner()
	state := &testState{child: leafWidget{}}
	root := MountRoot(listWidget{Children: []Widget{
		leafWidget{},
		testStatefulWidget{newFn: func() State { return state }},
	}}, owner)
	list := root.RenderObject().(*testList)
	before := list.children[1]

	// Swap the stateful child's subtree for a different widget type.
	state.SetState(func() {
		state.child = testStatelessWidget{buildFn: func(BuildContext) Widget { return leafWidget{} }}
	})
	owner.FlushBuild()

	if len(list.children) != 2 {
		t.Fatalf("children = %d, want 2", len(list.children))
	}
	if list.children[1] == before {
		t.Fatal("render list should pick up the replaced subtree")
	}
}

func TestFindAncestor(t *testing.T) {
	var leafCtx BuildContext
	inner := testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		leafCtx = ctx
		return nil
	}}
	MountRoot(testStatefulWidget{newFn: func() State { return &testState{child: inner} }}, NewBuildOwner())

	found := leafCtx.FindAncestor(func(e Element) bool {
		_, ok := e.(*StatefulElement)
		return ok
	})
	if found == nil {
		t.Fatal("expected to find the stateful ancestor")
	}
	if leafCtx.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", leafCtx.Depth())
	}
}
