package layout

import (
	"testing"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

type testRenderBox struct {
	RenderBoxBase
	child       RenderBox
	layoutCalls int
	paintCalls  int
	height      float64
}

func newTestBox(height float64) *testRenderBox {
	box := &testRenderBox{height: height}
	box.SetSelf(box)
	return box
}

func (r *testRenderBox) setChild(child *testRenderBox) {
	r.child = child
	SetParentOnChild(child, r)
}

func (r *testRenderBox) PerformLayout() {
	r.layoutCalls++
	c := r.Constraints()
	if r.child != nil {
		r.child.Layout(c.Loosen(), true)
		r.SetSize(c.Constrain(r.child.Size()))
		return
	}
	r.SetSize(c.Constrain(graphics.Size{Width: 10, Height: r.height}))
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *testRenderBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	return false
}

func TestConstraintsConstrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 0, MaxHeight: Unbounded}
	got := c.Constrain(graphics.Size{Width: 500, Height: 1e6})
	if got.Width != 100 || got.Height != 1e6 {
		t.Fatalf("Constrain = %+v", got)
	}
	if c.HasBoundedHeight() {
		t.Fatal("expected unbounded height")
	}
}

func TestConstraintsDeflateNeverNegative(t *testing.T) {
	c := Tight(graphics.Size{Width: 10, Height: 10}).Deflate(EdgeInsetsAll(8))
	if c.MinWidth != 0 || c.MaxWidth != 0 || c.MinHeight != 0 || c.MaxHeight != 0 {
		t.Fatalf("Deflate = %+v", c)
	}
}

func TestWithUnboundedHeightKeepsWidth(t *testing.T) {
	c := Tight(graphics.Size{Width: 300, Height: 40}).WithUnboundedHeight()
	if c.MinWidth != 300 || c.MaxWidth != 300 {
		t.Fatalf("width changed: %+v", c)
	}
	if c.MinHeight != 0 || c.HasBoundedHeight() {
		t.Fatalf("height still bounded: %+v", c)
	}
}

func TestAlignmentInscribe(t *testing.T) {
	parent := graphics.Size{Width: 100, Height: 50}
	child := graphics.Size{Width: 20, Height: 10}
	tests := []struct {
		align Alignment
		want  graphics.Offset
	}{
		{AlignmentTopLeft, graphics.Offset{}},
		{AlignmentCenter, graphics.Offset{X: 40, Y: 20}},
		{AlignmentTopCenter, graphics.Offset{X: 40, Y: 0}},
		{AlignmentBottomCenter, graphics.Offset{X: 40, Y: 40}},
	}
	for _, tt := range tests {
		if got := tt.align.Inscribe(child, parent); got != tt.want {
			t.Errorf("Inscribe(%+v) = %+v, want %+v", tt.align, got, tt.want)
		}
	}
}

func TestMarkNeedsLayoutStopsAtBoundary(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox(0)
	child := newTestBox(20)
	root.SetOwner(owner)
	child.SetOwner(owner)
	root.setChild(child)

	owner.ScheduleLayout(root)
	owner.FlushLayoutForRoot(root, Tight(graphics.Size{Width: 100, Height: 100}))
	if root.layoutCalls != 1 || child.layoutCalls != 1 {
		t.Fatalf("initial layout calls root=%d child=%d", root.layoutCalls, child.layoutCalls)
	}

	// The root receives tight constraints so it is a boundary; the child
	// reports its size to the root, so a child change relayouts the root.
	child.height = 30
	child.MarkNeedsLayout()
	if !owner.NeedsLayout() {
		t.Fatal("expected pipeline to need layout")
	}
	owner.FlushLayoutForRoot(root, Tight(graphics.Size{Width: 100, Height: 100}))
	if child.layoutCalls != 2 {
		t.Fatalf("child layout calls = %d, want 2", child.layoutCalls)
	}
	if child.Size().Height != 30 {
		t.Fatalf("child height = %v, want 30", child.Size().Height)
	}
}

func TestLayoutSkipsCleanSubtree(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox(0)
	root.SetOwner(owner)
	constraints := Loose(graphics.Size{Width: 50, Height: 50})
	root.Layout(constraints, false)
	root.Layout(constraints, false)
	if root.layoutCalls != 1 {
		t.Fatalf("layout calls = %d, want 1", root.layoutCalls)
	}
}

func TestPostLayoutCallbacksCoalesceByKey(t *testing.T) {
	owner := &PipelineOwner{}
	var got []string
	key := new(int)
	owner.AddPostLayoutCallback(key, func() { got = append(got, "first") })
	owner.AddPostLayoutCallback(nil, func() { got = append(got, "anonymous") })
	owner.AddPostLayoutCallback(key, func() { got = append(got, "latest") })

	if n := owner.FlushPostLayoutCallbacks(); n != 2 {
		t.Fatalf("ran %d callbacks, want 2", n)
	}
	if len(got) != 2 || got[0] != "latest" || got[1] != "anonymous" {
		t.Fatalf("callbacks ran as %v", got)
	}
	if owner.HasPostLayoutCallbacks() {
		t.Fatal("queue should be empty after flush")
	}
}

func TestPostLayoutCallbackQueuedDuringFlushRunsNextTime(t *testing.T) {
	owner := &PipelineOwner{}
	calls := 0
	owner.AddPostLayoutCallback("a", func() {
		calls++
		owner.AddPostLayoutCallback("a", func() { calls++ })
	})
	owner.FlushPostLayoutCallbacks()
	if calls != 1 || !owner.HasPostLayoutCallbacks() {
		t.Fatalf("calls=%d pending=%v", calls, owner.HasPostLayoutCallbacks())
	}
	owner.FlushPostLayoutCallbacks()
	if calls != 2 {
		t.Fatalf("calls=%d, want 2", calls)
	}
}

func TestPaintChildTranslatesAndClearsDirty(t *testing.T) {
	parent := newTestBox(0)
	child := newTestBox(10)
	parent.setChild(child)
	parent.Layout(Loose(graphics.Size{Width: 20, Height: 20}), false)

	recorder := &graphics.PictureRecorder{}
	ctx := &PaintContext{Canvas: recorder.BeginRecording(graphics.Size{Width: 20, Height: 20})}
	ctx.PaintChild(parent, graphics.Offset{X: 3, Y: 4})
	list := recorder.EndRecording()

	if parent.paintCalls != 1 || child.paintCalls != 1 {
		t.Fatalf("paint calls parent=%d child=%d", parent.paintCalls, child.paintCalls)
	}
	if child.NeedsPaint() {
		t.Fatal("child should be clean after painting")
	}
	ops := list.Ops()
	if len(ops) < 2 || ops[1].Kind != graphics.OpTranslate || ops[1].Offset != (graphics.Offset{X: 3, Y: 4}) {
		t.Fatalf("unexpected ops %+v", ops)
	}
}
