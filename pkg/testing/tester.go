package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/engine"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
	// FrameDuration is how far PumpAndSettle advances the clock per frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester drives a widget tree through the same frame phases as the
// engine, with a fake clock so animations advance only when the test says
// so.
type WidgetTester struct {
	engine    *engine.Engine
	clock     *FakeClock
	prevClock animation.Clock
	size      graphics.Size
	mounted   bool
}

// NewWidgetTester creates a tester with an 800x600 surface and installs its
// fake clock. Call Cleanup when done, or use NewWidgetTesterWithT.
func NewWidgetTester() *WidgetTester {
	size := graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	t := &WidgetTester{
		engine: engine.New(size),
		clock:  NewFakeClock(),
		size:   size,
	}
	t.prevClock = animation.SetClock(t.clock)
	return t
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock.
func (t *WidgetTester) Cleanup() {
	t.engine.Unmount()
	t.mounted = false
	animation.SetClock(t.prevClock)
}

// SetSize sets the logical surface size.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
	t.engine.SetSize(size)
}

// Size returns the logical surface size.
func (t *WidgetTester) Size() graphics.Size {
	return t.size
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// Engine returns the frame driver behind the tester.
func (t *WidgetTester) Engine() *engine.Engine {
	return t.engine
}

// PumpWidget mounts a fresh tree for widget and runs one frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.mounted {
		t.engine.Unmount()
	}
	t.engine.Mount(widget)
	t.mounted = true
	return t.Pump()
}

// UpdateWidget rebuilds the existing tree with widget, keeping state where
// widgets match, and runs one frame.
func (t *WidgetTester) UpdateWidget(widget core.Widget) error {
	t.engine.Mount(widget)
	t.mounted = true
	return t.Pump()
}

// Pump runs a single frame without moving the clock.
func (t *WidgetTester) Pump() error {
	_, err := t.engine.Frame()
	return err
}

// PumpFor advances the clock by d and runs a frame.
func (t *WidgetTester) PumpFor(d time.Duration) error {
	t.clock.Advance(d)
	return t.Pump()
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.engine.NeedsFrame() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.engine.Dispatch(fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.engine.Root()
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.engine.RootRender()
}

// LastFrame returns the display list recorded by the most recent pump.
func (t *WidgetTester) LastFrame() *graphics.DisplayList {
	return t.engine.LastFrame()
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.engine.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(root),
		finder:   finder,
	}
}

// extractRenderObject returns the render object of an element's subtree.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	return e.RenderObject()
}
