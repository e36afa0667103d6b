// Package engine drives frames for a mounted widget tree without a platform
// embedder.
//
// Each frame drains the dispatch queue, steps animation tickers, rebuilds
// dirty elements, lays out, delivers post-layout callbacks and records the
// tree into a display list. Post-layout callbacks may dirty the tree again;
// the engine repeats build and layout until the tree is clean or a pass
// limit is reached, so a measurement taken during layout is reflected in
// the same frame.
package engine

import (
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/errors"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/logging"
)

// maxLayoutPasses bounds build/layout repetitions within one frame.
const maxLayoutPasses = 4

// Engine owns a widget tree and produces frames for it.
//
// Frame, HandlePointer and Mount must be called from one goroutine.
// Dispatch may be called from any goroutine.
type Engine struct {
	frameLock  sync.Mutex
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	size       graphics.Size

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	pointerHandlers  map[int64][]layout.PointerHandler
	pointerPositions map[int64]graphics.Offset

	recorder  graphics.PictureRecorder
	lastFrame *graphics.DisplayList
	frames    int
	frameLog  frameLog
	log       *logging.Logger
}

// New returns an engine that lays out its root with tight constraints of
// the given size.
func New(size graphics.Size) *Engine {
	return &Engine{
		buildOwner:       core.NewBuildOwner(),
		size:             size,
		pointerHandlers:  make(map[int64][]layout.PointerHandler),
		pointerPositions: make(map[int64]graphics.Offset),
		log:              logging.Default().WithComponent("engine"),
	}
}

// SetSize changes the surface size. The next frame lays out again.
func (e *Engine) SetSize(size graphics.Size) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.size == size {
		return
	}
	e.size = size
	e.scheduleRootLayoutLocked()
}

// Size returns the surface size.
func (e *Engine) Size() graphics.Size {
	return e.size
}

// Mount replaces the root widget. The widget is built immediately; layout
// and paint happen on the next frame.
func (e *Engine) Mount(widget core.Widget) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.root == nil {
		e.root = core.MountRoot(widget, e.buildOwner)
	} else {
		e.root = core.UpdateRoot(e.root, widget, e.buildOwner)
	}
	e.syncRootRenderLocked()
}

// Unmount tears the tree down, disposing states and render objects.
func (e *Engine) Unmount() {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.root != nil {
		e.root.Unmount()
	}
	e.root = nil
	e.rootRender = nil
	clear(e.pointerHandlers)
	clear(e.pointerPositions)
}

func (e *Engine) syncRootRenderLocked() {
	var render layout.RenderObject
	if e.root != nil {
		render = e.root.RenderObject()
	}
	if render == e.rootRender {
		return
	}
	e.rootRender = render
	e.scheduleRootLayoutLocked()
}

func (e *Engine) scheduleRootLayoutLocked() {
	if e.rootRender == nil {
		return
	}
	e.rootRender.MarkNeedsLayout()
	pipeline := e.buildOwner.Pipeline()
	pipeline.ScheduleLayout(e.rootRender)
	pipeline.SchedulePaint()
}

// Dispatch queues fn to run at the start of the next frame.
func (e *Engine) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, fn)
	e.dispatchMu.Unlock()
}

func (e *Engine) drainDispatchQueue() []func() {
	e.dispatchMu.Lock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	e.dispatchMu.Unlock()
	return callbacks
}

func (e *Engine) hasDispatches() bool {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	return len(e.dispatchQueue) > 0
}

// NeedsFrame reports whether a frame would change anything: pending
// dispatches, running animations, dirty elements or pending layout, paint
// or post-layout callbacks.
func (e *Engine) NeedsFrame() bool {
	return e.hasDispatches() || animation.HasActiveTickers() || e.buildOwner.NeedsWork()
}

// Frame runs one frame and returns its display list. A panic anywhere in
// the frame is reported to the error handler and returned as a
// [errors.DriftError] of kind KindPanic.
func (e *Engine) Frame() (list *graphics.DisplayList, err error) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	defer func() {
		if r := recover(); r != nil {
			stack := errors.CaptureStack()
			errors.ReportPanic(&errors.PanicError{Op: "engine.Frame", Value: r, StackTrace: stack})
			err = &errors.DriftError{
				Op:         "engine.Frame",
				Kind:       errors.KindPanic,
				Err:        fmt.Errorf("%v", r),
				StackTrace: stack,
				Timestamp:  time.Now(),
			}
		}
	}()

	stats := FrameStats{}
	start := time.Now()

	for _, callback := range e.drainDispatchQueue() {
		callback()
	}
	animation.StepTickers()

	pipeline := e.buildOwner.Pipeline()
	for pass := 0; pass < maxLayoutPasses; pass++ {
		e.buildOwner.FlushBuild()
		e.syncRootRenderLocked()
		if e.rootRender == nil {
			break
		}
		pipeline.FlushLayoutForRoot(e.rootRender, layout.Tight(e.size))
		stats.LayoutPasses++
		stats.Callbacks += pipeline.FlushPostLayoutCallbacks()

		if !e.buildOwner.HasDirtyElements() && !pipeline.NeedsLayout() && !pipeline.HasPostLayoutCallbacks() {
			break
		}
	}

	canvas := e.recorder.BeginRecording(e.size)
	if e.rootRender != nil {
		ctx := &layout.PaintContext{Canvas: canvas}
		ctx.PaintChild(e.rootRender, graphics.Offset{})
	}
	e.lastFrame = e.recorder.EndRecording()
	pipeline.ClearNeedsPaint()

	e.frames++
	stats.Frame = e.frames
	stats.Elements = countElements(e.root)
	stats.RenderObjects = countRenderObjects(e.rootRender)
	stats.Ops = len(e.lastFrame.Ops())
	stats.Pending = e.NeedsFrame()
	stats.Duration = time.Since(start)
	e.log.Debug("frame", "frame", stats.Frame, "passes", stats.LayoutPasses, "callbacks", stats.Callbacks, "pending", stats.Pending)
	e.frameLog.add(stats)

	return e.lastFrame, nil
}

// ErrNotSettled is wrapped by Settle when the frame budget runs out while
// work is still pending.
var ErrNotSettled = stderrors.New("engine: frames still pending")

// Settle runs frames until nothing is pending, calling advance with step
// between frames so animations make progress. It gives up after maxFrames.
func (e *Engine) Settle(step time.Duration, maxFrames int, advance func(time.Duration)) error {
	for i := 0; i < maxFrames; i++ {
		if _, err := e.Frame(); err != nil {
			return err
		}
		if !e.NeedsFrame() {
			return nil
		}
		if advance != nil {
			advance(step)
		}
	}
	e.log.Warn("settle budget exhausted", "frames", maxFrames, "step", step)
	return fmt.Errorf("settle after %d frames: %w", maxFrames, ErrNotSettled)
}

// Root returns the root element, or nil before Mount.
func (e *Engine) Root() core.Element {
	return e.root
}

// RootRender returns the root render object, or nil before Mount.
func (e *Engine) RootRender() layout.RenderObject {
	return e.rootRender
}

// LastFrame returns the display list of the most recent frame.
func (e *Engine) LastFrame() *graphics.DisplayList {
	return e.lastFrame
}

// FrameCount returns the number of frames produced.
func (e *Engine) FrameCount() int {
	return e.frames
}

// Frames returns statistics for the most recent frames, oldest first.
func (e *Engine) Frames() []FrameStats {
	return e.frameLog.snapshot()
}
