package engine

import (
	"github.com/tomortec/drift-expandable/pkg/errors"
	"github.com/tomortec/drift-expandable/pkg/gestures"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// PointerPhase is the stage of a raw pointer event fed to the engine.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is a raw pointer sample in surface coordinates.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	X, Y      float64
}

// HitTest returns the render objects under position, deepest first.
func (e *Engine) HitTest(position graphics.Offset) []layout.RenderObject {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.rootRender == nil {
		return nil
	}
	result := &layout.HitTestResult{}
	e.rootRender.HitTest(position, result)
	return result.Entries
}

// HandlePointer routes a pointer event to the handlers hit by its down
// event. Handlers found on down keep receiving the pointer until up or
// cancel, wherever it moves. Tap recognizers compete in
// [gestures.DefaultArena]: the arena closes after down and is swept after
// up.
func (e *Engine) HandlePointer(event PointerEvent) {
	defer errors.Recover("engine.HandlePointer")

	pointerID := event.PointerID
	position := graphics.Offset{X: event.X, Y: event.Y}
	var handlers []layout.PointerHandler
	delta := graphics.Offset{}

	e.frameLock.Lock()
	if e.rootRender == nil {
		e.frameLock.Unlock()
		return
	}
	if event.Phase != PointerPhaseDown {
		if last, ok := e.pointerPositions[pointerID]; ok {
			delta = graphics.Offset{X: position.X - last.X, Y: position.Y - last.Y}
		}
	}
	e.pointerPositions[pointerID] = position

	if event.Phase == PointerPhaseDown {
		result := &layout.HitTestResult{}
		if e.rootRender.HitTest(position, result) {
			handlers = collectPointerHandlers(result.Entries)
			if len(handlers) > 0 {
				e.pointerHandlers[pointerID] = handlers
			}
		}
	} else {
		handlers = e.pointerHandlers[pointerID]
	}
	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		delete(e.pointerHandlers, pointerID)
		delete(e.pointerPositions, pointerID)
	}
	e.frameLock.Unlock()

	if len(handlers) == 0 {
		return
	}

	gestureEvent := gestures.PointerEvent{
		PointerID: pointerID,
		Position:  position,
		Delta:     delta,
		Phase:     convertPointerPhase(event.Phase),
	}
	for _, handler := range handlers {
		handler.HandlePointer(gestureEvent)
	}

	switch event.Phase {
	case PointerPhaseDown:
		gestures.DefaultArena.Close(pointerID)
	case PointerPhaseUp, PointerPhaseCancel:
		gestures.DefaultArena.Sweep(pointerID)
	}
}

// Tap sends a down and an up at position with the given pointer id.
func (e *Engine) Tap(pointerID int64, position graphics.Offset) {
	e.HandlePointer(PointerEvent{PointerID: pointerID, Phase: PointerPhaseDown, X: position.X, Y: position.Y})
	e.HandlePointer(PointerEvent{PointerID: pointerID, Phase: PointerPhaseUp, X: position.X, Y: position.Y})
}

func convertPointerPhase(phase PointerPhase) gestures.PointerPhase {
	switch phase {
	case PointerPhaseDown:
		return gestures.PointerPhaseDown
	case PointerPhaseMove:
		return gestures.PointerPhaseMove
	case PointerPhaseUp:
		return gestures.PointerPhaseUp
	default:
		return gestures.PointerPhaseCancel
	}
}

// collectPointerHandlers keeps hit order and drops duplicates.
func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		handler, ok := entry.(layout.PointerHandler)
		if !ok {
			continue
		}
		if _, exists := seen[handler]; exists {
			continue
		}
		seen[handler] = struct{}{}
		handlers = append(handlers, handler)
	}
	return handlers
}
