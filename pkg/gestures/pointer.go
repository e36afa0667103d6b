// Package gestures turns raw pointer events into recognized gestures.
package gestures

import (
	"fmt"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// DefaultTouchSlop is the distance a pointer may travel before a tap is
// abandoned, in logical pixels.
const DefaultTouchSlop = 18.0

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown starts a pointer sequence.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports movement of a pressed pointer.
	PointerPhaseMove
	// PointerPhaseUp ends a pointer sequence normally.
	PointerPhaseUp
	// PointerPhaseCancel ends a pointer sequence abnormally.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in root coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}
