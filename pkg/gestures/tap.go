package gestures

import (
	"math"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// TapGestureRecognizer reports a tap when a pointer goes down and up
// without travelling further than Slop.
//
// The recognizer fires OnTap only after it wins the arena and has seen the
// pointer-up event, in whichever order those arrive.
type TapGestureRecognizer struct {
	OnTap       func()
	OnTapCancel func()
	// Slop is the allowed travel; zero uses DefaultTouchSlop.
	Slop float64

	arena    *GestureArena
	tracking bool
	pointer  int64
	down     graphics.Offset
	accepted bool
	released bool
}

// NewTapGestureRecognizer creates a recognizer that competes in arena.
// A nil arena uses DefaultArena.
func NewTapGestureRecognizer(arena *GestureArena) *TapGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &TapGestureRecognizer{arena: arena}
}

// AddPointer starts tracking a pointer-down event. Additional pointers are
// ignored while one is tracked.
func (r *TapGestureRecognizer) AddPointer(event PointerEvent) {
	if r.tracking {
		return
	}
	r.tracking = true
	r.pointer = event.PointerID
	r.down = event.Position
	r.accepted = false
	r.released = false
	r.arena.Add(event.PointerID, r)
}

// HandleEvent processes move, up and cancel events for the tracked pointer.
func (r *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		if r.exceedsSlop(event.Position) {
			r.giveUp()
		}
	case PointerPhaseUp:
		if r.exceedsSlop(event.Position) {
			r.giveUp()
			return
		}
		r.released = true
		r.maybeFire()
	case PointerPhaseCancel:
		r.giveUp()
	}
}

// AcceptGesture is called by the arena when this recognizer wins.
func (r *TapGestureRecognizer) AcceptGesture(pointer int64) {
	if !r.tracking || pointer != r.pointer {
		return
	}
	r.accepted = true
	r.maybeFire()
}

// RejectGesture is called by the arena when this recognizer loses.
func (r *TapGestureRecognizer) RejectGesture(pointer int64) {
	if !r.tracking || pointer != r.pointer {
		return
	}
	r.reset()
	if r.OnTapCancel != nil {
		r.OnTapCancel()
	}
}

// Dispose stops tracking any pointer.
func (r *TapGestureRecognizer) Dispose() {
	if r.tracking {
		r.arena.Resolve(r.pointer, r, false)
	}
	r.reset()
}

func (r *TapGestureRecognizer) maybeFire() {
	if !r.accepted || !r.released {
		return
	}
	r.reset()
	if r.OnTap != nil {
		r.OnTap()
	}
}

func (r *TapGestureRecognizer) giveUp() {
	pointer := r.pointer
	r.reset()
	if r.OnTapCancel != nil {
		r.OnTapCancel()
	}
	r.arena.Resolve(pointer, r, false)
}

func (r *TapGestureRecognizer) reset() {
	r.tracking = false
	r.accepted = false
	r.released = false
}

func (r *TapGestureRecognizer) exceedsSlop(position graphics.Offset) bool {
	slop := r.Slop
	if slop <= 0 {
		slop = DefaultTouchSlop
	}
	return math.Hypot(position.X-r.down.X, position.Y-r.down.Y) > slop
}
