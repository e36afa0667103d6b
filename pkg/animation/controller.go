package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the state of an AnimationController.
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
type AnimationStatus int

const (
	// AnimationDismissed means the value rests at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving toward the upper bound.
	AnimationForward
	// AnimationReverse means the value is moving toward the lower bound.
	AnimationReverse
	// AnimationCompleted means the value rests at the upper bound.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives Value from its current position to a target
// over Duration, shaped by Curve. Values are bounded by LowerBound and
// UpperBound (0 and 1 by default).
//
// Always call Dispose when done so the ticker is released.
type AnimationController struct {
	Value      float64
	Duration   time.Duration
	Curve      func(float64) float64
	LowerBound float64
	UpperBound float64

	status     AnimationStatus
	ticker     *Ticker
	target     float64
	startValue float64

	listeners       []listenerEntry[func()]
	statusListeners []listenerEntry[func(AnimationStatus)]
	nextID          int
}

type listenerEntry[F any] struct {
	id int
	fn F
}

// NewAnimationController creates a dismissed controller with a linear curve.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:   duration,
		LowerBound: 0,
		UpperBound: 1,
		Curve:      LinearCurve,
	}
}

// Forward animates from the current value to the upper bound.
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, AnimationForward)
}

// Reverse animates from the current value to the lower bound.
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, AnimationReverse)
}

// AnimateTo animates from the current value to target.
func (c *AnimationController) AnimateTo(target float64) {
	if target >= c.Value {
		c.animateTo(target, AnimationForward)
	} else {
		c.animateTo(target, AnimationReverse)
	}
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.Stop()
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()
	if progress >= 1 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	c.Stop()
	switch {
	case c.Value <= c.LowerBound:
		c.setStatus(AnimationDismissed)
	case c.Value >= c.UpperBound:
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and jumps to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop halts the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether the ticker is running.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener registers fn to run whenever Value changes. Returns an
// unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listenerEntry[func()]{id: id, fn: fn})
	return func() {
		c.listeners = removeListener(c.listeners, id)
	}
}

// AddStatusListener registers fn to run whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextID
	c.nextID++
	c.statusListeners = append(c.statusListeners, listenerEntry[func(AnimationStatus)]{id: id, fn: fn})
	return func() {
		c.statusListeners = removeListener(c.statusListeners, id)
	}
}

func removeListener[F any](entries []listenerEntry[F], id int) []listenerEntry[F] {
	for i, entry := range entries {
		if entry.id == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, entry := range c.statusListeners {
		entry.fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, entry := range c.listeners {
		entry.fn()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
