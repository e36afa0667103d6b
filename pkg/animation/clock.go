package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. Tests and headless renderers inject
// a manual clock via SetClock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = systemClock{}
)

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it. A nil clock restores system time.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
