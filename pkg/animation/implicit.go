package animation

import "time"

// ImplicitValue is a scalar that animates toward the last target it was
// given.
//
// Setting a new target while an animation is in flight retargets: the next
// segment starts from the value currently displayed, never from the previous
// segment's start. This is the tween-from-current pattern of implicit
// animation widgets, packaged for state objects that animate more than one
// property with the same timing.
type ImplicitValue struct {
	controller *AnimationController
	tween      *Tween[float64]
	target     float64
}

// NewImplicitValue creates a value resting at initial. A nil curve is linear.
func NewImplicitValue(initial float64, duration time.Duration, curve func(float64) float64) *ImplicitValue {
	controller := NewAnimationController(duration)
	if curve != nil {
		controller.Curve = curve
	}
	return &ImplicitValue{controller: controller, target: initial}
}

// Value returns the currently displayed value.
func (v *ImplicitValue) Value() float64 {
	if v.tween == nil || v.controller.Status() == AnimationCompleted {
		return v.target
	}
	return v.tween.Transform(v.controller)
}

// Target returns the value the animation is heading to.
func (v *ImplicitValue) Target() float64 {
	return v.target
}

// Begin returns the value the current segment started from. When resting it
// equals Target.
func (v *ImplicitValue) Begin() float64 {
	if v.tween == nil || !v.IsAnimating() {
		return v.target
	}
	return v.tween.Begin
}

// SetTarget starts animating from the displayed value to target. It returns
// false, and leaves any running animation alone, when target is unchanged.
// A target equal to the displayed value stops the value there.
func (v *ImplicitValue) SetTarget(target float64) bool {
	if target == v.target {
		return false
	}
	current := v.Value()
	if current == target {
		v.Jump(target)
		return true
	}
	v.target = target
	v.tween = TweenFloat64(current, target)
	v.controller.Reset()
	v.controller.Forward()
	return true
}

// Jump moves to target without animating.
func (v *ImplicitValue) Jump(target float64) {
	v.controller.Stop()
	v.tween = nil
	v.target = target
	v.controller.Value = v.controller.UpperBound
	v.controller.notifyListeners()
}

// SetTiming changes the duration and curve. A running segment picks up the
// change on its next tick. A nil curve is linear.
func (v *ImplicitValue) SetTiming(duration time.Duration, curve func(float64) float64) {
	v.controller.Duration = duration
	if curve == nil {
		curve = LinearCurve
	}
	v.controller.Curve = curve
}

// IsAnimating reports whether a segment is in flight.
func (v *ImplicitValue) IsAnimating() bool {
	return v.controller.IsAnimating()
}

// AddListener registers fn to run on every animation tick. Returns an
// unsubscribe function.
func (v *ImplicitValue) AddListener(fn func()) func() {
	return v.controller.AddListener(fn)
}

// Dispose stops the animation and releases the ticker.
func (v *ImplicitValue) Dispose() {
	v.controller.Dispose()
}
