package animation

import "github.com/tomortec/drift-expandable/pkg/graphics"

// Tween interpolates between Begin and End for a progress value t in [0, 1].
type Tween[T any] struct {
	Begin T
	End   T
	Lerp  func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	channel := func(shift uint) uint32 {
		from := float64((uint32(a) >> shift) & 0xFF)
		to := float64((uint32(b) >> shift) & 0xFF)
		return uint32(LerpFloat64(from, to, t)+0.5) & 0xFF
	}
	return graphics.Color(channel(24)<<24 | channel(16)<<16 | channel(8)<<8 | channel(0))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for colors.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
