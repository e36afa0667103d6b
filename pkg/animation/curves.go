package animation

import "math"

// A curve maps linear progress t in [0, 1] to eased progress. Controllers
// take one in their Curve field; ImplicitValue takes one at construction.

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 { return t }

var (
	// Ease is CSS ease.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn is CSS ease-in.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut is CSS ease-out.
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOut is the material standard curve and the default for card
	// height changes.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CurveByName returns the curve called name: linear, ease, easeIn, easeOut
// or easeInOut.
func CurveByName(name string) (func(float64) float64, bool) {
	switch name {
	case "linear":
		return LinearCurve, true
	case "ease":
		return Ease, true
	case "easeIn":
		return EaseIn, true
	case "easeOut":
		return EaseOut, true
	case "easeInOut":
		return EaseInOut, true
	}
	return nil, false
}

const bezierEpsilon = 1e-7

// bezier is a unit cubic through (0,0) and (1,1) with control points
// (x1,y1) and (x2,y2).
type bezier struct {
	x1, y1, x2, y2 float64
}

// CubicBezier returns the easing function of CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	b := bezier{x1: x1, y1: y1, x2: x2, y2: y2}
	return b.at
}

func (b bezier) at(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return polynomial(b.y1, b.y2, b.parameterFor(t))
}

// parameterFor finds u with x(u) = t. Newton steps usually land within a
// few iterations; bisection takes over when the slope flattens.
func (b bezier) parameterFor(t float64) float64 {
	u := t
	for i := 0; i < 8; i++ {
		dx := polynomial(b.x1, b.x2, u) - t
		if math.Abs(dx) < bezierEpsilon {
			return clamp01(u)
		}
		slope := derivative(b.x1, b.x2, u)
		if math.Abs(slope) < bezierEpsilon {
			break
		}
		u -= dx / slope
	}

	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for i := 0; i < 12; i++ {
		dx := polynomial(b.x1, b.x2, u) - t
		if math.Abs(dx) < bezierEpsilon {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// polynomial evaluates one coordinate of the curve at u given its two
// control values.
func polynomial(c1, c2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*c1 + 3*v*u*u*c2 + u*u*u
}

func derivative(c1, c2, u float64) float64 {
	v := 1 - u
	return 3*v*v*c1 + 6*v*u*(c2-c1) + 3*u*u*(1-c2)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
