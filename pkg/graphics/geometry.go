package graphics

import "math"

// Offset is a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle stored as edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from its top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inflate grows the rectangle by delta on every side. Negative values shrink it.
func (r Rect) Inflate(delta float64) Rect {
	return Rect{Left: r.Left - delta, Top: r.Top - delta, Right: r.Right + delta, Bottom: r.Bottom + delta}
}

// Intersect returns the overlap of two rectangles. The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
}

// Contains reports whether the point lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Radius is an elliptical corner radius.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius returns a radius with equal X and Y.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rectangle with a uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius builds a rounded rectangle, clamping the radius so
// opposite corners never overlap.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	maxX := math.Max(rect.Width()/2, 0)
	maxY := math.Max(rect.Height()/2, 0)
	return RRect{
		Rect: rect,
		Radius: Radius{
			X: math.Min(math.Max(radius.X, 0), maxX),
			Y: math.Min(math.Max(radius.Y, 0), maxY),
		},
	}
}

// Contains reports whether p lies inside the rounded shape.
func (r RRect) Contains(p Offset) bool {
	if !r.Rect.Contains(p) {
		return false
	}
	rx, ry := r.Radius.X, r.Radius.Y
	if rx <= 0 || ry <= 0 {
		return true
	}
	cx := clampRange(p.X, r.Rect.Left+rx, r.Rect.Right-rx)
	cy := clampRange(p.Y, r.Rect.Top+ry, r.Rect.Bottom-ry)
	dx := (p.X - cx) / rx
	dy := (p.Y - cy) / ry
	return dx*dx+dy*dy <= 1
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Min(math.Max(v, lo), hi)
}
