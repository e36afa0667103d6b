package layout

import "github.com/tomortec/drift-expandable/pkg/graphics"

// EdgeInsets is empty space on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns insets with horizontal values on the left and
// right and vertical values on the top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Alignment positions a child inside a parent. X and Y run from -1 (left or
// top) to 1 (right or bottom).
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
)

// Inscribe returns the offset of a child of size child inside a parent of size parent.
func (a Alignment) Inscribe(child, parent graphics.Size) graphics.Offset {
	dx := (parent.Width - child.Width) / 2
	dy := (parent.Height - child.Height) / 2
	return graphics.Offset{X: dx + a.X*dx, Y: dy + a.Y*dy}
}
