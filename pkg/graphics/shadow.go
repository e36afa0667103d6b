package graphics

// BoxShadow describes a blurred drop shadow cast by a box.
//
// BlurRadius controls softness; rasterizers use BlurRadius/2 as the gaussian
// sigma. Spread grows the shadow shape before blurring.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
}

// Sigma returns the blur sigma. Returns 0 for non-positive radii.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// IsVisible reports whether drawing the shadow could change any pixel
// outside the casting shape.
func (s BoxShadow) IsVisible() bool {
	if s.Color.Alpha() == 0 {
		return false
	}
	return s.BlurRadius > 0 || s.Spread > 0 || s.Offset != (Offset{})
}

// NewBoxShadow creates a centred drop shadow with the given color and blur radius.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{Color: color, BlurRadius: blurRadius}
}
