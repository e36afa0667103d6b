package expandable

import (
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// Default styling, shared by cards and groups.
const (
	DefaultCornerRadius    = 12.0
	DefaultShadowRadius    = 6.0
	DefaultVerticalSpacing = 10.0
	DefaultDuration        = 350 * time.Millisecond
)

// ShadowStyle is the drop shadow cast by the header and the card.
type ShadowStyle struct {
	Radius float64
	Color  graphics.Color
	X      float64
	Y      float64
}

// BoxShadow converts the style for painting, or returns nil when the shadow
// would not be visible.
func (s ShadowStyle) BoxShadow() *graphics.BoxShadow {
	shadow := graphics.BoxShadow{
		Color:      s.Color,
		Offset:     graphics.Offset{X: s.X, Y: s.Y},
		BlurRadius: max(s.Radius, 0),
	}
	if !shadow.IsVisible() {
		return nil
	}
	return &shadow
}

// Style is the visual configuration of a card.
type Style struct {
	HeaderBackground   graphics.Color
	CardBackground     graphics.Color
	HeaderCornerRadius float64
	CardCornerRadius   float64
	Shadow             ShadowStyle
}

// DefaultStyle returns white backgrounds, 12pt corners and a 6pt gray
// shadow.
func DefaultStyle() Style {
	return Style{
		HeaderBackground:   graphics.ColorWhite,
		CardBackground:     graphics.ColorWhite,
		HeaderCornerRadius: DefaultCornerRadius,
		CardCornerRadius:   DefaultCornerRadius,
		Shadow: ShadowStyle{
			Radius: DefaultShadowRadius,
			Color:  graphics.ColorGray,
		},
	}
}

// Overlap is how far the card region reaches up under the header: the sum
// of both corner radii, so the header's rounded bottom sits over card
// color instead of a gap.
func (s Style) Overlap() float64 {
	return max(s.HeaderCornerRadius, 0) + max(s.CardCornerRadius, 0)
}

// Transition is the timing of the expand and collapse animation.
type Transition struct {
	Duration time.Duration
	// Curve eases the animation; nil is linear.
	Curve func(float64) float64
}

// DefaultTransition returns a 350ms ease-in-out transition.
func DefaultTransition() Transition {
	return Transition{Duration: DefaultDuration, Curve: animation.EaseInOut}
}
