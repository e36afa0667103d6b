package expandable

import (
	"time"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

// Group stacks cards vertically with uniform styling. Each card expands on
// its own; opening one never closes another.
type Group struct {
	core.StatelessBase

	headerSize graphics.Size
	cardSize   graphics.Size
	headers    []core.Widget
	bodies     []core.Widget

	spacing    float64
	background graphics.Color
	style      Style
	transition Transition
	onToggle   func(index int, expanded bool)
	key        any
}

// NewGroup pairs headers with bodies: a single header is shared by every
// body, otherwise the counts must match. A mismatch returns a
// [*ConfigError] and no group.
func NewGroup(headerSize, cardSize graphics.Size, headers, bodies []core.Widget) (Group, error) {
	paired, err := Pair(headers, bodies)
	if err != nil {
		if cfg, ok := err.(*ConfigError); ok {
			cfg.Op = "expandable.NewGroup"
		}
		return Group{}, err
	}
	return Group{
		headerSize: headerSize,
		cardSize:   cardSize,
		headers:    paired,
		bodies:     append([]core.Widget(nil), bodies...),
		spacing:    DefaultVerticalSpacing,
		background: graphics.ColorTransparent,
		style:      DefaultStyle(),
		transition: DefaultTransition(),
	}, nil
}

// NewSharedHeaderGroup builds a group whose cards all show the same header.
func NewSharedHeaderGroup(headerSize, cardSize graphics.Size, header core.Widget, bodies ...core.Widget) (Group, error) {
	return NewGroup(headerSize, cardSize, []core.Widget{header}, bodies)
}

// VerticalSpacing sets the gap between cards. Each row is padded by half of
// it above and below.
func (g Group) VerticalSpacing(spacing float64) Group {
	g.spacing = max(spacing, 0)
	return g
}

// BackgroundColor sets the fill behind the whole group.
func (g Group) BackgroundColor(color graphics.Color) Group {
	g.background = color
	return g
}

// HeadersBackgroundColor sets the header fill of every card.
func (g Group) HeadersBackgroundColor(color graphics.Color) Group {
	g.style.HeaderBackground = color
	return g
}

// CardBackgroundColor sets the card fill of every card.
func (g Group) CardBackgroundColor(color graphics.Color) Group {
	g.style.CardBackground = color
	return g
}

// HeaderCornerRadius sets the header radius of every card.
func (g Group) HeaderCornerRadius(radius float64) Group {
	g.style.HeaderCornerRadius = max(radius, 0)
	return g
}

// CardCornerRadius sets the card radius of every card.
func (g Group) CardCornerRadius(radius float64) Group {
	g.style.CardCornerRadius = max(radius, 0)
	return g
}

// Shadow sets the shadow of every card.
func (g Group) Shadow(radius float64, color graphics.Color, x, y float64) Group {
	g.style.Shadow = ShadowStyle{Radius: radius, Color: color, X: x, Y: y}
	return g
}

// DynamicCardHeight sizes every card to its content.
func (g Group) DynamicCardHeight() Group {
	g.cardSize.Height = -1
	return g
}

// OnToggle registers a callback receiving the index of the toggled card.
func (g Group) OnToggle(fn func(index int, expanded bool)) Group {
	g.onToggle = fn
	return g
}

// Transition sets the animation timing of every card.
func (g Group) Transition(duration time.Duration, curve func(float64) float64) Group {
	g.transition = Transition{Duration: duration, Curve: curve}
	return g
}

// WithKey sets the identity used to match the group across rebuilds.
func (g Group) WithKey(key any) Group {
	g.key = key
	return g
}

// Key returns the key set with WithKey.
func (g Group) Key() any { return g.key }

// Len returns the number of cards.
func (g Group) Len() int { return len(g.bodies) }

// Spacing returns the vertical gap between cards.
func (g Group) Spacing() float64 { return g.spacing }

// Cards returns the styled members in index order. Cards are keyed by
// index so each keeps its state when the group rebuilds.
func (g Group) Cards() []Card {
	cards := make([]Card, len(g.bodies))
	for i, body := range g.bodies {
		card := NewCard(g.headerSize, g.cardSize, g.headers[i], body).WithKey(i)
		card.style = g.style
		card.transition = g.transition
		if g.onToggle != nil {
			index := i
			card.onToggle = func(expanded bool) { g.onToggle(index, expanded) }
		}
		cards[i] = card
	}
	return cards
}

func (g Group) Build(ctx core.BuildContext) core.Widget {
	cards := g.Cards()
	rows := make([]core.Widget, len(cards))
	for i, card := range cards {
		rows[i] = widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(0, g.spacing/2),
			Child: widgets.Align{
				Alignment: layout.AlignmentTopCenter,
				Child:     card,
			},
		}
	}
	return widgets.DecoratedBox{
		Color: g.background,
		Child: widgets.Column{
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			Children:           rows,
		},
	}
}
