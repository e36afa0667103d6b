package gallery

import (
	"errors"
	"fmt"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/expandable"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

// DefaultWidth is the canvas width used when neither the document nor the
// caller sets one.
const DefaultWidth = 390.0

const defaultSectionSpacing = 24.0

var textStyle = graphics.TextStyle{Color: graphics.ColorBlack, LineSpacing: 2}

// Build turns the document into a column of sections.
// Group pairing errors are returned unchanged so callers can match
// [*expandable.ConfigError].
func (d *Document) Build() (core.Widget, error) {
	spacing := defaultSectionSpacing
	if d.Spacing != nil {
		spacing = max(*d.Spacing, 0)
	}
	rows := make([]core.Widget, 0, len(d.Sections)*2)
	for i, s := range d.Sections {
		w, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("sections[%d] %q: %w", i, s.Title, err)
		}
		if s.Title != "" {
			rows = append(rows, widgets.Text{Content: s.Title, Style: textStyle})
		}
		rows = append(rows, w)
	}
	background, _ := parseColorOr(d.Background, graphics.ColorTransparent)
	return widgets.DecoratedBox{
		Color: background,
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(0, spacing/2),
			Child: widgets.Column{
				Spacing:            spacing,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				Children:           rows,
			},
		},
	}, nil
}

// Build returns the section's card or group widget.
func (s Section) Build() (core.Widget, error) {
	switch {
	case s.Card != nil:
		card, err := s.Card.Build()
		if err != nil {
			return nil, err
		}
		return card, nil
	case s.Group != nil:
		group, err := s.Group.Build()
		if err != nil {
			return nil, err
		}
		return group, nil
	default:
		return nil, errors.New("section needs a card or a group")
	}
}

// Build returns the configured card.
func (c *CardSpec) Build() (expandable.Card, error) {
	card := expandable.NewCard(c.HeaderSize.Size(), c.CardSize.Size(), label(c.Header), body(c.Body))
	style, err := c.StyleSpec.resolve()
	if err != nil {
		return card, err
	}
	card = style.applyCard(card)
	if c.Expanded {
		card = card.InitiallyExpanded()
	}
	return card, nil
}

// Build returns the configured group.
func (g *GroupSpec) Build() (expandable.Group, error) {
	headers := make([]core.Widget, len(g.Headers))
	for i, h := range g.Headers {
		headers[i] = label(h)
	}
	bodies := make([]core.Widget, len(g.Bodies))
	for i, b := range g.Bodies {
		bodies[i] = body(b)
	}
	group, err := expandable.NewGroup(g.HeaderSize.Size(), g.CardSize.Size(), headers, bodies)
	if err != nil {
		return group, err
	}
	style, err := g.StyleSpec.resolve()
	if err != nil {
		return group, err
	}
	group = style.applyGroup(group)
	if g.Spacing != nil {
		group = group.VerticalSpacing(*g.Spacing)
	}
	if g.Background != "" {
		background, err := parseColorOr(g.Background, graphics.ColorTransparent)
		if err != nil {
			return group, fmt.Errorf("background: %w", err)
		}
		group = group.BackgroundColor(background)
	}
	return group, nil
}

// resolvedStyle is a StyleSpec with colors and timing parsed. Nil fields
// keep the library defaults.
type resolvedStyle struct {
	headerColor  *graphics.Color
	cardColor    *graphics.Color
	headerRadius *float64
	cardRadius   *float64
	shadow       *expandable.ShadowStyle
	dynamic      bool
	timing       *transition
}

func (s StyleSpec) resolve() (resolvedStyle, error) {
	out := resolvedStyle{
		headerRadius: s.HeaderRadius,
		cardRadius:   s.CardRadius,
		dynamic:      s.Dynamic,
	}
	if s.HeaderColor != "" {
		c, err := graphics.ParseColor(s.HeaderColor)
		if err != nil {
			return out, fmt.Errorf("headerColor: %w", err)
		}
		out.headerColor = &c
	}
	if s.CardColor != "" {
		c, err := graphics.ParseColor(s.CardColor)
		if err != nil {
			return out, fmt.Errorf("cardColor: %w", err)
		}
		out.cardColor = &c
	}
	if s.Shadow != nil {
		color, err := parseColorOr(s.Shadow.Color, graphics.ColorGray)
		if err != nil {
			return out, fmt.Errorf("shadow.color: %w", err)
		}
		out.shadow = &expandable.ShadowStyle{Radius: s.Shadow.Radius, Color: color, X: s.Shadow.X, Y: s.Shadow.Y}
	}
	timing, err := s.transition()
	if err != nil {
		return out, err
	}
	out.timing = timing
	return out, nil
}

func (r resolvedStyle) applyCard(card expandable.Card) expandable.Card {
	if r.headerColor != nil {
		card = card.HeaderBackgroundColor(*r.headerColor)
	}
	if r.cardColor != nil {
		card = card.CardBackgroundColor(*r.cardColor)
	}
	if r.headerRadius != nil {
		card = card.HeaderCornerRadius(*r.headerRadius)
	}
	if r.cardRadius != nil {
		card = card.CardCornerRadius(*r.cardRadius)
	}
	if r.shadow != nil {
		card = card.Shadow(r.shadow.Radius, r.shadow.Color, r.shadow.X, r.shadow.Y)
	}
	if r.dynamic {
		card = card.DynamicHeight()
	}
	if r.timing != nil {
		card = card.Transition(r.timing.duration, r.timing.curve)
	}
	return card
}

func (r resolvedStyle) applyGroup(group expandable.Group) expandable.Group {
	if r.headerColor != nil {
		group = group.HeadersBackgroundColor(*r.headerColor)
	}
	if r.cardColor != nil {
		group = group.CardBackgroundColor(*r.cardColor)
	}
	if r.headerRadius != nil {
		group = group.HeaderCornerRadius(*r.headerRadius)
	}
	if r.cardRadius != nil {
		group = group.CardCornerRadius(*r.cardRadius)
	}
	if r.shadow != nil {
		group = group.Shadow(r.shadow.Radius, r.shadow.Color, r.shadow.X, r.shadow.Y)
	}
	if r.dynamic {
		group = group.DynamicCardHeight()
	}
	if r.timing != nil {
		group = group.Transition(r.timing.duration, r.timing.curve)
	}
	return group
}

func label(s string) core.Widget {
	return widgets.Center{Child: widgets.Text{Content: s, Style: textStyle}}
}

// body pads wrapped text so dynamic cards have something to measure.
func body(s string) core.Widget {
	return widgets.Padding{
		Padding: layout.EdgeInsetsAll(12),
		Child:   widgets.Text{Content: s, Style: textStyle, Wrap: true},
	}
}

// CardStates returns the mounted cards below root in tree order.
func CardStates(root core.Element) []expandable.CardState {
	var states []expandable.CardState
	var walk func(e core.Element) bool
	walk = func(e core.Element) bool {
		if state := expandable.StateOf(e); state != nil {
			states = append(states, state)
		}
		e.VisitChildren(walk)
		return true
	}
	if root != nil {
		walk(root)
	}
	return states
}
