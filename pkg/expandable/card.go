package expandable

import (
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/logging"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

// Card is a header that expands to reveal a card underneath it when tapped.
//
// The card region slides out from under the header: it starts
// HeaderCornerRadius+CardCornerRadius above the header's bottom edge, and a
// strip of card color fills that overlap so the header's rounded bottom
// corners sit over the card instead of a gap. Both the unit height and the
// card region height animate; retargeting mid-flight continues from the
// displayed height.
//
// Setters return a modified copy and compose in any order:
//
//	expandable.NewCard(
//	    graphics.Size{Width: 300, Height: 50},
//	    graphics.Size{Width: 300, Height: 200},
//	    widgets.Text{Content: "Tap me"},
//	    body,
//	).
//	    HeaderBackgroundColor(graphics.ColorCyan).
//	    DynamicHeight().
//	    Shadow(0, graphics.ColorGray, 0, 0)
type Card struct {
	core.StatefulBase

	headerSize graphics.Size
	cardSize   graphics.Size
	header     core.Widget
	content    core.Widget

	style             Style
	transition        Transition
	onToggle          func(expanded bool)
	controller        *Controller
	initiallyExpanded bool
	key               any
}

// NewCard returns a collapsed card with the default style. A negative
// cardSize.Height selects dynamic height.
func NewCard(headerSize, cardSize graphics.Size, header, content core.Widget) Card {
	return Card{
		headerSize: headerSize,
		cardSize:   cardSize,
		header:     header,
		content:    content,
		style:      DefaultStyle(),
		transition: DefaultTransition(),
	}
}

// HeaderBackgroundColor sets the fill behind the header.
func (c Card) HeaderBackgroundColor(color graphics.Color) Card {
	c.style.HeaderBackground = color
	return c
}

// CardBackgroundColor sets the fill behind the card content and the
// overlap strip.
func (c Card) CardBackgroundColor(color graphics.Color) Card {
	c.style.CardBackground = color
	return c
}

// HeaderCornerRadius sets the header's corner radius. Negative values are
// treated as zero.
func (c Card) HeaderCornerRadius(radius float64) Card {
	c.style.HeaderCornerRadius = max(radius, 0)
	return c
}

// CardCornerRadius sets the card's corner radius. Negative values are
// treated as zero.
func (c Card) CardCornerRadius(radius float64) Card {
	c.style.CardCornerRadius = max(radius, 0)
	return c
}

// Shadow sets the shadow cast by the unit. A zero radius with zero offset
// removes it.
func (c Card) Shadow(radius float64, color graphics.Color, x, y float64) Card {
	c.style.Shadow = ShadowStyle{Radius: radius, Color: color, X: x, Y: y}
	return c
}

// DynamicHeight makes the card as tall as its content, as measured after
// layout. Until the first measurement it uses [PlaceholderContentHeight].
func (c Card) DynamicHeight() Card {
	c.cardSize.Height = -1
	return c
}

// OnToggle registers a callback invoked after every expand or collapse.
func (c Card) OnToggle(fn func(expanded bool)) Card {
	c.onToggle = fn
	return c
}

// Transition sets the animation timing. A nil curve is linear.
func (c Card) Transition(duration time.Duration, curve func(float64) float64) Card {
	c.transition = Transition{Duration: duration, Curve: curve}
	return c
}

// WithKey sets the identity used to match the card across rebuilds.
func (c Card) WithKey(key any) Card {
	c.key = key
	return c
}

// WithController attaches an external controller.
func (c Card) WithController(controller *Controller) Card {
	c.controller = controller
	return c
}

// InitiallyExpanded mounts the card open, without animating.
func (c Card) InitiallyExpanded() Card {
	c.initiallyExpanded = true
	return c
}

// Key returns the key set with WithKey.
func (c Card) Key() any { return c.key }

// HeaderSize returns the header footprint.
func (c Card) HeaderSize() graphics.Size { return c.headerSize }

// CardSize returns the card footprint. A negative height means dynamic.
func (c Card) CardSize() graphics.Size { return c.cardSize }

// Header returns the header content.
func (c Card) Header() core.Widget { return c.header }

// Content returns the card content.
func (c Card) Content() core.Widget { return c.content }

// Style returns the visual configuration.
func (c Card) Style() Style { return c.style }

// Timing returns the animation timing.
func (c Card) Timing() Transition { return c.transition }

// IsDynamic reports whether the card height follows its content.
func (c Card) IsDynamic() bool { return c.cardSize.Height < 0 }

func (c Card) CreateState() core.State {
	return &cardState{}
}

type cardState struct {
	core.StateBase
	model      *Model
	outer      *animation.ImplicitValue
	region     *animation.ImplicitValue
	controller *Controller
	detach     func()
	log        *logging.Logger
}

func (s *cardState) widget() Card {
	return s.Element().Widget().(Card)
}

func (s *cardState) InitState() {
	w := s.widget()
	s.log = logging.Default().WithComponent("expandable")
	s.model = NewModel(w.headerSize, w.cardSize)
	if w.initiallyExpanded {
		s.model.SetExpanded(true)
	}
	s.setController(w.controller)
	s.OnDispose(func() { s.setController(nil) })

	overlap := w.style.Overlap()
	s.outer = core.UseController(s, func() *animation.ImplicitValue {
		return animation.NewImplicitValue(s.model.TargetHeight(), w.transition.Duration, w.transition.Curve)
	})
	s.region = core.UseController(s, func() *animation.ImplicitValue {
		return animation.NewImplicitValue(s.model.CardRegionHeight(overlap), w.transition.Duration, w.transition.Curve)
	})
	core.UseListenable(s, s.outer)
	core.UseListenable(s, s.region)
}

func (s *cardState) setController(controller *Controller) {
	if s.controller == controller {
		return
	}
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.controller = controller
	if controller != nil {
		s.detach = controller.attach(s)
	}
}

func (s *cardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.widget()
	s.outer.SetTiming(w.transition.Duration, w.transition.Curve)
	s.region.SetTiming(w.transition.Duration, w.transition.Curve)
	s.model.SetSizes(w.headerSize, w.cardSize)
	s.setController(w.controller)
	s.retarget()
}

func (s *cardState) retarget() {
	overlap := s.widget().style.Overlap()
	s.outer.SetTarget(s.model.TargetHeight())
	s.region.SetTarget(s.model.CardRegionHeight(overlap))
}

// toggle flips the card once and starts the transition toward the new
// heights.
func (s *cardState) toggle() {
	if s.IsDisposed() {
		return
	}
	expanded := s.model.Toggle()
	s.retarget()
	s.SetState(nil)
	s.log.Debug("card toggled",
		"expanded", expanded,
		"from", s.outer.Begin(),
		"target", s.outer.Target(),
	)
	if fn := s.widget().onToggle; fn != nil {
		fn(expanded)
	}
	if s.controller != nil {
		s.controller.changed(s)
	}
}

// onHeight receives content measurements from the size probe.
func (s *cardState) onHeight(height float64) {
	if s.IsDisposed() || !s.model.ReportHeight(height) {
		return
	}
	if s.model.IsDynamic() {
		s.retarget()
	}
}

func (s *cardState) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(Card)
	style := w.style
	overlap := style.Overlap()
	shadow := style.Shadow.BoxShadow()

	children := make([]core.Widget, 0, 3)
	if shadow != nil {
		// Shadow under the header only; the card casts its own below it so
		// the two read as one shape.
		children = append(children, widgets.Positioned(widgets.DecoratedBox{
			BorderRadius: style.HeaderCornerRadius,
			Shadow:       shadow,
		}).Top(0).Size(w.headerSize))
	}

	children = append(children,
		widgets.Positioned(widgets.DecoratedBox{
			Color:        style.CardBackground,
			BorderRadius: style.CardCornerRadius,
			Shadow:       shadow,
			Child: widgets.ClipRRect{
				Radius: style.CardCornerRadius,
				Child: widgets.OverflowBox{
					Alignment: layout.AlignmentTopCenter,
					Child: widgets.Column{
						CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
						Children: []core.Widget{
							widgets.SizedBox{
								Width:  w.cardSize.Width,
								Height: overlap,
								Child:  widgets.DecoratedBox{Color: style.CardBackground},
							},
							SizeProbe{OnHeight: s.onHeight, Child: w.content},
						},
					},
				},
			},
		}).Top(w.headerSize.Height-overlap).Width(w.cardSize.Width).Height(s.region.Value()),

		widgets.Positioned(widgets.GestureDetector{
			OnTap: s.toggle,
			Child: widgets.ClipRRect{
				Radius: style.HeaderCornerRadius,
				Child: widgets.DecoratedBox{
					Color:        style.HeaderBackground,
					BorderRadius: style.HeaderCornerRadius,
					Child:        widgets.Center{Child: w.header},
				},
			},
		}).Top(0).Size(w.headerSize),
	)

	return widgets.SizedBox{
		Width:  s.model.Width(),
		Height: s.outer.Value(),
		Child: widgets.Stack{
			Alignment: layout.AlignmentTopCenter,
			Children:  children,
		},
	}
}

// IsExpanded reports whether the mounted card is open. Used by tests and
// tooling that hold the element.
func (s *cardState) IsExpanded() bool { return s.model.IsExpanded() }

// Height returns the displayed unit height.
func (s *cardState) Height() float64 { return s.outer.Value() }

// TargetHeight returns the height the unit is animating toward.
func (s *cardState) TargetHeight() float64 { return s.outer.Target() }

// StartHeight returns the height the running transition started from, or
// the target when resting.
func (s *cardState) StartHeight() float64 { return s.outer.Begin() }

// CardRegionHeight returns the displayed card region height.
func (s *cardState) CardRegionHeight() float64 { return s.region.Value() }

// MeasuredHeight returns the last accepted content measurement.
func (s *cardState) MeasuredHeight() float64 { return s.model.MeasuredHeight() }

// Toggle flips the card as a header tap would.
func (s *cardState) Toggle() { s.toggle() }

// CardState is the view of a mounted card exposed to tests and tools.
type CardState interface {
	IsExpanded() bool
	Height() float64
	TargetHeight() float64
	StartHeight() float64
	CardRegionHeight() float64
	MeasuredHeight() float64
	Toggle()
}

// StateOf returns the state of a mounted card element, or nil when e is not
// a card.
func StateOf(e core.Element) CardState {
	stateful, ok := e.(*core.StatefulElement)
	if !ok {
		return nil
	}
	state, ok := stateful.State().(*cardState)
	if !ok {
		return nil
	}
	return state
}
