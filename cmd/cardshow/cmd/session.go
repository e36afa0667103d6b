package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/tomortec/drift-expandable/cmd/cardshow/internal/gallery"
	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/engine"
	"github.com/tomortec/drift-expandable/pkg/expandable"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/logging"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

const (
	frameStep = 16 * time.Millisecond
	maxFrames = 600
)

// stepClock only moves when advanced, so settling never waits on wall time.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// session is a gallery mounted in a headless engine.
type session struct {
	doc       *gallery.Document
	engine    *engine.Engine
	clock     *stepClock
	prevClock animation.Clock
	width     float64
	log       *logging.Logger
}

// openSession loads the gallery at path and mounts it at the resolved
// width. widthFlag wins over the settings, which win over the document.
func openSession(path string, settings *Settings, widthFlag float64) (*session, error) {
	doc, err := gallery.Load(path)
	if err != nil {
		return nil, configError("cardshow.load", err)
	}
	root, err := doc.Build()
	if err != nil {
		return nil, configError("cardshow.build", err)
	}

	width := gallery.DefaultWidth
	switch {
	case widthFlag > 0:
		width = widthFlag
	case settings.Width > 0:
		width = settings.Width
	case doc.Width > 0:
		width = doc.Width
	}
	height := settings.Height
	if height <= 0 {
		height = 4000
	}

	s := &session{
		doc:   doc,
		clock: &stepClock{now: time.Unix(0, 0)},
		width: width,
		log:   logging.Default().WithComponent("session"),
	}
	s.prevClock = animation.SetClock(s.clock)
	s.engine = engine.New(graphics.Size{Width: width, Height: height})
	s.engine.Mount(widgets.Align{Alignment: layout.AlignmentTopCenter, Child: root})
	s.log.Debug("mounted gallery", "path", path, "width", width, "sections", len(doc.Sections))
	if err := s.settle(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// settle steps frames until animations and measurements finish.
func (s *session) settle() error {
	if err := s.engine.Settle(frameStep, maxFrames, s.clock.advance); err != nil {
		return renderError("cardshow.settle", err)
	}
	return nil
}

func (s *session) cards() []expandable.CardState {
	return gallery.CardStates(s.engine.Root())
}

// toggle flips the listed cards, as header taps would, and settles.
func (s *session) toggle(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	cards := s.cards()
	for _, i := range indices {
		if i < 0 || i >= len(cards) {
			return configError("cardshow.expand", fmt.Errorf("card index %d out of range [0, %d)", i, len(cards)))
		}
		s.log.WithCard(i).Debug("toggle")
		cards[i].Toggle()
	}
	return s.settle()
}

// contentHeight is the laid out height of the gallery below the root
// alignment.
func (s *session) contentHeight() float64 {
	root := s.engine.RootRender()
	if root == nil {
		return 0
	}
	height := root.Size().Height
	if visitor, ok := root.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			height = child.Size().Height
		})
	}
	return height
}

// frame crops the surface to the content and records a frame.
func (s *session) frame() (*graphics.DisplayList, error) {
	height := max(1, s.contentHeight())
	s.engine.SetSize(graphics.Size{Width: s.width, Height: height})
	list, err := s.engine.Frame()
	if err != nil {
		return nil, renderError("cardshow.frame", err)
	}
	return list, nil
}

// Close unmounts the gallery and restores the animation clock.
func (s *session) Close() {
	s.engine.Unmount()
	animation.SetClock(s.prevClock)
}
