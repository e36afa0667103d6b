package engine

import (
	"sync"
	"time"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// frameLogLimit is how many recent frames the engine remembers.
const frameLogLimit = 120

// FrameStats describes the work done by one frame.
type FrameStats struct {
	Frame int `yaml:"frame" json:"frame"`
	// LayoutPasses counts build and layout repetitions; more than one
	// means a measurement dirtied the tree within the frame.
	LayoutPasses int `yaml:"layoutPasses" json:"layoutPasses"`
	// Callbacks counts delivered post-layout callbacks.
	Callbacks     int           `yaml:"callbacks" json:"callbacks"`
	Elements      int           `yaml:"elements" json:"elements"`
	RenderObjects int           `yaml:"renderObjects" json:"renderObjects"`
	Ops           int           `yaml:"ops" json:"ops"`
	Pending       bool          `yaml:"pending" json:"pending"`
	Duration      time.Duration `yaml:"duration" json:"duration"`
}

// frameLog keeps the most recent frames, oldest first.
type frameLog struct {
	mu     sync.Mutex
	frames []FrameStats
}

func (l *frameLog) add(stats FrameStats) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.frames) == frameLogLimit {
		copy(l.frames, l.frames[1:])
		l.frames = l.frames[:frameLogLimit-1]
	}
	l.frames = append(l.frames, stats)
}

func (l *frameLog) snapshot() []FrameStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FrameStats(nil), l.frames...)
}

func countRenderObjects(ro layout.RenderObject) int {
	if ro == nil {
		return 0
	}
	n := 1
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			n += countRenderObjects(child)
		})
	}
	return n
}

func countElements(e core.Element) int {
	if e == nil {
		return 0
	}
	n := 1
	e.VisitChildren(func(child core.Element) bool {
		n += countElements(child)
		return true
	})
	return n
}
