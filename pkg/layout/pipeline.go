package layout

import "slices"

// PipelineOwner tracks render objects that need layout or paint, and the
// callbacks that must run once layout has finished.
//
// Layout scheduling works with relayout boundaries: when a node needs layout,
// MarkNeedsLayout walks up to the nearest boundary, marking each node along
// the way. The boundary gets scheduled here.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	needsLayout    bool
	needsPaint     bool

	postLayout     []postLayoutCallback
	postLayoutKeys map[any]int
}

type postLayoutCallback struct {
	key any
	fn  func()
}

// ScheduleLayout marks a relayout boundary as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint records that the next frame must repaint.
func (p *PipelineOwner) SchedulePaint() {
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if a repaint is pending.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// ClearNeedsPaint is called by the frame driver after painting.
func (p *PipelineOwner) ClearNeedsPaint() {
	p.needsPaint = false
}

// AddPostLayoutCallback queues fn to run after the current layout pass.
//
// Callbacks registered under the same non-nil key coalesce: the most
// recently registered function replaces the pending one while keeping its
// place in the queue. A nil key never coalesces.
func (p *PipelineOwner) AddPostLayoutCallback(key any, fn func()) {
	if fn == nil {
		return
	}
	if key != nil {
		if p.postLayoutKeys == nil {
			p.postLayoutKeys = make(map[any]int)
		}
		if index, ok := p.postLayoutKeys[key]; ok {
			p.postLayout[index].fn = fn
			return
		}
		p.postLayoutKeys[key] = len(p.postLayout)
	}
	p.postLayout = append(p.postLayout, postLayoutCallback{key: key, fn: fn})
}

// HasPostLayoutCallbacks reports whether callbacks are waiting to run.
func (p *PipelineOwner) HasPostLayoutCallbacks() bool {
	return len(p.postLayout) > 0
}

// FlushPostLayoutCallbacks runs the queued callbacks in registration order
// and returns how many ran. Callbacks queued while flushing run on the next
// flush.
func (p *PipelineOwner) FlushPostLayoutCallbacks() int {
	pending := p.postLayout
	p.postLayout = nil
	p.postLayoutKeys = nil
	for _, cb := range pending {
		cb.fn()
	}
	return len(pending)
}

// FlushLayoutForRoot runs layout starting from the root.
//
// The typical frame sequence is:
//  1. FlushBuild - rebuilds dirty elements, updates render object properties
//  2. FlushLayoutForRoot - lays out from root, propagating to dirty subtrees
//  3. FlushPostLayoutCallbacks - delivers measurements gathered during layout
//  4. Paint - records the tree
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	root.Layout(constraints, false)
	p.flushDirtyBoundaries()
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false
}

// flushDirtyBoundaries lays out boundaries scheduled during the pass,
// parents first so a parent's layout can clean its children.
func (p *PipelineOwner) flushDirtyBoundaries() {
	for len(p.dirtyLayout) > 0 {
		slices.SortFunc(p.dirtyLayout, func(a, b RenderObject) int {
			return getDepth(a) - getDepth(b)
		})
		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		p.dirtyLayoutSet = nil

		for _, node := range dirty {
			layouter, ok := node.(interface {
				NeedsLayout() bool
				Constraints() Constraints
			})
			if ok && layouter.NeedsLayout() {
				node.Layout(layouter.Constraints(), false)
			}
		}
	}
}

func getDepth(obj RenderObject) int {
	if getter, ok := obj.(interface{ Depth() int }); ok {
		return getter.Depth()
	}
	return 0
}
