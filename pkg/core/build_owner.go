package core

import (
	"slices"
	"sync"

	"github.com/tomortec/drift-expandable/pkg/layout"
)

// BuildOwner tracks dirty elements that need rebuilding.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	pipeline *layout.PipelineOwner
	mu       sync.Mutex

	renderSync    []*RenderObjectElement
	renderSyncSet map[*RenderObjectElement]bool

	// OnNeedsFrame is called when a new element is scheduled for rebuild,
	// signalling the frame driver that a frame should be produced.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		pipeline: &layout.PipelineOwner{},
	}
}

// Pipeline returns the PipelineOwner for render object scheduling.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[Element]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// HasDirtyElements reports whether a rebuild is pending.
func (b *BuildOwner) HasDirtyElements() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty) > 0
}

// NeedsWork returns true if there are dirty elements or pending layout/paint.
func (b *BuildOwner) NeedsWork() bool {
	if b.HasDirtyElements() {
		return true
	}
	return b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint() || b.pipeline.HasPostLayoutCallbacks()
}

// FlushBuild rebuilds all dirty elements in depth order, parents first.
// Elements dirtied while flushing are rebuilt in the same call.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			break
		}
		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})
		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
	b.flushRenderSync()
}

// scheduleRenderSync queues a multi-child element whose render children
// changed underneath it.
func (b *BuildOwner) scheduleRenderSync(element *RenderObjectElement) {
	if b.renderSyncSet[element] {
		return
	}
	if b.renderSyncSet == nil {
		b.renderSyncSet = make(map[*RenderObjectElement]bool)
	}
	b.renderSyncSet[element] = true
	b.renderSync = append(b.renderSync, element)
}

func (b *BuildOwner) flushRenderSync() {
	pending := b.renderSync
	b.renderSync = nil
	b.renderSyncSet = nil
	for _, element := range pending {
		if element.mounted {
			element.syncRenderChildren()
		}
	}
}
