package expandable

import (
	"math"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// PlaceholderContentHeight is the card height a dynamic card assumes until
// its content has been measured.
const PlaceholderContentHeight = 100.0

// Model is the expand/collapse state of one card and the height arithmetic
// that follows from it. It holds no animation; the card feeds its targets
// into implicit animations.
//
// A Model is not safe for concurrent use.
type Model struct {
	headerSize graphics.Size
	cardSize   graphics.Size
	expanded   bool
	measured   float64
}

// NewModel returns a collapsed model. A negative cardSize.Height selects
// dynamic height.
func NewModel(headerSize, cardSize graphics.Size) *Model {
	return &Model{
		headerSize: headerSize,
		cardSize:   cardSize,
		measured:   PlaceholderContentHeight,
	}
}

// HeaderSize returns the fixed header footprint.
func (m *Model) HeaderSize() graphics.Size { return m.headerSize }

// CardSize returns the configured card footprint.
func (m *Model) CardSize() graphics.Size { return m.cardSize }

// SetSizes replaces the configured footprints and reports whether the
// target heights may have moved. The measurement is kept.
func (m *Model) SetSizes(headerSize, cardSize graphics.Size) bool {
	if m.headerSize == headerSize && m.cardSize == cardSize {
		return false
	}
	m.headerSize = headerSize
	m.cardSize = cardSize
	return true
}

// IsExpanded reports whether the card is open.
func (m *Model) IsExpanded() bool { return m.expanded }

// Toggle flips the expanded flag and returns the new value. Two calls
// restore the original state.
func (m *Model) Toggle() bool {
	m.expanded = !m.expanded
	return m.expanded
}

// SetExpanded sets the flag and reports whether it changed.
func (m *Model) SetExpanded(expanded bool) bool {
	if m.expanded == expanded {
		return false
	}
	m.expanded = expanded
	return true
}

// IsDynamic reports whether the card height follows its content.
func (m *Model) IsDynamic() bool { return m.cardSize.Height < 0 }

// ReportHeight records a content measurement and reports whether the
// stored value changed. Zero, negative, NaN and infinite values are
// ignored so that a transient measurement gap keeps the last known height.
func (m *Model) ReportHeight(height float64) bool {
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return false
	}
	if height == m.measured {
		return false
	}
	m.measured = height
	return true
}

// MeasuredHeight returns the last accepted measurement, or the placeholder.
func (m *Model) MeasuredHeight() float64 { return m.measured }

// EffectiveCardHeight is the fixed card height, or the measured content
// height in dynamic mode. It is never negative.
func (m *Model) EffectiveCardHeight() float64 {
	if m.IsDynamic() {
		return m.measured
	}
	return m.cardSize.Height
}

// TargetHeight is the height of the whole unit once the animation settles.
func (m *Model) TargetHeight() float64 {
	if m.expanded {
		return m.headerSize.Height + m.EffectiveCardHeight()
	}
	return m.headerSize.Height
}

// CardRegionHeight is the settled height of the card region, which starts
// overlap above the header's bottom edge.
func (m *Model) CardRegionHeight(overlap float64) float64 {
	if m.expanded {
		return m.EffectiveCardHeight() + overlap
	}
	return 0
}

// Width is the width of the whole unit.
func (m *Model) Width() float64 {
	return math.Max(m.headerSize.Width, m.cardSize.Width)
}
