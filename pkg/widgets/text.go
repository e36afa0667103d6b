package widgets

import (
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// Text displays a string in the bundled 7x13 face.
//
// With Wrap set, lines break at word boundaries to fit the incoming max
// width; explicit newlines always break.
//
//	Text{Content: "Tap to expand", Style: graphics.TextStyle{Color: graphics.ColorBlack}}
type Text struct {
	core.RenderObjectBase
	Content string
	Style   graphics.TextStyle
	Wrap    bool
}

// WithWrap returns a copy of the text with wrapping enabled or disabled.
func (t Text) WithWrap(wrap bool) Text {
	t.Wrap = wrap
	return t
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderText{text: t.Content, style: t.Style, wrap: t.Wrap}
	r.SetSelf(r)
	return r
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	r, ok := renderObject.(*renderText)
	if !ok {
		return
	}
	if r.text == t.Content && r.style == t.Style && r.wrap == t.Wrap {
		return
	}
	r.text = t.Content
	r.style = t.Style
	r.wrap = t.Wrap
	r.cache = nil
	r.MarkNeedsLayout()
}

type renderText struct {
	layout.RenderBoxBase
	text  string
	style graphics.TextStyle
	wrap  bool

	cache      *graphics.TextLayout
	cacheWidth float64
}

func (r *renderText) PerformLayout() {
	constraints := r.Constraints()
	maxWidth := layout.Unbounded
	if r.wrap {
		maxWidth = constraints.MaxWidth
	}
	if r.cache == nil || r.cacheWidth != maxWidth {
		r.cache = graphics.LayoutText(r.text, r.style, maxWidth)
		r.cacheWidth = maxWidth
	}
	r.SetSize(constraints.Constrain(r.cache.Size))
}

// TextLayout returns the laid-out text, or nil before layout.
func (r *renderText) TextLayout() *graphics.TextLayout {
	return r.cache
}

// Content returns the displayed string.
func (r *renderText) Content() string {
	return r.text
}

func (r *renderText) Paint(ctx *layout.PaintContext) {
	if r.cache == nil || r.text == "" {
		return
	}
	ctx.Canvas.DrawText(r.cache, graphics.Offset{})
}

func (r *renderText) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}
