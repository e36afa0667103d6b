package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// Canvas draws onto an RGBA image, one logical pixel per image pixel.
// It implements [graphics.Canvas], so a recorded display list can be replayed
// onto it with DisplayList.Paint.
type Canvas struct {
	img       *image.RGBA
	transform graphics.Offset
	clips     []clip
	saveStack []saveState
}

type saveState struct {
	transform graphics.Offset
	clipDepth int
}

// clip is the active drawing region in device pixels. A nil mask means
// every pixel inside bounds is fully visible.
type clip struct {
	bounds image.Rectangle
	mask   *image.Alpha
}

// NewCanvas creates a canvas over a transparent width x height image.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// NewCanvasForSize creates a canvas covering size, rounded up to whole
// pixels.
func NewCanvasForSize(size graphics.Size) *Canvas {
	return NewCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
}

// Image returns the image being drawn on.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with col, ignoring clips.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) Save() {
	c.saveStack = append(c.saveStack, saveState{
		transform: c.transform,
		clipDepth: len(c.clips),
	})
}

func (c *Canvas) Restore() {
	if len(c.saveStack) == 0 {
		return
	}
	state := c.saveStack[len(c.saveStack)-1]
	c.saveStack = c.saveStack[:len(c.saveStack)-1]
	c.transform = state.transform
	c.clips = c.clips[:state.clipDepth]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.transform.X += dx
	c.transform.Y += dy
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	bounds := c.pixelBounds(rect)
	next := clip{bounds: bounds}
	if cur, ok := c.currentClip(); ok {
		next.bounds = bounds.Intersect(cur.bounds)
		next.mask = cur.mask
	}
	c.clips = append(c.clips, next)
}

func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	if rrect.Radius.X <= 0 || rrect.Radius.Y <= 0 {
		c.ClipRect(rrect.Rect)
		return
	}
	device := c.toDevice(rrect)
	bounds := c.pixelBoundsDevice(device.Rect)
	if cur, ok := c.currentClip(); ok {
		bounds = bounds.Intersect(cur.bounds)
	}
	mask := image.NewAlpha(bounds)
	rasterize(mask, rrectTracer(device))
	c.applyClip(mask)
	c.clips = append(c.clips, clip{bounds: bounds, mask: mask})
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawRRect(graphics.RRect{Rect: rect}, paint)
}

func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if paint.Color.Alpha() == 0 || rrect.Rect.IsEmpty() {
		return
	}
	device := c.toDevice(rrect)
	c.fillPath(c.pixelBoundsDevice(device.Rect), paint.Color, rrectTracer(device))
}

func (c *Canvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	if !shadow.IsVisible() {
		return
	}
	device := c.toDevice(rrect)
	device.Rect = device.Rect.Translate(shadow.Offset.X, shadow.Offset.Y).Inflate(shadow.Spread)
	if shadow.Spread > 0 {
		device.Radius.X += shadow.Spread
		device.Radius.Y += shadow.Spread
	}
	if device.Rect.IsEmpty() {
		return
	}
	sigma := shadow.Sigma()
	bounds := c.pixelBoundsDevice(device.Rect.Inflate(3 * sigma))
	if cur, ok := c.currentClip(); ok {
		bounds = bounds.Intersect(cur.bounds)
	}
	bounds = bounds.Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}
	// Blur the unclipped shape so edges fade the same way whatever the clip.
	full := image.NewAlpha(c.pixelBoundsDevice(device.Rect.Inflate(3 * sigma)))
	rasterize(full, rrectTracer(device))
	blurAlpha(full, sigma)
	mask := image.NewAlpha(bounds)
	draw.Draw(mask, bounds, full, bounds.Min, draw.Src)
	c.composite(bounds, shadow.Color, mask)
}

func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil || len(layout.Lines) == 0 || layout.Style.Color.Alpha() == 0 {
		return
	}
	origin := position.Add(c.transform)
	box := graphics.RectFromLTWH(origin.X, origin.Y, layout.Size.Width, layout.Size.Height)
	// Glyphs may overhang their advance box by a pixel.
	bounds := c.pixelBoundsDevice(box.Inflate(1))
	face := graphics.TextFace()
	c.fill(bounds, layout.Style.Color, func(mask *image.Alpha) {
		d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
		for i, line := range layout.Lines {
			baseline := origin.Y + layout.Ascent + float64(i)*layout.LineHeight
			d.Dot = fixed.Point26_6{
				X: fixed.Int26_6(math.Round(origin.X * 64)),
				Y: fixed.Int26_6(math.Round(baseline * 64)),
			}
			d.DrawString(line)
		}
	})
}

func (c *Canvas) toDevice(rrect graphics.RRect) graphics.RRect {
	rrect.Rect = rrect.Rect.Translate(c.transform.X, c.transform.Y)
	return rrect
}

func (c *Canvas) pixelBounds(rect graphics.Rect) image.Rectangle {
	return c.pixelBoundsDevice(rect.Translate(c.transform.X, c.transform.Y))
}

func (c *Canvas) pixelBoundsDevice(rect graphics.Rect) image.Rectangle {
	r := image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	)
	return r.Intersect(c.img.Bounds())
}

func (c *Canvas) currentClip() (clip, bool) {
	if len(c.clips) == 0 {
		return clip{}, false
	}
	return c.clips[len(c.clips)-1], true
}

// applyClip multiplies mask by the active clip's coverage. Pixels outside
// the clip bounds become transparent.
func (c *Canvas) applyClip(mask *image.Alpha) {
	cur, ok := c.currentClip()
	if !ok {
		return
	}
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := image.Point{X: x, Y: y}
			if !p.In(cur.bounds) {
				mask.Pix[mask.PixOffset(x, y)] = 0
				continue
			}
			if cur.mask == nil {
				continue
			}
			a := uint32(mask.AlphaAt(x, y).A) * uint32(cur.mask.AlphaAt(x, y).A) / 0xff
			mask.Pix[mask.PixOffset(x, y)] = uint8(a)
		}
	}
}

// fill runs paint over an empty coverage mask clipped to the active clip and
// composites the result in col.
func (c *Canvas) fill(bounds image.Rectangle, col graphics.Color, paint func(mask *image.Alpha)) {
	if cur, ok := c.currentClip(); ok {
		bounds = bounds.Intersect(cur.bounds)
	}
	if bounds.Empty() {
		return
	}
	mask := image.NewAlpha(bounds)
	paint(mask)
	c.composite(bounds, col, mask)
}

func (c *Canvas) fillPath(bounds image.Rectangle, col graphics.Color, trace tracer) {
	c.fill(bounds, col, func(mask *image.Alpha) {
		rasterize(mask, trace)
	})
}

func (c *Canvas) composite(bounds image.Rectangle, col graphics.Color, mask *image.Alpha) {
	c.applyClip(mask)
	draw.DrawMask(c.img, bounds, image.NewUniform(col.NRGBA()), image.Point{}, mask, bounds.Min, draw.Over)
}
