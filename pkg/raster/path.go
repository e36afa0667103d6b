package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// kappa places cubic control points so a quarter curve approximates a
// circular arc.
const kappa = 0.5522847498

// tracer adds a closed path to z, in coordinates relative to origin.
type tracer func(z *vector.Rasterizer, origin image.Point)

// rasterize fills mask with the coverage of the traced path.
func rasterize(mask *image.Alpha, trace tracer) {
	b := mask.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	trace(z, b.Min)
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// rrectTracer traces a rounded rectangle given in device coordinates. Zero
// radii trace a plain rectangle.
func rrectTracer(rrect graphics.RRect) tracer {
	rrect = graphics.RRectFromRectAndRadius(rrect.Rect, rrect.Radius)
	return func(z *vector.Rasterizer, origin image.Point) {
		ox, oy := float64(origin.X), float64(origin.Y)
		l := float32(rrect.Rect.Left - ox)
		t := float32(rrect.Rect.Top - oy)
		r := float32(rrect.Rect.Right - ox)
		b := float32(rrect.Rect.Bottom - oy)
		rx := float32(rrect.Radius.X)
		ry := float32(rrect.Radius.Y)

		if rx <= 0 || ry <= 0 {
			z.MoveTo(l, t)
			z.LineTo(r, t)
			z.LineTo(r, b)
			z.LineTo(l, b)
			z.ClosePath()
			return
		}

		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(l+rx, t)
		z.LineTo(r-rx, t)
		z.CubeTo(r-rx+kx, t, r, t+ry-ky, r, t+ry)
		z.LineTo(r, b-ry)
		z.CubeTo(r, b-ry+ky, r-rx+kx, b, r-rx, b)
		z.LineTo(l+rx, b)
		z.CubeTo(l+rx-kx, b, l, b-ry+ky, l, b-ry)
		z.LineTo(l, t+ry)
		z.CubeTo(l, t+ry-ky, l+rx-kx, t, l+rx, t)
		z.ClosePath()
	}
}

// blurAlpha approximates a gaussian blur of the given sigma with three box
// blur passes in each direction.
func blurAlpha(mask *image.Alpha, sigma float64) {
	if sigma <= 0 {
		return
	}
	for _, size := range boxSizes(sigma, 3) {
		radius := (size - 1) / 2
		if radius < 1 {
			continue
		}
		boxBlurH(mask, radius)
		boxBlurV(mask, radius)
	}
}

// boxSizes returns n box widths whose successive application matches a
// gaussian of the given sigma.
func boxSizes(sigma float64, n int) []int {
	ideal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	lower := int(math.Floor(ideal))
	if lower%2 == 0 {
		lower--
	}
	upper := lower + 2
	m := math.Round((12*sigma*sigma - float64(n*lower*lower) - float64(4*n*lower) - float64(3*n)) / float64(-4*lower-4))
	sizes := make([]int, n)
	for i := range sizes {
		if float64(i) < m {
			sizes[i] = lower
		} else {
			sizes[i] = upper
		}
	}
	return sizes
}

func boxBlurH(mask *image.Alpha, radius int) {
	b := mask.Bounds()
	w := b.Dx()
	row := make([]uint8, w)
	for y := 0; y < b.Dy(); y++ {
		start := y * mask.Stride
		copy(row, mask.Pix[start:start+w])
		blurLine(row, mask.Pix[start:start+w], radius)
	}
}

func boxBlurV(mask *image.Alpha, radius int) {
	b := mask.Bounds()
	h := b.Dy()
	col := make([]uint8, h)
	out := make([]uint8, h)
	for x := 0; x < b.Dx(); x++ {
		for y := 0; y < h; y++ {
			col[y] = mask.Pix[y*mask.Stride+x]
		}
		blurLine(col, out, radius)
		for y := 0; y < h; y++ {
			mask.Pix[y*mask.Stride+x] = out[y]
		}
	}
}

// blurLine writes the running mean of src over a 2*radius+1 window into dst.
// Samples beyond the ends count as transparent.
func blurLine(src, dst []uint8, radius int) {
	n := len(src)
	window := 2*radius + 1
	sum := 0
	for i := 0; i <= radius && i < n; i++ {
		sum += int(src[i])
	}
	for i := 0; i < n; i++ {
		dst[i] = uint8((sum + window/2) / window)
		if j := i + radius + 1; j < n {
			sum += int(src[j])
		}
		if j := i - radius; j >= 0 {
			sum -= int(src[j])
		}
	}
}
