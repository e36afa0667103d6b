package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// Render replays list onto a new image of the list's size, filled first
// with background.
func Render(list *graphics.DisplayList, background graphics.Color) *image.RGBA {
	canvas := NewCanvasForSize(list.Size())
	if background.Alpha() > 0 {
		canvas.Clear(background)
	}
	list.Paint(canvas)
	return canvas.Image()
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, img)
}
