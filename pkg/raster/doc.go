// Package raster turns recorded display lists into pixels.
//
// [Canvas] implements graphics.Canvas over an image.RGBA. Shapes are
// rasterized with golang.org/x/image/vector, text is drawn with the same
// bitmap face used for layout, and shadows are box-blurred coverage masks.
//
//	list, _ := eng.Frame()
//	img := raster.Render(list, graphics.ColorWhite)
//	raster.WritePNG("out/gallery.png", img)
package raster
