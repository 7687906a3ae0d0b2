// Package postprocess holds image passes applied after rasterization.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample resolves a supersampled frame to w×h. Filtering runs on
// premultiplied pixels so transparent texels do not bleed black into
// their neighbours. A frame that already fits is returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	// RGBA is premultiplied; drawing converts in both directions.
	src := image.NewRGBA(b)
	draw.Copy(src, b.Min, img, b, draw.Src, nil)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	draw.Copy(out, image.Point{}, scaled, scaled.Bounds(), draw.Src, nil)
	return out
}
