package raster

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// screenVertex is a projected vertex. U and V are pre-divided by w so they
// interpolate linearly in screen space.
type screenVertex struct {
	X, Y   float32
	InvW   float32
	UW, VW float32
}

// fragment holds the per-triangle constants of the pixel loop.
type fragment struct {
	tex        *image.NRGBA
	base       [3]uint8   // sRGB color used when tex is nil
	tint       mgl32.Vec3 // multiplies the texel
	light      mgl32.Vec3 // linear light multiplier; ignored when unlit
	unlit      bool
	depthTest  bool
	depthWrite bool
	exposure   float32
	invGamma   float32
}

// rasterizeTriangle fills one projected triangle. It never allocates.
func rasterizeTriangle(fb *FrameBuffer, a, b, c screenVertex, f *fragment) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	x2, y2 := c.X, c.Y

	minX := int(math32.Floor(min(x0, x1, x2)))
	maxX := int(math32.Ceil(max(x0, x1, x2)))
	minY := int(math32.Floor(min(y0, y1, y2)))
	maxY := int(math32.Ceil(max(y0, y1, y2)))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			zIdx := rowOff + sx
			invW := w0*a.InvW + w1*b.InvW + w2*c.InvW
			if f.depthTest && invW <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if f.tex != nil {
				u := (w0*a.UW + w1*b.UW + w2*c.UW) / invW
				v := (w0*a.VW + w1*b.VW + w2*c.VW) / invW
				cr, cg, cb, ca = SampleTexture(f.tex, u, v)
			} else {
				cr, cg, cb, ca = f.base[0], f.base[1], f.base[2], 255
			}
			if ca < 8 {
				continue
			}
			if f.depthWrite {
				fb.ZBuf[zIdx] = invW
			}

			lr := srgbToLinear[cr] * f.tint[0]
			lg := srgbToLinear[cg] * f.tint[1]
			lb := srgbToLinear[cb] * f.tint[2]
			if !f.unlit {
				lr = ACESTonemap(lr * f.light[0] * f.exposure)
				lg = ACESTonemap(lg * f.light[1] * f.exposure)
				lb = ACESTonemap(lb * f.light[2] * f.exposure)
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math32.Pow(lr, f.invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math32.Pow(lg, f.invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math32.Pow(lb, f.invGamma) * 255)
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
