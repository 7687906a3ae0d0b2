package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping. v runs up the
// image, so v=0 is the bottom row.
func SampleTexture(tex *image.NRGBA, u, v float32) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u = wrap(u)
	v = 1 - wrap(v)

	fx := u * float32(w-1)
	fy := v * float32(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	mix := func(o int) uint8 {
		f := float32(pix[i00+o])*w00 + float32(pix[i10+o])*w10 + float32(pix[i01+o])*w01 + float32(pix[i11+o])*w11
		return uint8(f + 0.5)
	}
	return mix(0), mix(1), mix(2), mix(3)
}

func wrap(t float32) float32 {
	t -= float32(int(t))
	if t < 0 {
		t += 1
	}
	return t
}
