package raster

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a light at a world position with distance falloff.
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// LightConfig holds the scene lighting used for flat shading.
type LightConfig struct {
	Ambient   mgl32.Vec3
	SunDir    mgl32.Vec3 // unit vector pointing towards the sun
	Sun       mgl32.Vec3
	Points    []PointLight
	Falloff   float32 // quadratic attenuation coefficient for point lights
	Exposure  float32
	InvGamma  float32
	Hemi      float32
}

// DefaultLightConfig returns a soft daylight setup without point lights.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Ambient:  mgl32.Vec3{0.35, 0.35, 0.38},
		SunDir:   mgl32.Vec3{180, 260, 140}.Normalize(),
		Sun:      mgl32.Vec3{1.1, 1.05, 0.95},
		Falloff:  0.02,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
		Hemi:     0.25,
	}
}

// Shade returns the per-channel light reaching a face with unit normal n
// whose centre is at pos.
func (lc *LightConfig) Shade(n, pos mgl32.Vec3) mgl32.Vec3 {
	hemi := (n[1]*0.5 + 0.5) * lc.Hemi
	out := lc.Ambient.Add(mgl32.Vec3{hemi, hemi, hemi})

	if ndl := n.Dot(lc.SunDir); ndl > 0 {
		out = out.Add(lc.Sun.Mul(ndl))
	}
	for _, p := range lc.Points {
		d := p.Position.Sub(pos)
		dist2 := d.Dot(d)
		if dist2 < 1e-12 {
			continue
		}
		ndl := n.Dot(d.Mul(1 / math32.Sqrt(dist2)))
		if ndl <= 0 {
			continue
		}
		att := p.Intensity / (1 + lc.Falloff*dist2)
		out = out.Add(p.Color.Mul(ndl * att))
	}
	return out
}

var srgbToLinear [256]float32

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math32.Pow(float32(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
