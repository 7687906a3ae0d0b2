// Package raster is a software stand-in for a GPU: it uploads indexed meshes
// and draws them as indexed triangle lists into a frame buffer.
package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/mesh"
	"objscene/internal/texture"
)

// nearW is the smallest clip-space w accepted. Triangles with any vertex at
// or behind it are dropped whole.
const nearW = 1e-3

// DrawCall is one indexed draw of an uploaded buffer.
type DrawCall struct {
	Buffer  *Buffer
	Model   mgl32.Mat4
	Texture string     // texture name; empty draws Color only
	Color   mgl32.Vec3 // tint in 0..1; multiplies the texture
	Unlit   bool       // skip lighting and tone mapping

	// Background draws ignore the z-buffer and the view translation, for
	// skyboxes drawn before everything else.
	Background bool
}

// Renderer draws calls against a light setup and a texture source.
type Renderer struct {
	Light    LightConfig
	Textures texture.Resolver // may be nil
}

// fallbackColor is used when a draw names a texture that cannot be resolved.
var fallbackColor = [3]uint8{160, 160, 170}

// Draw rasterizes dc with the given view and projection. Degenerate and
// out-of-range triangles are skipped.
func (r *Renderer) Draw(fb *FrameBuffer, view, proj mgl32.Mat4, dc DrawCall) {
	buf := dc.Buffer
	if buf == nil || buf.Count < 3 {
		return
	}
	nv := uint32(buf.VertexCount())
	if dc.Background {
		view[12], view[13], view[14] = 0, 0, 0
	}
	mvp := proj.Mul4(view).Mul4(dc.Model)
	normalMat := dc.Model.Mat3().Inv().Transpose()

	f := fragment{
		tint:       dc.Color,
		unlit:      dc.Unlit,
		depthTest:  !dc.Background,
		depthWrite: !dc.Background,
		exposure:   r.Light.Exposure,
		invGamma:   r.Light.InvGamma,
		base:       [3]uint8{255, 255, 255},
	}
	if dc.Texture != "" {
		if r.Textures != nil {
			f.tex = r.Textures.Resolve(dc.Texture)
		}
		if f.tex == nil {
			f.base = fallbackColor
		}
	}

	halfW := float32(fb.Width) / 2
	halfH := float32(fb.Height) / 2

	count := min(buf.Count, len(buf.Indices))
	for t := 0; t+2 < count; t += 3 {
		idx := [3]uint32{buf.Indices[t], buf.Indices[t+1], buf.Indices[t+2]}
		if idx[0] >= nv || idx[1] >= nv || idx[2] >= nv {
			continue
		}

		var sv [3]screenVertex
		var world [3]mgl32.Vec3
		var normal mgl32.Vec3
		behind := false
		for k, i := range idx {
			o := int(i) * mesh.Stride
			v := buf.Vertices[o : o+mesh.Stride]
			p := mgl32.Vec4{v[0], v[1], v[2], 1}

			clip := mvp.Mul4x1(p)
			if clip[3] <= nearW {
				behind = true
				break
			}
			invW := 1 / clip[3]
			sv[k] = screenVertex{
				X:    (clip[0]*invW + 1) * halfW,
				Y:    (1 - clip[1]*invW) * halfH,
				InvW: invW,
				UW:   v[6] * invW,
				VW:   v[7] * invW,
			}
			world[k] = dc.Model.Mul4x1(p).Vec3()
			normal = normal.Add(mgl32.Vec3{v[3], v[4], v[5]})
		}
		if behind {
			continue
		}

		if !dc.Unlit {
			n := faceNormal(world, normalMat.Mul3x1(normal))
			if n == (mgl32.Vec3{}) {
				continue
			}
			centre := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
			f.light = r.Light.Shade(n, centre)
		}
		rasterizeTriangle(fb, sv[0], sv[1], sv[2], &f)
	}
}

// faceNormal prefers the averaged vertex normal and falls back to the
// winding normal when the mesh carries none.
func faceNormal(world [3]mgl32.Vec3, vertexSum mgl32.Vec3) mgl32.Vec3 {
	if l := vertexSum.Len(); l > 1e-6 {
		return vertexSum.Mul(1 / l)
	}
	n := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
	l := n.Len()
	if l < 1e-12 || math32.IsNaN(l) {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// RenderImage clears a w×h buffer to bg, draws every call in order and
// returns the result.
func (r *Renderer) RenderImage(w, h int, bg color.NRGBA, view, proj mgl32.Mat4, calls []DrawCall) *image.NRGBA {
	fb := NewFrameBuffer(w, h)
	fb.Clear(bg)
	for _, dc := range calls {
		r.Draw(fb, view, proj, dc)
	}
	return fb.Image()
}
