package raster

import (
	"image"
	"image/color"

	"objscene/internal/mesh"
)

// Buffer is an uploaded mesh: interleaved vertex data plus the index list.
type Buffer struct {
	Vertices []float32 // mesh.Stride floats per vertex
	Indices  []uint32
	Count    int // number of indices to draw
}

// Upload packs m for drawing. The mesh is not retained.
func Upload(m *mesh.IndexedMesh) *Buffer {
	return &Buffer{
		Vertices: m.Interleave(),
		Indices:  append([]uint32(nil), m.Indices...),
		Count:    len(m.Indices),
	}
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices) / mesh.Stride
}

// FrameBuffer holds the rendering target as flat slices for cache locality.
// ZBuf stores 1/w per pixel; larger is nearer and 0 is empty.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
	ZBuf   []float32
}

// NewFrameBuffer allocates a transparent color buffer and empty z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float32, n),
	}
}

// Clear fills the color buffer with c and empties the z-buffer.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
	clear(fb.ZBuf)
}

// Image copies the color buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
