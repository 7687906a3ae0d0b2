package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of float32 values per vertex in the interleaved layout:
// position(3), normal(3), texcoord(2).
const Stride = 8

// Vertex is one unique combination of vertex attributes. It is comparable,
// so two vertices are equal only when every component matches exactly.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3 // zero when the source has no normal
	TexCoord mgl32.Vec2 // zero when the source has no texcoord
}

// IndexedMesh is a vertex list plus a flat triangle list indexing into it.
// Every three consecutive indices form one triangle with the source winding.
type IndexedMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Validate checks that the index count is a multiple of 3 and that every
// index refers to an existing vertex.
func (m *IndexedMesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// TriangleCount returns the number of triangles described by Indices.
func (m *IndexedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle t.
func (m *IndexedMesh) Triangle(t int) (a, b, c Vertex) {
	i := t * 3
	return m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// An empty mesh yields two zero vectors.
func (m *IndexedMesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v.Position[k] < min[k] {
				min[k] = v.Position[k]
			}
			if v.Position[k] > max[k] {
				max[k] = v.Position[k]
			}
		}
	}
	return min, max
}

// Interleave packs the vertices into one float32 slice, Stride values per
// vertex, in the attribute order a vertex buffer expects.
func (m *IndexedMesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*Stride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
