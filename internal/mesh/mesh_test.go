package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *IndexedMesh {
	return &IndexedMesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{1, 2, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{0, 2, -3}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestValidate(t *testing.T) {
	m := quad()
	require.NoError(t, m.Validate())
	assert.Equal(t, 2, m.TriangleCount())

	m.Indices = append(m.Indices, 1)
	assert.ErrorContains(t, m.Validate(), "multiple of 3")

	m.Indices = []uint32{0, 1, 4}
	assert.ErrorContains(t, m.Validate(), "out of range")

	empty := &IndexedMesh{}
	assert.NoError(t, empty.Validate())
}

func TestVertexEquality(t *testing.T) {
	a := Vertex{Position: mgl32.Vec3{1, 2, 3}}
	b := Vertex{Position: mgl32.Vec3{1, 2, 3}}
	c := Vertex{Position: mgl32.Vec3{1, 2, 3}, TexCoord: mgl32.Vec2{0, 1e-7}}

	seen := map[Vertex]uint32{a: 0}
	_, ok := seen[b]
	assert.True(t, ok)
	_, ok = seen[c]
	assert.False(t, ok, "no epsilon tolerance")
}

func TestBounds(t *testing.T) {
	min, max := quad().Bounds()
	assert.Equal(t, mgl32.Vec3{0, 0, -3}, min)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, max)

	min, max = (&IndexedMesh{}).Bounds()
	assert.Equal(t, mgl32.Vec3{}, min)
	assert.Equal(t, mgl32.Vec3{}, max)
}

func TestInterleave(t *testing.T) {
	m := quad()
	buf := m.Interleave()
	require.Len(t, buf, len(m.Vertices)*Stride)

	// vertex 2: position, normal, texcoord
	assert.Equal(t, []float32{1, 2, 0, 0, 0, 1, 1, 1}, buf[2*Stride:3*Stride])
}

func TestTriangle(t *testing.T) {
	a, b, c := quad().Triangle(1)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, a.Position)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, b.Position)
	assert.Equal(t, mgl32.Vec3{0, 2, -3}, c.Position)
}
