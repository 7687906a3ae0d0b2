package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approxVec(t *testing.T, want, got mgl32.Vec3, tol float64) {
	t.Helper()
	for k := range want {
		assert.InDelta(t, want[k], got[k], tol, "component %d of %v vs %v", k, want, got)
	}
}

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		slices, stacks uint32
	}{
		{3, 2}, {4, 3}, {8, 5}, {32, 32}, {17, 9},
	}
	for _, tt := range tests {
		m := Sphere(1, tt.slices, tt.stacks)
		s, k := int(tt.slices), int(tt.stacks)
		assert.Len(t, m.Vertices, 2+(k-1)*(s+1), "slices=%d stacks=%d", s, k)
		assert.Len(t, m.Indices, 3*s+6*s*(k-2)+3*s, "slices=%d stacks=%d", s, k)
		assert.NoError(t, m.Validate())
	}
}

func TestSphereFourSlicesThreeStacks(t *testing.T) {
	m := Sphere(1.0, 4, 3)
	assert.Len(t, m.Vertices, 12)
	assert.Len(t, m.Indices, 48)
}

func TestSpherePoles(t *testing.T) {
	m := Sphere(2.5, 10, 6)
	top := m.Vertices[0]
	bottom := m.Vertices[len(m.Vertices)-1]

	assert.Equal(t, mgl32.Vec3{0, 2.5, 0}, top.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, top.Normal)
	assert.Equal(t, mgl32.Vec2{0, 0}, top.TexCoord)
	assert.Equal(t, mgl32.Vec3{0, -2.5, 0}, bottom.Position)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, bottom.Normal)
	assert.Equal(t, mgl32.Vec2{0, 1}, bottom.TexCoord)
}

func TestSphereRadiusAndNormals(t *testing.T) {
	const radius = 3.0
	m := Sphere(radius, 24, 12)
	for i, v := range m.Vertices[1 : len(m.Vertices)-1] {
		assert.InEpsilon(t, radius, v.Position.Len(), 1e-5, "vertex %d", i+1)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
		approxVec(t, v.Position.Mul(1.0/radius), v.Normal, 1e-5)
	}
}

func TestSphereTexcoordsAndSeam(t *testing.T) {
	const slices, stacks = 8, 4
	m := Sphere(1, slices, stacks)
	ring := slices + 1

	for i := 0; i < stacks-1; i++ {
		first := m.Vertices[1+i*ring]
		last := m.Vertices[1+i*ring+slices]
		// seam vertices share a position but not u
		approxVec(t, first.Position, last.Position, 1e-5)
		assert.Equal(t, float32(0), first.TexCoord[0])
		assert.InDelta(t, 1, last.TexCoord[0], 1e-6)
		assert.InDelta(t, float32(i+1)/stacks, first.TexCoord[1], 1e-6)
	}
}

func TestSphereIndexPattern(t *testing.T) {
	m := Sphere(1, 4, 3)
	// top cap
	assert.Equal(t, []uint32{0, 2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4}, m.Indices[:12])
	// first body quad: A=1 B=2 C=6 D=7
	assert.Equal(t, []uint32{1, 2, 6, 6, 2, 7}, m.Indices[12:18])
	// bottom cap: south pole 11, last ring starts at 6
	assert.Equal(t, []uint32{11, 6, 7, 11, 7, 8, 11, 8, 9, 11, 9, 10}, m.Indices[36:])
}

func TestSphereWindingFacesOutward(t *testing.T) {
	m := Sphere(1, 16, 8)
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if n.Len() < 1e-9 {
			continue
		}
		centroid := a.Position.Add(b.Position).Add(c.Position)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d", i)
	}
}

func TestBox(t *testing.T) {
	m := Box(2)
	require.Len(t, m.Vertices, 24)
	require.Len(t, m.Indices, 36)
	require.NoError(t, m.Validate())

	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-2, -2, -2}, lo)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, hi)

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		approxVec(t, a.Normal, n, 1e-6)
	}
}
