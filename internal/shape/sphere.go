package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/mesh"
)

// Sphere builds a UV-sphere centered at the origin.
//
// Vertex order: the top pole, then stackCount-1 rings of sliceCount+1
// vertices from top to bottom (the seam vertex is repeated at theta=2π so it
// can carry u=1), then the bottom pole. Vertices are never deduplicated.
//
// The caller must pass radius > 0, sliceCount >= 3 and stackCount >= 2.
// Other values produce malformed geometry; they are not checked.
func Sphere(radius float32, sliceCount, stackCount uint32) *mesh.IndexedMesh {
	ringVertexCount := sliceCount + 1
	m := &mesh.IndexedMesh{
		Vertices: make([]mesh.Vertex, 0, 2+(stackCount-1)*ringVertexCount),
		Indices:  make([]uint32, 0, 6*sliceCount*(stackCount-1)),
	}

	// Poles have no unique texcoord; u is pinned to 0.
	m.Vertices = append(m.Vertices, mesh.Vertex{
		Position: mgl32.Vec3{0, radius, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		TexCoord: mgl32.Vec2{0, 0},
	})

	phiStep := math32.Pi / float32(stackCount)
	thetaStep := 2 * math32.Pi / float32(sliceCount)

	for i := uint32(1); i <= stackCount-1; i++ {
		phi := float32(i) * phiStep
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

		for j := uint32(0); j <= sliceCount; j++ {
			theta := float32(j) * thetaStep

			pos := mgl32.Vec3{
				radius * sinPhi * math32.Cos(theta),
				radius * cosPhi,
				radius * sinPhi * math32.Sin(theta),
			}
			m.Vertices = append(m.Vertices, mesh.Vertex{
				Position: pos,
				Normal:   pos.Normalize(),
				TexCoord: mgl32.Vec2{theta / (2 * math32.Pi), phi / math32.Pi},
			})
		}
	}

	m.Vertices = append(m.Vertices, mesh.Vertex{
		Position: mgl32.Vec3{0, -radius, 0},
		Normal:   mgl32.Vec3{0, -1, 0},
		TexCoord: mgl32.Vec2{0, 1},
	})

	// Top cap: pole to the first ring.
	for i := uint32(1); i <= sliceCount; i++ {
		m.Indices = append(m.Indices, 0, i+1, i)
	}

	// Body: quads between adjacent rings. Index 0 is the top pole.
	baseIndex := uint32(1)
	for i := uint32(0); i < stackCount-2; i++ {
		for j := uint32(0); j < sliceCount; j++ {
			a := baseIndex + i*ringVertexCount + j
			b := baseIndex + i*ringVertexCount + j + 1
			c := baseIndex + (i+1)*ringVertexCount + j
			d := baseIndex + (i+1)*ringVertexCount + j + 1
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}

	// Bottom cap: last ring to the pole, which was appended last.
	southPoleIndex := uint32(len(m.Vertices)) - 1
	baseIndex = southPoleIndex - ringVertexCount
	for i := uint32(0); i < sliceCount; i++ {
		m.Indices = append(m.Indices, southPoleIndex, baseIndex+i, baseIndex+i+1)
	}

	return m
}
