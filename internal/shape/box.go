package shape

import (
	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/mesh"
)

// boxFaces lists each face normal with two in-plane axes whose cross
// product is the normal, so (0,1,2),(0,2,3) winds counter-clockwise seen
// from outside.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

var boxCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Box builds an axis-aligned cube with the given half extent: 4 vertices per
// face so each face keeps its own normal and a full 0..1 texture.
func Box(halfExtent float32) *mesh.IndexedMesh {
	m := &mesh.IndexedMesh{
		Vertices: make([]mesh.Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(m.Vertices))
		for _, c := range boxCorners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(halfExtent)
			m.Vertices = append(m.Vertices, mesh.Vertex{
				Position: p,
				Normal:   n,
				TexCoord: mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
