package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"objscene/internal/mesh"
)

// Write emits m as an OBJ document. Each mesh vertex becomes one v, vt and vn
// line, so every corner is written as "i/i/i".
func Write(w io.Writer, m *mesh.IndexedMesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("obj: write: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.Position[0]), ftoa(v.Position[1]), ftoa(v.Position[2]))
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(v.TexCoord[0]), ftoa(v.TexCoord[1]))
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(v.Normal[0]), ftoa(v.Normal[1]), ftoa(v.Normal[2]))
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// ftoa formats with the shortest representation that parses back to the
// same float32.
func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
