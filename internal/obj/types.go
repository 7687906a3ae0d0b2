package obj

import "github.com/go-gl/mathgl/mgl32"

// Ref is an optional zero-based index into an attribute array.
// Valid is false when the corner does not reference that attribute.
type Ref struct {
	Index int
	Valid bool
}

// Corner holds the attribute references of one face vertex.
// Position is always present but is not range-checked by the parser.
type Corner struct {
	Position int
	TexCoord Ref
	Normal   Ref
}

// Face is one polygon. After triangulation every face has 3 corners.
type Face struct {
	Corners  []Corner
	Group    string
	Material string
	Line     int // source line, for error reporting
}

// Document holds the attribute arrays and faces of a parsed OBJ file,
// in file order.
type Document struct {
	Positions    []mgl32.Vec3
	Normals      []mgl32.Vec3
	TexCoords    []mgl32.Vec2
	Faces        []Face
	Groups       []string
	Materials    []string
	MaterialLibs []string
}

// CornerCount returns the total number of face corners.
func (d *Document) CornerCount() int {
	n := 0
	for _, f := range d.Faces {
		n += len(f.Corners)
	}
	return n
}

// Options controls parsing.
type Options struct {
	// Triangulate splits polygons with more than 3 corners into a fan
	// around the first corner.
	Triangulate bool
}

// DefaultOptions returns the options used by the importer.
func DefaultOptions() Options {
	return Options{Triangulate: true}
}
