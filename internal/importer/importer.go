// Package importer turns a parsed OBJ document into a deduplicated
// indexed mesh.
//
// Every face corner resolves to a mesh.Vertex. Corners that resolve to the
// same vertex share one index. Missing normals and texcoords become zero
// vectors; no normals are synthesized. The importer does not triangulate:
// faces must already be triangles.
package importer

import (
	"fmt"

	"objscene/internal/mesh"
	"objscene/internal/obj"
)

// Import parses the OBJ file at path and builds an indexed mesh from it.
// On failure it returns a nil mesh and an *Error.
func Import(path string) (*mesh.IndexedMesh, error) {
	doc, err := obj.Parse(path, obj.DefaultOptions())
	if err != nil {
		return nil, &Error{Kind: KindParseFailure, Path: path, Face: -1, Corner: -1, Err: err}
	}
	m, err := ImportDocument(doc)
	if err != nil {
		if ie, ok := err.(*Error); ok {
			ie.Path = path
		}
		return nil, err
	}
	return m, nil
}

// ImportDocument builds an indexed mesh from an already parsed document.
func ImportDocument(doc *obj.Document) (*mesh.IndexedMesh, error) {
	corners := doc.CornerCount()
	m := &mesh.IndexedMesh{
		Indices: make([]uint32, 0, corners),
	}
	unique := make(map[mesh.Vertex]uint32)

	for fi, face := range doc.Faces {
		if len(face.Corners) != 3 {
			return nil, &Error{
				Kind:   KindUnsupportedFace,
				Face:   fi,
				Corner: -1,
				Err:    fmt.Errorf("line %d: %d corners, want 3", face.Line, len(face.Corners)),
			}
		}
		for ci, c := range face.Corners {
			v, kind, err := resolve(doc, c)
			if err != nil {
				return nil, &Error{Kind: kind, Face: fi, Corner: ci, Err: err}
			}

			idx, ok := unique[v]
			if !ok {
				idx = uint32(len(m.Vertices))
				unique[v] = idx
				m.Vertices = append(m.Vertices, v)
			}
			m.Indices = append(m.Indices, idx)
		}
	}
	return m, nil
}

// resolve builds the vertex for one corner. A present but out of range
// normal or texcoord reference means the document is malformed.
func resolve(doc *obj.Document, c obj.Corner) (mesh.Vertex, Kind, error) {
	if c.Position < 0 || c.Position >= len(doc.Positions) {
		return mesh.Vertex{}, KindMissingRequiredAttribute,
			fmt.Errorf("position index %d out of range (%d positions)", c.Position, len(doc.Positions))
	}

	v := mesh.Vertex{Position: doc.Positions[c.Position]}
	if c.Normal.Valid {
		if c.Normal.Index < 0 || c.Normal.Index >= len(doc.Normals) {
			return mesh.Vertex{}, KindParseFailure,
				fmt.Errorf("normal index %d out of range (%d normals)", c.Normal.Index, len(doc.Normals))
		}
		v.Normal = doc.Normals[c.Normal.Index]
	}
	if c.TexCoord.Valid {
		if c.TexCoord.Index < 0 || c.TexCoord.Index >= len(doc.TexCoords) {
			return mesh.Vertex{}, KindParseFailure,
				fmt.Errorf("texcoord index %d out of range (%d texcoords)", c.TexCoord.Index, len(doc.TexCoords))
		}
		v.TexCoord = doc.TexCoords[c.TexCoord.Index]
	}
	return v, 0, nil
}
