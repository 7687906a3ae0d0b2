package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"objscene/internal/importer"
	"objscene/internal/obj"
)

func main() {
	verbose := flag.Bool("v", false, "Also list groups and materials")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj [-v] file.obj...")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := inspect(path, *verbose); err != nil {
			failed++
			var ie *importer.Error
			if errors.As(err, &ie) {
				log.Warn("import failed", "path", path, "kind", ie.Kind, "err", ie.Err)
			} else {
				log.Warn("import failed", "path", path, "err", err)
			}
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func inspect(path string, verbose bool) error {
	doc, err := obj.Parse(path, obj.DefaultOptions())
	if err != nil {
		return &importer.Error{Kind: importer.KindParseFailure, Path: path, Face: -1, Corner: -1, Err: err}
	}
	m, err := importer.ImportDocument(doc)
	if err != nil {
		return err
	}

	corners := doc.CornerCount()
	lo, hi := m.Bounds()
	fmt.Printf("\n=== %s ===\n", path)
	fmt.Printf("  positions=%d normals=%d texcoords=%d faces=%d\n",
		len(doc.Positions), len(doc.Normals), len(doc.TexCoords), len(doc.Faces))
	fmt.Printf("  corners=%d unique=%d", corners, len(m.Vertices))
	if corners > 0 {
		fmt.Printf(" (%.1f%% reused)", 100*float64(corners-len(m.Vertices))/float64(corners))
	}
	fmt.Println()
	fmt.Printf("  triangles=%d indices=%d\n", m.TriangleCount(), len(m.Indices))
	fmt.Printf("  bounds=[%.3f %.3f %.3f]..[%.3f %.3f %.3f]\n",
		lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])

	if verbose {
		for _, g := range doc.Groups {
			fmt.Printf("  group %s\n", g)
		}
		for _, mtl := range doc.Materials {
			fmt.Printf("  material %s\n", mtl)
		}
		for _, lib := range doc.MaterialLibs {
			fmt.Printf("  mtllib %s\n", lib)
		}
	}
	return nil
}
