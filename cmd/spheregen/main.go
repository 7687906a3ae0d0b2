package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"

	"objscene/internal/obj"
	"objscene/internal/shape"
)

func main() {
	radius := flag.Float64("radius", 1, "Sphere radius")
	slices := flag.Uint("slices", 32, "Longitude segments (>= 3)")
	stacks := flag.Uint("stacks", 32, "Latitude rings (>= 2)")
	out := flag.String("o", "", "Write the mesh as OBJ to this file")
	flag.Parse()

	if err := checkArgs(*radius, *slices, *stacks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	m := shape.Sphere(float32(*radius), uint32(*slices), uint32(*stacks))
	fmt.Printf("vertices=%d indices=%d triangles=%d\n", len(m.Vertices), len(m.Indices), m.TriangleCount())

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(f)
	if err := obj.Write(w, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

// checkArgs rejects tessellations that do not fit the uint32 index range.
func checkArgs(radius float64, slices, stacks uint) error {
	switch {
	case radius <= 0:
		return fmt.Errorf("radius must be > 0, got %g", radius)
	case slices < 3 || slices > math.MaxUint32:
		return fmt.Errorf("slices must be in [3, %d], got %d", uint64(math.MaxUint32), slices)
	case stacks < 2 || stacks > math.MaxUint32:
		return fmt.Errorf("stacks must be in [2, %d], got %d", uint64(math.MaxUint32), stacks)
	}
	return nil
}
