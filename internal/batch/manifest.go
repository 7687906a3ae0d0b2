package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// Manifest lists the rendered frames of a run.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	FPS    float32         `json:"fps"`
	Frames []ManifestEntry `json:"frames"`
}

// NewManifest builds a manifest from run results. Image paths are relative
// to the output directory.
func NewManifest(width, height int, fps float32, results []Result) Manifest {
	m := Manifest{Width: width, Height: height, FPS: fps, Frames: make([]ManifestEntry, len(results))}
	for i, r := range results {
		m.Frames[i] = ManifestEntry{
			Frame: r.Index,
			Image: filepath.Base(r.Path),
			Error: r.Error,
		}
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
