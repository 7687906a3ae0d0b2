package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"objscene/internal/raster"
	"objscene/internal/scene"
	"objscene/internal/shape"
)

func testFrames(n int) []scene.Frame {
	ball := raster.Upload(shape.Sphere(1, 12, 6))
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	frames := make([]scene.Frame, n)
	for i := range frames {
		frames[i] = scene.Frame{
			Index:      i,
			View:       view,
			Projection: proj,
			Light:      raster.DefaultLightConfig(),
			Sky:        color.NRGBA{102, 153, 230, 255},
			Calls: []raster.DrawCall{{
				Buffer: ball,
				Model:  mgl32.Translate3D(float32(i)*0.1, 0, 0),
				Color:  mgl32.Vec3{1, 0.5, 0.2},
			}},
		}
	}
	return frames
}

func TestRunWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var progress bytes.Buffer
	cfg := Config{OutputDir: dir, Width: 32, Height: 16, Supersample: 2, Workers: 3, Progress: &progress}

	results, err := Run(context.Background(), cfg, testFrames(5))
	require.NoError(t, err)
	require.Len(t, results, 5)

	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, filepath.Join(dir, FrameName(i)), r.Path)

		f, err := os.Open(r.Path)
		require.NoError(t, err)
		wc, err := webp.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 32, wc.Width)
		assert.Equal(t, 16, wc.Height)
	}
	assert.NotEmpty(t, progress.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{OutputDir: t.TempDir(), Width: 8, Height: 8}, testFrames(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBadOutputDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err := Run(context.Background(), Config{OutputDir: filepath.Join(file, "sub"), Width: 8, Height: 8}, testFrames(1))
	assert.ErrorContains(t, err, "batch: output dir")
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "frame_0000.webp", FrameName(0))
	assert.Equal(t, "frame_0042.webp", FrameName(42))
	assert.Equal(t, "frame_12345.webp", FrameName(12345))
}

func TestManifest(t *testing.T) {
	results := []Result{
		{Index: 0, Path: "/tmp/x/frame_0000.webp", Success: true},
		{Index: 1, Path: "/tmp/x/frame_0001.webp", Error: "disk full"},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, NewManifest(640, 360, 60, results)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, 640, m.Width)
	assert.Equal(t, float32(60), m.FPS)
	require.Len(t, m.Frames, 2)
	assert.Equal(t, "frame_0000.webp", m.Frames[0].Image)
	assert.Empty(t, m.Frames[0].Error)
	assert.Equal(t, "disk full", m.Frames[1].Error)
}
