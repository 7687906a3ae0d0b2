package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objscene/internal/camera"
	"objscene/internal/figure"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
assets_dir: /data/assets
textures_dir: tex
width: 640
height: 360
pause_light: true
sky_color: [0, 0, 0]
sphere:
  slices: 16
  stacks: 8
camera:
  position: [1, 2, 3]
  yaw: -45
objects:
  crate:
    translate: [0, 1, 0]
    texture: wood.png
  house:
    hidden: true
drive:
  - frames: 30
    dog: forward
    move: [left, up]
    look: [2, -1]
    gear: fast
  - frames: 10
    light_rate: -2
    pause: true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Width)
	assert.True(t, cfg.PauseLight)
	assert.Equal(t, uint32(16), cfg.Sphere.Slices)
	require.NotNil(t, cfg.SkyColor)
	assert.Equal(t, mgl32.Vec3{}, *cfg.SkyColor)

	crate := cfg.Objects["crate"]
	require.NotNil(t, crate.Placement.Translate)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, *crate.Placement.Translate)
	assert.Nil(t, crate.Placement.Scale)
	assert.Equal(t, "wood.png", crate.Texture)
	assert.True(t, cfg.Objects["house"].Hidden)

	require.Len(t, cfg.Drive, 2)
	assert.Equal(t, []string{"left", "up"}, cfg.Drive[0].Move)
	assert.Equal(t, mgl32.Vec2{2, -1}, cfg.Drive[0].Look)
	assert.Equal(t, -2, cfg.Drive[1].LightRate)
	assert.True(t, cfg.Drive[1].Pause)

	cfg.Resolve(Flags{Width: 320})
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
	assert.Equal(t, filepath.Join("/data/assets", "models"), cfg.ModelsDir)
	assert.Equal(t, filepath.Join("/data/assets", "tex"), cfg.TexturesDir)

	cam := cfg.Camera.Build()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position)
	assert.Equal(t, float32(-45), cam.Yaw)
	assert.Equal(t, float32(camera.DefaultFOV), cam.FOV)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "widht: 10\n"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeConfig(t, "drive:\n  - dog: sideways\n"))
	assert.ErrorContains(t, err, `unknown dog action "sideways"`)

	_, err = Load(writeConfig(t, "drive:\n  - move: [north]\n"))
	assert.ErrorContains(t, err, "drive[0]")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, filepath.Join("assets", "models"), cfg.ModelsDir)
	assert.Equal(t, filepath.Join("assets", "textures"), cfg.TexturesDir)
	assert.Equal(t, "frames", cfg.OutputDir)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, float32(60), cfg.FPS)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, Sphere{Radius: 1, Slices: 32, Stacks: 32}, cfg.Sphere)
	assert.Equal(t, mgl32.Vec3{0.4, 0.6, 0.9}, *cfg.SkyColor)

	cam := cfg.Camera.Build()
	assert.Equal(t, DefaultCameraPosition, cam.Position)
	assert.Equal(t, float32(camera.DefaultYaw), cam.Yaw)
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Config{AssetsDir: "a", OutputDir: "o", Frames: 5, Workers: 3, ModelsDir: "/abs/models"}
	cfg.Resolve(Flags{AssetsDir: "b", OutputDir: "out", Frames: 9, Workers: 1})

	assert.Equal(t, "b", cfg.AssetsDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 9, cfg.Frames)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "/abs/models", cfg.ModelsDir)
}

func TestParsers(t *testing.T) {
	d, err := ParseDrive("Backward")
	require.NoError(t, err)
	assert.Equal(t, figure.Backward, d)

	dir, err := ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, camera.Down, dir)

	g, err := ParseGear("")
	require.NoError(t, err)
	assert.Equal(t, camera.Normal, g)

	_, err = ParseGear("warp")
	assert.Error(t, err)
}
