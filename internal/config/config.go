// Package config loads the YAML render configuration and applies CLI
// overrides and defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"objscene/internal/camera"
	"objscene/internal/figure"
	"objscene/internal/trs"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	AssetsDir   string `yaml:"assets_dir"`
	ModelsDir   string `yaml:"models_dir"`
	TexturesDir string `yaml:"textures_dir"`
	OutputDir   string `yaml:"output_dir"`

	// Render settings
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	Frames      int     `yaml:"frames"`
	FPS         float32 `yaml:"fps"`
	Workers     int     `yaml:"workers"`

	Sphere     Sphere                    `yaml:"sphere"`
	Camera     Camera                    `yaml:"camera"`
	PauseLight bool                      `yaml:"pause_light"`
	SkyColor   *mgl32.Vec3               `yaml:"sky_color"`
	Objects    map[string]ObjectOverride `yaml:"objects"`
	Drive      []Segment                 `yaml:"drive"`
}

// Sphere sets the tessellation of the shared sphere mesh.
type Sphere struct {
	Radius float32 `yaml:"radius"`
	Slices uint32  `yaml:"slices"`
	Stacks uint32  `yaml:"stacks"`
}

// Camera is the starting camera. Nil fields take the camera defaults.
type Camera struct {
	Position *mgl32.Vec3 `yaml:"position"`
	Yaw      *float32    `yaml:"yaw"`
	Pitch    *float32    `yaml:"pitch"`
	FOV      *float32    `yaml:"fov"`
}

// ObjectOverride changes one tableau object by name.
type ObjectOverride struct {
	Placement trs.Override `yaml:",inline"`
	Texture   string       `yaml:"texture"`
	Hidden    bool         `yaml:"hidden"`
}

// Segment is one stretch of scripted input, held for Frames frames.
type Segment struct {
	Frames int        `yaml:"frames"`
	Dog    string     `yaml:"dog"`  // forward, backward or idle
	Move   []string   `yaml:"move"` // camera directions
	Look   mgl32.Vec2 `yaml:"look"` // pointer delta per frame
	Gear   string     `yaml:"gear"` // normal, fast or slow

	// Applied once, on the segment's first frame.
	LightRate int  `yaml:"light_rate"` // moving light rate key presses, negative slows
	Pause     bool `yaml:"pause"`      // toggle the moving light
}

// Load reads a YAML config file. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for i, s := range c.Drive {
		if _, err := ParseDrive(s.Dog); err != nil {
			return fmt.Errorf("drive[%d]: %w", i, err)
		}
		for _, m := range s.Move {
			if _, err := ParseDirection(m); err != nil {
				return fmt.Errorf("drive[%d]: %w", i, err)
			}
		}
		if _, err := ParseGear(s.Gear); err != nil {
			return fmt.Errorf("drive[%d]: %w", i, err)
		}
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsDir string
	OutputDir string
	Width     int
	Height    int
	Frames    int
	Workers   int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetsDir != "" {
		c.AssetsDir = flags.AssetsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	c.ModelsDir = underAssets(c.AssetsDir, c.ModelsDir, "models")
	c.TexturesDir = underAssets(c.AssetsDir, c.TexturesDir, "textures")
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if c.Sphere.Radius <= 0 {
		c.Sphere.Radius = 1
	}
	if c.Sphere.Slices < 3 {
		c.Sphere.Slices = 32
	}
	if c.Sphere.Stacks < 2 {
		c.Sphere.Stacks = 32
	}
	if c.SkyColor == nil {
		c.SkyColor = &mgl32.Vec3{0.4, 0.6, 0.9}
	}
}

func underAssets(assets, dir, def string) string {
	if dir == "" {
		return filepath.Join(assets, def)
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(assets, dir)
}

// DefaultCameraPosition overlooks the tableau from the south.
var DefaultCameraPosition = mgl32.Vec3{0, 30, 100}

// Build returns the configured starting camera.
func (c Camera) Build() camera.Camera {
	pos := DefaultCameraPosition
	if c.Position != nil {
		pos = *c.Position
	}
	cam := camera.New(pos)
	if c.Yaw != nil {
		cam.Yaw = *c.Yaw
	}
	if c.Pitch != nil {
		cam.Pitch = mgl32.Clamp(*c.Pitch, -89, 89)
	}
	if c.FOV != nil && *c.FOV > 0 && *c.FOV < 180 {
		cam.FOV = *c.FOV
	}
	return cam
}

// ParseDrive maps a dog action name to a figure.Drive. Empty is idle.
func ParseDrive(s string) (figure.Drive, error) {
	switch strings.ToLower(s) {
	case "", "idle":
		return figure.Idle, nil
	case "forward":
		return figure.Forward, nil
	case "backward":
		return figure.Backward, nil
	}
	return figure.Idle, fmt.Errorf("unknown dog action %q", s)
}

var directions = map[string]camera.Direction{
	"forward":  camera.Forward,
	"backward": camera.Backward,
	"left":     camera.Left,
	"right":    camera.Right,
	"up":       camera.Up,
	"down":     camera.Down,
}

// ParseDirection maps a camera direction name to a camera.Direction.
func ParseDirection(s string) (camera.Direction, error) {
	d, ok := directions[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown camera direction %q", s)
	}
	return d, nil
}

// ParseGear maps a speed name to a camera.Gear. Empty is normal.
func ParseGear(s string) (camera.Gear, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return camera.Normal, nil
	case "fast":
		return camera.Fast, nil
	case "slow":
		return camera.Slow, nil
	}
	return camera.Normal, fmt.Errorf("unknown gear %q", s)
}
