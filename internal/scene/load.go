package scene

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"objscene/internal/camera"
	"objscene/internal/config"
	"objscene/internal/figure"
	"objscene/internal/importer"
	"objscene/internal/motion"
	"objscene/internal/raster"
	"objscene/internal/shape"
)

// New assembles a scene from already loaded objects. sphere is the shared
// mesh the dog is built from; nil leaves the dog out.
func New(objects []Object, sphere *raster.Buffer, cam camera.Camera) *Scene {
	return &Scene{
		Objects: objects,
		Dog:     figure.NewPose(DogOffset),
		Sway:    motion.Oscillator{Rate: TreeSwayRate, Bound: TreeSwayBound, Forward: true},
		Light: motion.Orbit{
			Center: MovingLightCenter,
			Start:  MovingLightStart,
			Rate:   MovingLightRate,
		},
		Camera: cam,
		Sky:    skyColor(mgl32.Vec3{0.4, 0.6, 0.9}),
		sphere: sphere,
		base:   raster.DefaultLightConfig(),
	}
}

// Load builds the tableau described by cfg. OBJ models are imported in
// parallel; an object whose model fails to import is logged and left out.
// Only context cancellation makes Load fail.
func Load(ctx context.Context, cfg config.Config, log *slog.Logger) (*Scene, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	specs := ApplyOverrides(Tableau(), cfg.Objects, log)

	sphere := raster.Upload(shape.Sphere(cfg.Sphere.Radius, cfg.Sphere.Slices, cfg.Sphere.Stacks))
	buffers := map[string]*raster.Buffer{
		BuiltinSphere: sphere,
		BuiltinBox:    raster.Upload(shape.Box(1)),
	}

	var names []string
	for _, s := range specs {
		if _, ok := buffers[s.Model]; !ok && !slices.Contains(names, s.Model) {
			names = append(names, s.Model)
		}
	}
	slices.Sort(names)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for _, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := importer.Import(filepath.Join(cfg.ModelsDir, name))
			if err != nil {
				log.Warn("model import failed", "model", name, "err", err)
				return nil
			}
			log.Debug("model imported", "model", name,
				"vertices", len(m.Vertices), "triangles", m.TriangleCount())
			buf := raster.Upload(m)
			mu.Lock()
			buffers[name] = buf
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scene: load: %w", err)
	}

	objects := make([]Object, 0, len(specs))
	for _, s := range specs {
		buf, ok := buffers[s.Model]
		if !ok {
			log.Warn("skipping object", "name", s.Name, "model", s.Model)
			continue
		}
		objects = append(objects, Object{Spec: s, Buffer: buf})
	}
	log.Info("scene loaded", "objects", len(objects), "skipped", len(specs)-len(objects))

	sc := New(objects, sphere, cfg.Camera.Build())
	sc.PauseLight = cfg.PauseLight
	if cfg.SkyColor != nil {
		sc.Sky = skyColor(*cfg.SkyColor)
	}
	return sc, nil
}

// ApplyOverrides returns specs with the per-name overrides applied. Hidden
// objects are dropped; overrides naming no object are logged.
func ApplyOverrides(specs []ObjectSpec, overrides map[string]config.ObjectOverride, log *slog.Logger) []ObjectSpec {
	out := make([]ObjectSpec, 0, len(specs))
	seen := make(map[string]bool, len(overrides))
	for _, s := range specs {
		o, ok := overrides[s.Name]
		if !ok {
			out = append(out, s)
			continue
		}
		seen[s.Name] = true
		if o.Hidden {
			continue
		}
		if o.Texture != "" {
			s.Texture = o.Texture
		}
		s.Transform = s.Transform.Apply(o.Placement)
		out = append(out, s)
	}
	for name := range overrides {
		if !seen[name] && log != nil {
			log.Warn("override names no object", "name", name)
		}
	}
	return out
}

func skyColor(c mgl32.Vec3) color.NRGBA {
	to8 := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{to8(c[0]), to8(c[1]), to8(c[2]), 255}
}
