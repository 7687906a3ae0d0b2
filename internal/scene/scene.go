// Package scene composes the tableau: it loads the models, advances the
// animation state and turns it into draw calls.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/camera"
	"objscene/internal/figure"
	"objscene/internal/motion"
	"objscene/internal/raster"
)

// Object is a loaded tableau entry.
type Object struct {
	Spec   ObjectSpec
	Buffer *raster.Buffer
}

// Input is the user input for one step.
type Input struct {
	Dog         figure.Drive
	Move        []camera.Direction
	Look        mgl32.Vec2
	Gear        camera.Gear
	LightRate   float32 // added to the moving light's angular rate
	TogglePause bool
}

// Scene is the mutable state of a viewing session. It is not safe for
// concurrent use; take a Snapshot to render elsewhere.
type Scene struct {
	Objects    []Object
	Dog        figure.Pose
	Sway       motion.Oscillator
	Light      motion.Orbit
	Camera     camera.Camera
	PauseLight bool
	Sky        color.NRGBA

	sphere *raster.Buffer
	base   raster.LightConfig
}

// Step advances the scene by dt seconds.
func (s *Scene) Step(dt float32, in Input) {
	s.Dog = figure.Step(s.Dog, dt, in.Dog)
	s.Sway = s.Sway.Step(dt)

	if in.TogglePause {
		s.PauseLight = !s.PauseLight
	}
	s.Light.Rate += in.LightRate
	if !s.PauseLight {
		s.Light = s.Light.Step(dt)
	}

	s.Camera = s.Camera.Shift(in.Gear)
	for _, d := range in.Move {
		s.Camera = s.Camera.Move(d, dt)
	}
	if in.Look != (mgl32.Vec2{}) {
		s.Camera = s.Camera.Look(in.Look[0], in.Look[1])
	}
}

// Draws returns the draw calls for the current state. Background objects
// come first, then the tableau in order, then the dog.
func (s *Scene) Draws() []raster.DrawCall {
	calls := make([]raster.DrawCall, 0, len(s.Objects)+12)
	for _, bg := range []bool{true, false} {
		for _, o := range s.Objects {
			if o.Spec.Background == bg {
				calls = append(calls, s.drawCall(o))
			}
		}
	}
	if s.sphere != nil {
		for _, p := range figure.Parts(s.Dog) {
			calls = append(calls, raster.DrawCall{
				Buffer:  s.sphere,
				Model:   p.Model,
				Texture: DogTexture,
				Color:   p.Color,
			})
		}
	}
	return calls
}

func (s *Scene) drawCall(o Object) raster.DrawCall {
	t := o.Spec.Transform
	if o.Spec.Orbit {
		t.Translate = s.Light.Position()
	}
	model := t.Matrix()
	if o.Spec.Sway {
		// rotate about the object's own origin, outside its placement rotations
		p := t.Translate
		t.Translate = mgl32.Vec3{}
		model = mgl32.Translate3D(p[0], p[1], p[2]).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Sway.Value))).
			Mul4(t.Matrix())
	}
	return raster.DrawCall{
		Buffer:     o.Buffer,
		Model:      model,
		Texture:    o.Spec.Texture,
		Color:      o.Spec.Color,
		Unlit:      o.Spec.Unlit,
		Background: o.Spec.Background,
	}
}

// Lights returns the light setup for the current state: the base config
// plus the static and moving point lights.
func (s *Scene) Lights() raster.LightConfig {
	lc := s.base
	lc.Points = []raster.PointLight{
		{Position: StaticLightPosition, Color: StaticLightColor, Intensity: 1},
		{Position: s.Light.Position(), Color: MovingLightColor, Intensity: 1},
	}
	return lc
}

// Frame is an immutable snapshot of everything needed to render one image.
type Frame struct {
	Index      int
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Light      raster.LightConfig
	Sky        color.NRGBA
	Calls      []raster.DrawCall
}

// Snapshot freezes the current state as frame index. Buffers are shared,
// everything else is copied.
func (s *Scene) Snapshot(index int, aspect float32) Frame {
	return Frame{
		Index:      index,
		View:       s.Camera.View(),
		Projection: s.Camera.Projection(aspect),
		Light:      s.Lights(),
		Sky:        s.Sky,
		Calls:      s.Draws(),
	}
}
