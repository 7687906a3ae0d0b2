// Package camera implements a yaw/pitch fly camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement key.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultYaw         = -90.0
	DefaultSpeed       = 25.0 // units per second
	DefaultSensitivity = 0.1  // degrees per input unit
	DefaultFOV         = 45.0
	Near               = 0.1
	Far                = 500.0
	maxPitch           = 89.0
)

// Gear selects the movement speed.
type Gear int

const (
	Normal Gear = iota
	Fast
	Slow
)

var gearSpeed = map[Gear]float32{
	Normal: DefaultSpeed,
	Fast:   DefaultSpeed * 4,
	Slow:   DefaultSpeed / 4,
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera looks along the direction given by Yaw and Pitch (degrees).
// Yaw -90 looks down -Z.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	FOV         float32 // vertical, degrees
}

// New returns a camera at pos looking down -Z.
func New(pos mgl32.Vec3) Camera {
	return Camera{
		Position:    pos,
		Yaw:         DefaultYaw,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		FOV:         DefaultFOV,
	}
}

// Front is the unit view direction.
func (c Camera) Front() mgl32.Vec3 {
	y, p := mgl32.DegToRad(c.Yaw), mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}.Normalize()
}

// Right is the unit vector to the camera's right, parallel to the ground.
func (c Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Move translates the camera by Speed*dt along d. Up and Down move along
// world Y.
func (c Camera) Move(d Direction, dt float32) Camera {
	v := c.Speed * dt
	switch d {
	case Forward:
		c.Position = c.Position.Add(c.Front().Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.Front().Mul(v))
	case Right:
		c.Position = c.Position.Add(c.Right().Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.Right().Mul(v))
	case Up:
		c.Position = c.Position.Add(worldUp.Mul(v))
	case Down:
		c.Position = c.Position.Sub(worldUp.Mul(v))
	}
	return c
}

// Shift sets Speed for g. Unknown gears keep the current speed.
func (c Camera) Shift(g Gear) Camera {
	if s, ok := gearSpeed[g]; ok {
		c.Speed = s
	}
	return c
}

// Look turns the camera by a pointer delta. Positive dy looks up. Pitch is
// clamped so the view never flips over the pole.
func (c Camera) Look(dx, dy float32) Camera {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	return c
}

// View returns the world-to-eye matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, Near, Far)
}
