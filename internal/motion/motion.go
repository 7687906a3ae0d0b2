// Package motion holds small value-type animators. Each Step returns an
// updated copy and never mutates the receiver.
package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Oscillator swings Value back and forth between -Bound and +Bound at Rate
// units per second.
type Oscillator struct {
	Value   float32
	Rate    float32
	Bound   float32
	Forward bool // true while Value increases
}

// Step advances the oscillator by dt seconds. The direction flips once the
// value has passed the bound it was heading for, then the value moves.
func (o Oscillator) Step(dt float32) Oscillator {
	if o.Forward && o.Value > o.Bound {
		o.Forward = false
	} else if !o.Forward && o.Value < -o.Bound {
		o.Forward = true
	}
	if o.Forward {
		o.Value += o.Rate * dt
	} else {
		o.Value -= o.Rate * dt
	}
	return o
}

// Orbit circles Start around Center in the XZ plane.
type Orbit struct {
	Center mgl32.Vec3
	Start  mgl32.Vec3
	Angle  float32 // degrees
	Rate   float32 // degrees per second
}

// Step advances the orbit angle by dt seconds, wrapped to [0, 360).
func (o Orbit) Step(dt float32) Orbit {
	o.Angle = math32.Mod(o.Angle+o.Rate*dt, 360)
	if o.Angle < 0 {
		o.Angle += 360
	}
	return o
}

// Position returns the current point on the orbit. Y is kept from Start.
func (o Orbit) Position() mgl32.Vec3 {
	a := mgl32.DegToRad(o.Angle)
	s, c := math32.Sin(a), math32.Cos(a)
	dx := o.Start[0] - o.Center[0]
	dz := o.Start[2] - o.Center[2]
	return mgl32.Vec3{
		dx*c - dz*s + o.Center[0],
		o.Start[1],
		dx*s + dz*c + o.Center[2],
	}
}
