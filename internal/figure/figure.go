// Package figure poses a dog built from scaled copies of one sphere mesh.
//
// The pose is a plain value advanced by Step; Parts turns a pose into the
// per-part model transforms. Nothing here touches mesh data.
package figure

import (
	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/motion"
)

// Rates are per second, tuned to match 60 steps per second of the per-frame
// increments the figure was designed with.
const (
	DriveSpeed     = 1.2   // units per second along Z
	LegSwingRate   = 360.0 // degrees per second
	LegSwingBound  = 20.0
	TailWiggleRate = 102.0
	TailWiggleBnd  = 8.0
)

// Drive is the movement input for one step.
type Drive int

const (
	Idle Drive = iota
	Forward
	Backward
)

// Pose is the animation state of one dog.
type Pose struct {
	Offset         float32 // Z position of the body
	Legs           motion.Oscillator
	TailWiggle     motion.Oscillator
	TailVertical   float32 // degrees
	TailHorizontal float32 // degrees
}

// NewPose returns the resting pose at the given Z offset.
func NewPose(offset float32) Pose {
	return Pose{
		Offset:       offset,
		Legs:         motion.Oscillator{Rate: LegSwingRate, Bound: LegSwingBound, Forward: true},
		TailWiggle:   motion.Oscillator{Rate: TailWiggleRate, Bound: TailWiggleBnd, Forward: true},
		TailVertical: -10,
	}
}

// Step advances p by dt seconds. The tail always wiggles; the legs swing
// only while the dog is driven.
func Step(p Pose, dt float32, d Drive) Pose {
	p.TailWiggle = p.TailWiggle.Step(dt)
	switch d {
	case Forward:
		p.Offset += DriveSpeed * dt
		p.Legs = p.Legs.Step(dt)
	case Backward:
		p.Offset -= DriveSpeed * dt
		p.Legs = p.Legs.Step(dt)
	}
	return p
}

// Part is one sphere instance of the figure.
type Part struct {
	Name  string
	Model mgl32.Mat4
	Color mgl32.Vec3 // multiplies the texture; zero means black
}

const k = 0.3 // head and limb proportions are authored in units of k

var (
	white = mgl32.Vec3{1, 1, 1}
	black = mgl32.Vec3{0, 0, 0}
	xAxis = mgl32.Vec3{1, 0, 0}
	yAxis = mgl32.Vec3{0, 1, 0}
)

func trs(t mgl32.Vec3, s mgl32.Vec3, rots ...mgl32.Mat4) mgl32.Mat4 {
	m := mgl32.Translate3D(t[0], t[1], t[2])
	for _, r := range rots {
		m = m.Mul4(r)
	}
	return m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

func rot(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis)
}

// Parts returns the model transforms of every part for pose p, in draw order:
// torso, four legs, tail, head, snout, two ears, two eyes.
func Parts(p Pose) []Part {
	z := p.Offset
	legs := p.Legs.Value
	legScale := mgl32.Vec3{0.5 * k, 2.0 * k, 0.5 * k}
	earScale := mgl32.Vec3{0.5 * k, k, 0.5 * k}
	eyeScale := mgl32.Vec3{0.25 * k, 0.25 * k, 0.25 * k}
	const hip = 1.5 - 2.5*k

	return []Part{
		{"torso", trs(mgl32.Vec3{0, 1.5, z}, mgl32.Vec3{0.6, 0.6, 1.2}), white},

		{"leg.front.left", trs(mgl32.Vec3{-k, hip, -2*k + z}, legScale, rot(legs, xAxis)), white},
		{"leg.front.right", trs(mgl32.Vec3{k, hip, -2*k + z}, legScale, rot(-legs, xAxis)), white},
		{"leg.back.right", trs(mgl32.Vec3{k, hip, 2*k + z}, legScale, rot(legs, xAxis)), white},
		{"leg.back.left", trs(mgl32.Vec3{-k, hip, 2*k + z}, legScale, rot(-legs, xAxis)), white},

		{"tail", trs(mgl32.Vec3{0, 1.5, -3.8*k + z}, mgl32.Vec3{0.5 * k, 0.5 * k, 1.8 * k},
			rot(-30, xAxis),
			rot(p.TailVertical, xAxis),
			rot(p.TailHorizontal, yAxis),
			rot(p.TailWiggle.Value, yAxis),
		), white},

		{"head", trs(mgl32.Vec3{0, 2.5*k + 1.5, 3.0*k + z}, mgl32.Vec3{1.5 * k, 1.55 * k, 1.6 * k}), white},
		{"snout", trs(mgl32.Vec3{0, 2.2*k + 1.5, 4.2*k + z}, mgl32.Vec3{0.8 * k, 0.5 * k, 1.5 * k}), white},

		{"ear.left", trs(mgl32.Vec3{-0.8 * k, 3.8*k + 1.5, 2.6*k + z}, earScale), white},
		{"ear.right", trs(mgl32.Vec3{0.8 * k, 3.8*k + 1.5, 2.6*k + z}, earScale), white},

		{"eye.right", trs(mgl32.Vec3{0.5 * k, 3.0*k + 1.5, 4.4*k + z}, eyeScale), black},
		{"eye.left", trs(mgl32.Vec3{-0.5 * k, 3.0*k + 1.5, 4.4*k + z}, eyeScale), black},
	}
}
