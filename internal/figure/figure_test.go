package figure

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func origin(m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

func partByName(t *testing.T, parts []Part, name string) Part {
	t.Helper()
	for _, p := range parts {
		if p.Name == name {
			return p
		}
	}
	require.Failf(t, "missing part", "%s", name)
	return Part{}
}

func TestPartsLayout(t *testing.T) {
	parts := Parts(NewPose(20))
	require.Len(t, parts, 12)

	torso := partByName(t, parts, "torso")
	assert.InDelta(t, 0, origin(torso.Model)[0], 1e-6)
	assert.InDelta(t, 1.5, origin(torso.Model)[1], 1e-6)
	assert.InDelta(t, 20, origin(torso.Model)[2], 1e-6)

	head := origin(partByName(t, parts, "head").Model)
	assert.InDelta(t, 2.25, head[1], 1e-5)
	assert.InDelta(t, 20.9, head[2], 1e-5)

	for _, name := range []string{"eye.left", "eye.right"} {
		assert.Equal(t, mgl32.Vec3{}, partByName(t, parts, name).Color)
	}
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, torso.Color)
}

func TestPartsMirror(t *testing.T) {
	parts := Parts(NewPose(0))
	pairs := [][2]string{
		{"ear.left", "ear.right"},
		{"eye.left", "eye.right"},
	}
	for _, pr := range pairs {
		l := origin(partByName(t, parts, pr[0]).Model)
		r := origin(partByName(t, parts, pr[1]).Model)
		assert.InDelta(t, -l[0], r[0], 1e-6, pr[0])
		assert.InDelta(t, l[1], r[1], 1e-6, pr[0])
		assert.InDelta(t, l[2], r[2], 1e-6, pr[0])
	}
}

func TestStepIdleOnlyWagsTail(t *testing.T) {
	p := NewPose(20)
	next := Step(p, 0.1, Idle)

	assert.Equal(t, p.Offset, next.Offset)
	assert.Equal(t, p.Legs, next.Legs)
	assert.InDelta(t, TailWiggleRate*0.1, next.TailWiggle.Value, 1e-4)
}

func TestStepDrive(t *testing.T) {
	p := NewPose(20)

	fwd := Step(p, 0.5, Forward)
	assert.InDelta(t, 20+DriveSpeed*0.5, fwd.Offset, 1e-5)
	assert.NotEqual(t, float32(0), fwd.Legs.Value)

	back := Step(p, 0.5, Backward)
	assert.InDelta(t, 20-DriveSpeed*0.5, back.Offset, 1e-5)

	// the input pose is untouched
	assert.Equal(t, float32(20), p.Offset)
}

func TestLegSwingMovesFeet(t *testing.T) {
	still := Parts(NewPose(0))
	p := NewPose(0)
	for i := 0; i < 3; i++ {
		p = Step(p, 1.0/60, Forward)
	}
	moving := Parts(p)

	foot := mgl32.Vec4{0, -1, 0, 1}
	a := still[1].Model.Mul4x1(foot).Vec3()
	b := moving[1].Model.Mul4x1(foot).Vec3()
	assert.Greater(t, b.Sub(a).Len(), float32(0.01))
}

func TestTailStaysBounded(t *testing.T) {
	p := NewPose(0)
	for i := 0; i < 600; i++ {
		p = Step(p, 1.0/60, Idle)
		assert.LessOrEqual(t, p.TailWiggle.Value, float32(TailWiggleBnd+TailWiggleRate/60+1e-3))
		assert.GreaterOrEqual(t, p.TailWiggle.Value, float32(-TailWiggleBnd-TailWiggleRate/60-1e-3))
	}
}
