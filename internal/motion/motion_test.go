package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOscillatorStaysNearBounds(t *testing.T) {
	o := Oscillator{Rate: 6, Bound: 20, Forward: true}
	lo, hi := float32(0), float32(0)
	flips := 0
	prev := o.Forward
	for i := 0; i < 500; i++ {
		o = o.Step(1)
		if o.Value < lo {
			lo = o.Value
		}
		if o.Value > hi {
			hi = o.Value
		}
		if o.Forward != prev {
			flips++
			prev = o.Forward
		}
	}
	assert.LessOrEqual(t, hi, float32(20+6))
	assert.GreaterOrEqual(t, lo, float32(-20-6))
	assert.Greater(t, flips, 10)
}

func TestOscillatorPingPong(t *testing.T) {
	o := Oscillator{Value: 7, Rate: 2, Bound: 8, Forward: true}
	o = o.Step(1)
	assert.Equal(t, float32(9), o.Value)
	assert.True(t, o.Forward)

	o = o.Step(1)
	assert.Equal(t, float32(7), o.Value)
	assert.False(t, o.Forward)
}

func TestOscillatorVariableStep(t *testing.T) {
	// a large overshoot followed by small steps must not stick outside the bound
	o := Oscillator{Value: 7, Rate: 10, Bound: 8, Forward: true}
	o = o.Step(1)
	assert.Equal(t, float32(17), o.Value)
	for i := 0; i < 5; i++ {
		o = o.Step(0.1)
		assert.False(t, o.Forward)
	}
	assert.InDelta(t, 12, o.Value, 1e-4)
}

func TestOscillatorIsPure(t *testing.T) {
	o := Oscillator{Value: 1, Rate: 1, Bound: 5, Forward: true}
	_ = o.Step(1)
	assert.Equal(t, float32(1), o.Value)
}

func TestOrbit(t *testing.T) {
	o := Orbit{Center: mgl32.Vec3{0, 0, 20}, Start: mgl32.Vec3{3, 5, 15}, Rate: 90}
	r := o.Start.Sub(o.Center).Len()

	assert.Equal(t, o.Start, o.Position())
	for i := 0; i < 10; i++ {
		o = o.Step(0.5)
		p := o.Position()
		assert.InDelta(t, r, p.Sub(o.Center).Len(), 1e-4)
		assert.Equal(t, float32(5), p[1])
	}
	assert.InDelta(t, 90, o.Angle, 1e-3)

	quarter := Orbit{Center: mgl32.Vec3{}, Start: mgl32.Vec3{1, 0, 0}, Angle: 90}
	p := quarter.Position()
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 1, p[2], 1e-6)
}

func TestOrbitWrapsNegative(t *testing.T) {
	o := Orbit{Rate: -30}
	o = o.Step(1)
	assert.InDelta(t, 330, o.Angle, 1e-4)
}
