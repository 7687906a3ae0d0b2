package trs

import "github.com/go-gl/mathgl/mgl32"

// At returns a placement at p with unit scale.
func At(p mgl32.Vec3) Transform {
	return Transform{Translate: p, Scale: mgl32.Vec3{1, 1, 1}}
}

// Scaled returns t with a uniform scale.
func (t Transform) Scaled(s float32) Transform {
	t.Scale = mgl32.Vec3{s, s, s}
	return t
}

// Rotated returns t with one more rotation appended.
func (t Transform) Rotated(deg float32, axis mgl32.Vec3) Transform {
	t.Rotate = append(append([]Rotation(nil), t.Rotate...), Rotation{Axis: axis, Degrees: deg})
	return t
}

// Matrix composes translate · rotations · scale. A zero Scale is treated as
// unit scale so a YAML entry may leave it out.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2])
	for _, r := range t.Rotate {
		if r.Degrees == 0 || r.Axis == (mgl32.Vec3{}) {
			continue
		}
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.Degrees), r.Axis.Normalize()))
	}
	s := t.Scale
	if s == (mgl32.Vec3{}) {
		s = mgl32.Vec3{1, 1, 1}
	}
	return m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// Apply merges o onto t. A non-nil Rotate list replaces the base rotations.
func (t Transform) Apply(o Override) Transform {
	if o.Translate != nil {
		t.Translate = *o.Translate
	}
	if o.Scale != nil {
		t.Scale = *o.Scale
	}
	if o.Rotate != nil {
		t.Rotate = append([]Rotation(nil), o.Rotate...)
	}
	return t
}
