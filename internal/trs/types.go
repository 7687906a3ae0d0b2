// Package trs describes object placements as translate, rotate, scale
// triples that can be written in YAML config and merged with overrides.
package trs

import "github.com/go-gl/mathgl/mgl32"

// Axes used by the built-in placements.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Rotation is a rotation of Degrees about Axis.
type Rotation struct {
	Axis    mgl32.Vec3 `yaml:"axis"`
	Degrees float32    `yaml:"degrees"`
}

// Transform places an object in the world. Rotations apply in list order,
// outermost first, and all of them apply after scaling.
type Transform struct {
	Translate mgl32.Vec3 `yaml:"translate"`
	Scale     mgl32.Vec3 `yaml:"scale"`
	Rotate    []Rotation `yaml:"rotate,omitempty"`
}

// Override is a partial Transform. Nil fields keep the base value.
type Override struct {
	Translate *mgl32.Vec3 `yaml:"translate"`
	Scale     *mgl32.Vec3 `yaml:"scale"`
	Rotate    []Rotation  `yaml:"rotate"`
}
