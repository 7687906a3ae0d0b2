package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"objscene/internal/trs"
)

// Built-in model names. Anything else is an OBJ path relative to the models
// directory.
const (
	BuiltinSphere = "builtin:sphere"
	BuiltinBox    = "builtin:box"
)

// ObjectSpec describes one object of the tableau.
type ObjectSpec struct {
	Name      string
	Model     string
	Texture   string
	Color     mgl32.Vec3
	Transform trs.Transform

	Sway       bool // rocks about Z with the shared tree sway
	Orbit      bool // translation follows the moving light
	Unlit      bool
	Background bool
}

var white = mgl32.Vec3{1, 1, 1}

// Reference light setup of the tableau.
var (
	StaticLightPosition = mgl32.Vec3{-20, 20, 20}
	StaticLightColor    = mgl32.Vec3{1, 1, 1}
	MovingLightStart    = mgl32.Vec3{3, 5, 15}
	MovingLightCenter   = mgl32.Vec3{0, 5, 20}
	MovingLightColor    = mgl32.Vec3{1, 0, 0}
)

// Animation rates in per-second units.
const (
	MovingLightRate = 60.0 // degrees per second
	LightRateStep   = 60.0 // change per rate key press
	TreeSwayRate    = 6.0
	TreeSwayBound   = 5.0
	DogOffset       = 20.0
	DogTexture      = "trunk.png"
)

// Tableau returns the fixed scene: skybox, trees, table, house and ground,
// dragons, crate, props and the two light spheres. The articulated dog is
// added by the Scene itself.
func Tableau() []ObjectSpec {
	specs := []ObjectSpec{
		{
			Name: "skybox", Model: BuiltinBox, Texture: "skybox.png", Color: white,
			Transform: trs.At(mgl32.Vec3{}).Scaled(50), Unlit: true, Background: true,
		},
	}

	for i, p := range []mgl32.Vec3{{-20, 0, -10}, {20, 0, -10}, {-20, 0, 10}, {20, 0, 10}} {
		place := trs.At(p).Scaled(2)
		specs = append(specs,
			ObjectSpec{Name: treeName("tree", i), Model: "tree.obj", Texture: "tree.png", Color: white, Transform: place, Sway: true},
			ObjectSpec{Name: treeName("trunk", i), Model: "trunk.obj", Texture: "trunk.png", Color: white, Transform: place, Sway: true},
		)
	}

	house := trs.At(mgl32.Vec3{}).Scaled(4).Rotated(-90, trs.AxisY)
	specs = append(specs,
		ObjectSpec{Name: "table", Model: "Table.obj", Texture: "Albedo_4K__slxoejhp.jpg", Color: white,
			Transform: trs.At(mgl32.Vec3{0, 2.5, 15}).Rotated(90, trs.AxisY)},
		ObjectSpec{Name: "house", Model: "House.obj", Texture: "aiStandardSurface1_baseColor.png", Color: white, Transform: house},
		ObjectSpec{Name: "ground", Model: "Plane.obj", Texture: "CartoonGrass.jpg", Color: white, Transform: house},

		ObjectSpec{Name: "dragon.left", Model: "dragon.obj", Texture: "default.png", Color: white,
			Transform: trs.At(mgl32.Vec3{-2, 2.5, 15}).Scaled(0.5)},
		ObjectSpec{Name: "dragon.right", Model: "dragon.obj", Texture: "default.png", Color: white,
			Transform: trs.At(mgl32.Vec3{1, 2.5, 15}).Scaled(0.5)},

		ObjectSpec{Name: "light.moving", Model: BuiltinSphere, Texture: "default.png", Color: MovingLightColor,
			Transform: trs.At(MovingLightStart).Scaled(0.5), Orbit: true, Unlit: true},
		ObjectSpec{Name: "light.static", Model: BuiltinSphere, Texture: "default.png", Color: StaticLightColor,
			Transform: trs.At(StaticLightPosition), Unlit: true},

		ObjectSpec{Name: "crate", Model: "cube.obj", Texture: "CrateDiffuse.png", Color: white,
			Transform: trs.At(mgl32.Vec3{-5, 1, 20})},

		ObjectSpec{Name: "wooden", Model: "wooden/wooden.obj", Texture: "wooden.png", Color: white,
			Transform: trs.At(mgl32.Vec3{})},
		ObjectSpec{Name: "plants", Model: "plants/plants.obj", Texture: "plants.png", Color: white,
			Transform: trs.At(mgl32.Vec3{0, 0, 5}).Scaled(0.01)},
		ObjectSpec{Name: "signature", Model: "signature.obj", Texture: "signature.jpg", Color: white,
			Transform: trs.At(mgl32.Vec3{0, 10, 10}).Rotated(90, trs.AxisX).Scaled(5)},
	)
	return specs
}

func treeName(kind string, i int) string {
	return fmt.Sprintf("%s.%d", kind, i)
}
