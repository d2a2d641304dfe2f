package builtin

import (
	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
)

func init() {
	register(Entry{
		Name:         "basic",
		Description:  "a sphere surrounded by four triangles lit only by ambient light",
		Width:        500,
		Height:       500,
		GridInterval: 50,
		GridColor:    yellow,
		build:        basicScene,
	})
	register(Entry{
		Name:         "multi-color",
		Description:  "the basic scene with emissive triangles",
		Width:        500,
		Height:       500,
		GridInterval: 50,
		GridColor:    white,
		build:        multiColorScene,
	})
	register(Entry{
		Name:        "two-spheres",
		Description: "a transparent sphere containing a smaller one under a spot light",
		Width:       500,
		Height:      500,
		build:       twoSpheresScene,
	})
	register(Entry{
		Name:        "mirrors",
		Description: "two spheres reflected by a pair of mirrors",
		Width:       500,
		Height:      500,
		build:       mirrorsScene,
	})
	register(Entry{
		Name:        "transparent-sphere",
		Description: "a transparent sphere casting a shadow on two triangles",
		Width:       600,
		Height:      600,
		build:       transparentSphereScene,
	})
	register(Entry{
		Name:          "soft-shadows",
		Description:   "a sphere casting a soft shadow from an area spot light",
		Width:         600,
		Height:        600,
		SuperSampling: true,
		Rays:          50,
		SoftShadows:   true,
		build:         softShadowsScene,
	})
	register(Entry{
		Name:        "checkerboard",
		Description: "a glossy checkerboard with a pyramid, a tube and spheres",
		Width:       500,
		Height:      500,
		build:       checkerboardScene,
	})
}

func basicScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 100, Width: 500, Height: 500}
	b.sc.Background = types.RGB(75, 127, 90)
	b.sc.Ambient = scene.AmbientLight{Color: types.RGB(255, 191, 191), Ka: 1}

	b.surface(scene.NewSphere(types.XYZ(0, 0, 100), 50, scene.DefaultMaterial, types.Black))
	cornerTriangles(b, [4]types.Color{})
}

func multiColorScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 100, Width: 500, Height: 500}
	b.sc.Background = types.Black
	b.sc.Ambient = scene.AmbientLight{Color: white, Ka: 0.2}

	b.surface(scene.NewSphere(types.XYZ(0, 0, 100), 50, scene.DefaultMaterial, types.Black))
	cornerTriangles(b, [4]types.Color{blue, types.Black, red, green})
}

// Add four triangles around the origin of the z=100 plane; one per quadrant.
func cornerTriangles(b *builder, emission [4]types.Color) {
	b.surface(scene.NewTriangle(types.XYZ(100, 0, 100), types.XYZ(0, 100, 100), types.XYZ(100, 100, 100), scene.DefaultMaterial, emission[0]))
	b.surface(scene.NewTriangle(types.XYZ(100, 0, 100), types.XYZ(0, -100, 100), types.XYZ(100, -100, 100), scene.DefaultMaterial, emission[1]))
	b.surface(scene.NewTriangle(types.XYZ(-100, 0, 100), types.XYZ(0, 100, 100), types.XYZ(-100, 100, 100), scene.DefaultMaterial, emission[2]))
	b.surface(scene.NewTriangle(types.XYZ(-100, 0, 100), types.XYZ(0, -100, 100), types.XYZ(-100, -100, 100), scene.DefaultMaterial, emission[3]))
}

func twoSpheresScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, -1000), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 1000, Width: 150, Height: 150}

	b.surface(scene.NewSphere(types.XYZ(0, 0, 50), 50, scene.Material{KD: 0.4, KS: 0.3, Shininess: 100, KT: 0.3}, blue))
	b.surface(scene.NewSphere(types.XYZ(0, 0, 50), 25, scene.Material{KD: 0.5, KS: 0.5, Shininess: 100}, red))

	b.light(scene.NewSpotLight(types.RGB(1000, 600, 0), types.XYZ(-100, 100, -500), types.XYZ(-1, 1, 2),
		scene.Attenuation{Constant: 1, Linear: 0.0004, Quadratic: 0.0000006}, 0, 1))
}

func mirrorsScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, -10000), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 10000, Width: 2500, Height: 2500}
	b.sc.Ambient = scene.AmbientLight{Color: white, Ka: 0.1}

	b.surface(scene.NewSphere(types.XYZ(-950, 900, 1000), 400, scene.Material{KD: 0.25, KS: 0.25, Shininess: 20, KT: 0.5}, types.RGB(0, 0, 100)))
	b.surface(scene.NewSphere(types.XYZ(-950, 900, 1000), 200, scene.Material{KD: 0.25, KS: 0.25, Shininess: 20}, types.RGB(100, 20, 20)))
	b.surface(scene.NewTriangle(types.XYZ(1500, 1500, 1500), types.XYZ(-1500, -1500, 1500), types.XYZ(670, -670, -3000),
		scene.Material{KR: 1}, types.RGB(20, 20, 20)))
	b.surface(scene.NewTriangle(types.XYZ(1500, 1500, 1500), types.XYZ(-1500, -1500, 1500), types.XYZ(-1500, 1500, 2000),
		scene.Material{KR: 0.5}, types.RGB(20, 20, 20)))

	b.light(scene.NewSpotLight(types.RGB(1020, 400, 400), types.XYZ(-750, 750, 150), types.XYZ(-1, 1, 4),
		scene.Attenuation{Constant: 1, Linear: 0.00001, Quadratic: 0.000005}, 0, 1))
}

// Two triangles forming a wall behind a sphere; shared by the shadow scenes.
func shadowWall(b *builder, mat scene.Material) {
	b.surface(scene.NewTriangle(types.XYZ(-150, 150, 115), types.XYZ(150, 150, 135), types.XYZ(75, -75, 150), mat, types.Black))
	b.surface(scene.NewTriangle(types.XYZ(-150, 150, 115), types.XYZ(-70, -70, 140), types.XYZ(75, -75, 150), mat, types.Black))
}

func transparentSphereScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, -1000), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 1000, Width: 200, Height: 200}
	b.sc.Ambient = scene.AmbientLight{Color: white, Ka: 0.15}

	shadowWall(b, scene.Material{KD: 0.5, KS: 0.5, Shininess: 60})
	b.surface(scene.NewSphere(types.XYZ(60, -50, 50), 30, scene.Material{KD: 0.2, KS: 0.2, Shininess: 30, KT: 0.6}, blue))

	b.light(scene.NewSpotLight(types.RGB(700, 400, 400), types.XYZ(60, -50, 0), types.XYZ(0, 0, 1),
		scene.Attenuation{Constant: 1, Linear: 4e-5, Quadratic: 2e-7}, 0, 1))
}

func softShadowsScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, 0, -1000), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 1000, Width: 200, Height: 200}
	b.sc.Ambient = scene.AmbientLight{Color: white, Ka: 0.15}

	shadowWall(b, scene.Material{KS: 0.8, Shininess: 60})
	b.surface(scene.NewSphere(types.XYZ(0, 0, 115), 30, scene.Material{KD: 0.5, KS: 0.5, Shininess: 30}, blue))

	b.light(scene.NewSpotLight(types.RGB(700, 400, 400), types.XYZ(100, -40, -115), types.XYZ(-1, 1, 4),
		scene.Attenuation{Constant: 1, Linear: 4e-4, Quadratic: 2e-5}, 10, 1))
}

func checkerboardScene(b *builder) {
	b.camera(scene.NewCamera(types.XYZ(0, -220, -800), types.XYZ(0, 1.7, 10), types.XYZ(0, -10, 1.7)))
	b.sc.ViewPlane = scene.ViewPlane{Distance: 1000, Width: 150, Height: 150}
	b.sc.Ambient = scene.AmbientLight{Color: white, Ka: 0.15}

	const size = 50
	tile := scene.Material{KD: 0.2, KS: 0.2, Shininess: 30, KR: 0.2}
	c := -1
	for z := 0.0; z < 400; z += size {
		for x := -200.0; x < 200; x += size {
			emission := types.Black
			if c < 0 {
				emission = white.Scale(0.4)
			}
			b.surface(scene.NewPolygon(tile, emission,
				types.XYZ(x, 0, z), types.XYZ(x+size, 0, z), types.XYZ(x+size, 0, z+size), types.XYZ(x, 0, z+size),
			))
			c = -c
		}
		c = -c
	}

	var (
		glass = scene.Material{KD: 0.5, KS: 2, Shininess: 111, KR: 0.8}
		base  = []types.Vec3{types.XYZ(5, 0, 270), types.XYZ(40, 0, 209.3782), types.XYZ(75, 0, 270)}
		apex  = types.XYZ(40, -70, 290.21)
	)
	front := b.surface(scene.NewPolygon(glass, red.Scale(0.8), base[0], base[1], apex))
	b.surface(scene.NewPolygon(glass, red, base[1], base[2], apex))
	b.surface(scene.NewPolygon(glass, red, base[0], base[2], apex))

	axis, err := types.NewRay(types.XYZ(-60, -15, 350), types.XYZ(1, -1, 0))
	if err != nil && b.err == nil {
		b.err = err
	}
	b.surface(scene.NewTube(axis, 50, scene.Material{KD: 0.2, KS: 0.2, Shininess: 30, KR: 0.6}, blue))
	b.surface(scene.NewSphere(types.XYZ(-60, -15, 350), 15, scene.Material{KD: 0.2, KS: 0.2, Shininess: 30, KR: 0.6}, blue))
	b.surface(scene.NewSphere(types.XYZ(-10, -15, 270.21), 15, scene.Material{KD: 0.2, KS: 0.4, Shininess: 30, KT: 0.3, KR: 0.4}, blue))

	if b.err != nil {
		return
	}
	b.light(scene.NewSpotLight(types.RGB(500, 500, 500), types.XYZ(50, -60, 240.21), front.Normal(apex).Neg(),
		scene.Attenuation{Constant: 1, Linear: 4e-5, Quadratic: 2e-7}, 0, 1))
	b.light(scene.NewPointLight(types.RGB(200, 200, 200), types.XYZ(30, -200, 200),
		scene.Attenuation{Constant: 1, Linear: 4e-5, Quadratic: 2e-7}, 0))
}
