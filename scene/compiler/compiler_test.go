package compiler

import (
	"testing"

	"go.viam.com/test"

	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New("test")
	cam, err := scene.NewCamera(types.XYZ(0, 0, 10), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0))
	test.That(t, err, test.ShouldBeNil)
	sc.Camera = cam
	sc.ViewPlane = scene.ViewPlane{Distance: 10, Width: 4, Height: 4}
	test.That(t, sc.AddGeometries(mustSphere(t, types.XYZ(0, 0, 0), 1), mustSphere(t, types.XYZ(3, 0, 0), 1)), test.ShouldBeNil)
	return sc
}

func TestCompile(t *testing.T) {
	sc := testScene(t)
	test.That(t, sc.Compiled(), test.ShouldBeFalse)

	err := Compile(sc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sc.Compiled(), test.ShouldBeTrue)
	test.That(t, sc.BVH.Leafs(), test.ShouldEqual, 2)

	stats := sc.Stats()
	test.That(t, stats.TotalSurfaces(), test.ShouldEqual, 2)
	test.That(t, stats.Surfaces[scene.SphereSurface], test.ShouldEqual, 2)
	test.That(t, stats.BvhNodes, test.ShouldEqual, 3)

	// Compiled scenes are frozen
	test.That(t, Compile(sc), test.ShouldEqual, scene.ErrSceneCompiled)
	test.That(t, sc.AddGeometries(mustSphere(t, types.XYZ(0, 5, 0), 1)), test.ShouldEqual, scene.ErrSceneCompiled)
	test.That(t, sc.AddLights(&scene.DirectionalLight{}), test.ShouldEqual, scene.ErrSceneCompiled)

	hit, found := sc.Nearest(types.Ray{Origin: types.XYZ(0, 0, 10), Direction: types.XYZ(0, 0, -1)})
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, hit.Point.ApproxEqual(types.XYZ(0, 0, 1)), test.ShouldBeTrue)
}

func TestCompileValidation(t *testing.T) {
	sc := testScene(t)
	sc.Camera = nil
	test.That(t, Compile(sc), test.ShouldEqual, ErrNoCamera)
	test.That(t, sc.Compiled(), test.ShouldBeFalse)

	sc = testScene(t)
	sc.ViewPlane.Distance = 0
	test.That(t, Compile(sc), test.ShouldEqual, scene.ErrInvalidViewPlane)
}
