package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/yanky319/Ray-tracing/types"
)

func mustCamera(t *testing.T, position, to, up types.Vec3) *Camera {
	t.Helper()
	cam, err := NewCamera(position, to, up)
	if err != nil {
		t.Fatal(err)
	}
	return cam
}

func TestNewCameraValidation(t *testing.T) {
	if _, err := NewCamera(types.Vec3{}, types.XYZ(0, 0, 1), types.XYZ(0, 1, 1)); err != ErrNotOrthogonal {
		t.Fatalf("expected ErrNotOrthogonal; got %v", err)
	}
	if _, err := NewCamera(types.Vec3{}, types.Vec3{}, types.XYZ(0, 1, 0)); err == nil {
		t.Fatal("expected camera with zero to vector to fail")
	}

	cam := mustCamera(t, types.Vec3{}, types.XYZ(0, 0, -3), types.XYZ(0, 2, 0))
	if !cam.To.ApproxEqual(types.XYZ(0, 0, -1)) || !cam.Up.ApproxEqual(types.XYZ(0, 1, 0)) {
		t.Fatalf("expected normalized to/up vectors; got %s/%s", cam.To, cam.Up)
	}
	if !cam.Right.ApproxEqual(types.XYZ(1, 0, 0)) {
		t.Fatalf("expected right vector (1, 0, 0); got %s", cam.Right)
	}
}

func TestConstructRay(t *testing.T) {
	cam := mustCamera(t, types.Vec3{}, types.XYZ(0, 0, -1), types.XYZ(0, 1, 0))
	vp := ViewPlane{Distance: 10, Width: 6, Height: 6}

	type spec struct {
		nx, ny, col, row int
		expTarget        types.Vec3
	}
	specs := []spec{
		// center of a 3x3 image
		{3, 3, 1, 1, types.XYZ(0, 0, -10)},
		// top left corner
		{3, 3, 0, 0, types.XYZ(-2, 2, -10)},
		// bottom right corner
		{3, 3, 2, 2, types.XYZ(2, -2, -10)},
		// 4x4 image has no pixel at the center
		{4, 4, 2, 1, types.XYZ(0.75, 0.75, -10)},
	}

	for index, s := range specs {
		ray := cam.ConstructRay(s.nx, s.ny, s.col, s.row, vp)
		exp := s.expTarget.MustNormalize()
		if !ray.Direction.ApproxEqual(exp) {
			t.Fatalf("[spec %d] expected direction %s; got %s", index, exp, ray.Direction)
		}
		if ray.Origin != cam.Position {
			t.Fatalf("[spec %d] expected ray to start at the camera", index)
		}
	}
}

func TestConstructBeam(t *testing.T) {
	cam := mustCamera(t, types.Vec3{}, types.XYZ(0, 0, -1), types.XYZ(0, 1, 0))
	vp := ViewPlane{Distance: 1, Width: 3, Height: 3}
	rnd := rand.New(rand.NewSource(3))

	for _, count := range []int{0, 1, 4, 7, 64} {
		rays := cam.ConstructBeam(3, 3, 0, 0, vp, count, rnd)
		if len(rays) != count+1 {
			t.Fatalf("[count %d] expected %d rays; got %d", count, count+1, len(rays))
		}
		if rays[0] != cam.ConstructRay(3, 3, 0, 0, vp) {
			t.Fatalf("[count %d] expected first ray to pass through the pixel center", count)
		}

		// All rays must pass through the top left pixel of the view plane.
		for i, ray := range rays {
			p := ray.Point(1 / -ray.Direction[2])
			if p[0] < -1.5 || p[0] > -0.5 || p[1] < 0.5 || p[1] > 1.5 {
				t.Fatalf("[count %d] expected ray %d to cross pixel (0, 0); crossed view plane at %s", count, i, p)
			}
		}
	}
}

// Count the intersections between geometry and the rays through every pixel
// of a 3x3 view plane.
func countPixelHits(cam *Camera, geometry Intersectable) int {
	vp := ViewPlane{Distance: 1, Width: 3, Height: 3}
	count := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			count += len(geometry.Intersect(cam.ConstructRay(3, 3, col, row, vp), math.Inf(1)))
		}
	}
	return count
}

func TestCameraIntegrationWithSurfaces(t *testing.T) {
	cam1 := mustCamera(t, types.Vec3{}, types.XYZ(0, 0, 1), types.XYZ(0, -1, 0))
	cam2 := mustCamera(t, types.XYZ(0, 0, -0.5), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0))
	cam3 := mustCamera(t, types.XYZ(0, 0, -1), types.XYZ(0, 0, 1), types.XYZ(0, -1, 0))

	mustSurface := func(s *Surface, err error) *Surface {
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	sphere := func(r float64, c types.Vec3) *Surface {
		return mustSurface(NewSphere(c, r, DefaultMaterial, types.Black))
	}
	triangle := func(v0, v1, v2 types.Vec3) *Surface {
		return mustSurface(NewTriangle(v0, v1, v2, DefaultMaterial, types.Black))
	}
	plane := func(p, n types.Vec3) *Surface {
		return mustSurface(NewPlane(p, n, DefaultMaterial, types.Black))
	}

	type spec struct {
		cam      *Camera
		geometry Intersectable
		expCount int
	}
	specs := []spec{
		// sphere in front of the view plane center
		{cam1, sphere(1, types.XYZ(0, 0, 3)), 2},
		// sphere in front of the whole view plane
		{cam2, sphere(2.5, types.XYZ(0, 0, 2.5)), 18},
		// sphere in front of everything but the corners
		{cam2, sphere(2, types.XYZ(0, 0, 2)), 10},
		// camera inside the sphere
		{cam2, sphere(4, types.XYZ(0, 0, 2.5)), 9},
		// sphere behind the camera
		{cam1, sphere(0.5, types.XYZ(0, 0, -1)), 0},
		// small triangle in front of the center
		{cam3, triangle(types.XYZ(0, -1, 2), types.XYZ(1, 1, 2), types.XYZ(-1, 1, 2)), 1},
		// tall triangle in front of the center column
		{cam3, triangle(types.XYZ(0, -20, 2), types.XYZ(1, 1, 2), types.XYZ(-1, 1, 2)), 2},
		// plane parallel to the view plane
		{cam3, plane(types.XYZ(0, 0, 5), types.XYZ(0, 0, 1)), 9},
		// plane slightly tilted towards the camera
		{cam3, plane(types.XYZ(0, 0, 5), types.XYZ(0, -0.5, 1)), 9},
		// all aggregated
		{cam1, NewAggregate(sphere(1, types.XYZ(0, 0, 3)), sphere(0.5, types.XYZ(0, 0, -1))), 2},
	}

	for index, s := range specs {
		if count := countPixelHits(s.cam, s.geometry); count != s.expCount {
			t.Fatalf("[spec %d] expected %d intersections; got %d", index, s.expCount, count)
		}
	}
}
