package scene

import (
	"errors"
	"math"

	"github.com/yanky319/Ray-tracing/types"
)

var ErrSceneCompiled = errors.New("scene: scene is compiled and can no longer be modified")

// Scene collects everything needed to render one image. Once compiled the
// scene is treated as read-only and can be shared between render workers.
type Scene struct {
	Name string

	Camera    *Camera
	ViewPlane ViewPlane

	Background types.Color
	Ambient    AmbientLight
	Lights     []Light

	// Geometries holds the surfaces as added by the scene author.
	Geometries *Aggregate

	// BVH is set when the scene is compiled.
	BVH *BVH
}

// Create an empty scene.
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Geometries: NewAggregate(),
		Lights:     make([]Light, 0),
	}
}

// Compiled returns true if the scene has an acceleration structure.
func (s *Scene) Compiled() bool {
	return s.BVH != nil
}

// Add surfaces or aggregates to the scene.
func (s *Scene) AddGeometries(items ...Intersectable) error {
	if s.Compiled() {
		return ErrSceneCompiled
	}
	s.Geometries.Add(items...)
	return nil
}

// Add lights to the scene.
func (s *Scene) AddLights(lights ...Light) error {
	if s.Compiled() {
		return ErrSceneCompiled
	}
	s.Lights = append(s.Lights, lights...)
	return nil
}

// Intersect returns all hits closer than maxDistance. The BVH is used when
// available; otherwise the geometry aggregate is queried directly.
func (s *Scene) Intersect(ray types.Ray, maxDistance float64) []GeoHit {
	if s.BVH != nil {
		return s.BVH.Intersect(ray, maxDistance)
	}
	return s.Geometries.Intersect(ray, maxDistance)
}

// Nearest returns the hit closest to the ray origin.
func (s *Scene) Nearest(ray types.Ray) (GeoHit, bool) {
	return Nearest(ray.Origin, s.Intersect(ray, math.Inf(1)))
}
