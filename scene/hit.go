package scene

import "github.com/yanky319/Ray-tracing/types"

// GeoHit pairs a surface with a point where a ray intersects it.
type GeoHit struct {
	Surface *Surface
	Point   types.Vec3
}

// The Intersectable interface is implemented by surfaces and by aggregates
// of surfaces.
type Intersectable interface {
	// Get the bounding box enclosing the item.
	BBox() BoundingBox

	// Find all intersections with ray closer than maxDistance. Returns nil
	// if the ray misses. Hits are returned in no particular order.
	Intersect(ray types.Ray, maxDistance float64) []GeoHit
}

// Nearest returns the hit closest to origin. The second return value is false
// if hits is empty.
func Nearest(origin types.Vec3, hits []GeoHit) (GeoHit, bool) {
	if len(hits) == 0 {
		return GeoHit{}, false
	}

	best := 0
	bestDist := hits[0].Point.Sub(origin).LenSq()
	for i := 1; i < len(hits); i++ {
		if d := hits[i].Point.Sub(origin).LenSq(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return hits[best], true
}
