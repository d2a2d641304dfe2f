package scene

import (
	"math"

	"github.com/yanky319/Ray-tracing/types"
)

// Intersect finds all intersections between ray and the surface that lie in
// front of the ray origin and no further than maxDistance. The bounding box
// is checked first.
func (s *Surface) Intersect(ray types.Ray, maxDistance float64) []GeoHit {
	if !s.bbox.Hit(ray, maxDistance) {
		return nil
	}
	return s.intersectGeometry(ray, maxDistance)
}

// Run the exact intersection test without checking the bounding box.
func (s *Surface) intersectGeometry(ray types.Ray, maxDistance float64) []GeoHit {
	switch s.Type {
	case PlaneSurface:
		if t, ok := intersectPlane(s.Origin, s.PlaneNormal, ray, maxDistance); ok {
			return []GeoHit{{Surface: s, Point: ray.Point(t)}}
		}
	case SphereSurface:
		return s.intersectSphere(ray, maxDistance)
	case PolygonSurface, TriangleSurface:
		return s.intersectPolygon(ray, maxDistance)
	case TubeSurface:
		return s.intersectTube(ray, maxDistance, nil)
	case CylinderSurface:
		return s.intersectCylinder(ray, maxDistance)
	}
	return nil
}

// Solve the ray-plane equation. Parallel rays, rays starting on the plane
// and hits behind the origin or past maxDistance report no intersection.
func intersectPlane(point, normal types.Vec3, ray types.Ray, maxDistance float64) (float64, bool) {
	qp := point.Sub(ray.Origin)
	if qp.IsZero() {
		return 0, false
	}

	nv := types.AlignZero(normal.Dot(ray.Direction))
	nqp := types.AlignZero(normal.Dot(qp))
	if nv == 0 || nqp == 0 {
		return 0, false
	}

	t := types.AlignZero(nqp / nv)
	if t <= 0 || types.AlignZero(t-maxDistance) > 0 {
		return 0, false
	}
	return t, true
}

// Reports whether t is in front of the ray origin and not past maxDistance.
func inRange(t, maxDistance float64) bool {
	return types.AlignZero(t) > 0 && types.AlignZero(t-maxDistance) <= 0
}

func (s *Surface) intersectSphere(ray types.Ray, maxDistance float64) []GeoHit {
	u := s.Origin.Sub(ray.Origin)

	// Ray starts at the sphere center
	if u.IsZero() {
		if !inRange(s.Radius, maxDistance) {
			return nil
		}
		return []GeoHit{{Surface: s, Point: ray.Point(s.Radius)}}
	}

	tm := types.AlignZero(ray.Direction.Dot(u))
	dSq := math.Max(0, u.LenSq()-tm*tm)
	diff := types.AlignZero(math.Sqrt(dSq) - s.Radius)
	if diff > 0 {
		return nil
	}

	// Tangent ray
	if diff == 0 {
		if !inRange(tm, maxDistance) {
			return nil
		}
		return []GeoHit{{Surface: s, Point: ray.Point(tm)}}
	}

	th := math.Sqrt(s.Radius*s.Radius - dSq)
	var hits []GeoHit
	for _, t := range [2]float64{tm - th, tm + th} {
		if inRange(t, maxDistance) {
			hits = append(hits, GeoHit{Surface: s, Point: ray.Point(t)})
		}
	}
	return hits
}

// Hit the supporting plane and then check that the ray passes inside every
// edge. The triple products of the ray direction with the planes spanned by
// the ray origin and each edge must all share the same sign.
func (s *Surface) intersectPolygon(ray types.Ray, maxDistance float64) []GeoHit {
	t, ok := intersectPlane(s.Origin, s.PlaneNormal, ray, maxDistance)
	if !ok {
		return nil
	}

	count := len(s.Vertices)
	sign := 0
	for i := 0; i < count; i++ {
		v1 := s.Vertices[i].Sub(ray.Origin)
		v2 := s.Vertices[(i+1)%count].Sub(ray.Origin)
		edgeNormal, err := v1.Cross(v2).Normalize()
		if err != nil {
			return nil
		}

		edgeSign := types.Sign(ray.Direction.Dot(edgeNormal))
		if edgeSign == 0 {
			return nil
		}
		if sign == 0 {
			sign = edgeSign
		} else if edgeSign != sign {
			return nil
		}
	}

	return []GeoHit{{Surface: s, Point: ray.Point(t)}}
}

// Solve |(P - O) - ((P - O)·v)v| = r for P on the ray. The optional
// accept callback filters hit points (used for clipping cylinders).
func (s *Surface) intersectTube(ray types.Ray, maxDistance float64, accept func(types.Vec3) bool) []GeoHit {
	v := s.Axis
	dp := ray.Origin.Sub(s.Origin)
	a := ray.Direction.Sub(v.Mul(ray.Direction.Dot(v)))
	b := dp.Sub(v.Mul(dp.Dot(v)))

	qa := types.AlignZero(a.LenSq())
	// Ray is parallel to the axis
	if qa == 0 {
		return nil
	}
	qb := 2 * a.Dot(b)
	qc := b.LenSq() - s.Radius*s.Radius

	disc := types.AlignZero(qb*qb - 4*qa*qc)
	if disc < 0 {
		return nil
	}

	var roots []float64
	if disc == 0 {
		roots = []float64{-qb / (2 * qa)}
	} else {
		sq := math.Sqrt(disc)
		roots = []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
	}

	var hits []GeoHit
	for _, t := range roots {
		if !inRange(t, maxDistance) {
			continue
		}
		p := ray.Point(t)
		if accept != nil && !accept(p) {
			continue
		}
		hits = append(hits, GeoHit{Surface: s, Point: p})
	}
	return hits
}

// Intersect the side of the tube clipped to [0, height] along the axis, then
// both caps.
func (s *Surface) intersectCylinder(ray types.Ray, maxDistance float64) []GeoHit {
	hits := s.intersectTube(ray, maxDistance, func(p types.Vec3) bool {
		h := s.Axis.Dot(p.Sub(s.Origin))
		return types.AlignZero(h) > 0 && types.AlignZero(h-s.Height) < 0
	})

	rSq := s.Radius * s.Radius
	for _, center := range [2]types.Vec3{s.Origin, s.Origin.Add(s.Axis.Mul(s.Height))} {
		t, ok := intersectPlane(center, s.Axis, ray, maxDistance)
		if !ok {
			continue
		}
		p := ray.Point(t)
		if types.AlignZero(p.Sub(center).LenSq()-rSq) < 0 {
			hits = append(hits, GeoHit{Surface: s, Point: p})
		}
	}
	return hits
}
