package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/yanky319/Ray-tracing/types"
)

var (
	ErrInvalidRadius      = errors.New("scene: radius must be greater than zero")
	ErrInvalidHeight      = errors.New("scene: height must be greater than zero")
	ErrTooFewVertices     = errors.New("scene: a polygon needs at least 3 vertices")
	ErrNonPlanarPolygon   = errors.New("scene: all polygon vertices must lie in the same plane")
	ErrNonConvexPolygon   = errors.New("scene: polygon vertices must be ordered and form a convex polygon")
	ErrDegenerateGeometry = errors.New("scene: degenerate geometry")
)

type SurfaceType uint8

const (
	PlaneSurface SurfaceType = iota
	SphereSurface
	PolygonSurface
	TriangleSurface
	TubeSurface
	CylinderSurface
)

func (t SurfaceType) String() string {
	switch t {
	case PlaneSurface:
		return "plane"
	case SphereSurface:
		return "sphere"
	case PolygonSurface:
		return "polygon"
	case TriangleSurface:
		return "triangle"
	case TubeSurface:
		return "tube"
	case CylinderSurface:
		return "cylinder"
	}
	return fmt.Sprintf("surface(%d)", uint8(t))
}

// Surface is a geometric primitive. The set of populated geometry fields
// depends on the surface type:
//
// - plane: Origin (a point on the plane), PlaneNormal
// - sphere: Origin (center), Radius
// - polygon/triangle: Vertices; Origin and PlaneNormal hold the supporting plane
// - tube: Origin and Axis define the axis ray, Radius
// - cylinder: like tube plus Height; the caps sit at Origin and Origin+Axis*Height
//
// Surfaces are immutable once created and can be shared between goroutines.
type Surface struct {
	Type SurfaceType

	Material Material
	Emission types.Color

	Origin      types.Vec3
	PlaneNormal types.Vec3
	Axis        types.Vec3
	Radius      float64
	Height      float64
	Vertices    []types.Vec3

	bbox BoundingBox
}

// Create a plane through point with the given normal.
func NewPlane(point, normal types.Vec3, material Material, emission types.Color) (*Surface, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("scene: invalid plane normal: %w", err)
	}

	s := &Surface{
		Type:        PlaneSurface,
		Material:    material,
		Emission:    emission,
		Origin:      point,
		PlaneNormal: n,
	}
	s.bbox = planeBBox(point, n)
	return s, nil
}

// Create a plane through three points.
func NewPlaneFromPoints(p1, p2, p3 types.Vec3, material Material, emission types.Color) (*Surface, error) {
	n, err := p1.Sub(p2).Cross(p1.Sub(p3)).Normalize()
	if err != nil {
		return nil, ErrDegenerateGeometry
	}
	return NewPlane(p1, n, material, emission)
}

// Create a sphere.
func NewSphere(center types.Vec3, radius float64, material Material, emission types.Color) (*Surface, error) {
	if !(radius > 0) {
		return nil, ErrInvalidRadius
	}

	r := types.XYZ(radius, radius, radius)
	return &Surface{
		Type:     SphereSurface,
		Material: material,
		Emission: emission,
		Origin:   center,
		Radius:   radius,
		bbox:     NewBoundingBox(center.Sub(r), center.Add(r)),
	}, nil
}

// Create a triangle.
func NewTriangle(v0, v1, v2 types.Vec3, material Material, emission types.Color) (*Surface, error) {
	s, err := newPolygon([]types.Vec3{v0, v1, v2}, material, emission)
	if err != nil {
		return nil, err
	}
	s.Type = TriangleSurface
	return s, nil
}

// Create a convex polygon. Vertices must be ordered (either winding) and
// coplanar.
func NewPolygon(material Material, emission types.Color, vertices ...types.Vec3) (*Surface, error) {
	return newPolygon(vertices, material, emission)
}

func newPolygon(vertices []types.Vec3, material Material, emission types.Color) (*Surface, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}

	// The supporting plane is defined by the first three vertices
	n, err := vertices[0].Sub(vertices[1]).Cross(vertices[0].Sub(vertices[2])).Normalize()
	if err != nil {
		return nil, ErrDegenerateGeometry
	}

	if len(vertices) > 3 {
		if err = validatePolygon(vertices, n); err != nil {
			return nil, err
		}
	}

	bmin, bmax := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		bmin = types.MinVec3(bmin, v)
		bmax = types.MaxVec3(bmax, v)
	}

	return &Surface{
		Type:        PolygonSurface,
		Material:    material,
		Emission:    emission,
		Origin:      vertices[0],
		PlaneNormal: n,
		Vertices:    append([]types.Vec3(nil), vertices...),
		bbox:        NewBoundingBox(bmin, bmax),
	}, nil
}

// The winding of the last and first edge defines the expected orientation;
// every consecutive edge pair must have the same orientation for the polygon
// to be convex.
func validatePolygon(vertices []types.Vec3, n types.Vec3) error {
	last := len(vertices) - 1
	edge1 := vertices[last].Sub(vertices[last-1])
	edge2 := vertices[0].Sub(vertices[last])
	if edge1.IsZero() || edge2.IsZero() {
		return ErrDegenerateGeometry
	}

	turn := types.AlignZero(edge1.Cross(edge2).Dot(n))
	if turn == 0 {
		return ErrDegenerateGeometry
	}
	positive := turn > 0

	for i := 1; i < len(vertices); i++ {
		if !types.IsZero(vertices[i].Sub(vertices[0]).Dot(n)) {
			return ErrNonPlanarPolygon
		}

		edge1 = edge2
		edge2 = vertices[i].Sub(vertices[i-1])
		if edge2.IsZero() {
			return ErrDegenerateGeometry
		}

		turn = types.AlignZero(edge1.Cross(edge2).Dot(n))
		if turn == 0 {
			return ErrDegenerateGeometry
		}
		if positive != (turn > 0) {
			return ErrNonConvexPolygon
		}
	}
	return nil
}

// Create an infinite tube around the axis ray.
func NewTube(axis types.Ray, radius float64, material Material, emission types.Color) (*Surface, error) {
	if !(radius > 0) {
		return nil, ErrInvalidRadius
	}

	return &Surface{
		Type:     TubeSurface,
		Material: material,
		Emission: emission,
		Origin:   axis.Origin,
		Axis:     axis.Direction,
		Radius:   radius,
		bbox:     tubeBBox(axis.Origin, axis.Direction, radius),
	}, nil
}

// Create a capped cylinder starting at the axis ray origin and extending
// height units along its direction.
func NewCylinder(axis types.Ray, radius, height float64, material Material, emission types.Color) (*Surface, error) {
	if !(radius > 0) {
		return nil, ErrInvalidRadius
	}
	if !(height > 0) {
		return nil, ErrInvalidHeight
	}

	return &Surface{
		Type:     CylinderSurface,
		Material: material,
		Emission: emission,
		Origin:   axis.Origin,
		Axis:     axis.Direction,
		Radius:   radius,
		Height:   height,
		bbox:     cylinderBBox(axis.Origin, axis.Direction, radius, height),
	}, nil
}

// Get the surface bounding box.
func (s *Surface) BBox() BoundingBox {
	return s.bbox
}

// Normal returns the unit surface normal at point p. The point is expected
// to lie on the surface.
func (s *Surface) Normal(p types.Vec3) types.Vec3 {
	switch s.Type {
	case SphereSurface:
		return p.Sub(s.Origin).MustNormalize()
	case TubeSurface:
		return s.radialNormal(p)
	case CylinderSurface:
		t := types.AlignZero(s.Axis.Dot(p.Sub(s.Origin)))
		if t == 0 {
			return s.Axis.Neg()
		}
		if types.IsZero(t - s.Height) {
			return s.Axis
		}
		return s.radialNormal(p)
	}

	// planes and polygons
	return s.PlaneNormal
}

func (s *Surface) radialNormal(p types.Vec3) types.Vec3 {
	t := s.Axis.Dot(p.Sub(s.Origin))
	o := s.Origin.Add(s.Axis.Mul(t))
	return p.Sub(o).MustNormalize()
}

func (s *Surface) String() string {
	switch s.Type {
	case PlaneSurface:
		return fmt.Sprintf("plane: point %s, normal %s", s.Origin, s.PlaneNormal)
	case SphereSurface:
		return fmt.Sprintf("sphere: center %s, radius %g", s.Origin, s.Radius)
	case TubeSurface:
		return fmt.Sprintf("tube: axis %s -> %s, radius %g", s.Origin, s.Axis, s.Radius)
	case CylinderSurface:
		return fmt.Sprintf("cylinder: axis %s -> %s, radius %g, height %g", s.Origin, s.Axis, s.Radius, s.Height)
	}
	return fmt.Sprintf("%s: %d vertices", s.Type, len(s.Vertices))
}

// A plane is only bounded along its normal axis, and only when the normal is
// axis aligned.
func planeBBox(point, n types.Vec3) BoundingBox {
	axis := alignedAxis(n)
	if axis < 0 {
		return UnboundedBox()
	}

	min := types.XYZ(-unboundedExtent, -unboundedExtent, -unboundedExtent)
	max := types.XYZ(unboundedExtent, unboundedExtent, unboundedExtent)
	min[axis], max[axis] = point[axis], point[axis]
	return NewBoundingBox(min, max)
}

// A tube is bounded along the two axes perpendicular to an axis aligned
// direction.
func tubeBBox(origin, dir types.Vec3, radius float64) BoundingBox {
	axis := alignedAxis(dir)
	if axis < 0 {
		return UnboundedBox()
	}

	r := types.XYZ(radius, radius, radius)
	min, max := origin.Sub(r), origin.Add(r)
	min[axis], max[axis] = -unboundedExtent, unboundedExtent
	return NewBoundingBox(min, max)
}

func cylinderBBox(origin, dir types.Vec3, radius, height float64) BoundingBox {
	top := origin.Add(dir.Mul(height))
	var ext types.Vec3
	for axis := 0; axis < 3; axis++ {
		ext[axis] = radius * math.Sqrt(math.Max(0, 1-dir[axis]*dir[axis]))
	}
	return NewBoundingBox(
		types.MinVec3(origin, top).Sub(ext),
		types.MaxVec3(origin, top).Add(ext),
	)
}

// Returns the index of the only non-zero component of v or -1.
func alignedAxis(v types.Vec3) int {
	axis := -1
	for i := 0; i < 3; i++ {
		if types.IsZero(v[i]) {
			continue
		}
		if axis != -1 {
			return -1
		}
		axis = i
	}
	return axis
}
