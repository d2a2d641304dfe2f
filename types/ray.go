package types

import "fmt"

// RayOffset is the distance secondary rays are pushed away from the surface
// they originate on.
const RayOffset = 0.1

// Ray has an origin and a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Create a ray. The direction is normalized; a zero direction is rejected.
func NewRay(origin, dir Vec3) (Ray, error) {
	n, err := dir.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: n}, nil
}

// Create a ray that starts at point moved by RayOffset along the normal. The
// offset points to the side of the surface the direction leaves towards.
func NewOffsetRay(point, dir, normal Vec3) (Ray, error) {
	delta := RayOffset
	if normal.Dot(dir) <= 0 {
		delta = -RayOffset
	}
	return NewRay(point.Add(normal.Mul(delta)), dir)
}

// Point returns origin + t*direction.
func (r Ray) Point(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("origin %s, direction %s", r.Origin, r.Direction)
}
