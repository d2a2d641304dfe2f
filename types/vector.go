package types

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrZeroVector is returned when an operation would produce or consume a zero length vector.
var ErrZeroVector = errors.New("types: zero length vector")

// Vec3 is used both for points and for directions.
type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Negate all vector components.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Distance between two points.
func (v Vec3) Distance(v2 Vec3) float64 {
	return v.Sub(v2).Len()
}

// IsZero reports whether all components are within Epsilon of zero.
func (v Vec3) IsZero() bool {
	return IsZero(v[0]) && IsZero(v[1]) && IsZero(v[2])
}

// Normalize returns a unit vector with the same direction. Normalizing a
// zero length vector fails with ErrZeroVector.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Len()
	if IsZero(l) {
		return Vec3{}, ErrZeroVector
	}
	l = 1.0 / l
	return Vec3{v[0] * l, v[1] * l, v[2] * l}, nil
}

// MustNormalize is like Normalize but panics on zero length vectors. It
// should only be used where a non-zero length is guaranteed by construction.
func (v Vec3) MustNormalize() Vec3 {
	n, err := v.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// ApproxEqual reports whether both vectors match within Epsilon per component.
func (v Vec3) ApproxEqual(v2 Vec3) bool {
	return v.Sub(v2).IsZero()
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", v[0], v[1], v[2])
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

// Reflect direction d around normal n: r = d - 2*(d·n)*n. The second return
// value is false when d is perpendicular to n.
func Reflect(d, n Vec3) (Vec3, bool) {
	dn := AlignZero(d.Dot(n))
	if dn == 0 {
		return Vec3{}, false
	}
	return d.Sub(n.Mul(2 * dn)), true
}

// OrthogonalTo returns a unit vector perpendicular to the unit vector v. The
// component of v with the smallest magnitude is dropped to keep the result
// well conditioned.
func OrthogonalTo(v Vec3) Vec3 {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	var o Vec3
	switch {
	case ax <= ay && ax <= az:
		o = Vec3{0, -v[2], v[1]}
	case ay <= az:
		o = Vec3{-v[2], 0, v[0]}
	default:
		o = Vec3{-v[1], v[0], 0}
	}
	return o.MustNormalize()
}
