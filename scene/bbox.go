package scene

import (
	"math"

	"github.com/golang/geo/r1"

	"github.com/yanky319/Ray-tracing/types"
)

// Finite box extents are padded by this amount so that flat boxes (e.g. an
// axis aligned polygon) never reject rays due to rounding.
const boxPadding = 1e-6

// The extent used for axes along which a surface is not bounded.
const unboundedExtent = math.MaxFloat64

// BoundingBox is an axis aligned box stored as one interval per axis.
type BoundingBox struct {
	Axes [3]r1.Interval
}

// Create a bounding box from its min and max corners.
func NewBoundingBox(min, max types.Vec3) BoundingBox {
	var b BoundingBox
	for axis := 0; axis < 3; axis++ {
		lo, hi := min[axis], max[axis]
		if lo > -unboundedExtent {
			lo -= boxPadding
		}
		if hi < unboundedExtent {
			hi += boxPadding
		}
		b.Axes[axis] = r1.Interval{Lo: lo, Hi: hi}
	}
	return b
}

// Create a bounding box that encloses the entire space.
func UnboundedBox() BoundingBox {
	full := r1.Interval{Lo: -unboundedExtent, Hi: unboundedExtent}
	return BoundingBox{Axes: [3]r1.Interval{full, full, full}}
}

// Create an empty bounding box. Any union with it returns the other box.
func EmptyBox() BoundingBox {
	return BoundingBox{Axes: [3]r1.Interval{r1.EmptyInterval(), r1.EmptyInterval(), r1.EmptyInterval()}}
}

// Min corner.
func (b BoundingBox) Min() types.Vec3 {
	return types.Vec3{b.Axes[0].Lo, b.Axes[1].Lo, b.Axes[2].Lo}
}

// Max corner.
func (b BoundingBox) Max() types.Vec3 {
	return types.Vec3{b.Axes[0].Hi, b.Axes[1].Hi, b.Axes[2].Hi}
}

// Center returns the box midpoint.
func (b BoundingBox) Center() types.Vec3 {
	var c types.Vec3
	for axis := 0; axis < 3; axis++ {
		ext := b.Axes[axis]
		// Avoid overflowing when both ends sit at the sentinel.
		c[axis] = ext.Lo*0.5 + ext.Hi*0.5
	}
	return c
}

// IsEmpty reports whether the box encloses nothing.
func (b BoundingBox) IsEmpty() bool {
	return b.Axes[0].IsEmpty() || b.Axes[1].IsEmpty() || b.Axes[2].IsEmpty()
}

// IsUnbounded reports whether the box reaches the sentinel extent along any axis.
func (b BoundingBox) IsUnbounded() bool {
	for _, ext := range b.Axes {
		if ext.Lo <= -unboundedExtent || ext.Hi >= unboundedExtent {
			return true
		}
	}
	return false
}

// Union returns a box enclosing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{Axes: [3]r1.Interval{
		b.Axes[0].Union(other.Axes[0]),
		b.Axes[1].Union(other.Axes[1]),
		b.Axes[2].Union(other.Axes[2]),
	}}
}

// Hit performs a slab test against the box. Only hits with 0 <= t <=
// maxDistance are considered. A false result guarantees that the ray misses
// everything enclosed by the box.
func (b BoundingBox) Hit(ray types.Ray, maxDistance float64) bool {
	if b.IsEmpty() {
		return false
	}

	span := r1.Interval{Lo: 0, Hi: maxDistance}
	for axis := 0; axis < 3; axis++ {
		ext := b.Axes[axis]
		origin, dir := ray.Origin[axis], ray.Direction[axis]

		// Ray is parallel to this slab
		if types.IsZero(dir) {
			if !ext.Contains(origin) {
				return false
			}
			continue
		}

		t1 := (ext.Lo - origin) / dir
		t2 := (ext.Hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		span = span.Intersection(r1.Interval{Lo: t1, Hi: t2})
		if span.IsEmpty() {
			return false
		}
	}

	return true
}
