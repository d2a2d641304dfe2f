package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/yanky319/Ray-tracing/types"
)

var (
	ErrNotOrthogonal    = errors.New("scene: camera to and up vectors are not orthogonal")
	ErrInvalidViewPlane = errors.New("scene: view plane distance, width and height must be greater than zero")
)

// ViewPlane describes the physical size of the image plane and its distance
// from the camera.
type ViewPlane struct {
	Distance float64
	Width    float64
	Height   float64
}

// Validate the view plane dimensions.
func (vp ViewPlane) Validate() error {
	if !(vp.Distance > 0) || !(vp.Width > 0) || !(vp.Height > 0) {
		return ErrInvalidViewPlane
	}
	return nil
}

// The camera type generates primary rays through the view plane.
type Camera struct {
	Position types.Vec3
	To       types.Vec3
	Up       types.Vec3
	Right    types.Vec3
}

// Create a camera at position looking towards to. The to and up vectors must
// be orthogonal.
func NewCamera(position, to, up types.Vec3) (*Camera, error) {
	if types.AlignZero(to.Dot(up)) != 0 {
		return nil, ErrNotOrthogonal
	}

	nTo, err := to.Normalize()
	if err != nil {
		return nil, fmt.Errorf("scene: invalid camera to vector: %w", err)
	}
	nUp, err := up.Normalize()
	if err != nil {
		return nil, fmt.Errorf("scene: invalid camera up vector: %w", err)
	}

	return &Camera{
		Position: position,
		To:       nTo,
		Up:       nUp,
		Right:    nTo.Cross(nUp),
	}, nil
}

// Locate the center of pixel (col, row) on the view plane and return it along
// with the pixel width and height. Rows grow along -Up and columns along Right.
func (c *Camera) pixelCenter(nx, ny, col, row int, vp ViewPlane) (types.Vec3, float64, float64) {
	center := c.Position.Add(c.To.Mul(vp.Distance))

	rx := vp.Width / float64(nx)
	ry := vp.Height / float64(ny)
	xj := (float64(col)-float64(nx)/2)*rx + rx/2
	yi := (float64(row)-float64(ny)/2)*ry + ry/2

	p := center
	if !types.IsZero(xj) {
		p = p.Add(c.Right.Mul(xj))
	}
	if !types.IsZero(yi) {
		p = p.Add(c.Up.Mul(-yi))
	}
	return p, rx, ry
}

// ConstructRay returns the ray from the camera through the center of pixel
// (col, row) of an nx by ny image.
func (c *Camera) ConstructRay(nx, ny, col, row int, vp ViewPlane) types.Ray {
	p, _, _ := c.pixelCenter(nx, ny, col, row, vp)
	return types.Ray{Origin: c.Position, Direction: p.Sub(c.Position).MustNormalize()}
}

// ConstructBeam returns the ray through the pixel center followed by count
// rays through random points inside the pixel. The random points are spread
// evenly across the four pixel quadrants.
func (c *Camera) ConstructBeam(nx, ny, col, row int, vp ViewPlane, count int, rnd *rand.Rand) []types.Ray {
	p, rx, ry := c.pixelCenter(nx, ny, col, row, vp)

	rays := make([]types.Ray, 1, count+1)
	rays[0] = types.Ray{Origin: c.Position, Direction: p.Sub(c.Position).MustNormalize()}

	stratify(count, func(k, h float64) {
		dx := rnd.Float64() * rx / 2
		dy := rnd.Float64() * ry / 2
		target := p.Add(c.Up.Mul(-h * dy)).Add(c.Right.Mul(k * dx))
		if dir, err := target.Sub(c.Position).Normalize(); err == nil {
			rays = append(rays, types.Ray{Origin: c.Position, Direction: dir})
		}
	})
	return rays
}

// Distribute count samples across four quadrants and invoke fn with the
// quadrant signs for each sample. Quadrants are visited in the order
// (+,+), (-,+), (-,-), (+,-); any remainder goes to the first quadrants.
func stratify(count int, fn func(k, h float64)) {
	if count <= 0 {
		return
	}
	for q := 0; q < 4; q++ {
		k, h := 1.0, 1.0
		if q == 1 || q == 2 {
			k = -1
		}
		if q == 2 || q == 3 {
			h = -1
		}

		n := count / 4
		if q < count%4 {
			n++
		}
		for i := 0; i < n; i++ {
			fn(k, h)
		}
	}
}
