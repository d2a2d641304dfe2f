package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/yanky319/Ray-tracing/types"
)

var (
	ErrNegativeLightRadius  = errors.New("scene: light radius must not be negative")
	ErrInvalidConcentration = errors.New("scene: spot light concentration must be at least 1")
)

// The Light interface is implemented by all light sources.
type Light interface {
	// Get the light intensity reaching point p.
	Intensity(p types.Vec3) types.Color

	// Get the unit direction from the light towards point p. A zero vector
	// is returned if p coincides with the light position.
	Direction(p types.Vec3) types.Vec3

	// Get the distance between the light and point p.
	Distance(p types.Vec3) float64

	// Get the main light direction towards p followed by up to count
	// directions from random points on the light's area. Lights without
	// an area return only the main direction.
	SampleDirections(p types.Vec3, count int, rnd *rand.Rand) []types.Vec3
}

// Attenuation holds the constant, linear and quadratic distance attenuation
// factors of positional lights.
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// No distance falloff.
var NoAttenuation = Attenuation{Constant: 1}

// Get the attenuation divisor at distance d.
func (a Attenuation) factor(d float64) float64 {
	return a.Constant + a.Linear*d + a.Quadratic*d*d
}

// AmbientLight is a flat light contribution added once per pixel.
type AmbientLight struct {
	Color types.Color
	Ka    float64
}

// Intensity returns the ambient color scaled by its coefficient.
func (a AmbientLight) Intensity() types.Color {
	return a.Color.Scale(a.Ka)
}

// PointLight emits light uniformly in all directions from a position. A
// positive radius turns it into a disk shaped area light for soft shadows.
type PointLight struct {
	Color       types.Color
	Position    types.Vec3
	Attenuation Attenuation
	Radius      float64
}

// Create a point light.
func NewPointLight(color types.Color, position types.Vec3, attenuation Attenuation, radius float64) (*PointLight, error) {
	if radius < 0 {
		return nil, ErrNegativeLightRadius
	}
	return &PointLight{
		Color:       color,
		Position:    position,
		Attenuation: attenuation,
		Radius:      radius,
	}, nil
}

func (l *PointLight) Intensity(p types.Vec3) types.Color {
	f := l.Attenuation.factor(l.Position.Distance(p))
	if !(f > 0) {
		return l.Color
	}
	return l.Color.Reduce(f)
}

func (l *PointLight) Direction(p types.Vec3) types.Vec3 {
	dir, err := p.Sub(l.Position).Normalize()
	if err != nil {
		return types.Vec3{}
	}
	return dir
}

func (l *PointLight) Distance(p types.Vec3) float64 {
	return l.Position.Distance(p)
}

func (l *PointLight) SampleDirections(p types.Vec3, count int, rnd *rand.Rand) []types.Vec3 {
	return sampleDisk(l.Position, l.Radius, l.Direction(p), p, count, rnd)
}

func (l *PointLight) String() string {
	return fmt.Sprintf("point light: position %s, color %s, radius %g", l.Position, l.Color, l.Radius)
}

// SpotLight is a point light that only illuminates the half space its beam
// points to. The intensity falls off with the cosine between the beam and
// the light direction raised to the concentration exponent.
type SpotLight struct {
	PointLight
	Beam          types.Vec3
	Concentration int
}

// Create a spot light. A concentration of 1 gives the plain cosine falloff;
// larger values narrow the beam.
func NewSpotLight(color types.Color, position, beam types.Vec3, attenuation Attenuation, radius float64, concentration int) (*SpotLight, error) {
	if concentration < 1 {
		return nil, ErrInvalidConcentration
	}
	dir, err := beam.Normalize()
	if err != nil {
		return nil, fmt.Errorf("scene: invalid spot light direction: %w", err)
	}
	pl, err := NewPointLight(color, position, attenuation, radius)
	if err != nil {
		return nil, err
	}
	return &SpotLight{
		PointLight:    *pl,
		Beam:          dir,
		Concentration: concentration,
	}, nil
}

func (l *SpotLight) Intensity(p types.Vec3) types.Color {
	dot := types.AlignZero(l.Beam.Dot(l.Direction(p)))
	if dot <= 0 {
		return types.Black
	}
	return l.PointLight.Intensity(p).Scale(math.Pow(dot, float64(l.Concentration)))
}

func (l *SpotLight) String() string {
	return fmt.Sprintf("spot light: position %s, beam %s, color %s, concentration %d", l.Position, l.Beam, l.Color, l.Concentration)
}

// DirectionalLight is a light source infinitely far away.
type DirectionalLight struct {
	Color types.Color
	Dir   types.Vec3
}

// Create a directional light.
func NewDirectionalLight(color types.Color, direction types.Vec3) (*DirectionalLight, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("scene: invalid light direction: %w", err)
	}
	return &DirectionalLight{Color: color, Dir: dir}, nil
}

func (l *DirectionalLight) Intensity(types.Vec3) types.Color {
	return l.Color
}

func (l *DirectionalLight) Direction(types.Vec3) types.Vec3 {
	return l.Dir
}

func (l *DirectionalLight) Distance(types.Vec3) float64 {
	return math.Inf(1)
}

func (l *DirectionalLight) SampleDirections(types.Vec3, int, *rand.Rand) []types.Vec3 {
	return []types.Vec3{l.Dir}
}

func (l *DirectionalLight) String() string {
	return fmt.Sprintf("directional light: direction %s, color %s", l.Dir, l.Color)
}

// Sample directions from random points on a disk of the given radius
// centered at position and facing p. The first entry is always main.
func sampleDisk(position types.Vec3, radius float64, main, p types.Vec3, count int, rnd *rand.Rand) []types.Vec3 {
	dirs := make([]types.Vec3, 1, count+1)
	dirs[0] = main
	if radius == 0 || main.IsZero() {
		return dirs
	}

	v := types.OrthogonalTo(main)
	u := main.Cross(v)
	stratify(count, func(k, h float64) {
		cos := rnd.Float64()
		sin := math.Sqrt(1 - cos*cos)
		d := rnd.Float64() * radius

		point := position.Add(v.Mul(sin * d * h)).Add(u.Mul(cos * d * k))
		if dir, err := p.Sub(point).Normalize(); err == nil {
			dirs = append(dirs, dir)
		}
	})
	return dirs
}
