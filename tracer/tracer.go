package tracer

import (
	"math"
	"math/rand"

	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/types"
)

const (
	// Default recursion limit for reflected and refracted rays.
	DefaultMaxDepth = 10

	// Contributions weighted below this threshold are ignored.
	DefaultMinK = 1e-4
)

// Options control the shading algorithm.
type Options struct {
	// Maximum recursion depth for secondary rays.
	MaxDepth int

	// Secondary rays and lights whose accumulated weight drops to this
	// value or below are skipped.
	MinK float64

	// Cast multiple shadow rays towards area lights.
	SoftShadows bool

	// The number of additional shadow rays per light when SoftShadows is set.
	ShadowRays int
}

// Tracer resolves the color seen along a ray. A tracer only reads the scene
// so multiple tracers may share a compiled scene; each tracer owns its random
// source and must not be used concurrently.
type Tracer struct {
	scene *scene.Scene
	opts  Options
	rnd   *rand.Rand
}

// Create a tracer for a scene. The random source is only used for soft
// shadow sampling.
func New(sc *scene.Scene, opts Options, rnd *rand.Rand) *Tracer {
	if opts.MinK <= 0 {
		opts.MinK = DefaultMinK
	}
	return &Tracer{
		scene: sc,
		opts:  opts,
		rnd:   rnd,
	}
}

// Trace returns the color seen along a ray. Rays that hit nothing return the
// scene background; otherwise the ambient term is added to the recursively
// resolved surface color.
func (t *Tracer) Trace(ray types.Ray) types.Color {
	hit, found := t.scene.Nearest(ray)
	if !found {
		return t.scene.Background
	}
	return t.scene.Ambient.Intensity().Add(t.color(hit, ray, t.opts.MaxDepth, 1.0))
}

// TraceBeam traces each ray and returns the average color.
func (t *Tracer) TraceBeam(rays []types.Ray) types.Color {
	colors := make([]types.Color, len(rays))
	for index, ray := range rays {
		colors[index] = t.Trace(ray)
	}
	return types.Average(colors)
}

// Resolve the color at a hit point reached by ray. The k argument is the
// accumulated weight of this path.
func (t *Tracer) color(hit scene.GeoHit, ray types.Ray, depth int, k float64) types.Color {
	if depth <= 0 {
		return types.Black
	}

	surface := hit.Surface
	n := surface.Normal(hit.Point)
	out := surface.Emission.Add(t.localIllumination(hit, n, ray, k))

	if kr := surface.Material.KR; k*kr > t.opts.MinK {
		if rRay, ok := reflectedRay(hit.Point, ray.Direction, n); ok {
			out = out.Add(t.secondary(rRay, depth, k, kr))
		}
	}

	if kt := surface.Material.KT; k*kt > t.opts.MinK {
		if tRay, err := types.NewOffsetRay(hit.Point, ray.Direction, n); err == nil {
			out = out.Add(t.secondary(tRay, depth, k, kt))
		}
	}

	return out
}

// Follow a reflected or refracted ray and return its weighted color.
func (t *Tracer) secondary(ray types.Ray, depth int, k, kx float64) types.Color {
	hit, found := t.scene.Nearest(ray)
	if !found {
		return types.Black
	}
	return t.color(hit, ray, depth-1, k*kx).Scale(kx)
}

// Add the diffuse and specular contribution of every light that reaches the
// hit point from the same side as the viewer.
func (t *Tracer) localIllumination(hit scene.GeoHit, n types.Vec3, ray types.Ray, k float64) types.Color {
	v := ray.Direction
	nv := types.AlignZero(n.Dot(v))
	if nv == 0 {
		return types.Black
	}

	mat := hit.Surface.Material
	out := types.Black
	for _, light := range t.scene.Lights {
		l := light.Direction(hit.Point)
		nl := types.AlignZero(n.Dot(l))
		if nl == 0 || types.Sign(nl) != types.Sign(nv) {
			continue
		}

		ktr := t.Transparency(light, hit.Point, n, nv)
		if ktr*k <= t.opts.MinK {
			continue
		}

		li := light.Intensity(hit.Point).Scale(ktr)
		out = out.Add(
			diffuse(mat.KD, nl, li),
			specular(mat.KS, mat.Shininess, l, n, nl, v, li),
		)
	}
	return out
}

// Transparency returns the fraction of light that reaches point from light.
// Each shadow ray is attenuated by the transparency of every surface it
// crosses before reaching the light. With soft shadows enabled the result is
// averaged over rays towards sampled points of the light area; samples
// reaching the surface from the side opposite to the viewer contribute 0.
func (t *Tracer) Transparency(light scene.Light, point, n types.Vec3, nv float64) float64 {
	if !t.opts.SoftShadows || t.opts.ShadowRays <= 0 {
		return t.shadowRayTransparency(light, light.Direction(point), point, n)
	}

	dirs := light.SampleDirections(point, t.opts.ShadowRays, t.rnd)
	viewSign := types.Sign(nv)
	var sum float64
	for _, l := range dirs {
		if types.Sign(n.Dot(l)) != viewSign {
			continue
		}
		sum += t.shadowRayTransparency(light, l, point, n)
	}
	return sum / float64(len(dirs))
}

// Cast a single shadow ray from point towards the light along -l.
func (t *Tracer) shadowRayTransparency(light scene.Light, l, point, n types.Vec3) float64 {
	shadowRay, err := types.NewOffsetRay(point, l.Neg(), n)
	if err != nil {
		return 0
	}

	ktr := 1.0
	for _, hit := range t.scene.Intersect(shadowRay, light.Distance(point)) {
		ktr *= hit.Surface.Material.KT
		if ktr < t.opts.MinK {
			return 0
		}
	}
	return ktr
}

// Build the offset ray mirroring dir around n.
func reflectedRay(point, dir, n types.Vec3) (types.Ray, bool) {
	r, ok := types.Reflect(dir, n)
	if !ok {
		return types.Ray{}, false
	}
	ray, err := types.NewOffsetRay(point, r, n)
	if err != nil {
		return types.Ray{}, false
	}
	return ray, true
}

// Lambertian term.
func diffuse(kd, nl float64, li types.Color) types.Color {
	return li.Scale(math.Abs(kd * nl))
}

// Phong term computed from the reflection of the light direction.
func specular(ks float64, shininess int, l, n types.Vec3, nl float64, v types.Vec3, li types.Color) types.Color {
	if nl == 0 {
		return types.Black
	}
	r := l.Sub(n.Mul(2 * nl))
	vr := v.Neg().Dot(r)
	return li.Scale(ks * math.Pow(math.Max(0, vr), float64(shininess)))
}
