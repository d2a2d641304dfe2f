package scene

// Material defines how a surface scatters incoming light. The diffuse,
// specular, transparency and reflectance coefficients should add up to at
// most 1 for a physically plausible surface; this is not enforced.
type Material struct {
	// Diffuse coefficient.
	KD float64

	// Specular coefficient and Phong shininess exponent.
	KS        float64
	Shininess int

	// Fraction of light passed through the surface.
	KT float64

	// Fraction of light mirrored by the surface.
	KR float64
}

// A black, non-reflective material. Used when a surface is created without
// an explicit material.
var DefaultMaterial = Material{}
