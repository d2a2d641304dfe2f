package types

import "math"

// Epsilon is the tolerance used for every float comparison against zero
// and between distances.
const Epsilon = 1e-10

// IsZero reports whether |x| is below Epsilon.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// AlignZero snaps values within Epsilon of zero to exactly zero.
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// Sign returns -1, 0 or 1 after aligning x to zero.
func Sign(x float64) int {
	x = AlignZero(x)
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
