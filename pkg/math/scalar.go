package math

import "math"

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// IsClose reports whether |a - b| <= tolerance.
// Callers pass a named configuration value, never a literal.
func IsClose(a, b, tolerance float32) bool {
	return Abs(a-b) <= tolerance
}

// Abs returns the absolute value of a float32.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(rad float32) float32 {
	r := float32(math.Mod(float64(rad), float64(TwoPi)))
	if r < 0 {
		r += TwoPi
	}
	// Mod can return exactly 2π after the correction above for tiny negatives.
	if r >= TwoPi {
		r = 0
	}
	return r
}
