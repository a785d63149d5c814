// Package math provides the geometry value types shared by the grid and action packages.
package math

// Vec3 is a continuous world-space position. Y is elevation.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// WithY returns a copy of v at a different elevation.
func (v Vec3) WithY(y float32) Vec3 {
	return Vec3{v.X, y, v.Z}
}
