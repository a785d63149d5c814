package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// UpAxis is the world +Y axis that characters turn around.
var UpAxis = Vec3{X: 0, Y: 1, Z: 0}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Yaw returns the rotation around +Y in radians, wrapped into [0, 2π).
// Scene nodes store orientation as a quaternion; grid heading only needs yaw.
func (q Quat) Yaw() float32 {
	n := q.Normalize()
	sinY := 2 * (n.W*n.Y + n.Z*n.X)
	cosY := 1 - 2*(n.X*n.X+n.Y*n.Y)
	return NormalizeAngle(float32(math.Atan2(float64(sinY), float64(cosY))))
}
