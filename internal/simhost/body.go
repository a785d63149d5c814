package simhost

import (
	"github.com/Faultbox/byteworld/pkg/math"
)

// Body is a scene node stand-in. Orientation is kept as a quaternion the
// way scene graphs store it; Rotation extracts the yaw.
type Body struct {
	position    math.Vec3
	orientation math.Quat
}

// NewBody returns a body at pos facing rotation radians around +Y.
func NewBody(pos math.Vec3, rotation float32) *Body {
	return &Body{
		position:    pos,
		orientation: math.QuatFromAxisAngle(math.UpAxis, rotation),
	}
}

// Position returns the node position.
func (b *Body) Position() math.Vec3 { return b.position }

// Rotation returns the yaw in radians, in [0, 2π).
func (b *Body) Rotation() float32 { return b.orientation.Yaw() }

// Place moves and orients the node.
func (b *Body) Place(pos math.Vec3, rotation float32) {
	b.position = pos
	b.orientation = math.QuatFromAxisAngle(math.UpAxis, rotation)
}
