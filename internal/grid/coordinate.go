package grid

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/byteworld/pkg/math"
)

// Coordinate is a discrete grid cell. Many world positions map to one cell.
type Coordinate struct {
	Column int
	Row    int
}

// String returns "(column, row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Column, c.Row)
}

// Advance returns c offset by steps cells along heading.
// Zero steps return c unchanged; negative steps move backwards.
func Advance(c Coordinate, steps int, heading Direction) Coordinate {
	if steps == 0 {
		return c
	}
	dc, dr := heading.Offset()
	return Coordinate{
		Column: c.Column + dc*steps,
		Row:    c.Row + dr*steps,
	}
}

// Grid maps between world space and grid cells. Cell centres sit at integer
// multiples of Spacing; row r is at world Z = -r*Spacing.
type Grid struct {
	Spacing float32
}

// New returns a grid with the given cell spacing in world units.
func New(spacing float32) Grid {
	return Grid{Spacing: spacing}
}

// CoordinateFromPosition quantizes pos to the nearest cell. It is recomputed
// from the live position on every call.
func (g Grid) CoordinateFromPosition(pos math.Vec3) Coordinate {
	return Coordinate{
		Column: int(gomath.Round(float64(pos.X / g.Spacing))),
		Row:    int(gomath.Round(float64(-pos.Z / g.Spacing))),
	}
}

// Position returns the world-space centre of c at elevation 0.
func (g Grid) Position(c Coordinate) math.Vec3 {
	return math.Vec3{
		X: float32(c.Column) * g.Spacing,
		Y: 0,
		Z: -float32(c.Row) * g.Spacing,
	}
}

// CoordinateInDirection returns the cell steps away from pos along the
// heading nearest to angle.
func (g Grid) CoordinateInDirection(pos math.Vec3, angle float32, steps int) Coordinate {
	return Advance(g.CoordinateFromPosition(pos), steps, DirectionFromAngle(angle))
}

// NextCoordinate returns the cell one step ahead of pos when facing angle.
func (g Grid) NextCoordinate(pos math.Vec3, angle float32) Coordinate {
	return g.CoordinateInDirection(pos, angle, 1)
}
