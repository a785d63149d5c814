// Package grid quantizes continuous world positions and headings onto the
// walkable grid and advances coordinates along a heading.
package grid

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/byteworld/pkg/math"
)

// Direction is one of the four grid headings.
//
// Angles are radians around +Y, counter-clockwise seen from above, with
// North (facing -Z) at 0.
type Direction int

// Headings in counter-clockwise order.
const (
	North Direction = iota
	West
	South
	East
)

// quarterTurn is the angle between adjacent headings (90°).
const quarterTurn = float32(gomath.Pi / 2)

var directionNames = [4]string{"north", "west", "south", "east"}

// DirectionFromAngle returns the heading nearest to rad.
func DirectionFromAngle(rad float32) Direction {
	angle := math.NormalizeAngle(rad)

	// Offset by half a sector so each heading owns ±45° around its angle
	sector := int((angle + quarterTurn/2) / quarterTurn)
	return Direction(sector % 4)
}

// Radians returns the representative angle of the heading.
func (d Direction) Radians() float32 {
	return float32(d.normalized()) * quarterTurn
}

// Offset returns the unit step along the heading in grid space.
// Rows grow towards North, columns towards East.
func (d Direction) Offset() (dColumn, dRow int) {
	switch d.normalized() {
	case North:
		return 0, 1
	case West:
		return -1, 0
	case South:
		return 0, -1
	default: // East
		return 1, 0
	}
}

// Turned returns the heading after a quarter turn.
func (d Direction) Turned(clockwise bool) Direction {
	if clockwise {
		return (d.normalized() + 3) % 4
	}
	return (d.normalized() + 1) % 4
}

// Opposite returns the heading facing the other way.
func (d Direction) Opposite() Direction {
	return (d.normalized() + 2) % 4
}

// String returns the lowercase heading name.
func (d Direction) String() string {
	return directionNames[d.normalized()]
}

func (d Direction) normalized() Direction {
	return ((d % 4) + 4) % 4
}

// ParseDirection parses a heading name such as "north" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("unknown direction %q", s)
}
