// Package action models character intents and resolves them to canonical
// animation events and clip variations.
package action

import (
	"fmt"

	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/pkg/math"
)

// Movement is the kind of locomotion used by a Move.
type Movement int

// Movement kinds.
const (
	Walk Movement = iota
	Jump
	Teleport
)

// String returns the lowercase movement name.
func (m Movement) String() string {
	switch m {
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	case Teleport:
		return "teleport"
	default:
		return fmt.Sprintf("movement(%d)", int(m))
	}
}

// Action is an intent: exactly one of Move, Turn or Run.
// The interface is sealed; no other type implements it.
type Action interface {
	fmt.Stringer
	isAction()
}

// Move displaces the character between two world positions.
type Move struct {
	Displacement math.Displacement[math.Vec3]
	Kind         Movement
}

// Turn rotates the character between two angles in radians.
// Only the direction of rotation affects the resolved event.
type Turn struct {
	Displacement math.Displacement[float32]
	Clockwise    bool
}

// Run plays a specific event. Variation, when set, selects a clip index
// explicitly instead of picking one at random.
type Run struct {
	Event     catalog.EventGroup
	Variation *int
}

func (Move) isAction() {}
func (Turn) isAction() {}
func (Run) isAction()  {}

// NewMove returns a Move from one position to another.
func NewMove(from, to math.Vec3, kind Movement) Move {
	return Move{Displacement: math.NewDisplacement(from, to), Kind: kind}
}

// NewTurn returns a Turn between two angles.
func NewTurn(from, to float32, clockwise bool) Turn {
	return Turn{Displacement: math.NewDisplacement(from, to), Clockwise: clockwise}
}

// NewRun returns a Run with no explicit variation.
func NewRun(event catalog.EventGroup) Run {
	return Run{Event: event}
}

// NewRunVariation returns a Run pinned to a specific variation index.
func NewRunVariation(event catalog.EventGroup, variation int) Run {
	return Run{Event: event, Variation: &variation}
}

func (m Move) String() string {
	return fmt.Sprintf("move(%s %v -> %v)", m.Kind, m.Displacement.From, m.Displacement.To)
}

func (t Turn) String() string {
	dir := "counter-clockwise"
	if t.Clockwise {
		dir = "clockwise"
	}
	return fmt.Sprintf("turn(%s %.3f -> %.3f)", dir, t.Displacement.From, t.Displacement.To)
}

func (r Run) String() string {
	if r.Variation != nil {
		return fmt.Sprintf("run(%s #%d)", r.Event, *r.Variation)
	}
	return fmt.Sprintf("run(%s)", r.Event)
}
