package actor

import (
	"fmt"

	"github.com/Faultbox/byteworld/internal/action"
	"github.com/Faultbox/byteworld/internal/catalog"
)

// Command is a user request for one character.
type Command interface {
	fmt.Stringer
	command()
}

// MoveForward moves one cell along the current heading.
type MoveForward struct {
	Kind action.Movement
}

// TurnBy turns a quarter turn.
type TurnBy struct {
	Clockwise bool
}

// Perform plays an event in place. Variation pins the clip index.
type Perform struct {
	Event     catalog.EventGroup
	Variation *int
}

func (MoveForward) command() {}
func (TurnBy) command()      {}
func (Perform) command()     {}

func (c MoveForward) String() string { return "move " + c.Kind.String() }

func (c TurnBy) String() string {
	if c.Clockwise {
		return "turn right"
	}
	return "turn left"
}

func (c Perform) String() string {
	if c.Variation != nil {
		return fmt.Sprintf("perform %s #%d", c.Event, *c.Variation)
	}
	return "perform " + c.Event.String()
}
