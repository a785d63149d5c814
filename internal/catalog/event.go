// Package catalog holds the canonical animation events and the clip
// variations registered for each of them.
package catalog

// EventGroup identifies a category of animation content, e.g. "walk up stairs".
//
// The constants below are the closed core set the engine derives from
// actions. Any other value is a host-defined event (idle, gesture,
// interaction) that the engine passes through verbatim.
type EventGroup string

// Core events derived by resolving Move and Turn actions.
const (
	Walk           EventGroup = "walk"
	WalkUpStairs   EventGroup = "walkUpStairs"
	WalkDownStairs EventGroup = "walkDownStairs"
	JumpForward    EventGroup = "jumpForward"
	JumpUp         EventGroup = "jumpUp"
	JumpDown       EventGroup = "jumpDown"
	Teleport       EventGroup = "teleport"
	TurnLeft       EventGroup = "turnLeft"
	TurnRight      EventGroup = "turnRight"
)

// Core events that are never derived from an action but that the built-in
// catalog knows about.
const (
	Idle    EventGroup = "idle"
	RunFast EventGroup = "runFast" // Fast counterpart of Walk, alternating feet per step
)

var coreEvents = []EventGroup{
	Walk, WalkUpStairs, WalkDownStairs,
	JumpForward, JumpUp, JumpDown,
	Teleport,
	TurnLeft, TurnRight,
	Idle, RunFast,
}

// CoreEvents returns the closed set of core events in declaration order.
func CoreEvents() []EventGroup {
	out := make([]EventGroup, len(coreEvents))
	copy(out, coreEvents)
	return out
}

// IsCore reports whether e belongs to the closed core set.
func (e EventGroup) IsCore() bool {
	for _, c := range coreEvents {
		if c == e {
			return true
		}
	}
	return false
}

// String returns the raw identifier.
func (e EventGroup) String() string {
	return string(e)
}

// translates reports whether clips for e move the node through the world
// rather than playing in place.
func (e EventGroup) translates() bool {
	switch e {
	case Walk, WalkUpStairs, WalkDownStairs, JumpForward, JumpUp, JumpDown, RunFast:
		return true
	default:
		return false
	}
}
