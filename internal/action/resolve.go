package action

import (
	"fmt"

	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/pkg/math"
)

// Resolve maps an action to its canonical event. It is pure and safe to call
// from any goroutine. ok is false only for ill-formed actions (nil, or a Move
// with an unknown Movement kind).
func Resolve(a Action, world config.World) (event catalog.EventGroup, ok bool) {
	switch v := a.(type) {
	case Move:
		return resolveMove(v, world.HeightTolerance)
	case Turn:
		if v.Clockwise {
			return catalog.TurnRight, true
		}
		return catalog.TurnLeft, true
	case Run:
		return v.Event, true
	default:
		return "", false
	}
}

// MustResolve is Resolve for callers that construct their own actions.
// An action without an event is a construction bug and panics.
func MustResolve(a Action, world config.World) catalog.EventGroup {
	event, ok := Resolve(a, world)
	if !ok {
		panic(fmt.Sprintf("action: asked to perform %v, but there is no event associated with this action", a))
	}
	return event
}

func resolveMove(m Move, tolerance float32) (catalog.EventGroup, bool) {
	rise := math.Rise(m.Displacement)
	level := math.IsClose(m.Displacement.From.Y, m.Displacement.To.Y, tolerance)

	switch m.Kind {
	case Walk:
		if level {
			return catalog.Walk, true
		}
		if rise > 0 {
			return catalog.WalkUpStairs, true
		}
		return catalog.WalkDownStairs, true

	case Jump:
		if level {
			return catalog.JumpForward, true
		}
		// Compared from the start height, the reverse of the walk check.
		if rise < 0 {
			return catalog.JumpDown, true
		}
		return catalog.JumpUp, true

	case Teleport:
		return catalog.Teleport, true
	}
	return "", false
}
