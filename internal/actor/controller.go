package actor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/byteworld/internal/action"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/internal/logger"
	"github.com/Faultbox/byteworld/pkg/math"
)

var (
	// ErrBusy is returned when a request is in flight and the pending slot is taken.
	ErrBusy = errors.New("actor busy: a command is already pending")

	// ErrUnknownCommand is returned for Command implementations the controller does not handle.
	ErrUnknownCommand = errors.New("unknown command")
)

// State is the controller's position in the playback cycle.
type State int

// Controller states. The controller drives Idle -> Resolving -> PlaybackRequested;
// the host's completion callback returns it to Idle.
const (
	StateIdle State = iota
	StateResolving
	StatePlaybackRequested
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StatePlaybackRequested:
		return "playback-requested"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transform is where the body ends up once a request completes.
type transform struct {
	position math.Vec3
	rotation float32
}

type flight struct {
	request PlaybackRequest
	commit  *transform // nil for in-place events
}

// Controller is the per-character move orchestrator. It keeps at most one
// playback request outstanding and one command pending behind it.
//
// A Controller is not safe for concurrent use; confine it to the goroutine
// that receives input and completion callbacks for its character.
type Controller struct {
	name     string
	body     Body
	host     Host
	selector *action.Selector
	speed    float32
	log      *zap.Logger

	state    State
	step     action.StepParity
	inFlight *flight
	pending  Command
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeed sets the playback speed. The default is the world's idle speed.
func WithSpeed(speed float32) Option {
	return func(c *Controller) { c.speed = speed }
}

// WithRand injects the random source used for variation fallback.
func WithRand(rnd action.Rand) Option {
	return func(c *Controller) { c.selector = action.NewSelector(c.host.Registry(), rnd) }
}

// WithLogger replaces the component logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController returns an idle controller for the named character.
func NewController(name string, body Body, host Host, opts ...Option) *Controller {
	c := &Controller{
		name:  name,
		body:  body,
		host:  host,
		speed: host.WorldConfig().IdleSpeed,
		log:   logger.Named("actor"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.selector == nil {
		c.selector = action.NewSelector(host.Registry(), nil)
	}
	c.log = c.log.With(logger.Character(name))
	return c
}

// Name returns the character name.
func (c *Controller) Name() string { return c.name }

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// Pending returns the queued command, if any.
func (c *Controller) Pending() (Command, bool) { return c.pending, c.pending != nil }

// InFlight returns the outstanding playback request, if any.
func (c *Controller) InFlight() (PlaybackRequest, bool) {
	if c.inFlight == nil {
		return PlaybackRequest{}, false
	}
	return c.inFlight.request, true
}

// Coordinate returns the cell the body currently occupies, derived from its
// live position.
func (c *Controller) Coordinate() grid.Coordinate {
	return grid.New(c.host.WorldConfig().GridSpacing).CoordinateFromPosition(c.body.Position())
}

// Heading returns the grid heading nearest to the body's rotation.
func (c *Controller) Heading() grid.Direction {
	return grid.DirectionFromAngle(c.body.Rotation())
}

// Submit handles a command. When idle it is resolved and requested right
// away; while a request is in flight it fills the pending slot, and
// ErrBusy is returned if that slot is already taken. Commands other than
// MoveForward, TurnBy and Perform are rejected with ErrUnknownCommand.
func (c *Controller) Submit(cmd Command) error {
	if !known(cmd) {
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	if c.state != StateIdle {
		if c.pending != nil {
			c.log.Warn("command rejected", zap.Stringer("command", cmd), zap.Stringer("pending", c.pending))
			return ErrBusy
		}
		c.pending = cmd
		c.log.Debug("command queued", zap.Stringer("command", cmd))
		return nil
	}
	return c.dispatch(cmd)
}

// OnPlaybackComplete is the host's completion callback. Completions for
// anything but the in-flight request are ignored and report false. On a
// match the body is moved to the request's target, the controller returns
// to idle and the pending command, if any, is dispatched.
func (c *Controller) OnPlaybackComplete(id uuid.UUID) bool {
	if c.inFlight == nil || c.inFlight.request.ID != id {
		c.log.Debug("ignoring stale completion", logger.Request(id))
		return false
	}

	done := c.inFlight
	c.inFlight = nil
	c.state = StateIdle
	if done.commit != nil {
		c.body.Place(done.commit.position, done.commit.rotation)
	}
	c.log.Debug("playback complete", logger.Request(id), logger.Event(done.request.Event))

	if next := c.pending; next != nil {
		c.pending = nil
		if err := c.dispatch(next); err != nil {
			c.log.Error("dispatching queued command", zap.Stringer("command", next), zap.Error(err))
		}
	}
	return true
}

// Cancel stops the in-flight request without committing its transform and
// drops the pending command. It reports whether anything was cancelled.
func (c *Controller) Cancel() bool {
	if c.inFlight == nil {
		return false
	}
	id := c.inFlight.request.ID
	c.inFlight = nil
	c.pending = nil
	c.state = StateIdle
	c.host.Cancel(id)
	c.log.Debug("playback cancelled", logger.Request(id))
	return true
}

func (c *Controller) dispatch(cmd Command) error {
	world := c.host.WorldConfig()

	c.state = StateResolving
	act, commit, err := c.plan(cmd, world)
	if err != nil {
		c.state = StateIdle
		return err
	}

	event := action.MustResolve(act, world)
	sel := c.selector.SelectPlayback(act, event, c.speed, world, &c.step)

	registry := c.selector.Registry()
	identifier, known := registry.Identifier(sel.Event, sel.Variation)
	implicit := sel.Variation == 0 && registry.VariationCount(sel.Event) == 0
	if run, ok := act.(action.Run); ok && run.Variation != nil && !known && !implicit {
		// Explicit overrides are trusted; the host decides what an unknown index plays.
		c.log.Warn("variation override out of range",
			logger.Event(sel.Event),
			zap.Int("variation", sel.Variation),
			zap.Int("registered", registry.VariationCount(sel.Event)),
		)
	}

	req := PlaybackRequest{
		ID:           uuid.New(),
		Character:    c.name,
		Event:        sel.Event,
		Variation:    sel.Variation,
		Identifier:   identifier,
		Speed:        sel.Speed,
		IsStationary: registry.IsStationary(sel.Event),
		Fast:         sel.Fast,
	}
	c.inFlight = &flight{request: req, commit: commit}
	c.state = StatePlaybackRequested

	c.log.Debug("playback requested",
		logger.Request(req.ID),
		zap.Stringer("action", act),
		logger.Event(req.Event),
		zap.Int("variation", req.Variation),
		zap.Float32("speed", req.Speed),
		zap.Bool("fast", req.Fast),
	)
	c.host.Request(req)
	return nil
}

// plan turns a command into an action plus the transform to commit once the
// clip finishes.
func (c *Controller) plan(cmd Command, world config.World) (action.Action, *transform, error) {
	pos := c.body.Position()
	rot := c.body.Rotation()

	switch cmd := cmd.(type) {
	case MoveForward:
		g := grid.New(world.GridSpacing)
		next := g.NextCoordinate(pos, rot)

		// Probe above the actor so a step up onto stairs is found.
		probeY := pos.Y + world.StairProbeOffset
		y, ok := c.host.Surface(next, probeY)
		if !ok {
			// Nothing to stand on: the clip still plays against the probe
			// height, but the body stays where it is.
			c.log.Debug("no surface ahead, move blocked", zap.Stringer("coordinate", next))
			return action.NewMove(pos, g.Position(next).WithY(probeY), cmd.Kind), nil, nil
		}
		target := g.Position(next).WithY(y)
		return action.NewMove(pos, target, cmd.Kind), &transform{position: target, rotation: rot}, nil

	case TurnBy:
		heading := grid.DirectionFromAngle(rot).Turned(cmd.Clockwise)
		to := heading.Radians()
		return action.NewTurn(rot, to, cmd.Clockwise), &transform{position: pos, rotation: to}, nil

	case Perform:
		return action.Run{Event: cmd.Event, Variation: cmd.Variation}, nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

// known reports whether the controller can plan cmd.
func known(cmd Command) bool {
	switch cmd.(type) {
	case MoveForward, TurnBy, Perform:
		return true
	default:
		return false
	}
}
