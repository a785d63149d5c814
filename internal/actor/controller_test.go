package actor_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/byteworld/internal/action"
	"github.com/Faultbox/byteworld/internal/actor"
	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/internal/simhost"
	"github.com/Faultbox/byteworld/pkg/math"
)

const hero = "byte"

type fixture struct {
	host *simhost.Host
	body *simhost.Body
	ctrl *actor.Controller
}

// newFixture places a character at the origin cell facing north.
// rows are terrain elevations starting at cell (0, 0); nil is flat ground.
func newFixture(t *testing.T, rows [][]float32, opts ...actor.Option) *fixture {
	t.Helper()

	var terrain *simhost.Terrain
	startY := float32(0)
	if rows != nil {
		terrain = simhost.BuildTerrain(grid.Coordinate{}, rows)
		startY = rows[0][0]
	}

	host := simhost.New(catalog.Default(), config.DefaultWorld(), terrain)
	body := simhost.NewBody(math.Vec3{X: 0, Y: startY, Z: 0}, grid.North.Radians())
	opts = append([]actor.Option{actor.WithRand(action.NewSeededRand(1, 1))}, opts...)
	ctrl := actor.NewController(hero, body, host, opts...)
	host.OnComplete(func(_ string, id uuid.UUID, _ catalog.EventGroup) bool {
		return ctrl.OnPlaybackComplete(id)
	})

	return &fixture{host: host, body: body, ctrl: ctrl}
}

func (f *fixture) active(t *testing.T) actor.PlaybackRequest {
	t.Helper()
	req, ok := f.host.Active(hero)
	require.True(t, ok, "expected an outstanding playback request")
	return req
}

func TestController_WalkOnLevelGround(t *testing.T) {
	f := newFixture(t, [][]float32{{0}, {0}})

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
	assert.Equal(t, actor.StatePlaybackRequested, f.ctrl.State())

	req := f.active(t)
	assert.Equal(t, catalog.Walk, req.Event)
	assert.Equal(t, hero, req.Character)
	assert.False(t, req.IsStationary)
	assert.NotEmpty(t, req.Identifier)
	assert.Equal(t, float32(1), req.Speed)

	// Nothing moves until the host reports completion
	assert.Equal(t, math.Vec3{}, f.body.Position())

	_, ok := f.host.Complete(hero)
	require.True(t, ok)
	assert.Equal(t, actor.StateIdle, f.ctrl.State())
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: -1}, f.body.Position())
	assert.Equal(t, grid.Coordinate{Column: 0, Row: 1}, f.ctrl.Coordinate())
}

func TestController_Stairs(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]float32
		kind  action.Movement
		want  catalog.EventGroup
		wantY float32
	}{
		{"walk up", [][]float32{{0}, {0.5}}, action.Walk, catalog.WalkUpStairs, 0.5},
		{"walk down", [][]float32{{1}, {0}}, action.Walk, catalog.WalkDownStairs, 0},
		{"walk within tolerance", [][]float32{{0}, {0.05}}, action.Walk, catalog.Walk, 0.05},
		{"jump up", [][]float32{{0}, {1}}, action.Jump, catalog.JumpUp, 1},
		{"jump down", [][]float32{{1}, {0}}, action.Jump, catalog.JumpDown, 0},
		{"jump forward", [][]float32{{0}, {0}}, action.Jump, catalog.JumpForward, 0},
		{"teleport", [][]float32{{5}, {0}}, action.Teleport, catalog.Teleport, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.rows)

			require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: tt.kind}))
			assert.Equal(t, tt.want, f.active(t).Event)

			f.host.Complete(hero)
			assert.InDelta(t, tt.wantY, f.body.Position().Y, 1e-6)
		})
	}
}

func TestController_NoSurfaceBlocksMove(t *testing.T) {
	// Only the start cell exists; the cell ahead reports no surface
	f := newFixture(t, [][]float32{{0}})

	for i := 0; i < 3; i++ {
		require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
		assert.Equal(t, catalog.WalkUpStairs, f.active(t).Event, "resolved against the probe height")

		_, ok := f.host.Complete(hero)
		require.True(t, ok)
		assert.Equal(t, actor.StateIdle, f.ctrl.State())
		assert.Equal(t, math.Vec3{}, f.body.Position(), "body stays on the last surface")
		assert.Equal(t, grid.Coordinate{}, f.ctrl.Coordinate())
	}
}

func TestController_WallBlocksMove(t *testing.T) {
	// The cell ahead is taller than the probe reaches
	f := newFixture(t, [][]float32{{0}, {3}})

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Jump}))
	assert.Equal(t, catalog.JumpUp, f.active(t).Event)

	f.host.Complete(hero)
	assert.Equal(t, math.Vec3{}, f.body.Position())
}

func TestController_Turn(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: true}))
	req := f.active(t)
	assert.Equal(t, catalog.TurnRight, req.Event)
	assert.True(t, req.IsStationary)

	f.host.Complete(hero)
	assert.Equal(t, grid.East, f.ctrl.Heading())

	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: false}))
	assert.Equal(t, catalog.TurnLeft, f.active(t).Event)
	f.host.Complete(hero)
	assert.Equal(t, grid.North, f.ctrl.Heading())

	// Walking after a turn follows the new heading
	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: false}))
	f.host.Complete(hero)
	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
	f.host.Complete(hero)
	assert.Equal(t, grid.Coordinate{Column: -1, Row: 0}, f.ctrl.Coordinate())
}

func TestController_PerformWithOverride(t *testing.T) {
	f := newFixture(t, nil)
	variation := 2

	require.NoError(t, f.ctrl.Submit(actor.Perform{Event: "victory", Variation: &variation}))
	req := f.active(t)
	assert.Equal(t, catalog.EventGroup("victory"), req.Event)
	assert.Equal(t, 2, req.Variation)
	assert.Equal(t, "victory_jump", req.Identifier)
	assert.True(t, req.IsStationary)

	f.host.Complete(hero)
	assert.Equal(t, math.Vec3{}, f.body.Position(), "in-place events do not move the body")
}

func TestController_PerformOutOfRangeOverrideIsTrusted(t *testing.T) {
	f := newFixture(t, nil)
	variation := 9

	require.NoError(t, f.ctrl.Submit(actor.Perform{Event: "victory", Variation: &variation}))
	req := f.active(t)
	assert.Equal(t, 9, req.Variation)
	assert.Empty(t, req.Identifier)
}

func TestController_PerformUnknownEvent(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Submit(actor.Perform{Event: "wave"}))
	req := f.active(t)
	assert.Equal(t, catalog.EventGroup("wave"), req.Event)
	assert.Equal(t, 0, req.Variation)
	assert.Empty(t, req.Identifier)
}

func TestController_SingleSlotQueue(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
	first := f.active(t)

	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: true}))
	pending, ok := f.ctrl.Pending()
	require.True(t, ok)
	assert.Equal(t, actor.TurnBy{Clockwise: true}, pending)

	err := f.ctrl.Submit(actor.Perform{Event: catalog.Idle})
	assert.ErrorIs(t, err, actor.ErrBusy)

	// Only one request outstanding so far
	assert.Len(t, f.host.HistoryFor(hero), 1)

	// Completing the walk dispatches the queued turn
	f.host.Complete(hero)
	second := f.active(t)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, catalog.TurnRight, second.Event)
	_, ok = f.ctrl.Pending()
	assert.False(t, ok)

	f.host.Complete(hero)
	assert.Equal(t, actor.StateIdle, f.ctrl.State())
	assert.Equal(t, grid.East, f.ctrl.Heading())
	assert.Equal(t, grid.Coordinate{Column: 0, Row: 1}, f.ctrl.Coordinate())
}

func TestController_StaleCompletionIgnored(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.ctrl.OnPlaybackComplete(uuid.New()), "nothing in flight")

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
	assert.False(t, f.ctrl.OnPlaybackComplete(uuid.New()))
	assert.Equal(t, actor.StatePlaybackRequested, f.ctrl.State())
	assert.Equal(t, math.Vec3{}, f.body.Position())

	req := f.active(t)
	assert.True(t, f.ctrl.OnPlaybackComplete(req.ID))
	assert.False(t, f.ctrl.OnPlaybackComplete(req.ID), "second completion for the same request")
}

func TestController_Cancel(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.ctrl.Cancel(), "nothing to cancel")

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: true}))
	req := f.active(t)

	assert.True(t, f.ctrl.Cancel())
	assert.Equal(t, actor.StateIdle, f.ctrl.State())
	_, ok := f.ctrl.Pending()
	assert.False(t, ok, "cancel drops the pending command")
	_, ok = f.ctrl.InFlight()
	assert.False(t, ok)
	assert.Equal(t, []uuid.UUID{req.ID}, f.host.Cancelled())
	assert.Equal(t, math.Vec3{}, f.body.Position(), "cancelled moves are not committed")

	// A completion racing the cancel is ignored
	assert.False(t, f.ctrl.OnPlaybackComplete(req.ID))
}

func TestController_FastVariationAlternatesFeet(t *testing.T) {
	f := newFixture(t, nil, actor.WithSpeed(4))

	var variations []int
	for i := 0; i < 3; i++ {
		require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))
		req := f.active(t)
		assert.Equal(t, catalog.RunFast, req.Event)
		assert.True(t, req.Fast)
		assert.InDelta(t, 1.5, req.Speed, 1e-6)
		variations = append(variations, req.Variation)
		f.host.Complete(hero)
	}

	assert.Equal(t, []int{0, 1, 0}, variations)
	assert.Equal(t, grid.Coordinate{Column: 0, Row: 3}, f.ctrl.Coordinate())
}

func TestController_UnknownCommand(t *testing.T) {
	f := newFixture(t, nil)

	err := f.ctrl.Submit(nil)
	assert.ErrorIs(t, err, actor.ErrUnknownCommand)
	assert.Equal(t, actor.StateIdle, f.ctrl.State())
	assert.Empty(t, f.host.History())

	// Pointer forms satisfy Command but are not planned
	err = f.ctrl.Submit(&actor.TurnBy{Clockwise: true})
	assert.ErrorIs(t, err, actor.ErrUnknownCommand)
	assert.Empty(t, f.host.History())
}

func TestController_UnknownCommandWhileBusy(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Submit(actor.MoveForward{Kind: action.Walk}))

	assert.ErrorIs(t, f.ctrl.Submit(nil), actor.ErrUnknownCommand)
	assert.ErrorIs(t, f.ctrl.Submit(&actor.MoveForward{Kind: action.Walk}), actor.ErrUnknownCommand)
	_, ok := f.ctrl.Pending()
	assert.False(t, ok, "rejected commands never take the pending slot")

	// The slot is still free for a real command
	require.NoError(t, f.ctrl.Submit(actor.TurnBy{Clockwise: true}))
	_, err := f.host.Drain(context.Background(), hero)
	require.NoError(t, err)
	assert.Len(t, f.host.HistoryFor(hero), 2)
	assert.Equal(t, grid.East, f.ctrl.Heading())
}

func TestCommand_String(t *testing.T) {
	v := 1
	assert.Equal(t, "move jump", actor.MoveForward{Kind: action.Jump}.String())
	assert.Equal(t, "turn right", actor.TurnBy{Clockwise: true}.String())
	assert.Equal(t, "turn left", actor.TurnBy{}.String())
	assert.Equal(t, "perform victory #1", actor.Perform{Event: "victory", Variation: &v}.String())
	assert.Equal(t, "playback-requested", actor.StatePlaybackRequested.String())
}
