package simhost

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/byteworld/internal/actor"
	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/internal/logger"
)

// CompletionFunc receives completion callbacks, usually Director.OnPlaybackComplete.
type CompletionFunc func(character string, id uuid.UUID, event catalog.EventGroup) bool

// Host implements actor.Host in memory. It is safe for use by several
// character goroutines at once.
type Host struct {
	registry *catalog.Registry
	world    config.World
	terrain  *Terrain
	log      *zap.Logger

	mu         sync.Mutex
	active     map[string]actor.PlaybackRequest // Outstanding request per character
	history    []actor.PlaybackRequest
	cancelled  []uuid.UUID
	onComplete CompletionFunc
}

// New returns a host serving registry and world over terrain.
// A nil terrain is flat ground.
func New(registry *catalog.Registry, world config.World, terrain *Terrain) *Host {
	return &Host{
		registry: registry,
		world:    world,
		terrain:  terrain,
		log:      logger.Named("simhost"),
		active:   make(map[string]actor.PlaybackRequest),
	}
}

// OnComplete sets the function that receives completions.
func (h *Host) OnComplete(fn CompletionFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onComplete = fn
}

// Registry implements actor.Host.
func (h *Host) Registry() *catalog.Registry { return h.registry }

// WorldConfig implements actor.Host.
func (h *Host) WorldConfig() config.World { return h.world }

// Surface implements actor.Host.
func (h *Host) Surface(c grid.Coordinate, probeY float32) (float32, bool) {
	return h.terrain.Surface(c, probeY)
}

// Request implements actor.Host. A newer request for a character replaces
// the outstanding one.
func (h *Host) Request(req actor.PlaybackRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.active[req.Character]; ok {
		h.log.Debug("superseding clip", logger.Character(req.Character), logger.Request(prev.ID))
	}
	h.active[req.Character] = req
	h.history = append(h.history, req)
}

// Cancel implements actor.Host.
func (h *Host) Cancel(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for character, req := range h.active {
		if req.ID == id {
			delete(h.active, character)
		}
	}
	h.cancelled = append(h.cancelled, id)
}

// Active returns the outstanding request for a character.
func (h *Host) Active(character string) (actor.PlaybackRequest, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	req, ok := h.active[character]
	return req, ok
}

// History returns every request received, oldest first.
func (h *Host) History() []actor.PlaybackRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]actor.PlaybackRequest, len(h.history))
	copy(out, h.history)
	return out
}

// HistoryFor returns the requests received for one character, oldest first.
func (h *Host) HistoryFor(character string) []actor.PlaybackRequest {
	var out []actor.PlaybackRequest
	for _, req := range h.History() {
		if req.Character == character {
			out = append(out, req)
		}
	}
	return out
}

// Cancelled returns the ids passed to Cancel.
func (h *Host) Cancelled() []uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uuid.UUID, len(h.cancelled))
	copy(out, h.cancelled)
	return out
}

// Complete finishes the outstanding request for a character and delivers
// the completion. It reports false when nothing was outstanding.
// The callback runs without the host lock held, so it may issue new requests.
func (h *Host) Complete(character string) (actor.PlaybackRequest, bool) {
	h.mu.Lock()
	req, ok := h.active[character]
	if ok {
		delete(h.active, character)
	}
	fn := h.onComplete
	h.mu.Unlock()

	if !ok {
		return actor.PlaybackRequest{}, false
	}
	if fn != nil {
		fn(req.Character, req.ID, req.Event)
	}
	return req, true
}

// Drain completes requests for a character until none is outstanding,
// including those issued by queued commands. It returns the completed
// requests in order.
func (h *Host) Drain(ctx context.Context, character string) ([]actor.PlaybackRequest, error) {
	var done []actor.PlaybackRequest
	for {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		req, ok := h.Complete(character)
		if !ok {
			return done, nil
		}
		done = append(done, req)
	}
}
