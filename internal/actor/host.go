// Package actor drives a character from user commands to playback requests:
// it builds an action from the live transform, resolves and selects it, and
// hands the result to the animation host.
package actor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/pkg/math"
)

// Host is the animation host: it owns clips, scene nodes and playback.
type Host interface {
	// Registry returns the variation registry. It must not change afterwards.
	Registry() *catalog.Registry

	// WorldConfig returns a snapshot of the world tunables.
	WorldConfig() config.World

	// Surface returns the elevation of the walkable surface at c, probing
	// downwards from probeY. ok is false when nothing is found.
	Surface(c grid.Coordinate, probeY float32) (y float32, ok bool)

	// Request starts playback and returns immediately. A new request for the
	// same event on the same character supersedes the previous clip.
	Request(req PlaybackRequest)

	// Cancel stops a request before its completion fires.
	Cancel(id uuid.UUID)
}

// Body is the character node as seen by the controller.
type Body interface {
	Position() math.Vec3
	Rotation() float32 // Radians around +Y
	Place(pos math.Vec3, rotation float32)
}

// PlaybackRequest is what the host needs to realize a resolved event.
type PlaybackRequest struct {
	ID           uuid.UUID
	Character    string
	Event        catalog.EventGroup
	Variation    int
	Identifier   string // Clip identifier, empty when the registry has none at Variation
	Speed        float32
	IsStationary bool
	Fast         bool
}

func (r PlaybackRequest) String() string {
	return fmt.Sprintf("%s: %s #%d x%.2f", r.Character, r.Event, r.Variation, r.Speed)
}
