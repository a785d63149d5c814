package action

import (
	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/config"
)

// StepParity alternates fast-variation picks between step 0 and step 1 so
// consecutive footfalls do not repeat. It is per-character state owned by
// the orchestrator; the zero value starts at step 0.
type StepParity struct {
	index int
}

// Index returns the step index the next fast pick will use.
func (p *StepParity) Index() int {
	if p == nil {
		return 0
	}
	return p.index
}

func (p *StepParity) advance() {
	if p == nil {
		return
	}
	if p.index == 0 {
		p.index = 1
	} else {
		p.index = 0
	}
}

// Selection is the concrete clip chosen for a resolved event.
type Selection struct {
	Event     catalog.EventGroup
	Variation int
	Speed     float32
	Fast      bool
}

// Selector chooses variation indexes against a registry.
type Selector struct {
	registry *catalog.Registry
	rand     Rand
}

// NewSelector returns a selector over registry. A nil rnd uses NewRand.
func NewSelector(registry *catalog.Registry, rnd Rand) *Selector {
	if rnd == nil {
		rnd = NewRand()
	}
	return &Selector{registry: registry, rand: rnd}
}

// Registry returns the registry the selector reads from.
func (s *Selector) Registry() *catalog.Registry {
	return s.registry
}

// SelectVariation returns the clip index to play for event.
//
// An explicit Run variation is returned unchanged and is not bounds-checked.
// Otherwise the index is uniform in [0, count), or 0 when the event has no
// registered variations.
func (s *Selector) SelectVariation(a Action, event catalog.EventGroup) int {
	if run, ok := a.(Run); ok && run.Variation != nil {
		return *run.Variation
	}

	count := s.registry.VariationCount(event)
	if count <= 0 {
		return 0
	}
	return s.rand.IntN(count)
}

// SelectPlayback picks the clip and playback speed for event.
//
// At speed >= world.WalkRunSpeed the fast counterpart of event is preferred
// when the registry has a clip for the current step; its variation is the
// step index and step flips for the next pick. Playback speed above the run
// threshold is carried into the fast clip, never below 1. An explicit Run
// variation skips the fast tier.
func (s *Selector) SelectPlayback(a Action, event catalog.EventGroup, speed float32, world config.World, step *StepParity) Selection {
	if !hasOverride(a) && speed >= world.WalkRunSpeed {
		stepIndex := step.Index()
		if fast, ok := s.registry.FastVariationAt(event, stepIndex); ok {
			step.advance()
			return Selection{
				Event:     fast,
				Variation: stepIndex,
				Speed:     max(speed-world.WalkRunSpeed, 1),
				Fast:      true,
			}
		}
	}

	return Selection{
		Event:     event,
		Variation: s.SelectVariation(a, event),
		Speed:     speed,
	}
}

func hasOverride(a Action) bool {
	run, ok := a.(Run)
	return ok && run.Variation != nil
}
