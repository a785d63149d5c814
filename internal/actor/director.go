package actor

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/logger"
)

// Director routes commands and completion callbacks to per-character
// controllers. Register every controller before handing the director to
// other goroutines; lookups are read-only afterwards.
type Director struct {
	controllers map[string]*Controller
}

// NewDirector returns an empty director.
func NewDirector() *Director {
	return &Director{controllers: make(map[string]*Controller)}
}

// Add registers a controller under its character name.
func (d *Director) Add(c *Controller) error {
	if _, exists := d.controllers[c.Name()]; exists {
		return fmt.Errorf("character %q already registered", c.Name())
	}
	d.controllers[c.Name()] = c
	return nil
}

// Controller returns the controller for a character.
func (d *Director) Controller(name string) (*Controller, bool) {
	c, ok := d.controllers[name]
	return c, ok
}

// Names returns the registered character names, sorted.
func (d *Director) Names() []string {
	names := make([]string, 0, len(d.controllers))
	for name := range d.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Submit forwards a command to a character's controller.
func (d *Director) Submit(character string, cmd Command) error {
	c, ok := d.controllers[character]
	if !ok {
		return fmt.Errorf("unknown character %q", character)
	}
	return c.Submit(cmd)
}

// OnPlaybackComplete forwards a host completion to the character's controller.
func (d *Director) OnPlaybackComplete(character string, id uuid.UUID, event catalog.EventGroup) bool {
	c, ok := d.controllers[character]
	if !ok {
		logger.Warn("completion for unknown character", logger.Character(character), logger.Event(event))
		return false
	}
	return c.OnPlaybackComplete(id)
}
