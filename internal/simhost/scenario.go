package simhost

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/byteworld/internal/action"
	"github.com/Faultbox/byteworld/internal/actor"
	"github.com/Faultbox/byteworld/internal/catalog"
	"github.com/Faultbox/byteworld/internal/grid"
	"github.com/Faultbox/byteworld/pkg/math"
)

// Scenario is a scripted run: a terrain and characters with command lists.
type Scenario struct {
	Terrain    TerrainSpec     `yaml:"terrain"`
	Characters []CharacterSpec `yaml:"characters"`
}

// TerrainSpec describes the heightmap. An empty Rows list is flat ground.
type TerrainSpec struct {
	Origin CellSpec    `yaml:"origin"`
	Rows   [][]float32 `yaml:"rows"`
}

// CellSpec is a grid cell in scenario files.
type CellSpec struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

// CharacterSpec places one character and lists what it does.
type CharacterSpec struct {
	Name     string        `yaml:"name"`
	Start    CellSpec      `yaml:"start"`
	Heading  string        `yaml:"heading"`
	Commands []CommandSpec `yaml:"commands"`
}

// CommandSpec is one scripted command; exactly one field is set.
//
//	- move: walk          # walk | jump | teleport
//	- turn: right         # left | right
//	- perform: victory
//	- perform: {event: victory, variation: 2}
type CommandSpec struct {
	Move    string       `yaml:"move"`
	Turn    string       `yaml:"turn"`
	Perform *PerformSpec `yaml:"perform"`
}

// PerformSpec accepts either a bare event name or a mapping.
type PerformSpec struct {
	Event     string `yaml:"event"`
	Variation *int   `yaml:"variation"`
}

// UnmarshalYAML lets "perform: victory" stand for {event: victory}.
func (p *PerformSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Event = node.Value
		return nil
	}
	type plain PerformSpec
	return node.Decode((*plain)(p))
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for i, ch := range s.Characters {
		if ch.Name == "" {
			return nil, fmt.Errorf("character %d has no name", i)
		}
		if seen[ch.Name] {
			return nil, fmt.Errorf("duplicate character %q", ch.Name)
		}
		seen[ch.Name] = true

		if _, err := ch.Direction(); err != nil {
			return nil, fmt.Errorf("character %q: %w", ch.Name, err)
		}
		if _, err := ch.ActorCommands(); err != nil {
			return nil, fmt.Errorf("character %q: %w", ch.Name, err)
		}
	}
	return &s, nil
}

// BuildTerrain returns the scenario heightmap, nil for flat ground.
func (s *Scenario) BuildTerrain() *Terrain {
	if len(s.Terrain.Rows) == 0 {
		return nil
	}
	return BuildTerrain(s.Terrain.Origin.Coordinate(), s.Terrain.Rows)
}

// Coordinate returns the cell as a grid coordinate.
func (c CellSpec) Coordinate() grid.Coordinate {
	return grid.Coordinate{Column: c.Column, Row: c.Row}
}

// Direction returns the starting heading, north when unset.
func (c CharacterSpec) Direction() (grid.Direction, error) {
	if c.Heading == "" {
		return grid.North, nil
	}
	return grid.ParseDirection(c.Heading)
}

// Spawn creates the character's body on its start cell, standing on the terrain.
func (c CharacterSpec) Spawn(g grid.Grid, terrain *Terrain) (*Body, error) {
	heading, err := c.Direction()
	if err != nil {
		return nil, err
	}
	start := c.Start.Coordinate()
	y, ok := terrain.Height(start)
	if !ok {
		return nil, fmt.Errorf("character %q starts off the map at %s", c.Name, start)
	}
	pos := g.Position(start)
	return NewBody(math.Vec3{X: pos.X, Y: y, Z: pos.Z}, heading.Radians()), nil
}

// ActorCommands converts the scripted commands.
func (c CharacterSpec) ActorCommands() ([]actor.Command, error) {
	out := make([]actor.Command, 0, len(c.Commands))
	for i, spec := range c.Commands {
		cmd, err := spec.command()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		out = append(out, cmd)
	}
	return out, nil
}

func (s CommandSpec) command() (actor.Command, error) {
	set := 0
	for _, ok := range []bool{s.Move != "", s.Turn != "", s.Perform != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("expected exactly one of move, turn, perform; got %d", set)
	}

	switch {
	case s.Move != "":
		kind, err := parseMovement(s.Move)
		if err != nil {
			return nil, err
		}
		return actor.MoveForward{Kind: kind}, nil

	case s.Turn != "":
		switch s.Turn {
		case "left":
			return actor.TurnBy{Clockwise: false}, nil
		case "right":
			return actor.TurnBy{Clockwise: true}, nil
		}
		return nil, fmt.Errorf("unknown turn %q", s.Turn)

	default:
		if s.Perform.Event == "" {
			return nil, fmt.Errorf("perform needs an event")
		}
		return actor.Perform{Event: catalog.EventGroup(s.Perform.Event), Variation: s.Perform.Variation}, nil
	}
}

func parseMovement(s string) (action.Movement, error) {
	for _, m := range []action.Movement{action.Walk, action.Jump, action.Teleport} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown movement %q", s)
}
