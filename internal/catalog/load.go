package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid event catalog")

//go:embed schema.json
var schemaJSON string

//go:embed default.yaml
var defaultYAML []byte

var catalogSchema = jsonschema.MustCompileString("https://byteworld.dev/schemas/catalog.json", schemaJSON)

// file mirrors the YAML catalog layout.
type file struct {
	Version int                   `yaml:"version"`
	Events  map[string]eventEntry `yaml:"events"`
}

type eventEntry struct {
	Variations []string `yaml:"variations"`
	Fast       string   `yaml:"fast"`
	Stationary *bool    `yaml:"stationary"`
}

// Default returns the built-in catalog.
func Default() *Registry {
	r, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in event catalog: %v", err))
	}
	return r
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return r, nil
}

// Parse validates a YAML catalog document against the catalog schema and
// builds a Registry from it.
func Parse(data []byte) (*Registry, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	entries := make(map[EventGroup]Entry, len(f.Events))
	for name, e := range f.Events {
		event := EventGroup(name)
		if e.Fast == name {
			return nil, fmt.Errorf("%w: event %q lists itself as its fast variation", ErrInvalidCatalog, name)
		}
		entries[event] = Entry{
			Identifiers: e.Variations,
			Fast:        EventGroup(e.Fast),
			Stationary:  e.Stationary,
		}
	}
	return NewRegistry(entries), nil
}

// validate checks the document shape before it is decoded into typed structs.
// YAML is converted to its JSON form so the schema sees the same values a
// JSON catalog would produce.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := catalogSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}
