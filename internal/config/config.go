// Package config handles simulator configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	World    World          `yaml:"world"`
	Actor    ActorConfig    `yaml:"actor"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// World holds the tunables consulted when resolving and selecting animations.
// A copy is passed into every resolve/select call; nothing reads it globally.
type World struct {
	HeightTolerance  float32 `yaml:"height_tolerance" env:"BYTEWORLD_HEIGHT_TOLERANCE"`     // Meters; "same elevation" comparisons
	IdleSpeed        float32 `yaml:"idle_speed" env:"BYTEWORLD_IDLE_SPEED"`                 // Default playback speed
	WalkRunSpeed     float32 `yaml:"walk_run_speed" env:"BYTEWORLD_WALK_RUN_SPEED"`         // Speed at which fast variations kick in
	StairProbeOffset float32 `yaml:"stair_probe_offset" env:"BYTEWORLD_STAIR_PROBE_OFFSET"` // Height above the actor to probe for stairs
	GridSpacing      float32 `yaml:"grid_spacing" env:"BYTEWORLD_GRID_SPACING"`             // World units per grid cell
}

// ActorConfig holds per-character playback settings.
type ActorConfig struct {
	Speed float32 `yaml:"speed" env:"BYTEWORLD_ACTOR_SPEED"`
}

// CatalogConfig locates the event catalog. An empty path uses the built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path" env:"BYTEWORLD_CATALOG"`
}

// ScenarioConfig locates the scripted scenario replayed by actorsim.
type ScenarioConfig struct {
	Path string `yaml:"path" env:"BYTEWORLD_SCENARIO"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"BYTEWORLD_LOG_LEVEL"`
	LogFile string `yaml:"log_file" env:"BYTEWORLD_LOG_FILE"`
}

// DefaultWorld returns the world tunables used when no file overrides them.
func DefaultWorld() World {
	return World{
		HeightTolerance:  0.1,
		IdleSpeed:        1.0,
		WalkRunSpeed:     2.5,
		StairProbeOffset: 2.0,
		GridSpacing:      1.0,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	world := DefaultWorld()
	return &Config{
		World: world,
		Actor: ActorConfig{
			Speed: world.IdleSpeed,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Scenario: ScenarioConfig{
			Path: "scenario.yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
