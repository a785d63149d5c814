package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagCatalog  = flag.String("catalog", "", "Path to event catalog")
	flagScenario = flag.String("scenario", "", "Path to scenario file")
	flagSpeed    = flag.Float64("speed", 0, "Actor playback speed")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCatalog != "" {
		cfg.Catalog.Path = *flagCatalog
	}
	if *flagScenario != "" {
		cfg.Scenario.Path = *flagScenario
	}
	if *flagSpeed > 0 {
		cfg.Actor.Speed = float32(*flagSpeed)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
