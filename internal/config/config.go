// Package config defines process configuration and its loading rules.
//
// Conventions:
// - New returns compiled defaults; Load layers file and env on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration for the medal pipeline.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DatasetPath points at the athlete-events CSV to process.
	DatasetPath string `koanf:"dataset_path"`

	// SummerOutput is the JSON file the Summer season result is written to.
	SummerOutput string `koanf:"summer_output"`

	// WinterOutput is the JSON file the Winter season result is written to.
	WinterOutput string `koanf:"winter_output"`
}

// New creates a Config with the fixed relative paths the no-argument
// invocation relies on.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		DatasetPath:  "data/raw/athlete_events.csv",
		SummerOutput: "data/summer_medals.json",
		WinterOutput: "data/winter_medals.json",
	}
}
