package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if PODIUM_CONFIG is set
//  3. env (prefix PODIUM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PODIUM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PODIUM_DATASET_PATH, PODIUM_LOG_LEVEL, ...
	// Map env keys like PODIUM_DATASET_PATH -> dataset_path (flat keys).
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PODIUM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "podium_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("%w: dataset_path must not be empty", ErrInvalidConfig)
	}
	if c.SummerOutput == "" {
		return fmt.Errorf("%w: summer_output must not be empty", ErrInvalidConfig)
	}
	if c.WinterOutput == "" {
		return fmt.Errorf("%w: winter_output must not be empty", ErrInvalidConfig)
	}
	if c.SummerOutput == c.WinterOutput {
		return fmt.Errorf("%w: summer_output and winter_output must differ", ErrInvalidConfig)
	}
	return nil
}
