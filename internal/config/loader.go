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

	"github.com/mattgren/dugout/internal/domain/stats"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if DUGOUT_CONFIG is set
//  3. env (prefix DUGOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DUGOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// Environment variables: DUGOUT_DB_PATH, DUGOUT_LOG_LEVEL, ...
	// Map env keys like DUGOUT_DB_PATH -> db_path (flat keys).
	envProvider := env.Provider("DUGOUT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "dugout_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q (use auto, always or never)", ErrInvalidConfig, c.Color)
	}
	if c.DefaultSeason <= 0 {
		return fmt.Errorf("%w: default_season %d", ErrInvalidConfig, c.DefaultSeason)
	}
	if c.QualPA <= 0 || c.QualIP <= 0 {
		return fmt.Errorf("%w: qualification thresholds must be positive", ErrInvalidConfig)
	}
	return nil
}

// Vocabulary materializes the stat vocabulary, applying the override
// file when VocabularyPath is set.
func (c *Config) Vocabulary() (*stats.Vocabulary, error) {
	if c.VocabularyPath == "" {
		return stats.Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(c.VocabularyPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, c.VocabularyPath, err)
	}

	var overrides map[string]stats.Override
	if err := k.UnmarshalWithConf("", &overrides, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, c.VocabularyPath, err)
	}

	vocab, err := stats.Default().WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, c.VocabularyPath, err)
	}
	return vocab, nil
}
