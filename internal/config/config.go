// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers
//   file and environment on top.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration.
type Config struct {
	// DBPath points at the read-only stats database.
	DBPath string `koanf:"db_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Color selects terminal styling: auto, always, never.
	Color string `koanf:"color"`

	// DefaultSeason is the year assumed when a comparison names none.
	DefaultSeason int `koanf:"default_season"`

	// QualPA and QualIP gate rate-stat leadership: minimum plate
	// appearances for hitters, innings pitched for pitchers.
	QualPA float64 `koanf:"qual_pa"`
	QualIP float64 `koanf:"qual_ip"`

	// VocabularyPath optionally points at a YAML file of per-stat
	// label/direction overrides.
	VocabularyPath string `koanf:"vocabulary_path"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		DBPath:        "stats.db",
		LogLevel:      "warn",
		Color:         "auto",
		DefaultSeason: 2025,
		QualPA:        502,
		QualIP:        162,
	}
}
