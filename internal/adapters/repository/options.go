package repository

import "github.com/mattgren/dugout/pkg/logger"

// Option applies a configuration option to the SQLite source.
type Option func(*SQLiteSource)

// WithLogger attaches a logger for query-level debug output.
func WithLogger(l logger.Logger) Option {
	return func(s *SQLiteSource) {
		s.log = l
	}
}
