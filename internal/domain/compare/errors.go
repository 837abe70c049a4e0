package compare

import "errors"

// Sentinel kinds for comparison errors.
var (
	// ErrInvalidComparisonMode means zero or several comparison modes
	// were requested; exactly one must be active.
	ErrInvalidComparisonMode = errors.New("invalid comparison mode")

	// ErrPlayerTypeMismatch means a head-to-head comparison mixed a
	// pitcher with a hitter.
	ErrPlayerTypeMismatch = errors.New("cannot compare a pitcher with a hitter")

	// ErrTradedPlayerRestriction means a multi-team season row was
	// offered for team-average comparison; such rows span clubs and
	// have no single team aggregate.
	ErrTradedPlayerRestriction = errors.New("traded season cannot be compared to a team average")

	// ErrNoAggregateData means the store has no team or league
	// aggregate for the requested year.
	ErrNoAggregateData = errors.New("no aggregate data")
)
