package season

import "errors"

// Sentinel kinds for season selection errors.
var (
	// ErrNoSeasonData means the resolved player has no row for the
	// requested year (or no rows at all for the career view).
	ErrNoSeasonData = errors.New("no season data")

	// ErrInvalidYear means the year token was neither a 2- nor a
	// 4-digit number.
	ErrInvalidYear = errors.New("invalid year")
)
