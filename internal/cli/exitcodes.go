package cli

import (
	"errors"

	"github.com/mattgren/dugout/internal/adapters/repository"
	"github.com/mattgren/dugout/internal/domain/compare"
	"github.com/mattgren/dugout/internal/domain/match"
	"github.com/mattgren/dugout/internal/domain/season"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// Process exit codes. Scripts branch on these, so each user-facing
// failure class keeps a stable value.
const (
	ExitOK           = 0
	ExitUsage        = 1
	ExitNoMatch      = 2
	ExitAmbiguous    = 3
	ExitNoData       = 4
	ExitBadMode      = 5
	ExitTypeMismatch = 6
	ExitTraded       = 7
	ExitUnknownStat  = 8
	ExitStore        = 10
)

// ExitCode maps an error to its process exit code. Anything not
// recognized (flag misuse, bad year tokens, config trouble) is a
// generic usage failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case match.IsAmbiguous(err):
		return ExitAmbiguous
	case errors.Is(err, match.ErrNoMatch):
		return ExitNoMatch
	case errors.Is(err, season.ErrNoSeasonData),
		errors.Is(err, compare.ErrNoAggregateData):
		return ExitNoData
	case errors.Is(err, compare.ErrInvalidComparisonMode):
		return ExitBadMode
	case errors.Is(err, compare.ErrPlayerTypeMismatch):
		return ExitTypeMismatch
	case errors.Is(err, compare.ErrTradedPlayerRestriction):
		return ExitTraded
	case stats.IsUnknownStat(err):
		return ExitUnknownStat
	case errors.Is(err, repository.ErrStoreUnavailable):
		return ExitStore
	default:
		return ExitUsage
	}
}
