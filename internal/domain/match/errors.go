package match

import (
	"errors"
	"fmt"

	"github.com/mattgren/dugout/internal/domain/model"
)

// ErrNoMatch is returned when a query resolves to no players.
var ErrNoMatch = errors.New("no players found")

// AmbiguousError is returned when a query resolves to several players
// and no disambiguation rule applies. Candidates are ordered
// deterministically (last name, first name, store ID) for display.
type AmbiguousError struct {
	Query      string
	Candidates []model.Player
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple players found matching %q (%d candidates)", e.Query, len(e.Candidates))
}

// IsAmbiguous reports whether err wraps an AmbiguousError.
func IsAmbiguous(err error) bool {
	var a *AmbiguousError
	return errors.As(err, &a)
}
