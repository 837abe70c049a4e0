package stats

import (
	"errors"
	"fmt"
)

// Sentinel kinds for vocabulary errors.
var (
	ErrInvalidDirection = errors.New("invalid stat direction")
)

// UnknownStatError reports a stat token that names no stat in the
// relevant vocabulary. It echoes the offending token for display.
type UnknownStatError struct {
	Stat string
	Type PlayerType
}

func (e *UnknownStatError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("unknown stat %q", e.Stat)
	}
	return fmt.Sprintf("unknown %s stat %q", e.Type, e.Stat)
}

// IsUnknownStat reports whether err wraps an UnknownStatError.
func IsUnknownStat(err error) bool {
	var u *UnknownStatError
	return errors.As(err, &u)
}
