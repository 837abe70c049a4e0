// Package stats defines the closed stat vocabulary: one Definition per
// stat key and player type, carrying display label, directionality and
// comparison eligibility. The vocabulary is fixed at startup and treated
// as a constant input by every other component.
package stats

import "strconv"

// PlayerType distinguishes the two disjoint stat vocabularies.
type PlayerType string

const (
	Pitcher PlayerType = "pitcher"
	Hitter  PlayerType = "hitter"
)

// Key is a canonical stat identifier, e.g. "era" or "ops_plus".
type Key string

// Direction states whether a higher or lower value is favorable.
type Direction int

const (
	// HigherIsBetter is the default for counting and production stats.
	HigherIsBetter Direction = iota
	// LowerIsBetter covers run-prevention ratios such as ERA and WHIP.
	LowerIsBetter
	// Neutral stats carry no value judgement (playing-time volume).
	Neutral
)

// Definition is the per-stat metadata consulted at comparison and
// presentation time.
type Definition struct {
	Key       Key
	Label     string
	Direction Direction

	// Decimals controls numeric rendering (0 renders as an integer).
	Decimals int

	// Rate marks per-unit ratios eligible for team/league-average
	// comparison; counting stats are excluded from those modes.
	Rate bool

	// Leaderboard marks stats that participate in league-leader
	// emphasis.
	Leaderboard bool

	// Qualifying marks rate stats whose league leader must meet the
	// playing-time qualification threshold (PA or IP).
	Qualifying bool
}

// Format renders a value according to the definition's precision.
func (d Definition) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', d.Decimals, 64)
}

// Better reports whether a beats b under the definition's direction.
// Neutral stats never report a winner.
func (d Definition) Better(a, b float64) bool {
	switch d.Direction {
	case LowerIsBetter:
		return a < b
	case HigherIsBetter:
		return a > b
	default:
		return false
	}
}

// QualificationKey returns the playing-time stat gating leader
// qualification for the given player type.
func QualificationKey(pt PlayerType) Key {
	if pt == Pitcher {
		return "ip"
	}
	return "pa"
}
