// Package season selects the relevant season row(s) for a resolved
// player: year-token normalization, single-season selection, and the
// computed career aggregate.
package season

import (
	"context"
	"fmt"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// twoDigitCentury maps 2-digit year tokens into the 2000s: "24" is
// 2024 and "99" is 2099. The data set starts well after 1999, so the
// rule is fixed rather than pivoting.
const twoDigitCentury = 2000

// Source is the slice of the data source the selector consumes.
type Source interface {
	// SeasonRecords returns all season rows for a player in ascending
	// year order. A traded season contributes its combined multi-team
	// row plus one row per club.
	SeasonRecords(ctx context.Context, p model.Player) ([]model.SeasonRecord, error)
}

// NormalizeYear parses a user year token. Empty input returns 0,
// meaning "no year given". 2-digit tokens land in the 2000s.
func NormalizeYear(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	if !allDigits(token) {
		return 0, fmt.Errorf("%w: %q (use 2024 or 24)", ErrInvalidYear, token)
	}
	switch len(token) {
	case 2:
		return twoDigitCentury + atoi(token), nil
	case 4:
		return atoi(token), nil
	}
	return 0, fmt.Errorf("%w: %q (use 2024 or 24)", ErrInvalidYear, token)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// Selector picks season rows and computes career aggregates.
type Selector struct {
	src   Source
	vocab *stats.Vocabulary
}

// NewSelector creates a Selector over the given source and vocabulary.
func NewSelector(src Source, vocab *stats.Vocabulary) *Selector {
	return &Selector{src: src, vocab: vocab}
}

// Season returns the player's record for one year. A traded season
// resolves to the combined multi-team row so totals cover the whole
// year. Fails with ErrNoSeasonData when the year is absent.
func (s *Selector) Season(ctx context.Context, p model.Player, year int) (model.SeasonRecord, error) {
	rows, err := s.src.SeasonRecords(ctx, p)
	if err != nil {
		return model.SeasonRecord{}, err
	}

	var fallback *model.SeasonRecord
	for i, r := range rows {
		if r.Year != year {
			continue
		}
		if r.MultiTeam() {
			return r, nil
		}
		if fallback == nil {
			fallback = &rows[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return model.SeasonRecord{}, fmt.Errorf("%w: %s has no %d season", ErrNoSeasonData, p.FullName(), year)
}

// Career returns the player's career aggregate. The store carries no
// explicit career rows, so the aggregate is computed here: counting
// stats are summed; rate stats are means weighted by plate appearances
// (hitters) or innings pitched (pitchers). Per-season fields (age,
// league, awards) are left unset.
func (s *Selector) Career(ctx context.Context, p model.Player) (model.SeasonRecord, error) {
	rows, err := s.src.SeasonRecords(ctx, p)
	if err != nil {
		return model.SeasonRecord{}, err
	}
	if len(rows) == 0 {
		return model.SeasonRecord{}, fmt.Errorf("%w: %s has no recorded seasons", ErrNoSeasonData, p.FullName())
	}

	seasons := collapseTradedYears(rows)
	qualKey := stats.QualificationKey(p.Type)

	sums := make(map[stats.Key]float64)
	weighted := make(map[stats.Key]float64)
	weights := make(map[stats.Key]float64)

	for _, r := range seasons {
		basis := r.Stats[qualKey]
		for _, def := range s.vocab.Definitions(p.Type) {
			v, ok := r.Value(def.Key)
			if !ok {
				continue
			}
			if !def.Rate {
				sums[def.Key] += v
				continue
			}
			if basis > 0 {
				weighted[def.Key] += v * basis
				weights[def.Key] += basis
			}
		}
	}

	agg := make(map[stats.Key]float64, len(sums)+len(weighted))
	for k, v := range sums {
		agg[k] = v
	}
	for k, w := range weights {
		if w > 0 {
			agg[k] = weighted[k] / w
		}
	}

	return model.SeasonRecord{
		Career: true,
		Team:   careerTeam(seasons),
		Stats:  agg,
	}, nil
}

// collapseTradedYears keeps one row per year: the combined multi-team
// row when present, so per-club partial rows are not double counted.
func collapseTradedYears(rows []model.SeasonRecord) []model.SeasonRecord {
	combined := make(map[int]bool)
	for _, r := range rows {
		if r.MultiTeam() {
			combined[r.Year] = true
		}
	}
	out := make([]model.SeasonRecord, 0, len(rows))
	for _, r := range rows {
		if combined[r.Year] && !r.MultiTeam() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// careerTeam reports the most recent single-club team, falling back to
// whatever the latest row says.
func careerTeam(rows []model.SeasonRecord) string {
	for i := len(rows) - 1; i >= 0; i-- {
		if !rows[i].MultiTeam() {
			return rows[i].Team
		}
	}
	if len(rows) > 0 {
		return rows[len(rows)-1].Team
	}
	return ""
}
