package presenter

import (
	"context"
	"math"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// LeaderSource is the slice of the data source used to derive
// league-leader emphasis at presentation time.
type LeaderSource interface {
	SeasonRecordsForYear(ctx context.Context, pt stats.PlayerType, year int) ([]model.PlayerSeason, error)
}

// emphasis levels for a stat value.
type emphasis int

const (
	emphasisNone emphasis = iota
	// emphasisLeague marks the best value in the player's own league.
	emphasisLeague
	// emphasisOverall marks the best value across both leagues.
	emphasisOverall
)

// leaderIndex holds, per stat, the best qualifying value in each
// league for one (player type, year).
type leaderIndex struct {
	best map[stats.Key]map[string]float64
}

// buildLeaderIndex scans every season row of the year. Rate stats only
// count toward leadership when the row meets the playing-time
// qualification; multi-team rows without a league tag are skipped.
func (p *Presenter) buildLeaderIndex(ctx context.Context, pt stats.PlayerType, year int) (*leaderIndex, error) {
	if p.leaders == nil {
		return nil, nil
	}
	rows, err := p.leaders.SeasonRecordsForYear(ctx, pt, year)
	if err != nil {
		return nil, err
	}

	qualKey := stats.QualificationKey(pt)
	threshold := p.qualPA
	if pt == stats.Pitcher {
		threshold = p.qualIP
	}

	idx := &leaderIndex{best: make(map[stats.Key]map[string]float64)}
	for _, ps := range rows {
		lg := ps.Record.League
		if lg != "AL" && lg != "NL" {
			continue
		}
		for _, def := range p.vocab.Definitions(pt) {
			if !def.Leaderboard {
				continue
			}
			v, ok := ps.Record.Value(def.Key)
			if !ok {
				continue
			}
			if def.Qualifying {
				qual, qok := ps.Record.Value(qualKey)
				if !qok || qual < threshold {
					continue
				}
			}
			byLeague, ok := idx.best[def.Key]
			if !ok {
				byLeague = make(map[string]float64, 2)
				idx.best[def.Key] = byLeague
			}
			cur, seen := byLeague[lg]
			if !seen || betterFor(def, v, cur) {
				byLeague[lg] = v
			}
		}
	}
	return idx, nil
}

// level reports the emphasis a record's stat value earns. Equaling the
// league best counts as leading it; leading both leagues requires
// strictly beating (or lacking) the other league's best.
func (idx *leaderIndex) level(rec model.SeasonRecord, def stats.Definition, qualKey stats.Key, threshold float64) emphasis {
	if idx == nil || !def.Leaderboard {
		return emphasisNone
	}
	byLeague, ok := idx.best[def.Key]
	if !ok {
		return emphasisNone
	}
	v, ok := rec.Value(def.Key)
	if !ok {
		return emphasisNone
	}
	if def.Qualifying {
		qual, qok := rec.Value(qualKey)
		if !qok || qual < threshold {
			return emphasisNone
		}
	}

	own, ok := byLeague[rec.League]
	if !ok || !almostEqual(v, own) {
		return emphasisNone
	}

	other := "AL"
	if rec.League == "AL" {
		other = "NL"
	}
	otherBest, ok := byLeague[other]
	if !ok || betterFor(def, v, otherBest) {
		return emphasisOverall
	}
	return emphasisLeague
}

// betterFor ranks leader candidates: min for lower-is-better stats,
// max otherwise (neutral volume stats lead by maximum).
func betterFor(def stats.Definition, a, b float64) bool {
	if def.Direction == stats.LowerIsBetter {
		return a < b
	}
	return a > b
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
