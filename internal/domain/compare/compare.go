// Package compare implements the three comparison modes: head-to-head
// between two players, and one player against a team or league
// average. It owns the legality rules (mode exclusivity, matching
// player types, the traded-season restriction) and the per-stat
// outcome computation honoring each stat's directionality.
package compare

import (
	"context"
	"fmt"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// Mode identifies a comparison mode.
type Mode int

const (
	// ModeNone means no comparison was requested (plain lookup).
	ModeNone Mode = iota
	ModeHeadToHead
	ModeTeam
	ModeLeague
)

// SelectMode validates mode exclusivity: exactly one of the three
// flags must be set.
func SelectMode(versus, team, league bool) (Mode, error) {
	active := 0
	mode := ModeNone
	if versus {
		active++
		mode = ModeHeadToHead
	}
	if team {
		active++
		mode = ModeTeam
	}
	if league {
		active++
		mode = ModeLeague
	}
	switch active {
	case 1:
		return mode, nil
	case 0:
		return ModeNone, fmt.Errorf("%w: choose one of --versus, --vs-team, --vs-league", ErrInvalidComparisonMode)
	default:
		return ModeNone, fmt.Errorf("%w: --versus, --vs-team and --vs-league are mutually exclusive", ErrInvalidComparisonMode)
	}
}

// Tag is the qualitative outcome of one stat comparison.
type Tag string

const (
	// Head-to-head winner tags.
	TagA   Tag = "A"
	TagB   Tag = "B"
	TagTie Tag = "tie"

	// Aggregate-mode tags; TagAbove is always the favorable side
	// regardless of directionality.
	TagAbove Tag = "above"
	TagBelow Tag = "below"
	TagEqual Tag = "equal"
)

// Row is one stat line of a comparison result.
type Row struct {
	Def stats.Definition

	// A holds the (first) player's value, B the opponent's or the
	// aggregate's. The OK flags report presence.
	A, B     float64
	AOK, BOK bool

	// Delta is A minus B; only meaningful in aggregate modes when
	// both sides are present.
	Delta float64

	Tag Tag
}

// Result is an ordered comparison ready for presentation.
type Result struct {
	Mode             Mode
	HeaderA, HeaderB string
	Year             int
	// YearB is set when a head-to-head compared two different
	// seasons; zero otherwise.
	YearB int
	Rows  []Row
}

// Source is the slice of the data source the comparator consumes.
// Absent aggregates come back nil without error.
type Source interface {
	TeamAggregate(ctx context.Context, pt stats.PlayerType, team string, year int) (*model.TeamAggregate, error)
	LeagueAggregate(ctx context.Context, pt stats.PlayerType, year int) (*model.LeagueAggregate, error)
}

// Comparator computes comparison results. It never mutates the records
// it is given.
type Comparator struct {
	src   Source
	vocab *stats.Vocabulary
}

// NewComparator creates a Comparator over the given source and
// vocabulary.
func NewComparator(src Source, vocab *stats.Vocabulary) *Comparator {
	return &Comparator{src: src, vocab: vocab}
}

// HeadToHead compares two resolved players' season records stat by
// stat. Both players must be of the same type. Without a filter, every
// vocabulary stat present in both records contributes a row; with a
// filter, exactly the requested stats contribute rows in the requested
// order (missing values render as absent and tag a tie).
func (c *Comparator) HeadToHead(a model.Player, ra model.SeasonRecord, b model.Player, rb model.SeasonRecord, filter []stats.Definition) (Result, error) {
	if a.Type != b.Type {
		return Result{}, fmt.Errorf("%w: %s is a %s, %s is a %s",
			ErrPlayerTypeMismatch, a.FullName(), a.Type, b.FullName(), b.Type)
	}

	defs := filter
	explicit := len(filter) > 0
	if !explicit {
		defs = c.vocab.Definitions(a.Type)
	}

	res := Result{
		Mode:    ModeHeadToHead,
		HeaderA: a.FullName(),
		HeaderB: b.FullName(),
		Year:    ra.Year,
	}
	if rb.Year != ra.Year {
		res.YearB = rb.Year
	}

	for _, def := range defs {
		va, aok := ra.Value(def.Key)
		vb, bok := rb.Value(def.Key)
		if !explicit && (!aok || !bok) {
			continue
		}
		row := Row{Def: def, A: va, B: vb, AOK: aok, BOK: bok, Tag: TagTie}
		if aok && bok {
			switch {
			case def.Better(va, vb):
				row.Tag = TagA
			case def.Better(vb, va):
				row.Tag = TagB
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// AgainstTeam compares a player's season record to their team's
// average for that year. Multi-team season rows are rejected: the
// season has no single team to average against.
func (c *Comparator) AgainstTeam(ctx context.Context, p model.Player, rec model.SeasonRecord, filter []stats.Definition) (Result, error) {
	if rec.MultiTeam() {
		return Result{}, fmt.Errorf("%w: %s played for multiple teams in %d (%s)",
			ErrTradedPlayerRestriction, p.FullName(), rec.Year, rec.Team)
	}

	agg, err := c.src.TeamAggregate(ctx, p.Type, rec.Team, rec.Year)
	if err != nil {
		return Result{}, err
	}
	if agg == nil {
		return Result{}, fmt.Errorf("%w: no %d team aggregate for %s", ErrNoAggregateData, rec.Year, rec.Team)
	}

	res := c.againstAggregate(p, rec, agg.Stats, filter)
	res.Mode = ModeTeam
	res.HeaderB = fmt.Sprintf("%s avg", rec.Team)
	return res, nil
}

// AgainstLeague compares a player's season record to the league-wide
// average for that year. Traded seasons are fine here: the league
// aggregate spans clubs anyway.
func (c *Comparator) AgainstLeague(ctx context.Context, p model.Player, rec model.SeasonRecord, filter []stats.Definition) (Result, error) {
	agg, err := c.src.LeagueAggregate(ctx, p.Type, rec.Year)
	if err != nil {
		return Result{}, err
	}
	if agg == nil {
		return Result{}, fmt.Errorf("%w: no %d league aggregate", ErrNoAggregateData, rec.Year)
	}

	res := c.againstAggregate(p, rec, agg.Stats, filter)
	res.Mode = ModeLeague
	res.HeaderB = "League avg"
	return res, nil
}

// againstAggregate restricts output to rate stats: counting stats of a
// single player are not comparable to a whole-roster average. A filter
// preserves the caller's order; non-rate entries in it are skipped.
func (c *Comparator) againstAggregate(p model.Player, rec model.SeasonRecord, agg map[stats.Key]float64, filter []stats.Definition) Result {
	defs := filter
	if len(defs) == 0 {
		defs = c.vocab.Definitions(p.Type)
	}

	res := Result{HeaderA: p.FullName(), Year: rec.Year}
	for _, def := range defs {
		if !def.Rate {
			continue
		}
		va, aok := rec.Value(def.Key)
		vb, bok := agg[def.Key]
		row := Row{Def: def, A: va, B: vb, AOK: aok, BOK: bok, Tag: TagEqual}
		if aok && bok {
			row.Delta = va - vb
			switch {
			case def.Better(va, vb):
				row.Tag = TagAbove
			case def.Better(vb, va):
				row.Tag = TagBelow
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}
