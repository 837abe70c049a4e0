// Package model contains domain entities passed between layers. All of
// them are read-only snapshots of the underlying store: nothing in this
// program mutates them after load.
package model

import (
	"strings"

	"github.com/mattgren/dugout/internal/domain/stats"
)

// Player identifies one player within one era. Names repeat across
// eras, so the store assigns a stable ID; Team records the era's
// primary club for disambiguation listings. Two-way players appear
// once per player type.
type Player struct {
	ID    int64
	First string
	Last  string
	Team  string
	Type  stats.PlayerType
}

// FullName returns "First Last".
func (p Player) FullName() string {
	return strings.TrimSpace(p.First + " " + p.Last)
}

// SeasonRecord holds one season row (or a career aggregate) for a
// player: a mapping from canonical stat key to numeric value. Absent
// stats are simply missing from the map.
type SeasonRecord struct {
	// Year of the season; zero when Career is set.
	Year int
	// Career marks an aggregate across all seasons.
	Career bool

	// Team is the club abbreviation, or a multi-team marker such as
	// "2TM" when the player was traded mid-season.
	Team string
	// League is "AL" or "NL"; empty on career aggregates and
	// multi-team rows that span leagues.
	League string

	Age    int
	Awards string

	Stats map[stats.Key]float64
}

// MultiTeam reports whether the record aggregates a traded season
// across clubs ("2TM", "3TM", ...). Such rows are ineligible for
// team-average comparison.
func (r SeasonRecord) MultiTeam() bool {
	return len(r.Team) == 3 && strings.HasSuffix(r.Team, "TM") && r.Team[0] >= '2' && r.Team[0] <= '9'
}

// Value returns a stat value and whether it is present.
func (r SeasonRecord) Value(k stats.Key) (float64, bool) {
	v, ok := r.Stats[k]
	return v, ok
}

// PlayerSeason pairs a player with one of their season rows. Leader
// computation walks these for an entire year.
type PlayerSeason struct {
	Player Player
	Record SeasonRecord
}

// TeamAggregate holds a team's per-year averaged stat line.
type TeamAggregate struct {
	Team  string
	Year  int
	Type  stats.PlayerType
	Stats map[stats.Key]float64
}

// LeagueAggregate holds the league-wide averaged stat line for a year.
type LeagueAggregate struct {
	Year  int
	Type  stats.PlayerType
	Stats map[stats.Key]float64
}
