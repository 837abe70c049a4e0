// Package repository defines the read-only data source interface and
// its implementations. Absence is a normal value throughout: a lookup
// that finds nothing returns an empty slice or nil pointer, never an
// error.
package repository

import (
	"context"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// Source provides read-only access to the stats store. All name
// arguments are folded (lower-cased, diacritics removed); see
// match.Fold.
type Source interface {
	// FindPlayers returns players whose folded first name starts with
	// firstPrefix (ignored when empty) and whose folded last name
	// contains lastSubstring.
	FindPlayers(ctx context.Context, firstPrefix, lastSubstring string) ([]model.Player, error)

	// FindPlayersByName returns players whose folded full name equals
	// fullName.
	FindPlayersByName(ctx context.Context, fullName string) ([]model.Player, error)

	// SeasonRecords returns all season rows for a player in ascending
	// year order, traded seasons contributing both the combined
	// multi-team row and the per-club rows.
	SeasonRecords(ctx context.Context, p model.Player) ([]model.SeasonRecord, error)

	// SeasonRecordsForYear returns every player's season row of the
	// given type for one year. League-leader computation consumes
	// this.
	SeasonRecordsForYear(ctx context.Context, pt stats.PlayerType, year int) ([]model.PlayerSeason, error)

	// TeamAggregate returns the averaged stat line for (team, year),
	// or nil when the store has none.
	TeamAggregate(ctx context.Context, pt stats.PlayerType, team string, year int) (*model.TeamAggregate, error)

	// LeagueAggregate returns the league-wide averaged stat line for a
	// year, or nil when the store has none.
	LeagueAggregate(ctx context.Context, pt stats.PlayerType, year int) (*model.LeagueAggregate, error)

	// Close releases the underlying store handle.
	Close() error
}
