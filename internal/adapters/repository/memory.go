package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/mattgren/dugout/internal/domain/match"
	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// MemorySource is an in-memory Source. Tests build fixtures with it,
// and it doubles as the seam for any future non-SQLite backend.
type MemorySource struct {
	nextID  int64
	players []model.Player
	seasons map[int64][]model.SeasonRecord
	teams   map[aggKey]map[stats.Key]float64
	leagues map[aggKey]map[stats.Key]float64
}

type aggKey struct {
	pt   stats.PlayerType
	team string
	year int
}

var _ Source = (*MemorySource)(nil)

// NewMemory creates an empty in-memory source.
func NewMemory() *MemorySource {
	return &MemorySource{
		nextID:  1,
		seasons: make(map[int64][]model.SeasonRecord),
		teams:   make(map[aggKey]map[stats.Key]float64),
		leagues: make(map[aggKey]map[stats.Key]float64),
	}
}

// AddPlayer registers a player with their season rows and returns the
// player with its assigned ID.
func (m *MemorySource) AddPlayer(p model.Player, seasons ...model.SeasonRecord) model.Player {
	p.ID = m.nextID
	m.nextID++
	m.players = append(m.players, p)

	rows := append([]model.SeasonRecord(nil), seasons...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Team < rows[j].Team
	})
	m.seasons[p.ID] = rows
	return p
}

// AddTeamAggregate registers a team's averaged stat line.
func (m *MemorySource) AddTeamAggregate(a model.TeamAggregate) {
	m.teams[aggKey{pt: a.Type, team: a.Team, year: a.Year}] = a.Stats
}

// AddLeagueAggregate registers a league-wide averaged stat line.
func (m *MemorySource) AddLeagueAggregate(a model.LeagueAggregate) {
	m.leagues[aggKey{pt: a.Type, year: a.Year}] = a.Stats
}

// FindPlayers implements Source.
func (m *MemorySource) FindPlayers(_ context.Context, firstPrefix, lastSubstring string) ([]model.Player, error) {
	var out []model.Player
	for _, p := range m.players {
		first := match.Fold(p.First)
		last := match.Fold(p.Last)
		if lastSubstring != "" && !strings.Contains(last, lastSubstring) {
			continue
		}
		if firstPrefix != "" && !strings.HasPrefix(first, firstPrefix) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindPlayersByName implements Source.
func (m *MemorySource) FindPlayersByName(_ context.Context, fullName string) ([]model.Player, error) {
	var out []model.Player
	for _, p := range m.players {
		if match.Fold(p.FullName()) == fullName {
			out = append(out, p)
		}
	}
	return out, nil
}

// SeasonRecords implements Source.
func (m *MemorySource) SeasonRecords(_ context.Context, p model.Player) ([]model.SeasonRecord, error) {
	return m.seasons[p.ID], nil
}

// SeasonRecordsForYear implements Source.
func (m *MemorySource) SeasonRecordsForYear(_ context.Context, pt stats.PlayerType, year int) ([]model.PlayerSeason, error) {
	var out []model.PlayerSeason
	for _, p := range m.players {
		if p.Type != pt {
			continue
		}
		for _, r := range m.seasons[p.ID] {
			if r.Year == year {
				out = append(out, model.PlayerSeason{Player: p, Record: r})
			}
		}
	}
	return out, nil
}

// TeamAggregate implements Source.
func (m *MemorySource) TeamAggregate(_ context.Context, pt stats.PlayerType, team string, year int) (*model.TeamAggregate, error) {
	s, ok := m.teams[aggKey{pt: pt, team: team, year: year}]
	if !ok {
		return nil, nil
	}
	return &model.TeamAggregate{Team: team, Year: year, Type: pt, Stats: s}, nil
}

// LeagueAggregate implements Source.
func (m *MemorySource) LeagueAggregate(_ context.Context, pt stats.PlayerType, year int) (*model.LeagueAggregate, error) {
	s, ok := m.leagues[aggKey{pt: pt, year: year}]
	if !ok {
		return nil, nil
	}
	return &model.LeagueAggregate{Year: year, Type: pt, Stats: s}, nil
}

// Close implements Source.
func (m *MemorySource) Close() error { return nil }
