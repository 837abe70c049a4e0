package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // cgo-free driver, registered as "sqlite"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
	"github.com/mattgren/dugout/pkg/logger"
)

// Schema expected by this source (produced by the ingestion tooling,
// which lives outside this repo):
//
//	players(id, first_name, last_name, folded_first, folded_last,
//	        team, player_type)
//	pitching_seasons(player_id, year, team, lg, age, awards, <stat columns>)
//	batting_seasons(player_id, year, team, lg, age, awards, <stat columns>)
//	team_pitching(team, year, <stat columns>)
//	team_batting(team, year, <stat columns>)
//
// Stat columns carry the canonical vocabulary keys. League-wide
// averages sit in the team tables under the team name below.
const leagueAverageTeam = "League Average"

// SQLiteSource reads the stats database via database/sql. The handle
// is opened read-only: this program never writes the store.
type SQLiteSource struct {
	db    *sql.DB
	vocab *stats.Vocabulary
	log   logger.Logger
}

var _ Source = (*SQLiteSource)(nil)

// NewSQLite opens the database file read-only and verifies it is
// reachable. Failures are reported as ErrStoreUnavailable.
func NewSQLite(ctx context.Context, path string, vocab *stats.Vocabulary, opts ...Option) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, path, err)
	}

	s := &SQLiteSource{db: db, vocab: vocab}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if s.log != nil {
		s.log.Debug(ctx, msg, fields...)
	}
}

// FindPlayers implements Source. Substring and prefix matching happen
// in SQL against the folded name columns; instr/substr are used
// instead of LIKE so user input needs no wildcard escaping.
func (s *SQLiteSource) FindPlayers(ctx context.Context, firstPrefix, lastSubstring string) ([]model.Player, error) {
	const q = `SELECT id, first_name, last_name, team, player_type FROM players
		WHERE (?1 = '' OR instr(folded_last, ?1) > 0)
		  AND (?2 = '' OR substr(folded_first, 1, length(?2)) = ?2)
		ORDER BY last_name, first_name, id`

	rows, err := s.db.QueryContext(ctx, q, lastSubstring, firstPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: find players: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	players, err := scanPlayers(rows)
	if err != nil {
		return nil, err
	}
	s.debug(ctx, "find players",
		logger.String("first_prefix", firstPrefix),
		logger.String("last_substring", lastSubstring),
		logger.Int("count", len(players)))
	return players, nil
}

// FindPlayersByName implements Source.
func (s *SQLiteSource) FindPlayersByName(ctx context.Context, fullName string) ([]model.Player, error) {
	const q = `SELECT id, first_name, last_name, team, player_type FROM players
		WHERE folded_first || ' ' || folded_last = ?1
		ORDER BY last_name, first_name, id`

	rows, err := s.db.QueryContext(ctx, q, fullName)
	if err != nil {
		return nil, fmt.Errorf("%w: find players by name: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func scanPlayers(rows *sql.Rows) ([]model.Player, error) {
	var out []model.Player
	for rows.Next() {
		var p model.Player
		var pt string
		if err := rows.Scan(&p.ID, &p.First, &p.Last, &p.Team, &pt); err != nil {
			return nil, fmt.Errorf("%w: scan player: %v", ErrStoreUnavailable, err)
		}
		p.Type = stats.PlayerType(pt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

// SeasonRecords implements Source.
func (s *SQLiteSource) SeasonRecords(ctx context.Context, p model.Player) ([]model.SeasonRecord, error) {
	defs := s.vocab.Definitions(p.Type)
	q := fmt.Sprintf(`SELECT year, team, lg, age, awards, %s FROM %s WHERE player_id = ? ORDER BY year, team`,
		statColumns(defs, ""), seasonTable(p.Type))

	rows, err := s.db.QueryContext(ctx, q, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: season records: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []model.SeasonRecord
	for rows.Next() {
		rec, err := scanSeason(rows, defs, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

// SeasonRecordsForYear implements Source.
func (s *SQLiteSource) SeasonRecordsForYear(ctx context.Context, pt stats.PlayerType, year int) ([]model.PlayerSeason, error) {
	defs := s.vocab.Definitions(pt)
	q := fmt.Sprintf(`SELECT p.id, p.first_name, p.last_name, p.team, s.year, s.team, s.lg, s.age, s.awards, %s
		FROM %s s JOIN players p ON p.id = s.player_id
		WHERE s.year = ? ORDER BY p.id, s.team`,
		statColumns(defs, "s."), seasonTable(pt))

	rows, err := s.db.QueryContext(ctx, q, year)
	if err != nil {
		return nil, fmt.Errorf("%w: season records for year: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []model.PlayerSeason
	for rows.Next() {
		var ps model.PlayerSeason
		rec, err := scanSeason(rows, defs, &ps.Player)
		if err != nil {
			return nil, err
		}
		ps.Player.Type = pt
		ps.Record = rec
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

// TeamAggregate implements Source. A missing aggregate is nil, nil.
func (s *SQLiteSource) TeamAggregate(ctx context.Context, pt stats.PlayerType, team string, year int) (*model.TeamAggregate, error) {
	vals, err := s.aggregateRow(ctx, pt, team, year)
	if err != nil || vals == nil {
		return nil, err
	}
	return &model.TeamAggregate{Team: team, Year: year, Type: pt, Stats: vals}, nil
}

// LeagueAggregate implements Source. League averages are stored as a
// synthetic team row.
func (s *SQLiteSource) LeagueAggregate(ctx context.Context, pt stats.PlayerType, year int) (*model.LeagueAggregate, error) {
	vals, err := s.aggregateRow(ctx, pt, leagueAverageTeam, year)
	if err != nil || vals == nil {
		return nil, err
	}
	return &model.LeagueAggregate{Year: year, Type: pt, Stats: vals}, nil
}

func (s *SQLiteSource) aggregateRow(ctx context.Context, pt stats.PlayerType, team string, year int) (map[stats.Key]float64, error) {
	defs := s.vocab.Definitions(pt)
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE team = ? AND year = ?`,
		statColumns(defs, ""), aggregateTable(pt))

	vals := make([]sql.NullFloat64, len(defs))
	dest := make([]any, len(defs))
	for i := range vals {
		dest[i] = &vals[i]
	}

	err := s.db.QueryRowContext(ctx, q, team, year).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate row: %v", ErrStoreUnavailable, err)
	}

	out := make(map[stats.Key]float64, len(defs))
	for i, def := range defs {
		if vals[i].Valid {
			out[def.Key] = vals[i].Float64
		}
	}
	return out, nil
}

// scanSeason scans the common season columns plus the stat columns.
// When player is non-nil, its identity columns are expected first.
func scanSeason(rows *sql.Rows, defs []stats.Definition, player *model.Player) (model.SeasonRecord, error) {
	var rec model.SeasonRecord
	var lg, awards sql.NullString
	var age sql.NullInt64
	vals := make([]sql.NullFloat64, len(defs))

	dest := make([]any, 0, len(defs)+9)
	if player != nil {
		dest = append(dest, &player.ID, &player.First, &player.Last, &player.Team)
	}
	dest = append(dest, &rec.Year, &rec.Team, &lg, &age, &awards)
	for i := range vals {
		dest = append(dest, &vals[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return rec, fmt.Errorf("%w: scan season: %v", ErrStoreUnavailable, err)
	}

	rec.League = lg.String
	rec.Age = int(age.Int64)
	rec.Awards = awards.String
	rec.Stats = make(map[stats.Key]float64, len(defs))
	for i, def := range defs {
		if vals[i].Valid {
			rec.Stats[def.Key] = vals[i].Float64
		}
	}
	return rec, nil
}

func seasonTable(pt stats.PlayerType) string {
	if pt == stats.Pitcher {
		return "pitching_seasons"
	}
	return "batting_seasons"
}

func aggregateTable(pt stats.PlayerType) string {
	if pt == stats.Pitcher {
		return "team_pitching"
	}
	return "team_batting"
}

func statColumns(defs []stats.Definition, prefix string) string {
	cols := make([]string, len(defs))
	for i, d := range defs {
		cols[i] = prefix + string(d.Key)
	}
	return strings.Join(cols, ", ")
}
