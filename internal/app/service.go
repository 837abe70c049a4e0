// Package app wires the domain components into the two user-facing
// operations: player lookup and comparison. It owns request-level
// orchestration (name resolution, season selection, filter
// resolution) and leaves rendering to the presenter.
package app

import (
	"context"
	"io"
	"os"

	"github.com/mattgren/dugout/internal/adapters/repository"
	"github.com/mattgren/dugout/internal/domain/compare"
	"github.com/mattgren/dugout/internal/domain/match"
	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/season"
	"github.com/mattgren/dugout/internal/domain/stats"
	"github.com/mattgren/dugout/internal/presenter"
	"github.com/mattgren/dugout/pkg/logger"
)

// Service implements the lookup and comparison operations over a data
// source.
type Service struct {
	src   repository.Source
	vocab *stats.Vocabulary
	out   io.Writer
	log   logger.Logger

	defaultSeason int
	qualPA        float64
	qualIP        float64

	matcher    *match.Matcher
	selector   *season.Selector
	comparator *compare.Comparator
	present    *presenter.Presenter
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithVocabulary replaces the built-in stat vocabulary.
func WithVocabulary(v *stats.Vocabulary) Option {
	return func(s *Service) {
		if v != nil {
			s.vocab = v
		}
	}
}

// WithOutput redirects rendered tables; defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithDefaultSeason sets the year assumed when a comparison names none.
func WithDefaultSeason(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.defaultSeason = year
		}
	}
}

// WithQualification overrides the PA/IP leadership thresholds.
func WithQualification(pa, ip float64) Option {
	return func(s *Service) {
		if pa > 0 {
			s.qualPA = pa
		}
		if ip > 0 {
			s.qualIP = ip
		}
	}
}

// New constructs a Service over the given source.
func New(src repository.Source, opts ...Option) *Service {
	s := &Service{
		src:           src,
		vocab:         stats.Default(),
		out:           os.Stdout,
		defaultSeason: 2025,
		qualPA:        502,
		qualIP:        162,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.matcher = match.NewMatcher(src)
	s.selector = season.NewSelector(src, s.vocab)
	s.comparator = compare.NewComparator(src, s.vocab)
	s.present = presenter.New(s.vocab,
		presenter.WithLeaderSource(src),
		presenter.WithQualification(s.qualPA, s.qualIP))
	return s
}

// LookupRequest is one lookup invocation: a name token, an optional
// year token ("" means career), and an optional ordered stat filter.
type LookupRequest struct {
	Query string
	Year  string
	Stats []string
}

// Lookup resolves a player and renders one season or the career
// aggregate.
func (s *Service) Lookup(ctx context.Context, req LookupRequest) error {
	year, err := season.NormalizeYear(req.Year)
	if err != nil {
		return err
	}

	player, err := s.matcher.Resolve(ctx, req.Query)
	if err != nil {
		return err
	}
	s.debug(ctx, "resolved player",
		logger.String("query", req.Query),
		logger.String("player", player.FullName()),
		logger.String("type", string(player.Type)))

	filter, err := s.vocab.ResolveFilter(player.Type, req.Stats)
	if err != nil {
		return err
	}

	var rec model.SeasonRecord
	if year == 0 {
		rec, err = s.selector.Career(ctx, player)
	} else {
		rec, err = s.selector.Season(ctx, player, year)
	}
	if err != nil {
		return err
	}

	return s.present.Season(ctx, s.out, player, rec, filter)
}

// CompareRequest is one comparison invocation. Exactly one of Versus,
// VsTeam and VsLeague selects the mode; Year defaults to the
// configured season and YearB (head-to-head only) to Year.
type CompareRequest struct {
	Query    string
	Versus   string
	VsTeam   bool
	VsLeague bool
	Year     string
	YearB    string
	Stats    []string
}

// Compare resolves the requested comparison and renders it.
func (s *Service) Compare(ctx context.Context, req CompareRequest) error {
	mode, err := compare.SelectMode(req.Versus != "", req.VsTeam, req.VsLeague)
	if err != nil {
		return err
	}

	year, err := s.normalizeOrDefault(req.Year)
	if err != nil {
		return err
	}

	player, err := s.matcher.Resolve(ctx, req.Query)
	if err != nil {
		return err
	}

	rec, err := s.selector.Season(ctx, player, year)
	if err != nil {
		return err
	}

	var res compare.Result
	switch mode {
	case compare.ModeHeadToHead:
		res, err = s.headToHead(ctx, player, rec, req)
	case compare.ModeTeam:
		filter, ferr := s.vocab.ResolveFilter(player.Type, req.Stats)
		if ferr != nil {
			return ferr
		}
		res, err = s.comparator.AgainstTeam(ctx, player, rec, filter)
	case compare.ModeLeague:
		filter, ferr := s.vocab.ResolveFilter(player.Type, req.Stats)
		if ferr != nil {
			return ferr
		}
		res, err = s.comparator.AgainstLeague(ctx, player, rec, filter)
	}
	if err != nil {
		return err
	}

	return s.present.Comparison(s.out, res)
}

func (s *Service) headToHead(ctx context.Context, a model.Player, ra model.SeasonRecord, req CompareRequest) (compare.Result, error) {
	b, err := s.matcher.Resolve(ctx, req.Versus)
	if err != nil {
		return compare.Result{}, err
	}
	s.debug(ctx, "resolved opponent",
		logger.String("query", req.Versus),
		logger.String("player", b.FullName()))

	yearB := ra.Year
	if req.YearB != "" {
		yearB, err = season.NormalizeYear(req.YearB)
		if err != nil {
			return compare.Result{}, err
		}
	}
	rb, err := s.selector.Season(ctx, b, yearB)
	if err != nil {
		return compare.Result{}, err
	}

	if a.Type != b.Type {
		// Let the comparator phrase the mismatch; the filter below
		// would otherwise report the wrong vocabulary.
		return s.comparator.HeadToHead(a, ra, b, rb, nil)
	}

	filter, err := s.vocab.ResolveFilter(a.Type, req.Stats)
	if err != nil {
		return compare.Result{}, err
	}
	return s.comparator.HeadToHead(a, ra, b, rb, filter)
}

func (s *Service) normalizeOrDefault(token string) (int, error) {
	year, err := season.NormalizeYear(token)
	if err != nil {
		return 0, err
	}
	if year == 0 {
		year = s.defaultSeason
	}
	return year, nil
}

func (s *Service) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if s.log != nil {
		s.log.Debug(ctx, msg, fields...)
	}
}
