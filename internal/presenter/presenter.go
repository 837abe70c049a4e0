// Package presenter renders season views and comparison results as
// aligned plain-text tables, with league-leader emphasis and
// favorable/unfavorable accents applied per cell. Column widths are
// measured on unstyled text so ANSI sequences never skew alignment.
package presenter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/mattgren/dugout/internal/domain/compare"
	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

// Default qualification thresholds for rate-stat leadership: a full
// season's 3.1 PA or one inning per scheduled game.
const (
	defaultQualPA = 502
	defaultQualIP = 162
)

// Accent styles. Favorable/unfavorable mirror the two accent classes
// of comparison views; the leader styles grade single-season views.
var (
	favorable     = color.New(color.FgGreen, color.Bold, color.Italic)
	unfavorable   = color.New(color.FgHiYellow, color.Bold, color.Italic)
	leagueLeader  = color.New(color.Bold)
	overallLeader = color.New(color.Bold, color.Italic)
)

// Presenter formats query results for the terminal.
type Presenter struct {
	vocab   *stats.Vocabulary
	leaders LeaderSource
	qualPA  float64
	qualIP  float64
}

// Option applies a configuration option to the Presenter.
type Option func(*Presenter)

// WithLeaderSource enables league-leader emphasis on season views.
func WithLeaderSource(src LeaderSource) Option {
	return func(p *Presenter) {
		p.leaders = src
	}
}

// WithQualification overrides the PA/IP thresholds gating rate-stat
// leadership.
func WithQualification(pa, ip float64) Option {
	return func(p *Presenter) {
		if pa > 0 {
			p.qualPA = pa
		}
		if ip > 0 {
			p.qualIP = ip
		}
	}
}

// New creates a Presenter over the given vocabulary.
func New(vocab *stats.Vocabulary, opts ...Option) *Presenter {
	p := &Presenter{vocab: vocab, qualPA: defaultQualPA, qualIP: defaultQualIP}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Season renders a single season row or career aggregate. League-leader
// emphasis applies only to real season rows (career aggregates span
// years and comparison views carry their own accents).
func (p *Presenter) Season(ctx context.Context, w io.Writer, player model.Player, rec model.SeasonRecord, filter []stats.Definition) error {
	defs := filter
	if len(defs) == 0 {
		defs = presentDefs(p.vocab.Definitions(player.Type), rec)
	}

	var idx *leaderIndex
	if !rec.Career {
		var err error
		idx, err = p.buildLeaderIndex(ctx, player.Type, rec.Year)
		if err != nil {
			return err
		}
	}

	labels := []string{"Season", "Age", "Team", "Lg"}
	values := []string{seasonLabel(rec), intCell(rec.Age), rec.Team, rec.League}
	styles := []*color.Color{nil, nil, nil, nil}

	qualKey := stats.QualificationKey(player.Type)
	threshold := p.qualPA
	if player.Type == stats.Pitcher {
		threshold = p.qualIP
	}

	for _, def := range defs {
		labels = append(labels, def.Label)
		v, ok := rec.Value(def.Key)
		if !ok {
			values = append(values, "")
			styles = append(styles, nil)
			continue
		}
		values = append(values, def.Format(v))
		switch idx.level(rec, def, qualKey, threshold) {
		case emphasisOverall:
			styles = append(styles, overallLeader)
		case emphasisLeague:
			styles = append(styles, leagueLeader)
		default:
			styles = append(styles, nil)
		}
	}
	if rec.Awards != "" {
		labels = append(labels, "Awards")
		values = append(values, rec.Awards)
		styles = append(styles, nil)
	}

	header := fmt.Sprintf("%s (%s)", player.FullName(), strings.ToUpper(string(player.Type)))
	widths := make([]int, len(labels))
	for i := range labels {
		widths[i] = max(len(labels[i]), len(values[i]))
	}

	headerLine := joinCells(labels, widths, nil)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("=", max(len(header), plainLen(headerLine))))
	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, joinCells(values, widths, styles))
	return nil
}

// Comparison renders a comparison result as a three-column table. The
// favorable side of each row is tinted green, the unfavorable side
// amber; ties stay plain.
func (p *Presenter) Comparison(w io.Writer, res compare.Result) error {
	title := fmt.Sprintf("%s vs %s (%s)", res.HeaderA, res.HeaderB, yearSpan(res))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))

	labels := make([]string, 0, len(res.Rows))
	aVals := make([]string, 0, len(res.Rows))
	bVals := make([]string, 0, len(res.Rows))
	aStyles := make([]*color.Color, 0, len(res.Rows))
	bStyles := make([]*color.Color, 0, len(res.Rows))

	for _, row := range res.Rows {
		labels = append(labels, row.Def.Label)
		aVals = append(aVals, cell(row.Def, row.A, row.AOK))
		bVals = append(bVals, cell(row.Def, row.B, row.BOK))

		var sa, sb *color.Color
		switch row.Tag {
		case compare.TagA:
			sa, sb = favorable, unfavorable
		case compare.TagB:
			sa, sb = unfavorable, favorable
		case compare.TagAbove:
			sa = favorable
		case compare.TagBelow:
			sa = unfavorable
		}
		aStyles = append(aStyles, sa)
		bStyles = append(bStyles, sb)
	}

	wStat := width("Stat", labels)
	wA := width(res.HeaderA, aVals)
	wB := width(res.HeaderB, bVals)

	headerLine := joinCells([]string{"Stat", res.HeaderA, res.HeaderB}, []int{wStat, wA, wB}, nil)
	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, strings.Repeat("-", plainLen(headerLine)))

	for i := range labels {
		fmt.Fprintln(w, joinCells(
			[]string{labels[i], aVals[i], bVals[i]},
			[]int{wStat, wA, wB},
			[]*color.Color{nil, aStyles[i], bStyles[i]},
		))
	}
	return nil
}

// presentDefs drops vocabulary entries absent from the record so the
// default season view only shows populated columns.
func presentDefs(defs []stats.Definition, rec model.SeasonRecord) []stats.Definition {
	out := make([]stats.Definition, 0, len(defs))
	for _, d := range defs {
		if _, ok := rec.Value(d.Key); ok {
			out = append(out, d)
		}
	}
	return out
}

func seasonLabel(rec model.SeasonRecord) string {
	if rec.Career {
		return "Career"
	}
	return strconv.Itoa(rec.Year)
}

func yearSpan(res compare.Result) string {
	if res.YearB != 0 {
		return fmt.Sprintf("%d vs %d", res.Year, res.YearB)
	}
	return strconv.Itoa(res.Year)
}

func cell(def stats.Definition, v float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return def.Format(v)
}

func intCell(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// joinCells pads each cell to its column width before styling, so
// escape sequences never affect alignment.
func joinCells(cells []string, widths []int, styles []*color.Color) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		padded := c + strings.Repeat(" ", widths[i]-len(c))
		if styles != nil && styles[i] != nil {
			padded = styles[i].Sprint(padded)
		}
		parts[i] = padded
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// plainLen measures a line as rendered, ignoring any trailing trim but
// counting the two-space gutters.
func plainLen(line string) int {
	return len(stripEscapes(line))
}

func stripEscapes(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if r == 'm' {
				inSeq = false
			}
		case r == '\x1b':
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func width(header string, cells []string) int {
	w := len(header)
	for _, c := range cells {
		if len(c) > w {
			w = len(c)
		}
	}
	return w
}
