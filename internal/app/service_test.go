package app_test

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mattgren/dugout/internal/adapters/repository"
	"github.com/mattgren/dugout/internal/app"
	"github.com/mattgren/dugout/internal/domain/compare"
	"github.com/mattgren/dugout/internal/domain/match"
	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/season"
	"github.com/mattgren/dugout/internal/domain/stats"
)

func serviceFixture(out *bytes.Buffer) *app.Service {
	src := repository.NewMemory()
	src.AddPlayer(model.Player{First: "Aaron", Last: "Judge", Team: "NYY", Type: stats.Hitter},
		model.SeasonRecord{Year: 2024, Team: "NYY", League: "AL", Age: 32, Awards: "MVP-1",
			Stats: map[stats.Key]float64{"pa": 704, "hr": 58, "ba": 0.322, "ops": 1.159}},
		model.SeasonRecord{Year: 2023, Team: "NYY", League: "AL", Age: 31,
			Stats: map[stats.Key]float64{"pa": 458, "hr": 37, "ba": 0.267, "ops": 1.019}},
	)
	src.AddPlayer(model.Player{First: "Shohei", Last: "Ohtani", Team: "LAD", Type: stats.Hitter},
		model.SeasonRecord{Year: 2024, Team: "LAD", League: "NL", Age: 29,
			Stats: map[stats.Key]float64{"pa": 731, "hr": 54, "ba": 0.310, "ops": 1.036}},
	)
	src.AddPlayer(model.Player{First: "Logan", Last: "Webb", Team: "SFG", Type: stats.Pitcher},
		model.SeasonRecord{Year: 2024, Team: "SFG", League: "NL", Age: 27,
			Stats: map[stats.Key]float64{"ip": 204.2, "era": 3.47, "so": 172}},
	)
	src.AddPlayer(model.Player{First: "Jacob", Last: "Webb", Team: "TEX", Type: stats.Pitcher},
		model.SeasonRecord{Year: 2024, Team: "TEX", League: "AL", Age: 30,
			Stats: map[stats.Key]float64{"ip": 60.1, "era": 3.88, "so": 55}},
	)
	src.AddTeamAggregate(model.TeamAggregate{Team: "NYY", Year: 2024, Type: stats.Hitter,
		Stats: map[stats.Key]float64{"ba": 0.248, "ops": 0.749}})
	src.AddLeagueAggregate(model.LeagueAggregate{Year: 2024, Type: stats.Hitter,
		Stats: map[stats.Key]float64{"ba": 0.243, "ops": 0.711}})

	return app.New(src, app.WithOutput(out), app.WithDefaultSeason(2024))
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	Convey("Given a populated service", t, func() {
		var out bytes.Buffer
		svc := serviceFixture(&out)

		Convey("A dotted query with a year renders that season", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "l.webb", Year: "24"})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Logan Webb (PITCHER)")
			So(out.String(), ShouldContainSubstring, "3.47")
		})

		Convey("No year renders the career aggregate", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "judge"})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Career")
			// 37 + 58 home runs across the two seasons on record.
			So(out.String(), ShouldContainSubstring, "95")
		})

		Convey("A stat filter narrows the columns", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "judge", Year: "2024", Stats: []string{"hr", "avg"}})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "BA")
			So(out.String(), ShouldNotContainSubstring, "OPS")
		})

		Convey("An ambiguous surname reports every candidate", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "webb"})
			So(match.IsAmbiguous(err), ShouldBeTrue)
		})

		Convey("An unknown name reports no match", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "nobody"})
			So(err, ShouldWrap, match.ErrNoMatch)
		})

		Convey("A cross-vocabulary stat is rejected", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "judge", Year: "2024", Stats: []string{"era"}})
			So(stats.IsUnknownStat(err), ShouldBeTrue)
		})

		Convey("A malformed year is rejected before resolution", func() {
			err := svc.Lookup(ctx, app.LookupRequest{Query: "judge", Year: "twenty"})
			So(err, ShouldWrap, season.ErrInvalidYear)
		})
	})
}

func TestCompare(t *testing.T) {
	ctx := context.Background()

	Convey("Given a populated service", t, func() {
		var out bytes.Buffer
		svc := serviceFixture(&out)

		Convey("Head-to-head defaults both sides to the configured season", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", Versus: "ohtani"})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Aaron Judge vs Shohei Ohtani (2024)")
		})

		Convey("A second year compares across seasons", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", Versus: "ohtani", Year: "2023", YearB: "2024"})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "(2023 vs 2024)")
		})

		Convey("Team mode renders the club average", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", VsTeam: true})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "NYY avg")
		})

		Convey("League mode renders the league average", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", VsLeague: true})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "League avg")
		})

		Convey("Zero or several modes are rejected up front", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge"})
			So(err, ShouldWrap, compare.ErrInvalidComparisonMode)

			err = svc.Compare(ctx, app.CompareRequest{Query: "judge", Versus: "ohtani", VsTeam: true})
			So(err, ShouldWrap, compare.ErrInvalidComparisonMode)
		})

		Convey("A pitcher cannot face a hitter", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", Versus: "l.webb"})
			So(err, ShouldWrap, compare.ErrPlayerTypeMismatch)
		})

		Convey("A missing aggregate year surfaces as such", func() {
			err := svc.Compare(ctx, app.CompareRequest{Query: "judge", VsTeam: true, Year: "2023"})
			So(err, ShouldWrap, compare.ErrNoAggregateData)
		})
	})
}
