package compare_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mattgren/dugout/internal/adapters/repository"
	"github.com/mattgren/dugout/internal/domain/compare"
	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
)

func TestSelectMode(t *testing.T) {
	Convey("Exactly one mode flag must be set", t, func() {
		mode, err := compare.SelectMode(true, false, false)
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, compare.ModeHeadToHead)

		mode, err = compare.SelectMode(false, true, false)
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, compare.ModeTeam)

		mode, err = compare.SelectMode(false, false, true)
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, compare.ModeLeague)

		Convey("None selected is rejected", func() {
			_, err := compare.SelectMode(false, false, false)
			So(err, ShouldWrap, compare.ErrInvalidComparisonMode)
		})

		Convey("Several selected is rejected", func() {
			_, err := compare.SelectMode(true, true, false)
			So(err, ShouldWrap, compare.ErrInvalidComparisonMode)
			_, err = compare.SelectMode(true, true, true)
			So(err, ShouldWrap, compare.ErrInvalidComparisonMode)
		})
	})
}

func comparatorFixture() *compare.Comparator {
	src := repository.NewMemory()
	src.AddTeamAggregate(model.TeamAggregate{
		Team: "NYY", Year: 2024, Type: stats.Hitter,
		Stats: map[stats.Key]float64{"ba": 0.248, "obp": 0.320, "slg": 0.429, "ops": 0.749},
	})
	src.AddLeagueAggregate(model.LeagueAggregate{
		Year: 2024, Type: stats.Hitter,
		Stats: map[stats.Key]float64{"ba": 0.243, "obp": 0.312, "slg": 0.399, "ops": 0.711},
	})
	src.AddLeagueAggregate(model.LeagueAggregate{
		Year: 2024, Type: stats.Pitcher,
		Stats: map[stats.Key]float64{"era": 4.08, "whip": 1.31},
	})
	return compare.NewComparator(src, stats.Default())
}

func hitter(first, last, team string) model.Player {
	return model.Player{First: first, Last: last, Team: team, Type: stats.Hitter}
}

func TestHeadToHead(t *testing.T) {
	c := comparatorFixture()

	judge := hitter("Aaron", "Judge", "NYY")
	ohtani := hitter("Shohei", "Ohtani", "LAD")
	judge24 := model.SeasonRecord{Year: 2024, Team: "NYY", League: "AL",
		Stats: map[stats.Key]float64{"hr": 58, "ba": 0.322, "so": 171, "ops": 1.159}}
	ohtani24 := model.SeasonRecord{Year: 2024, Team: "LAD", League: "NL",
		Stats: map[stats.Key]float64{"hr": 54, "ba": 0.310, "so": 162, "ops": 1.036}}

	Convey("Given two hitters' seasons", t, func() {
		res, err := c.HeadToHead(judge, judge24, ohtani, ohtani24, nil)
		So(err, ShouldBeNil)

		rows := make(map[stats.Key]compare.Row, len(res.Rows))
		for _, r := range res.Rows {
			rows[r.Def.Key] = r
		}

		Convey("Headers carry the full names", func() {
			So(res.HeaderA, ShouldEqual, "Aaron Judge")
			So(res.HeaderB, ShouldEqual, "Shohei Ohtani")
			So(res.Year, ShouldEqual, 2024)
			So(res.YearB, ShouldEqual, 0)
		})

		Convey("Higher-is-better stats go to the higher side", func() {
			So(rows["hr"].Tag, ShouldEqual, compare.TagA)
			So(rows["ba"].Tag, ShouldEqual, compare.TagA)
		})

		Convey("Lower-is-better stats go to the lower side", func() {
			So(rows["so"].Tag, ShouldEqual, compare.TagB)
		})

		Convey("Swapping the players mirrors every tag", func() {
			flipped, err := c.HeadToHead(ohtani, ohtani24, judge, judge24, nil)
			So(err, ShouldBeNil)
			for _, r := range flipped.Rows {
				switch rows[r.Def.Key].Tag {
				case compare.TagA:
					So(r.Tag, ShouldEqual, compare.TagB)
				case compare.TagB:
					So(r.Tag, ShouldEqual, compare.TagA)
				default:
					So(r.Tag, ShouldEqual, compare.TagTie)
				}
			}
		})
	})

	Convey("Different years are both reported", t, func() {
		judge22 := model.SeasonRecord{Year: 2022, Stats: map[stats.Key]float64{"hr": 62}}
		res, err := c.HeadToHead(judge, judge22, ohtani, ohtani24, nil)
		So(err, ShouldBeNil)
		So(res.Year, ShouldEqual, 2022)
		So(res.YearB, ShouldEqual, 2024)
	})

	Convey("A pitcher cannot face a hitter", t, func() {
		webb := model.Player{First: "Logan", Last: "Webb", Team: "SFG", Type: stats.Pitcher}
		_, err := c.HeadToHead(webb, model.SeasonRecord{}, judge, judge24, nil)
		So(err, ShouldWrap, compare.ErrPlayerTypeMismatch)
		So(err.Error(), ShouldContainSubstring, "Logan Webb")
	})

	Convey("Filters control membership and order", t, func() {
		vocab := stats.Default()
		filter, err := vocab.ResolveFilter(stats.Hitter, []string{"ops", "hr"})
		So(err, ShouldBeNil)

		res, err := c.HeadToHead(judge, judge24, ohtani, ohtani24, filter)
		So(err, ShouldBeNil)
		So(res.Rows, ShouldHaveLength, 2)
		So(res.Rows[0].Def.Key, ShouldEqual, stats.Key("ops"))
		So(res.Rows[1].Def.Key, ShouldEqual, stats.Key("hr"))

		Convey("A filtered stat absent on both sides still shows, tied", func() {
			filter, err := vocab.ResolveFilter(stats.Hitter, []string{"sb"})
			So(err, ShouldBeNil)
			res, err := c.HeadToHead(judge, judge24, ohtani, ohtani24, filter)
			So(err, ShouldBeNil)
			So(res.Rows, ShouldHaveLength, 1)
			So(res.Rows[0].AOK, ShouldBeFalse)
			So(res.Rows[0].BOK, ShouldBeFalse)
			So(res.Rows[0].Tag, ShouldEqual, compare.TagTie)
		})

		Convey("Without a filter, one-sided stats are skipped", func() {
			lopsided := model.SeasonRecord{Year: 2024, Stats: map[stats.Key]float64{"hr": 54}}
			res, err := c.HeadToHead(judge, judge24, ohtani, lopsided, nil)
			So(err, ShouldBeNil)
			for _, r := range res.Rows {
				So(r.AOK && r.BOK, ShouldBeTrue)
			}
		})
	})
}

func TestAgainstTeam(t *testing.T) {
	ctx := context.Background()
	c := comparatorFixture()
	judge := hitter("Aaron", "Judge", "NYY")

	Convey("Given a season with a team aggregate on record", t, func() {
		rec := model.SeasonRecord{Year: 2024, Team: "NYY", League: "AL",
			Stats: map[stats.Key]float64{"hr": 58, "ba": 0.322, "ops": 1.159}}

		res, err := c.AgainstTeam(ctx, judge, rec, nil)
		So(err, ShouldBeNil)
		So(res.Mode, ShouldEqual, compare.ModeTeam)
		So(res.HeaderB, ShouldEqual, "NYY avg")

		rows := make(map[stats.Key]compare.Row, len(res.Rows))
		for _, r := range res.Rows {
			rows[r.Def.Key] = r
		}

		Convey("Only rate stats survive the aggregate comparison", func() {
			_, hasHR := rows["hr"]
			So(hasHR, ShouldBeFalse)
			So(rows, ShouldContainKey, stats.Key("ba"))
		})

		Convey("Deltas and tags reflect the margin over the average", func() {
			So(rows["ba"].Delta, ShouldAlmostEqual, 0.322-0.248, 1e-12)
			So(rows["ba"].Tag, ShouldEqual, compare.TagAbove)
		})
	})

	Convey("A traded season is rejected", t, func() {
		rec := model.SeasonRecord{Year: 2024, Team: "2TM",
			Stats: map[stats.Key]float64{"ba": 0.300}}
		_, err := c.AgainstTeam(ctx, judge, rec, nil)
		So(err, ShouldWrap, compare.ErrTradedPlayerRestriction)
	})

	Convey("A missing aggregate is reported as such", t, func() {
		rec := model.SeasonRecord{Year: 2019, Team: "NYY",
			Stats: map[stats.Key]float64{"ba": 0.272}}
		_, err := c.AgainstTeam(ctx, judge, rec, nil)
		So(err, ShouldWrap, compare.ErrNoAggregateData)
	})
}

func TestAgainstLeague(t *testing.T) {
	ctx := context.Background()
	c := comparatorFixture()
	judge := hitter("Aaron", "Judge", "NYY")

	Convey("Given a season with a league aggregate on record", t, func() {
		Convey("A traded season is fine against the league", func() {
			rec := model.SeasonRecord{Year: 2024, Team: "2TM",
				Stats: map[stats.Key]float64{"ba": 0.231}}
			res, err := c.AgainstLeague(ctx, judge, rec, nil)
			So(err, ShouldBeNil)
			So(res.Mode, ShouldEqual, compare.ModeLeague)
			So(res.HeaderB, ShouldEqual, "League avg")

			for _, r := range res.Rows {
				if r.Def.Key == "ba" {
					So(r.Tag, ShouldEqual, compare.TagBelow)
				}
			}
		})

		Convey("Beating a lower-is-better average is favorable", func() {
			webb := model.Player{First: "Logan", Last: "Webb", Team: "SFG", Type: stats.Pitcher}
			rec := model.SeasonRecord{Year: 2024, Team: "SFG",
				Stats: map[stats.Key]float64{"era": 3.47, "whip": 1.42}}

			res, err := c.AgainstLeague(ctx, webb, rec, nil)
			So(err, ShouldBeNil)
			for _, r := range res.Rows {
				switch r.Def.Key {
				case stats.Key("era"):
					// 3.47 under the 4.08 average reads as above it.
					So(r.Tag, ShouldEqual, compare.TagAbove)
					So(r.Delta, ShouldAlmostEqual, 3.47-4.08, 1e-12)
				case stats.Key("whip"):
					So(r.Tag, ShouldEqual, compare.TagBelow)
				}
			}
		})

		Convey("A year without an aggregate fails", func() {
			rec := model.SeasonRecord{Year: 2011, Team: "NYY",
				Stats: map[stats.Key]float64{"ba": 0.250}}
			_, err := c.AgainstLeague(ctx, judge, rec, nil)
			So(err, ShouldWrap, compare.ErrNoAggregateData)
		})
	})
}
