package model_test

import (
	"testing"

	"github.com/mattgren/dugout/internal/domain/model"
	"github.com/mattgren/dugout/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayer(t *testing.T) {
	Convey("Given a player", t, func() {
		p := model.Player{ID: 7, First: "Logan", Last: "Webb", Team: "SFG", Type: stats.Pitcher}

		Convey("FullName joins first and last", func() {
			So(p.FullName(), ShouldEqual, "Logan Webb")
		})
	})
}

func TestSeasonRecordMultiTeam(t *testing.T) {
	Convey("Given season records with assorted team markers", t, func() {
		cases := map[string]bool{
			"SFG": false,
			"2TM": true,
			"3TM": true,
			"ATL": false,
			"STM": false,
			"":    false,
		}

		for team, want := range cases {
			r := model.SeasonRecord{Year: 2024, Team: team}
			So(r.MultiTeam(), ShouldEqual, want)
		}
	})
}

func TestSeasonRecordValue(t *testing.T) {
	Convey("Given a record with a sparse stat map", t, func() {
		r := model.SeasonRecord{
			Year:  2024,
			Stats: map[stats.Key]float64{"era": 3.47, "w": 13},
		}

		Convey("Present stats are returned", func() {
			v, ok := r.Value("era")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 3.47)
		})

		Convey("Absent stats report not-present rather than zero", func() {
			_, ok := r.Value("fip")
			So(ok, ShouldBeFalse)
		})
	})
}
