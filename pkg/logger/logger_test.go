package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mattgren/dugout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(logger.InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info level", func() {
			logger.Get().Info(ctx, "resolved player", logger.String("query", "l.webb"))

			Convey("Then the record carries the message and fields", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "resolved player")
				So(out, ShouldContainSubstring, "query=l.webb")
			})
		})

		Convey("When the level is raised to warn", func() {
			So(logger.SetLevelString("warn"), ShouldBeNil)
			logger.Get().Info(ctx, "suppressed")
			logger.Get().Warn(ctx, "kept")

			Convey("Then info records are dropped", func() {
				out := buf.String()
				So(out, ShouldNotContainSubstring, "suppressed")
				So(out, ShouldContainSubstring, "kept")
			})

			So(logger.SetLevelString("info"), ShouldBeNil)
		})

		Convey("When an invalid level is requested", func() {
			So(logger.SetLevelString("chatty"), ShouldNotBeNil)
		})

		Convey("When using a named logger", func() {
			logger.Named("matcher").Info(ctx, "candidates", logger.Int("count", 2))

			Convey("Then fields are grouped under the name", func() {
				So(buf.String(), ShouldContainSubstring, "matcher.count=2")
			})
		})

		Convey("When logging an error field", func() {
			logger.Get().Error(ctx, "store failure", logger.Error(context.Canceled))
			So(strings.Count(buf.String(), "store failure"), ShouldEqual, 1)
		})
	})
}
