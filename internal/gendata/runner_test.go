package gendata_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/domain/medals"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/gendata"
	"github.com/okian/podium/pkg/logger"
)

func init() {
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestRunWritesDataset(t *testing.T) {
	convey.Convey("Given a generation config pointed at a temp directory", t, func() {
		dir := t.TempDir()
		cfg := gendata.DefaultConfig()
		cfg.Rows = 120
		cfg.Seed = 9
		cfg.OutputFile = filepath.Join(dir, "raw", "athlete_events.csv")

		convey.Convey("When the generator runs", func() {
			err := gendata.Run(context.Background(), cfg)
			convey.So(err, convey.ShouldBeNil)

			data, readErr := os.ReadFile(cfg.OutputFile)
			convey.So(readErr, convey.ShouldBeNil)
			lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

			convey.Convey("Then the file starts with the production header", func() {
				convey.So(lines[0], convey.ShouldEqual, "ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal")
			})

			convey.Convey("Then it holds one line per generated row", func() {
				convey.So(len(lines), convey.ShouldEqual, cfg.Rows+1)
			})
		})

		convey.Convey("When the config is invalid", func() {
			cfg.Rows = 0
			err := gendata.Run(context.Background(), cfg)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "invalid configuration")
		})

		convey.Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := gendata.Run(ctx, cfg)
			convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
		})
	})
}

func TestRunFeedsPipeline(t *testing.T) {
	convey.Convey("Given a generated dataset where every row carries a medal", t, func() {
		dir := t.TempDir()
		cfg := gendata.DefaultConfig()
		cfg.Rows = 300
		cfg.Seed = 4
		cfg.MedalRate = 1
		cfg.UnmappedRate = 0.1
		cfg.OutputFile = filepath.Join(dir, "athlete_events.csv")

		err := gendata.Run(context.Background(), cfg)
		convey.So(err, convey.ShouldBeNil)

		loader := dataset.NewCSVLoader(cfg.OutputFile)

		convey.Convey("Then the loader recovers every row across the two seasons", func() {
			summer, summerErr := loader.Load(context.Background(), model.SeasonSummer)
			convey.So(summerErr, convey.ShouldBeNil)
			winter, winterErr := loader.Load(context.Background(), model.SeasonWinter)
			convey.So(winterErr, convey.ShouldBeNil)
			convey.So(len(summer)+len(winter), convey.ShouldEqual, cfg.Rows)
		})

		convey.Convey("Then aggregation consumes the loaded records without error", func() {
			records, loadErr := loader.Load(context.Background(), model.SeasonSummer)
			convey.So(loadErr, convey.ShouldBeNil)

			table, aggErr := medals.NewInMemoryAggregator().Aggregate(context.Background(), records)
			convey.So(aggErr, convey.ShouldBeNil)
			convey.So(len(table), convey.ShouldBeGreaterThan, 0)
		})
	})
}
