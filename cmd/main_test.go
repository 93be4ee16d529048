package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func clearPipelineEnv() {
	_ = os.Unsetenv("PODIUM_CONFIG")
	_ = os.Unsetenv("PODIUM_LOG_LEVEL")
	_ = os.Unsetenv("PODIUM_DATASET_PATH")
	_ = os.Unsetenv("PODIUM_SUMMER_OUTPUT")
	_ = os.Unsetenv("PODIUM_WINTER_OUTPUT")
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PODIUM_DATASET_PATH", "/data/events.csv")
			_ = os.Setenv("PODIUM_SUMMER_OUTPUT", "/data/summer.json")
			_ = os.Setenv("PODIUM_WINTER_OUTPUT", "/data/winter.json")
			defer clearPipelineEnv()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/data/events.csv")
				convey.So(cfg.SummerOutput, convey.ShouldEqual, "/data/summer.json")
				convey.So(cfg.WinterOutput, convey.ShouldEqual, "/data/winter.json")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithDatasetPath("/tmp/events.csv"),
					app.WithSummerOutput("/tmp/summer.json"),
					app.WithWinterOutput("/tmp/winter.json"),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				// Use a custom registry to avoid duplicate registration issues
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestRemediationMessage(t *testing.T) {
	convey.Convey("Given a missing dataset path", t, func() {
		convey.Convey("When printing the remediation message", func() {
			var buf strings.Builder
			printRemediation(&buf, "data/raw/athlete_events.csv")
			out := buf.String()

			convey.Convey("Then it should name the missing file", func() {
				convey.So(out, convey.ShouldContainSubstring, "ERROR: Could not find 'data/raw/athlete_events.csv'")
			})

			convey.Convey("And it should point at the dataset source", func() {
				convey.So(out, convey.ShouldContainSubstring, "Please download the Kaggle dataset:")
				convey.So(out, convey.ShouldContainSubstring, datasetURL)
				convey.So(out, convey.ShouldContainSubstring, "2. Download 'athlete_events.csv'")
				convey.So(out, convey.ShouldContainSubstring, "3. Place it in: data/raw/athlete_events.csv")
			})

			convey.Convey("And it should end with the retry instruction", func() {
				convey.So(out, convey.ShouldEndWith, "Then run this command again.\n")
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a full application environment", t, func() {
		dir, err := os.MkdirTemp("", "podium-main-*")
		convey.So(err, convey.ShouldBeNil)
		defer func() { _ = os.RemoveAll(dir) }()

		csvPath := filepath.Join(dir, "athlete_events.csv")
		summerPath := filepath.Join(dir, "summer_medals.json")
		winterPath := filepath.Join(dir, "winter_medals.json")

		content := "ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal\n" +
			"1,Somebody,M,25,180,75,United States,USA,2000 Summer,2000,Summer,Sydney,Swimming,Swimming Men's 100 metres Freestyle,Gold\n" +
			"2,Somebody Else,F,23,170,60,Norway,NOR,2002 Winter,2002,Winter,Salt Lake City,Biathlon,Biathlon Women's 15 kilometres,Silver\n"

		convey.Convey("When running against a real dataset", func() {
			convey.So(os.WriteFile(csvPath, []byte(content), 0o644), convey.ShouldBeNil)

			_ = os.Setenv("PODIUM_DATASET_PATH", csvPath)
			_ = os.Setenv("PODIUM_SUMMER_OUTPUT", summerPath)
			_ = os.Setenv("PODIUM_WINTER_OUTPUT", winterPath)
			defer clearPipelineEnv()

			code := run()

			convey.Convey("Then it should exit cleanly with both outputs written", func() {
				convey.So(code, convey.ShouldEqual, 0)

				_, statErr := os.Stat(summerPath)
				convey.So(statErr, convey.ShouldBeNil)
				_, statErr = os.Stat(winterPath)
				convey.So(statErr, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the dataset file is missing", func() {
			_ = os.Setenv("PODIUM_DATASET_PATH", csvPath)
			_ = os.Setenv("PODIUM_SUMMER_OUTPUT", summerPath)
			_ = os.Setenv("PODIUM_WINTER_OUTPUT", winterPath)
			defer clearPipelineEnv()

			code := run()

			convey.Convey("Then it should exit cleanly without writing outputs", func() {
				convey.So(code, convey.ShouldEqual, 0)

				_, statErr := os.Stat(summerPath)
				convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
				_, statErr = os.Stat(winterPath)
				convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the dataset is malformed", func() {
			convey.So(os.WriteFile(csvPath, []byte("not,a,real\nheader\n"), 0o644), convey.ShouldBeNil)

			_ = os.Setenv("PODIUM_DATASET_PATH", csvPath)
			_ = os.Setenv("PODIUM_SUMMER_OUTPUT", summerPath)
			_ = os.Setenv("PODIUM_WINTER_OUTPUT", winterPath)
			defer clearPipelineEnv()

			code := run()

			convey.Convey("Then it should exit with a failure code", func() {
				convey.So(code, convey.ShouldEqual, 1)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("PODIUM_DATASET_PATH", "")
			defer clearPipelineEnv()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with empty options", func() {
			convey.Convey("Then service should fall back to defaults", func() {
				svc := app.New(
					app.WithDatasetPath(""),
					app.WithSummerOutput(""),
					app.WithWinterOutput(""),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}
