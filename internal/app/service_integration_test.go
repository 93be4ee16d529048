package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/podium/internal/adapters/dataset"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/medals"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// rawHeader mirrors the column layout of the raw athlete events export.
const rawHeader = "ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal"

func writeTempCSV(content string) string {
	tmpFile, err := os.CreateTemp("", "podium-events-*.csv")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a raw dataset and real pipeline components", t, func() {
		content := rawHeader + "\n" +
			`1,Ivan Ivanov,M,25,180,75,Unified Team,EUN,1992 Summer,1992,Summer,Barcelona,Wrestling,Wrestling Men's Heavyweight,Gold` + "\n" +
			`2,Pyotr Petrov,M,24,178,74,Russia,RUS,1992 Summer,1992,Summer,Barcelona,Swimming,Swimming Men's 100 metres Freestyle,Silver` + "\n" +
			`3,Jane Doe,F,22,170,60,Mystery Team,XYZ,1992 Summer,1992,Summer,Barcelona,Fencing,Fencing Women's Foil,Gold` + "\n" +
			`4,John Smith,M,27,185,82,United States,USA,1994 Winter,1994,Winter,Lillehammer,Ice Hockey,Ice Hockey Men's Ice Hockey,Bronze` + "\n" +
			`5,Jean Dupont,M,23,175,70,France,FRA,1992 Summer,1992,Summer,Barcelona,Judo,Judo Men's Lightweight,NA` + "\n"

		csvPath := writeTempCSV(content)
		defer func() { _ = os.Remove(csvPath) }()

		dir, err := os.MkdirTemp("", "podium-itest-*")
		So(err, ShouldBeNil)
		defer func() { _ = os.RemoveAll(dir) }()

		summerPath := filepath.Join(dir, "summer_medals.json")
		winterPath := filepath.Join(dir, "winter_medals.json")

		var statsOut strings.Builder
		svc := service.New(
			service.WithDatasetPath(csvPath),
			service.WithSummerOutput(summerPath),
			service.WithWinterOutput(winterPath),
			service.WithStatsWriter(&statsOut),
		)

		ctx := context.Background()

		Convey("When running the full pipeline", func() {
			err := svc.Run(ctx)
			So(err, ShouldBeNil)

			Convey("Then the summer output consolidates delegations", func() {
				raw, err := os.ReadFile(summerPath)
				So(err, ShouldBeNil)

				var summer map[string]map[string]medals.Entry
				So(json.Unmarshal(raw, &summer), ShouldBeNil)

				So(summer, ShouldHaveLength, 1)
				So(summer["1992"], ShouldHaveLength, 1)

				ru := summer["1992"]["RU"]
				So(ru.Gold, ShouldEqual, 1)
				So(ru.Silver, ShouldEqual, 1)
				So(ru.Bronze, ShouldEqual, 0)
				So(ru.Historical, ShouldBeTrue)
				So(ru.DisplayName, ShouldNotBeNil)
				So(*ru.DisplayName, ShouldEqual, "Russia*")
			})

			Convey("Then the winter output keeps its season apart", func() {
				raw, err := os.ReadFile(winterPath)
				So(err, ShouldBeNil)

				var winter map[string]map[string]medals.Entry
				So(json.Unmarshal(raw, &winter), ShouldBeNil)

				So(winter, ShouldHaveLength, 1)
				us := winter["1994"]["US"]
				So(us.Bronze, ShouldEqual, 1)
				So(us.Historical, ShouldBeFalse)
				So(us.DisplayName, ShouldBeNil)
			})

			Convey("Then the unmapped delegation appears in no output", func() {
				summerRaw, err := os.ReadFile(summerPath)
				So(err, ShouldBeNil)
				winterRaw, err := os.ReadFile(winterPath)
				So(err, ShouldBeNil)

				So(string(summerRaw), ShouldNotContainSubstring, "XYZ")
				So(string(winterRaw), ShouldNotContainSubstring, "XYZ")
			})

			Convey("Then the console output matches byte for byte", func() {
				rule := strings.Repeat("=", 50)
				want := rule + "\nPROCESSING SUMMER OLYMPICS\n" + rule + "\n" +
					"\n" + rule + "\nSTATISTICS\n" + rule + "\n" +
					"Years covered: 1\n" +
					"Unique countries: 1\n" +
					"Total medals: 2\n" +
					"Year range: 1992 - 1992\n" +
					"\nTop 5 countries by total medals:\n" +
					"  RU: 2\n" +
					"\n" +
					rule + "\nPROCESSING WINTER OLYMPICS\n" + rule + "\n" +
					"\n" + rule + "\nSTATISTICS\n" + rule + "\n" +
					"Years covered: 1\n" +
					"Unique countries: 1\n" +
					"Total medals: 1\n" +
					"Year range: 1994 - 1994\n" +
					"\nTop 5 countries by total medals:\n" +
					"  US: 1\n"
				So(statsOut.String(), ShouldEqual, want)
			})

			Convey("Then a second run reproduces the outputs exactly", func() {
				summerFirst, err := os.ReadFile(summerPath)
				So(err, ShouldBeNil)
				winterFirst, err := os.ReadFile(winterPath)
				So(err, ShouldBeNil)

				So(svc.Run(ctx), ShouldBeNil)

				summerSecond, err := os.ReadFile(summerPath)
				So(err, ShouldBeNil)
				winterSecond, err := os.ReadFile(winterPath)
				So(err, ShouldBeNil)

				So(string(summerSecond), ShouldEqual, string(summerFirst))
				So(string(winterSecond), ShouldEqual, string(winterFirst))
			})
		})
	})
}

func TestServiceIntegrationEmptySeason(t *testing.T) {
	Convey("Given a dataset with no winter rows", t, func() {
		content := rawHeader + "\n" +
			`1,Somebody,M,25,180,75,United States,USA,2000 Summer,2000,Summer,Sydney,Swimming,Swimming Men's 100 metres Freestyle,Gold` + "\n"

		csvPath := writeTempCSV(content)
		defer func() { _ = os.Remove(csvPath) }()

		dir, err := os.MkdirTemp("", "podium-itest-*")
		So(err, ShouldBeNil)
		defer func() { _ = os.RemoveAll(dir) }()

		winterPath := filepath.Join(dir, "winter_medals.json")

		var statsOut strings.Builder
		svc := service.New(
			service.WithDatasetPath(csvPath),
			service.WithSummerOutput(filepath.Join(dir, "summer_medals.json")),
			service.WithWinterOutput(winterPath),
			service.WithStatsWriter(&statsOut),
		)

		Convey("When running the full pipeline", func() {
			err := svc.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the winter file holds an empty object", func() {
				raw, err := os.ReadFile(winterPath)
				So(err, ShouldBeNil)
				So(string(raw), ShouldEqual, "{}\n")
			})

			Convey("Then the winter statistics omit the year range", func() {
				out := statsOut.String()
				winterBlock := out[strings.Index(out, "PROCESSING WINTER"):]
				So(winterBlock, ShouldContainSubstring, "Years covered: 0\n")
				So(winterBlock, ShouldContainSubstring, "Total medals: 0\n")
				So(winterBlock, ShouldNotContainSubstring, "Year range")
			})
		})
	})
}

func TestServiceIntegrationMissingSource(t *testing.T) {
	Convey("Given a dataset path that does not exist", t, func() {
		dir, err := os.MkdirTemp("", "podium-itest-*")
		So(err, ShouldBeNil)
		defer func() { _ = os.RemoveAll(dir) }()

		summerPath := filepath.Join(dir, "summer_medals.json")

		svc := service.New(
			service.WithDatasetPath(filepath.Join(dir, "missing.csv")),
			service.WithSummerOutput(summerPath),
			service.WithWinterOutput(filepath.Join(dir, "winter_medals.json")),
			service.WithStatsWriter(&strings.Builder{}),
		)

		Convey("When running the pipeline", func() {
			err := svc.Run(context.Background())

			Convey("Then the missing source is reported and nothing is written", func() {
				So(errors.Is(err, dataset.ErrSourceNotFound), ShouldBeTrue)

				_, statErr := os.Stat(summerPath)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})
	})
}
