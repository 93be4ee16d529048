package gendata

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
)

// Draw pools for the descriptive columns. The pipeline reads only NOC, Year,
// Season and Medal; the remaining columns exist so the file matches the
// production layout.
var (
	summerSports = []string{"Athletics", "Swimming", "Gymnastics", "Rowing", "Fencing", "Cycling", "Wrestling", "Boxing"}
	winterSports = []string{"Speed Skating", "Cross Country Skiing", "Alpine Skiing", "Biathlon", "Ice Hockey", "Figure Skating", "Bobsleigh", "Luge"}
	summerCities = []string{"Barcelona", "Atlanta", "Sydney", "Athina", "Beijing", "London", "Rio de Janeiro"}
	winterCities = []string{"Albertville", "Lillehammer", "Nagano", "Salt Lake City", "Torino", "Vancouver", "Sochi"}
	eventFormats = []string{"Individual", "Team", "Relay", "Sprint"}
	medalValues  = []string{"Gold", "Silver", "Bronze"}

	// Real delegation codes absent from the catalog; rows drawn from here
	// take the unmapped skip path downstream.
	unmappedCodes = []string{"AND", "FIJ", "ISL", "LIE", "LUX", "MLT", "MON", "SMR"}
)

// noMedal is the dataset's null encoding for the Medal column.
const noMedal = "NA"

// Header returns the production column layout of the athlete-events dataset.
func Header() []string {
	return []string{"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC", "Games", "Year", "Season", "City", "Sport", "Event", "Medal"}
}

// generator draws rows from a seeded source so a given seed always yields
// the same sequence of seasons, years, codes and medals. Athlete names are
// the one exception: they are fresh UUIDs on every run.
type generator struct {
	rng     *rand.Rand
	stats   *Stats
	catalog *country.Catalog
	codes   []string
	summer  []int
	winter  []int

	medalRate    float64
	unmappedRate float64
	summerShare  float64
}

func newGenerator(config *Config, stats *Stats) *generator {
	catalog := country.Default()
	return &generator{
		rng:          rand.New(rand.NewSource(config.Seed)),
		stats:        stats,
		catalog:      catalog,
		codes:        catalog.Codes(),
		summer:       gamesYears(firstSummerYear, lastSummerYear),
		winter:       winterYears(),
		medalRate:    config.MedalRate,
		unmappedRate: config.UnmappedRate,
		summerShare:  config.SummerShare,
	}
}

// row draws one athlete-event row. Column order matches Header.
func (g *generator) row(index int) []string {
	season := g.season()
	year := g.year(season)
	code := g.delegation()
	medal := g.medal()
	sex := g.sex()
	sport := g.pick(g.sports(season))
	city := g.pick(g.cities(season))

	team := code
	if cc, ok := g.catalog.Normalize(code); ok {
		team = g.catalog.DisplayName(cc)
	}

	return []string{
		strconv.Itoa(index + 1),
		"Athlete " + uuid.New().String(),
		sex,
		strconv.Itoa(minAge + g.rng.Intn(ageRange)),
		strconv.Itoa(minHeight + g.rng.Intn(heightRange)),
		strconv.Itoa(minWeight + g.rng.Intn(weightRange)),
		team,
		code,
		strconv.Itoa(year) + " " + season.String(),
		strconv.Itoa(year),
		season.String(),
		city,
		sport,
		g.event(sport, sex),
		medal,
	}
}

func (g *generator) season() model.Season {
	if g.rng.Float64() < g.summerShare {
		g.stats.SummerRows++
		return model.SeasonSummer
	}
	g.stats.WinterRows++
	return model.SeasonWinter
}

func (g *generator) year(season model.Season) int {
	if season == model.SeasonWinter {
		return g.winter[g.rng.Intn(len(g.winter))]
	}
	return g.summer[g.rng.Intn(len(g.summer))]
}

func (g *generator) delegation() string {
	if g.rng.Float64() < g.unmappedRate {
		g.stats.UnmappedRows++
		return unmappedCodes[g.rng.Intn(len(unmappedCodes))]
	}
	return g.codes[g.rng.Intn(len(g.codes))]
}

func (g *generator) medal() string {
	if g.rng.Float64() < g.medalRate {
		g.stats.MedalRows++
		return medalValues[g.rng.Intn(len(medalValues))]
	}
	return noMedal
}

func (g *generator) sex() string {
	if g.rng.Intn(2) == 0 {
		return "M"
	}
	return "F"
}

func (g *generator) sports(season model.Season) []string {
	if season == model.SeasonWinter {
		return winterSports
	}
	return summerSports
}

func (g *generator) cities(season model.Season) []string {
	if season == model.SeasonWinter {
		return winterCities
	}
	return summerCities
}

func (g *generator) event(sport, sex string) string {
	gender := "Men's"
	if sex == "F" {
		gender = "Women's"
	}
	return sport + " " + gender + " " + g.pick(eventFormats)
}

func (g *generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// gamesYears returns the four-year grid from first to last inclusive.
func gamesYears(first, last int) []int {
	years := make([]int, 0, (last-first)/olympiadStride+1)
	for y := first; y <= last; y += olympiadStride {
		years = append(years, y)
	}
	return years
}

// winterYears returns the winter grid: shared with the summer grid through
// 1992, then offset by two years from 1994 on.
func winterYears() []int {
	years := gamesYears(firstWinterYear, lastSharedWinterYear)
	return append(years, gamesYears(firstOffsetWinterYear, lastWinterYear)...)
}
