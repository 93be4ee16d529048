// Package model contains domain models passed between layers.
package model

import "strings"

// Season selects which Olympics edition a record belongs to.
type Season string

// Seasons present in the source dataset.
const (
	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"
)

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	return s == SeasonSummer || s == SeasonWinter
}

func (s Season) String() string {
	return string(s)
}

// Seasons returns all seasons in processing order. Summer is always
// processed before Winter.
func Seasons() []Season {
	return []Season{SeasonSummer, SeasonWinter}
}

// Normalized medal names as they appear in tallies and output.
const (
	MedalGold   = "gold"
	MedalSilver = "silver"
	MedalBronze = "bronze"
)

// The dataset encodes non-medal rows as an empty field or the string "NA".
const (
	medalAbsent = ""
	medalNA     = "NA"
)

// Participation represents one athlete-event row of the source dataset.
// Only the fields the pipeline consumes are retained; the record is
// ephemeral and discarded after aggregation.
type Participation struct {
	Year       int    // Games year, e.g. 1992
	Season     Season // Summer or Winter
	Delegation string // 3-letter delegation code, e.g. "URS"
	Medal      string // raw medal value: "Gold", "Silver", "Bronze"
}

// HasMedal reports whether a raw medal value denotes an actual medal rather
// than one of the dataset's null encodings.
func HasMedal(raw string) bool {
	return raw != medalAbsent && raw != medalNA
}

// NormalizeMedal lowercases a raw medal value and reports whether it is one
// of gold, silver or bronze. Anything else is not an error; callers treat it
// as a no-op.
func NormalizeMedal(raw string) (string, bool) {
	switch strings.ToLower(raw) {
	case MedalGold:
		return MedalGold, true
	case MedalSilver:
		return MedalSilver, true
	case MedalBronze:
		return MedalBronze, true
	default:
		return "", false
	}
}
