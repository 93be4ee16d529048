package medals

import (
	"github.com/okian/podium/internal/domain/country"
)

// historicalMark suffixes display names whose totals include medals won
// under a dissolved delegation.
const historicalMark = "*"

// Entry is one year/country result in the exported shape.
type Entry struct {
	Gold        int     `json:"gold"`
	Silver      int     `json:"silver"`
	Bronze      int     `json:"bronze"`
	Historical  bool    `json:"historical"`
	DisplayName *string `json:"display_name"`
}

// Total returns the medal sum of the entry.
func (e Entry) Total() int {
	return e.Gold + e.Silver + e.Bronze
}

// AnnotatedTable maps year -> country code -> annotated entry.
type AnnotatedTable map[int]map[string]Entry

// Annotate attaches the historical flag and display name to every tally,
// preserving structure: same years, same countries, same counts. An entry
// is historical iff at least one historical delegation code consolidates
// into its country, which makes the flag uniform across all of a country's
// years. The display name is set only for historical entries.
func Annotate(table Table, catalog *country.Catalog) AnnotatedTable {
	if catalog == nil {
		catalog = country.Default()
	}

	result := make(AnnotatedTable, len(table))
	for year, countries := range table {
		annotated := make(map[string]Entry, len(countries))
		for cc, tally := range countries {
			entry := Entry{
				Gold:   tally.Gold,
				Silver: tally.Silver,
				Bronze: tally.Bronze,
			}
			if catalog.Historical(cc) {
				entry.Historical = true
				name := catalog.DisplayName(cc) + historicalMark
				entry.DisplayName = &name
			}
			annotated[cc] = entry
		}
		result[year] = annotated
	}

	return result
}
