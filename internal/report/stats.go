// Package report computes and renders per-season summary statistics.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/okian/podium/internal/domain/medals"
)

const (
	// topCountries is how many countries the ranking section lists.
	topCountries = 5

	// ruleWidth is the width of the separator rules around headings.
	ruleWidth = 50
)

// CountryTotal is one row of the top-countries ranking.
type CountryTotal struct {
	Code  string
	Total int
}

// Statistics summarizes one season's annotated medal table.
type Statistics struct {
	Years     int
	Countries int
	Medals    int

	// MinYear and MaxYear are only meaningful when HasRange is true.
	MinYear  int
	MaxYear  int
	HasRange bool

	TopCountries []CountryTotal
}

// Compute derives summary statistics from an annotated table.
func Compute(table medals.AnnotatedTable) Statistics {
	var stats Statistics
	stats.Years = len(table)

	totals := make(map[string]int)
	first := true
	for year, countries := range table {
		if first || year < stats.MinYear {
			stats.MinYear = year
		}
		if first || year > stats.MaxYear {
			stats.MaxYear = year
		}
		first = false

		for code, entry := range countries {
			total := entry.Total()
			stats.Medals += total
			totals[code] += total
		}
	}

	stats.HasRange = !first
	stats.Countries = len(totals)
	stats.TopCountries = rankTotals(totals, topCountries)
	return stats
}

// rankTotals orders countries by combined medals, highest first.
// Ties break by country code ascending so the ranking is stable.
func rankTotals(totals map[string]int, limit int) []CountryTotal {
	rows := make([]CountryTotal, 0, len(totals))
	for code, total := range totals {
		rows = append(rows, CountryTotal{Code: code, Total: total})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Code < rows[j].Code
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Render writes the statistics block to w.
func (s Statistics) Render(w io.Writer) error {
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\nSTATISTICS\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Years covered: %d\n", s.Years)
	fmt.Fprintf(&b, "Unique countries: %d\n", s.Countries)
	fmt.Fprintf(&b, "Total medals: %d\n", s.Medals)
	if s.HasRange {
		fmt.Fprintf(&b, "Year range: %d - %d\n", s.MinYear, s.MaxYear)
	}

	fmt.Fprintf(&b, "\nTop %d countries by total medals:\n", topCountries)
	for _, row := range s.TopCountries {
		fmt.Fprintf(&b, "  %s: %d\n", row.Code, row.Total)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Banner writes a section heading framed by separator rules.
func Banner(w io.Writer, title string) error {
	rule := strings.Repeat("=", ruleWidth)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
	return err
}
