// Package country answers delegation-code lookups against the fixed mapping
// tables: delegation code to country code, the historical-delegation set,
// and display names.
package country

import (
	"sort"
)

// Option applies a configuration option to a Catalog.
type Option func(*Catalog)

// WithDelegations replaces the delegation-to-country table.
func WithDelegations(table map[string]string) Option {
	return func(c *Catalog) {
		if len(table) > 0 {
			c.delegations = copyTable(table)
		}
	}
}

// WithHistorical replaces the historical-delegation label table.
func WithHistorical(table map[string]string) Option {
	return func(c *Catalog) {
		if table != nil {
			c.historical = copyTable(table)
		}
	}
}

// WithNames replaces the display-name table.
func WithNames(table map[string]string) Option {
	return func(c *Catalog) {
		if table != nil {
			c.names = copyTable(table)
		}
	}
}

// Catalog is an immutable snapshot of the mapping tables plus the reverse
// index derived from them. All lookups are read-only after construction, so
// a single Catalog is safe to share across concurrent season runs.
type Catalog struct {
	delegations map[string]string
	historical  map[string]string
	names       map[string]string

	// byCountry indexes, per country code, the sorted historical delegation
	// codes consolidated into it.
	byCountry map[string][]string
}

// NewCatalog builds a Catalog from the fixed tables, or from replacement
// tables supplied by options, and precomputes the reverse index.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		delegations: delegationToCountry,
		historical:  historicalLabels,
		names:       countryNames,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.buildIndex()

	return c
}

// buildIndex derives the country -> historical delegations index. Sorting
// fixes the first-match order for the historical scan: alphabetical by
// delegation code.
func (c *Catalog) buildIndex() {
	idx := make(map[string][]string)
	for code, cc := range c.delegations {
		if _, ok := c.historical[code]; ok {
			idx[cc] = append(idx[cc], code)
		}
	}
	for _, codes := range idx {
		sort.Strings(codes)
	}
	c.byCountry = idx
}

// Normalize resolves a delegation code to its country code. The second
// return is false for codes absent from the table.
func (c *Catalog) Normalize(code string) (string, bool) {
	cc, ok := c.delegations[code]
	return cc, ok
}

// HistoricalLabel returns the label of a historical delegation code, e.g.
// "USSR (1952-1988)" for URS. The second return is false for codes that are
// not historical.
func (c *Catalog) HistoricalLabel(code string) (string, bool) {
	label, ok := c.historical[code]
	return label, ok
}

// Historical reports whether at least one historical delegation code
// consolidates into the given country code.
func (c *Catalog) Historical(countryCode string) bool {
	return len(c.byCountry[countryCode]) > 0
}

// HistoricalSources returns the historical delegation codes consolidated
// into the given country code, alphabetically. The slice is a copy.
func (c *Catalog) HistoricalSources(countryCode string) []string {
	src := c.byCountry[countryCode]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// DisplayName returns the display name for a country code, falling back to
// the code itself when the name table has no entry.
func (c *Catalog) DisplayName(countryCode string) string {
	if name, ok := c.names[countryCode]; ok {
		return name
	}
	return countryCode
}

// Delegations returns the number of delegation codes in the catalog.
func (c *Catalog) Delegations() int {
	return len(c.delegations)
}

// Codes returns the delegation codes in the catalog, alphabetically. The
// slice is a copy.
func (c *Catalog) Codes() []string {
	out := make([]string, 0, len(c.delegations))
	for code := range c.delegations {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// The default catalog is built once from the fixed tables and shared
// process-wide.
var defaultCatalog = NewCatalog() //nolint:gochecknoglobals // immutable shared snapshot

// Default returns the shared catalog over the fixed tables.
func Default() *Catalog {
	return defaultCatalog
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
