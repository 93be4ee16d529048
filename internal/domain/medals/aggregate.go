// Package medals folds participation records into per-year, per-country
// medal tallies and annotates them for export.
package medals

import (
	"context"
	"fmt"

	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Context cancellation is checked once per this many records during a fold.
const ctxCheckInterval = 4096

// Tally counts one country's medals in one Games year.
type Tally struct {
	Gold   int
	Silver int
	Bronze int
}

// Total returns the medal sum of the tally.
func (t Tally) Total() int {
	return t.Gold + t.Silver + t.Bronze
}

// Table maps year -> country code -> tally. Years and countries without
// medal records never appear as keys.
type Table map[int]map[string]Tally

// Aggregator folds a season's filtered records into a Table.
type Aggregator interface {
	// Aggregate folds records, honoring ctx for cancellation.
	Aggregate(ctx context.Context, records []model.Participation) (Table, error)
}

// Option applies a configuration option to the InMemoryAggregator.
type Option func(*InMemoryAggregator)

// WithCatalog sets the catalog used to normalize delegation codes.
func WithCatalog(c *country.Catalog) Option {
	return func(a *InMemoryAggregator) {
		if c != nil {
			a.catalog = c
		}
	}
}

// WithLogger sets the logger used for skip warnings.
func WithLogger(l logger.Logger) Option {
	return func(a *InMemoryAggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// InMemoryAggregator implements Aggregator as a commutative map fold; any
// permutation of the input records yields the same table.
type InMemoryAggregator struct {
	catalog *country.Catalog
	log     logger.Logger
}

// NewInMemoryAggregator creates an aggregator over the default catalog.
func NewInMemoryAggregator(opts ...Option) *InMemoryAggregator {
	a := &InMemoryAggregator{
		catalog: country.Default(),
		log:     logger.Get().Named("aggregator"),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate folds the records into year/country tallies. A record with an
// unmapped delegation code is skipped with one warning per occurrence,
// never deduplicated.
func (a *InMemoryAggregator) Aggregate(ctx context.Context, records []model.Participation) (Table, error) {
	table := make(Table)

	for i, rec := range records {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("aggregation cancelled: %w", err)
			}
		}

		cc, ok := a.catalog.Normalize(rec.Delegation)
		if !ok {
			a.log.Warn(ctx, "no mapping for delegation code, skipping record",
				logger.String("code", rec.Delegation),
				logger.Int("year", rec.Year),
			)
			metrics.RecordUnmappedCode()
			continue
		}

		medal, ok := model.NormalizeMedal(rec.Medal)
		if !ok {
			// Unknown medal values fall through without a warning.
			continue
		}

		countries, ok := table[rec.Year]
		if !ok {
			countries = make(map[string]Tally)
			table[rec.Year] = countries
		}

		tally := countries[cc]
		switch medal {
		case model.MedalGold:
			tally.Gold++
		case model.MedalSilver:
			tally.Silver++
		case model.MedalBronze:
			tally.Bronze++
		}
		countries[cc] = tally

		metrics.RecordMedalTallied(medal)
	}

	return table, nil
}
