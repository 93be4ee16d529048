// Package service wires the pipeline stages into a season-by-season
// batch run.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/adapters/export"
	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/medals"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/report"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Default locations, kept in sync with the config package defaults.
const (
	defaultDatasetPath  = "data/raw/athlete_events.csv"
	defaultSummerOutput = "data/summer_medals.json"
	defaultWinterOutput = "data/winter_medals.json"
)

// Service runs the medal processing pipeline for every season.
type Service struct {
	// Core components
	loader     dataset.Loader
	aggregator medals.Aggregator
	writer     export.Writer
	catalog    *country.Catalog

	// Configuration
	datasetPath  string
	summerOutput string
	winterOutput string
	statsOut     io.Writer

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath sets the raw CSV location.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithSummerOutput sets the summer season output file.
func WithSummerOutput(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.summerOutput = path
		}
	}
}

// WithWinterOutput sets the winter season output file.
func WithWinterOutput(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.winterOutput = path
		}
	}
}

// WithStatsWriter redirects the banner and statistics output.
func WithStatsWriter(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.statsOut = w
		}
	}
}

// WithLoader replaces the dataset loader.
func WithLoader(l dataset.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithAggregator replaces the medal aggregator.
func WithAggregator(a medals.Aggregator) Option {
	return func(s *Service) {
		if a != nil {
			s.aggregator = a
		}
	}
}

// WithWriter replaces the export writer.
func WithWriter(w export.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithCatalog replaces the country catalog.
func WithCatalog(c *country.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a Service with default configuration. Components left
// unset after options apply are built from the configured paths.
func New(opts ...Option) *Service {
	s := &Service{
		datasetPath:  defaultDatasetPath,
		summerOutput: defaultSummerOutput,
		winterOutput: defaultWinterOutput,
		statsOut:     os.Stdout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.catalog == nil {
		s.catalog = country.Default()
	}
	if s.loader == nil {
		s.loader = dataset.NewCSVLoader(s.datasetPath)
	}
	if s.aggregator == nil {
		s.aggregator = medals.NewInMemoryAggregator(medals.WithCatalog(s.catalog))
	}
	if s.writer == nil {
		s.writer = export.NewJSONWriter()
	}

	return s
}

// Run processes every season in order. Summer completes fully, output
// included, before Winter starts. A failure stops the run and leaves
// outputs already written in place.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info(ctx, "starting medal processing run",
		logger.String("dataset", s.datasetPath),
	)

	for i, season := range model.Seasons() {
		if i > 0 {
			if _, err := fmt.Fprintln(s.statsOut); err != nil {
				return fmt.Errorf("write season separator: %w", err)
			}
		}

		title := fmt.Sprintf("PROCESSING %s OLYMPICS", strings.ToUpper(season.String()))
		if err := report.Banner(s.statsOut, title); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}

		if err := s.processSeason(ctx, season); err != nil {
			return fmt.Errorf("%s season: %w", strings.ToLower(season.String()), err)
		}
	}

	s.logger.Info(ctx, "medal processing run complete")
	return nil
}

// processSeason drives one season through load, aggregate, annotate,
// report and export.
func (s *Service) processSeason(ctx context.Context, season model.Season) error {
	start := time.Now()

	records, err := s.loader.Load(ctx, season)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "aggregating medals by year and country",
		logger.String("season", season.String()),
		logger.Int("records", len(records)),
	)

	table, err := s.aggregator.Aggregate(ctx, records)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "adding metadata", logger.String("season", season.String()))
	annotated := medals.Annotate(table, s.catalog)

	stats := report.Compute(annotated)
	if err := stats.Render(s.statsOut); err != nil {
		return fmt.Errorf("render statistics: %w", err)
	}

	if err := s.writer.Write(ctx, annotated, s.outputPath(season)); err != nil {
		return err
	}

	metrics.ObserveSeasonDuration(season.String(), time.Since(start).Seconds())
	metrics.UpdateYearsCovered(season.String(), stats.Years)
	metrics.UpdateCountriesCovered(season.String(), stats.Countries)

	s.logger.Info(ctx, "season processed",
		logger.String("season", season.String()),
		logger.Int("years", stats.Years),
		logger.Int("countries", stats.Countries),
		logger.Int("medals", stats.Medals),
	)

	return nil
}

func (s *Service) outputPath(season model.Season) string {
	switch season {
	case model.SeasonWinter:
		return s.winterOutput
	default:
		return s.summerOutput
	}
}
