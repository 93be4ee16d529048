// Package metrics provides Prometheus metrics for the medal pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Throughput - stage-by-stage record counts
	recordsLoaded prometheus.Counter
	seasonRecords *prometheus.CounterVec
	medalRecords  *prometheus.CounterVec
	medalsTallied *prometheus.CounterVec
	unmappedCodes prometheus.Counter

	// Output
	exportsWritten prometheus.Counter

	// Coverage - per-season result shape
	yearsCovered     *prometheus.GaugeVec
	countriesCovered *prometheus.GaugeVec

	// Timing
	seasonDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Register on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.recordsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded_total",
		Help:      "Total number of participation records read from the source dataset",
	})

	m.seasonRecords = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "season_records_total",
			Help:      "Records remaining after the season filter, by season",
		},
		[]string{"season"},
	)

	m.medalRecords = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "medal_records_total",
			Help:      "Records remaining after the medal filter, by season",
		},
		[]string{"season"},
	)

	m.medalsTallied = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "medals_tallied_total",
			Help:      "Medals folded into year/country tallies, by medal type",
		},
		[]string{"medal"},
	)

	m.unmappedCodes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unmapped_codes_total",
		Help:      "Records skipped because their delegation code has no mapping",
	})

	m.exportsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_written_total",
		Help:      "Output files written successfully",
	})

	m.yearsCovered = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "years_covered",
			Help:      "Distinct years present in the aggregated result, by season",
		},
		[]string{"season"},
	)

	m.countriesCovered = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "countries_covered",
			Help:      "Distinct countries present in the aggregated result, by season",
		},
		[]string{"season"},
	)

	m.seasonDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "season_duration_seconds",
			Help:      "Wall-clock duration of one full season pipeline run",
			Buckets:   m.histogramBuckets,
		},
		[]string{"season"},
	)
}

// RecordRecordsLoaded adds to the loaded-records counter.
func RecordRecordsLoaded(count int) {
	globalManager.recordsLoaded.Add(float64(count))
}

// RecordSeasonRecords adds to the season-filtered counter for a season.
func RecordSeasonRecords(season string, count int) {
	globalManager.seasonRecords.WithLabelValues(season).Add(float64(count))
}

// RecordMedalRecords adds to the medal-filtered counter for a season.
func RecordMedalRecords(season string, count int) {
	globalManager.medalRecords.WithLabelValues(season).Add(float64(count))
}

// RecordMedalTallied increments the tallied counter for a medal type.
func RecordMedalTallied(medal string) {
	globalManager.medalsTallied.WithLabelValues(medal).Inc()
}

// RecordUnmappedCode increments the unmapped delegation code counter.
func RecordUnmappedCode() {
	globalManager.unmappedCodes.Inc()
}

// RecordExportWritten increments the written-exports counter.
func RecordExportWritten() {
	globalManager.exportsWritten.Inc()
}

// UpdateYearsCovered sets the distinct-year gauge for a season.
func UpdateYearsCovered(season string, count int) {
	globalManager.yearsCovered.WithLabelValues(season).Set(float64(count))
}

// UpdateCountriesCovered sets the distinct-country gauge for a season.
func UpdateCountriesCovered(season string, count int) {
	globalManager.countriesCovered.WithLabelValues(season).Set(float64(count))
}

// ObserveSeasonDuration records one season run's duration in seconds.
func ObserveSeasonDuration(season string, seconds float64) {
	globalManager.seasonDuration.WithLabelValues(season).Observe(seconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
