// Package dataset loads Olympic participation records from the raw
// athlete events CSV export.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 4096

// Columns the loader consumes. Header matching is case-insensitive.
const (
	columnYear   = "year"
	columnSeason = "season"
	columnNOC    = "noc"
	columnMedal  = "medal"
)

// Loader yields one season's medal-bearing participation records.
type Loader interface {
	// Load reads the source and returns the records for season that carry
	// a medal. Returns ErrSourceNotFound when the source file is missing.
	Load(ctx context.Context, season model.Season) ([]model.Participation, error)
}

// CSVLoader reads the raw athlete events CSV from disk.
type CSVLoader struct {
	path string
	log  logger.Logger
}

// NewCSVLoader constructs a loader for the CSV file at path.
func NewCSVLoader(path string, opts ...Option) *CSVLoader {
	l := &CSVLoader{
		path: path,
		log:  logger.Get().Named("dataset"),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Path returns the source file location.
func (l *CSVLoader) Path() string { return l.path }

// Load implements Loader. The file is re-read on every call so each season
// starts from the full source.
func (l *CSVLoader) Load(ctx context.Context, season model.Season) ([]model.Participation, error) {
	l.log.Info(ctx, "loading dataset",
		logger.String("path", l.path),
		logger.String("season", season.String()),
	)

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, l.path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrMalformedDataset, err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]model.Participation, 0, 1024)
	total := 0
	seasonCount := 0
	row := 1 // header consumed

	for {
		if total%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("load cancelled: %w", err)
			}
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedDataset, row, err)
		}
		total++

		if strings.TrimSpace(record[cols.season]) != season.String() {
			continue
		}
		seasonCount++

		medal := strings.TrimSpace(record[cols.medal])
		if !model.HasMedal(medal) {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[cols.year]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: year %q: %w", ErrMalformedDataset, row, record[cols.year], err)
		}

		records = append(records, model.Participation{
			Year:       year,
			Season:     season,
			Delegation: strings.TrimSpace(record[cols.noc]),
			Medal:      medal,
		})
	}

	metrics.RecordRecordsLoaded(total)
	metrics.RecordSeasonRecords(season.String(), seasonCount)
	metrics.RecordMedalRecords(season.String(), len(records))

	l.log.Info(ctx, "dataset loaded",
		logger.Int("total_records", total),
		logger.Int("season_records", seasonCount),
		logger.Int("medal_records", len(records)),
	)

	return records, nil
}

// sourceColumns holds the resolved index of each consumed column.
type sourceColumns struct {
	year, season, noc, medal int
}

func resolveColumns(header []string) (sourceColumns, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var cols sourceColumns
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{columnYear, &cols.year},
		{columnSeason, &cols.season},
		{columnNOC, &cols.noc},
		{columnMedal, &cols.medal},
	} {
		i, ok := byName[want.name]
		if !ok {
			return sourceColumns{}, fmt.Errorf("%w: %s", ErrMissingColumn, want.name)
		}
		*want.dst = i
	}

	return cols, nil
}
