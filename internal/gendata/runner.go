package gendata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/podium/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// ctxCheckInterval is how many rows are written between context checks.
const ctxCheckInterval = 4096

// Run generates the configured number of rows and writes them as CSV.
func Run(ctx context.Context, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting dataset generation",
		logger.Int("rows", config.Rows),
		logger.String("output", config.OutputFile),
		logger.Any("seed", config.Seed),
		logger.Float64("medalRate", config.MedalRate),
		logger.Float64("unmappedRate", config.UnmappedRate))

	gen := newGenerator(config, stats)

	// Ensure the directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < config.Rows; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("context cancelled during generation: %w", err)
			}
		}
		if err := w.Write(gen.row(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	stats.RowsGenerated = config.Rows
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats, config)

	logger.Get().Info(ctx, "generation completed successfully")
	return nil
}

// displayFinalStats logs the final generation statistics.
func displayFinalStats(stats *Stats, config *Config) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("rowsGenerated", stats.RowsGenerated),
		logger.Int("medalRows", stats.MedalRows),
		logger.Int("unmappedRows", stats.UnmappedRows),
		logger.Int("summerRows", stats.SummerRows),
		logger.Int("winterRows", stats.WinterRows),
		logger.String("output", config.OutputFile),
		logger.String("duration", stats.Duration.String()))
}
