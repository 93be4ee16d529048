// Package gendata generates synthetic athlete-events CSV files with the
// production column layout, so the medal pipeline can run end-to-end without
// the real dataset download.
package gendata

import (
	"fmt"
	"time"
)

// Config holds configuration for a dataset generation run.
type Config struct {
	Rows         int     // Number of athlete-event rows to generate
	OutputFile   string  // Destination CSV path
	Seed         int64   // Seed for the deterministic draw source
	MedalRate    float64 // Fraction of rows that carry a medal
	UnmappedRate float64 // Fraction of rows drawn with a delegation code outside the catalog
	SummerShare  float64 // Fraction of rows assigned to the summer season
	LogFile      string  // Log file for generation output
	Verbose      bool    // Enable verbose logging
}

// DefaultConfig returns the generation defaults, which the CLI also uses as
// its flag defaults.
func DefaultConfig() *Config {
	return &Config{
		Rows:         defaultRows,
		OutputFile:   defaultOutputFile,
		Seed:         defaultSeed,
		MedalRate:    defaultMedalRate,
		UnmappedRate: defaultUnmappedRate,
		SummerShare:  defaultSummerShare,
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	if c.MedalRate < 0 || c.MedalRate > 1 {
		return fmt.Errorf("medal rate must be within [0, 1], got %v", c.MedalRate)
	}
	if c.UnmappedRate < 0 || c.UnmappedRate > 1 {
		return fmt.Errorf("unmapped rate must be within [0, 1], got %v", c.UnmappedRate)
	}
	if c.SummerShare < 0 || c.SummerShare > 1 {
		return fmt.Errorf("summer share must be within [0, 1], got %v", c.SummerShare)
	}
	return nil
}

// Stats holds generation statistics.
type Stats struct {
	RowsGenerated int
	MedalRows     int
	UnmappedRows  int
	SummerRows    int
	WinterRows    int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}
