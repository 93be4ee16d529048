package gendata

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/podium/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "gen_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the dataset generator.
func ShowHelp() {
	os.Stdout.WriteString(`Podium Dataset Generator
========================

Generates a synthetic athlete-events CSV with the production column layout,
so the medal pipeline can run end-to-end without the Kaggle download.

Usage:
  go run cmd/gen-dataset/main.go [options]

Options:
  -rows int
        Number of athlete-event rows to generate (default 5000)
  -output string
        Destination CSV path (default "data/raw/athlete_events.csv")
  -seed int
        Seed for the deterministic draw source (default 1)
  -medal-rate float
        Fraction of rows that carry a medal (default 0.15)
  -unmapped-rate float
        Fraction of rows drawn with a delegation code outside the catalog (default 0.02)
  -log string
        Log file for generation output (default: gen_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate with default settings
  go run cmd/gen-dataset/main.go

  # Large dataset with a fixed seed
  go run cmd/gen-dataset/main.go -rows 200000 -seed 7

  # Medal-heavy dataset into a custom path
  go run cmd/gen-dataset/main.go -rows 10000 -medal-rate 0.5 -output /tmp/events.csv
`)
}
