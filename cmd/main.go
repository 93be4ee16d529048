package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/podium/internal/adapters/dataset"
	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// datasetURL is where the raw athlete events export can be downloaded.
const datasetURL = "https://www.kaggle.com/datasets/heesoo37/120-years-of-olympic-history-athletes-and-results"

func main() {
	os.Exit(run())
}

func run() int {
	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom pipeline metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithDatasetPath(cfg.DatasetPath),
		app.WithSummerOutput(cfg.SummerOutput),
		app.WithWinterOutput(cfg.WinterOutput),
	)

	if err := svc.Run(ctx); err != nil {
		// A missing source is the one expected failure: tell the user how
		// to fix it and exit cleanly without touching any outputs.
		if errors.Is(err, dataset.ErrSourceNotFound) {
			printRemediation(os.Stdout, cfg.DatasetPath)
			return 0
		}

		fmt.Fprintf(os.Stdout, "\nERROR: %v\n", err)
		log.Error(ctx, "medal processing failed", logger.Error(err))
		return 1
	}

	return 0
}

// printRemediation tells the user how to obtain the raw dataset.
func printRemediation(w io.Writer, path string) {
	fmt.Fprintf(w, "\nERROR: Could not find '%s'\n", path)
	fmt.Fprintf(w, "\nPlease download the Kaggle dataset:\n")
	fmt.Fprintf(w, "1. Go to: %s\n", datasetURL)
	fmt.Fprintf(w, "2. Download 'athlete_events.csv'\n")
	fmt.Fprintf(w, "3. Place it in: %s\n", path)
	fmt.Fprintf(w, "\nThen run this command again.\n")
}
