package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/podium/internal/gendata"
)

func main() {
	defaults := gendata.DefaultConfig()

	var (
		rows         = flag.Int("rows", defaults.Rows, "Number of athlete-event rows to generate")
		output       = flag.String("output", defaults.OutputFile, "Destination CSV path")
		seed         = flag.Int64("seed", defaults.Seed, "Seed for the deterministic draw source")
		medalRate    = flag.Float64("medal-rate", defaults.MedalRate, "Fraction of rows that carry a medal")
		unmappedRate = flag.Float64("unmapped-rate", defaults.UnmappedRate, "Fraction of rows drawn with a delegation code outside the catalog")
		logFile      = flag.String("log", "", "Log file for generation output (default: gen_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		gendata.ShowHelp()
		return
	}

	// Setup logging
	if err := gendata.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create generation configuration
	config := &gendata.Config{
		Rows:         *rows,
		OutputFile:   *output,
		Seed:         *seed,
		MedalRate:    *medalRate,
		UnmappedRate: *unmappedRate,
		SummerShare:  defaults.SummerShare,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	// Run the generator
	if err := gendata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
