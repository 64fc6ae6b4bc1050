// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-features/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "json", "Output format: json, csv")
	noFEN        = flag.Bool("nofen", false, "Don't include the position in each record")
	indentJSON   = flag.Bool("indent", false, "Pretty-print JSON records")

	// Input options
	inputFormat = flag.String("input", "auto", "Input format: auto, fen, pgn (auto picks by file extension)")
	skipInvalid = flag.Bool("skip-invalid", false, "Log and skip unreadable positions instead of stopping")
	colours     = flag.String("colours", "both", "Sides to analyze: white, black, both")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of input files to process (one per line)")
	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress positions already seen in this run")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Report every position processed")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 100, "Work queue length")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyInputFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyDuplicateFlags(cfg)
	applyPerformanceFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyInputFlags configures how positions are read.
func applyInputFlags(cfg *config.Config) error {
	format, err := config.ParseInputFormat(*inputFormat)
	if err != nil {
		return err
	}
	sel, err := config.ParseColourSelection(*colours)
	if err != nil {
		return err
	}
	cfg.Input.Format = format
	cfg.Input.SkipInvalid = *skipInvalid
	cfg.Colours = sel
	return nil
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.IncludeFEN = !*noFEN
	cfg.Output.Indent = *indentJSON
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxPositions = *duplicateCapacity
}

// applyPerformanceFlags configures the worker pool.
func applyPerformanceFlags(cfg *config.Config) {
	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.BufferSize = *bufferSize
}
