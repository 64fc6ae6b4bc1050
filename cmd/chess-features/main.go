// chess-features extracts numeric feature vectors from chess positions read
// from FEN/EPD files or PGN games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-features/internal/config"
	"github.com/lgbarn/chess-features/internal/output"
)

const programVersion = "0.1.0"

func main() {
	loadArgsFromFileIfSpecified()
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-features version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	inputs := flag.Args()
	if *fileListFile != "" {
		files, err := loadFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		inputs = append(inputs, files...)
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	proc := NewProcessor(cfg, writer)

	err := processAllInputs(context.Background(), proc, inputs)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, proc.Stats())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// processAllInputs processes all input files, or stdin when there are none.
// A file that cannot be opened is reported and skipped with -skip-invalid.
func processAllInputs(ctx context.Context, proc *Processor, files []string) error {
	if len(files) == 0 {
		return proc.ProcessInput(ctx, os.Stdin, "stdin")
	}

	for _, filename := range files {
		if filename == "-" {
			if err := proc.ProcessInput(ctx, os.Stdin, "stdin"); err != nil {
				return err
			}
			continue
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			if proc.cfg.Input.SkipInvalid {
				proc.stats.Skipped++
				proc.logf(1, "Error opening file %s: %v\n", filename, err)
				continue
			}
			return err
		}

		err = proc.ProcessInput(ctx, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats Stats) {
	fmt.Fprintf(w, "%d record(s) written for %d position(s)", stats.Records, stats.Positions)
	if stats.Unique > 0 {
		fmt.Fprintf(w, ", %d unique", stats.Unique)
	}
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, ", %d duplicate(s)", stats.Duplicates)
	}
	if stats.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", stats.Skipped)
	}
	fmt.Fprintln(w, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-features [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Extracts feature vectors from chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput formats (-input):\n")
	fmt.Fprintf(os.Stderr, "  fen    One FEN or EPD record per line, \"ce <centipawns>\" sets the eval\n")
	fmt.Fprintf(os.Stderr, "  pgn    Every position of every game\n")
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON object per record and line (default)\n")
	fmt.Fprintf(os.Stderr, "  csv    Header row plus one row per record\n")
}
