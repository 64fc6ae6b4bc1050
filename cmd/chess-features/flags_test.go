package main

import (
	"errors"
	"runtime"
	"testing"

	"github.com/lgbarn/chess-features/internal/config"
	chesserrors "github.com/lgbarn/chess-features/internal/errors"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(quiet, false)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyInputFlags
// ---------------------------------------------------------------------------

func TestApplyInputFlags(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		colours     string
		skip        bool
		wantFormat  config.InputFormat
		wantColours config.ColourSelection
		wantErr     error
	}{
		{"defaults", "auto", "both", false, config.AutoInput, config.BothColours, nil},
		{"pgn white", "pgn", "white", true, config.PGNInput, config.WhiteOnly, nil},
		{"epd black", "epd", "black", false, config.FENInput, config.BlackOnly, nil},
		{"bad format", "xml", "both", false, config.AutoInput, config.BothColours, chesserrors.ErrUnknownFormat},
		{"bad colour", "fen", "green", false, config.AutoInput, config.BothColours, chesserrors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(inputFormat, tt.format)()
			defer saveRestoreString(colours, tt.colours)()
			defer saveRestoreBool(skipInvalid, tt.skip)()

			cfg := config.NewConfig()
			err := applyInputFlags(cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("applyInputFlags() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyInputFlags() error = %v", err)
			}
			if cfg.Input.Format != tt.wantFormat {
				t.Errorf("Input.Format = %v; want %v", cfg.Input.Format, tt.wantFormat)
			}
			if cfg.Colours != tt.wantColours {
				t.Errorf("Colours = %v; want %v", cfg.Colours, tt.wantColours)
			}
			if cfg.Input.SkipInvalid != tt.skip {
				t.Errorf("Input.SkipInvalid = %v; want %v", cfg.Input.SkipInvalid, tt.skip)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("csv without fen", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "csv")()
		defer saveRestoreBool(noFEN, true)()
		defer saveRestoreBool(indentJSON, false)()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Format != config.CSV {
			t.Errorf("Output.Format = %v; want CSV", cfg.Output.Format)
		}
		if cfg.Output.IncludeFEN {
			t.Error("Output.IncludeFEN = true; want false")
		}
	})

	t.Run("indented json", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "json")()
		defer saveRestoreBool(noFEN, false)()
		defer saveRestoreBool(indentJSON, true)()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Format != config.JSON || !cfg.Output.Indent || !cfg.Output.IncludeFEN {
			t.Errorf("Output = %+v; want indented JSON with FEN", *cfg.Output)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "yaml")()
		if err := applyOutputFlags(config.NewConfig()); !errors.Is(err, chesserrors.ErrUnknownFormat) {
			t.Errorf("applyOutputFlags() error = %v; want ErrUnknownFormat", err)
		}
	})
}

// ---------------------------------------------------------------------------
// applyDuplicateFlags / applyPerformanceFlags
// ---------------------------------------------------------------------------

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)
	if !cfg.Duplicate.Suppress || cfg.Duplicate.MaxPositions != 500 {
		t.Errorf("Duplicate = %+v; want suppress with 500", *cfg.Duplicate)
	}
}

func TestApplyPerformanceFlags(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		buffer      int
		wantWorkers int
	}{
		{"explicit workers", 3, 10, 3},
		{"auto workers", 0, 100, runtime.NumCPU()},
		{"negative workers", -2, 100, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(workers, tt.workers)()
			defer saveRestoreInt(bufferSize, tt.buffer)()

			cfg := config.NewConfig()
			applyPerformanceFlags(cfg)
			if cfg.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d; want %d", cfg.Workers, tt.wantWorkers)
			}
			if cfg.BufferSize != tt.buffer {
				t.Errorf("BufferSize = %d; want %d", cfg.BufferSize, tt.buffer)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
