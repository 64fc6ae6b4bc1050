// Package config provides configuration for chess-features.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/errors"
)

// ColourSelection chooses which sides of each position are analyzed.
type ColourSelection int

const (
	BothColours ColourSelection = iota
	WhiteOnly
	BlackOnly
)

// ParseColourSelection converts "white", "black" or "both".
func ParseColourSelection(s string) (ColourSelection, error) {
	switch s {
	case "both", "":
		return BothColours, nil
	case "white", "w":
		return WhiteOnly, nil
	case "black", "b":
		return BlackOnly, nil
	}
	return BothColours, fmt.Errorf("colours %q: %w", s, errors.ErrInvalidConfig)
}

// Colours lists the colours selected, White first.
func (c ColourSelection) Colours() []chess.Colour {
	switch c {
	case WhiteOnly:
		return []chess.Colour{chess.White}
	case BlackOnly:
		return []chess.Colour{chess.Black}
	default:
		return []chess.Colour{chess.White, chess.Black}
	}
}

// String returns the flag spelling of the selection.
func (c ColourSelection) String() string {
	switch c {
	case WhiteOnly:
		return "white"
	case BlackOnly:
		return "black"
	default:
		return "both"
	}
}

// Config holds all program configuration.
type Config struct {
	Input     *InputConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Colours selects the analyzed sides.
	Colours ColourSelection

	// Workers is the number of extraction goroutines; BufferSize bounds
	// the work and result queues.
	Workers    int
	BufferSize int

	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Input:      NewInputConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Colours:    BothColours,
		Workers:    runtime.NumCPU(),
		BufferSize: 100,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream feature records are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity (%d) must be 0, 1 or 2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	return nil
}
