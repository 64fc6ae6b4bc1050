package config

import (
	"fmt"

	"github.com/lgbarn/chess-features/internal/errors"
)

// InputFormat identifies how positions are read.
type InputFormat int

const (
	AutoInput InputFormat = iota // Decide per file from its name
	FENInput                     // One FEN/EPD record per line
	PGNInput                     // Every position of every game
)

// ParseInputFormat converts "auto", "fen" or "pgn".
func ParseInputFormat(s string) (InputFormat, error) {
	switch s {
	case "auto", "":
		return AutoInput, nil
	case "fen", "epd":
		return FENInput, nil
	case "pgn":
		return PGNInput, nil
	}
	return AutoInput, fmt.Errorf("input format %q: %w", s, errors.ErrUnknownFormat)
}

// InputConfig holds settings related to reading positions.
type InputConfig struct {
	// Format selects the reader; AutoInput picks by file extension.
	Format InputFormat

	// SkipInvalid logs and skips unreadable records instead of stopping.
	SkipInvalid bool
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{Format: AutoInput}
}
