package config

import (
	"fmt"

	"github.com/lgbarn/chess-features/internal/errors"
)

// OutputFormat represents the feature record encodings.
type OutputFormat int

const (
	JSON OutputFormat = iota // One JSON object per line
	CSV                      // Header row plus one row per record
)

// ParseOutputFormat converts "json" or "csv".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "json", "jsonl", "":
		return JSON, nil
	case "csv":
		return CSV, nil
	}
	return JSON, fmt.Errorf("output format %q: %w", s, errors.ErrUnknownFormat)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the record encoding.
	Format OutputFormat

	// IncludeFEN adds the analyzed position to every record.
	IncludeFEN bool

	// Indent pretty-prints JSON records.
	Indent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     JSON,
		IncludeFEN: true,
	}
}
