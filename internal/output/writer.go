// Package output writes feature vectors as JSON lines or CSV.
package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/config"
	"github.com/lgbarn/chess-features/internal/features"
)

// Record is one analyzed (position, colour) pair ready for output.
type Record struct {
	Source string
	Number int
	Ply    int
	FEN    string

	// Eval is the position's evaluation in centipawns from White's point of
	// view, nil if unknown.
	Eval *float64

	Features *features.FeatureVector
}

// WinProbability returns the expected score for the analyzed side derived
// from Eval, or nil when the record has no evaluation.
func (r *Record) WinProbability() *float64 {
	if r.Eval == nil {
		return nil
	}
	cp := *r.Eval
	if r.Features.Colour == chess.Black {
		cp = -cp
	}
	p := features.WinProbability(cp)
	return &p
}

// colourName returns the analyzed colour in lower case.
func (r *Record) colourName() string {
	return strings.ToLower(r.Features.Colour.String())
}

// PositionWriter is the interface for writing feature records.
// Different implementations handle different output formats (JSON, CSV).
type PositionWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes the writer and releases any resources.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.Output.Format == config.CSV {
		return NewCSVWriter(w, cfg)
	}
	return NewJSONWriter(w, cfg)
}
