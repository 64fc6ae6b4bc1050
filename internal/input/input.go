// Package input reads positions to analyze from FEN/EPD files and PGN games.
package input

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chess-features/internal/config"
)

// Record is one position read from an input file.
type Record struct {
	Source string // File name, "-" for standard input
	Number int    // 1-based line (FEN input) or game number (PGN input)
	Ply    int    // Half-moves from the game's start (PGN input only)
	FEN    string

	// Eval is the position's evaluation in centipawns from White's point of
	// view, nil when the input has none.
	Eval *float64

	// Err is set when the record could not be read; FEN is then the raw text.
	Err error
}

// HandlerFunc receives records in input order. A non-nil return stops the scan
// and is returned by the scanner.
type HandlerFunc func(Record) error

// DetectFormat picks the reader for a file name: .pgn files hold games,
// everything else one position per line.
func DetectFormat(name string) config.InputFormat {
	if strings.EqualFold(filepath.Ext(name), ".pgn") {
		return config.PGNInput
	}
	return config.FENInput
}

// Scan reads r with the reader selected by format, resolving AutoInput from
// name.
func Scan(r io.Reader, name string, format config.InputFormat, fn HandlerFunc) error {
	if format == config.AutoInput {
		format = DetectFormat(name)
	}
	if format == config.PGNInput {
		return ScanPGN(r, name, fn)
	}
	return ScanFEN(r, name, fn)
}
