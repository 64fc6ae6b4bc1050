// Package errors provides sentinel errors and error types for chess-features.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates a general input parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoKing indicates the analyzed side has no king on the board.
	ErrNoKing = errors.New("no king for analyzed colour")

	// ErrUnknownFormat indicates an unrecognised input or output format.
	ErrUnknownFormat = errors.New("unknown format")
)

// PositionError wraps errors with the context of one analyzed position:
// where it came from and which side was being analyzed.
type PositionError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Record int    // 1-based line (FEN input) or game number (PGN input)
	Ply    int    // Ply within the game (PGN input only)
	Colour string // Analyzed colour (if known)
	FEN    string // The position (if known)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Record > 0 {
		parts = append(parts, fmt.Sprintf("record %d", e.Record))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// ParseError reports unreadable input. FEN lines are located by line and
// column, PGN input by game number.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // 1-based line (FEN input)
	Column   int    // 1-based column (FEN input)
	Game     int    // 1-based game number (PGN input)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// location renders file:line:column, or "file game N" for PGN input.
func (e *ParseError) location() string {
	if e.File == "" && e.Game == 0 {
		return ""
	}
	loc := e.File
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if e.Game > 0 {
		loc = strings.TrimSpace(fmt.Sprintf("%s game %d", loc, e.Game))
	}
	return loc
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string
	if loc := e.location(); loc != "" {
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
