// Package testutil provides shared test utilities for the chess-features project.
// These utilities reduce code duplication across test files and provide
// consistent board fixtures.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

// MustBoard parses a FEN string and calls t.Fatal if it is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// Sq converts algebraic notation to a square, panicking on bad input.
// Intended for literal fixtures only.
func Sq(name string) chess.Square {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		panic("testutil: bad square " + name)
	}
	return sq
}

// Squares converts several algebraic names with Sq.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = Sq(name)
	}
	return squares
}
