// Package features computes the numeric description of a chess position
// from one side's point of view: mobility, king safety, pawn structure,
// threats and simple material aggregates.
//
// Every analyzer is bound to one board and one colour. The board is copied
// at construction, so later changes by the caller are never observed, and
// each derived value is computed at most once per analyzer.
package features

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
	"github.com/lgbarn/chess-features/internal/errors"
)

// memo holds a lazily computed value.
type memo[T any] struct {
	value T
	done  bool
}

func (m *memo[T]) get(compute func() T) T {
	if !m.done {
		m.value = compute()
		m.done = true
	}
	return m.value
}

// Base carries the state shared by all analyzers.
type Base struct {
	board  *chess.Board
	colour chess.Colour
	king   chess.Square

	mobility memo[MobilityMap]
}

// newBase copies board and checks that colour has a king.
func newBase(board *chess.Board, colour chess.Colour) (Base, error) {
	king, ok := board.King(colour)
	if !ok {
		return Base{}, fmt.Errorf("%v: %w", colour, errors.ErrNoKing)
	}
	return Base{board: board.Copy(), colour: colour, king: king}, nil
}

// Colour returns the analyzed side.
func (b *Base) Colour() chess.Colour {
	return b.colour
}

// MobilityMap returns the analyzed side's mobility map.
func (b *Base) MobilityMap() MobilityMap {
	return b.mobility.get(func() MobilityMap {
		return buildMobility(b.board, b.colour, b.king)
	})
}

// mobilityCounts returns the sorted destination counts of colour's pieces
// of kind.
func (b *Base) mobilityCounts(kind chess.Piece) []int {
	mobility := b.MobilityMap()
	counts := []int{}
	for _, sq := range b.board.Pieces(kind, b.colour) {
		counts = append(counts, len(mobility[sq]))
	}
	slices.Sort(counts)
	return counts
}

// piecesConnected reports whether the analyzed side's pieces of kind attack
// more than one square holding a piece of the same kind.
func (b *Base) piecesConnected(kind chess.Piece) bool {
	own := b.board.PieceSet(kind, b.colour)
	var attacked chess.SquareSet
	for _, sq := range own.Squares() {
		attacked |= engine.AttacksFrom(b.board, sq)
	}
	return (attacked & own).Len() > 1
}

// piecesCentrality returns the sorted centrality of colour's pieces of kind.
func (b *Base) piecesCentrality(kind chess.Piece) []int {
	scores := []int{}
	for _, sq := range b.board.Pieces(kind, b.colour) {
		scores = append(scores, Centrality(sq))
	}
	slices.Sort(scores)
	return scores
}

// Centrality scores a square 0-3: 3 minus its distance to the nearest edge,
// so edge squares score 3 and the four central squares 0.
func Centrality(sq chess.Square) int {
	rank, file := sq.Rank(), sq.File()
	edge := min(7-rank, rank, 7-file, file)
	return 3 - edge
}
