package chess

import "math/bits"

// Square is a board index 0-63, rank-major: a1 = 0, h1 = 7, a8 = 56.
type Square int

// NoSquare marks an absent square (no en passant target, no king).
const NoSquare Square = -1

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if !OnBoard(file, rank) {
		return NoSquare, false
	}
	return NewSquare(file, rank), true
}

// OnBoard reports whether a 0-based file/rank pair is on the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// File returns the 0-based file (a = 0).
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the 0-based rank (rank 1 = 0).
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Offset returns the square shifted by df files and dr ranks, or false if
// that falls off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	file, rank := sq.File()+df, sq.Rank()+dr
	if !OnBoard(file, rank) {
		return NoSquare, false
	}
	return NewSquare(file, rank), true
}

// Mirror returns the square reflected across the horizontal midline (e2 <-> e7).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// String returns algebraic notation, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareSet is a 64-bit mask with bit n set for square n.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return s&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		squares = append(squares, Square(bits.TrailingZeros64(v)))
	}
	return squares
}
