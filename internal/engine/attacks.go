package engine

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-features/internal/chess"
)

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Leaper attack tables, indexed by square (and colour for pawns).
var (
	knightAttacks [chess.NumSquares]chess.SquareSet
	kingAttacks   [chess.NumSquares]chess.SquareSet
	pawnAttacks   [2][chess.NumSquares]chess.SquareSet
)

func init() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		knightAttacks[sq] = offsetSet(sq, knightOffsets)
		kingAttacks[sq] = offsetSet(sq, kingOffsets)
		pawnAttacks[chess.White][sq] = offsetSet(sq, [][2]int{{-1, 1}, {1, 1}})
		pawnAttacks[chess.Black][sq] = offsetSet(sq, [][2]int{{-1, -1}, {1, -1}})
	}
}

// offsetSet collects the on-board squares reached by (file, rank) offsets.
func offsetSet(sq chess.Square, offsets [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, o := range offsets {
		if to, ok := sq.Offset(o[0], o[1]); ok {
			set = set.Add(to)
		}
	}
	return set
}

// rookRays returns the rook attack set from sq; the first blocker in each
// direction is included whatever its colour.
func rookRays(sq chess.Square, occupied chess.SquareSet) chess.SquareSet {
	return chess.SquareSet(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occupied)))
}

// bishopRays is the diagonal counterpart of rookRays.
func bishopRays(sq chess.Square, occupied chess.SquareSet) chess.SquareSet {
	return chess.SquareSet(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occupied)))
}

// AttacksFrom returns the squares attacked by the piece on sq, including
// squares occupied by either side. An empty square attacks nothing.
func AttacksFrom(board *chess.Board, sq chess.Square) chess.SquareSet {
	piece, colour, ok := board.PieceAt(sq)
	if !ok {
		return 0
	}
	return pieceAttacks(piece, colour, sq, board.Occupancy())
}

// pieceAttacks returns the attack set of a piece standing on sq.
func pieceAttacks(piece chess.Piece, colour chess.Colour, sq chess.Square, occupied chess.SquareSet) chess.SquareSet {
	switch piece {
	case chess.Pawn:
		return pawnAttacks[colour][sq]
	case chess.Knight:
		return knightAttacks[sq]
	case chess.King:
		return kingAttacks[sq]
	case chess.Bishop:
		return bishopRays(sq, occupied)
	case chess.Rook:
		return rookRays(sq, occupied)
	case chess.Queen:
		return bishopRays(sq, occupied) | rookRays(sq, occupied)
	}
	return 0
}

// Attackers returns the squares of colour's pieces that attack sq. Pins are
// ignored and the occupant of sq does not matter.
func Attackers(board *chess.Board, colour chess.Colour, sq chess.Square) chess.SquareSet {
	return attackersWithOccupancy(board, colour, sq, board.Occupancy())
}

// attackersWithOccupancy is Attackers against an explicit occupancy mask,
// letting callers look through a piece that is about to move.
func attackersWithOccupancy(board *chess.Board, colour chess.Colour, sq chess.Square, occupied chess.SquareSet) chess.SquareSet {
	var attackers chess.SquareSet

	attackers |= pawnAttacks[colour.Opposite()][sq] & board.PieceSet(chess.Pawn, colour)
	attackers |= knightAttacks[sq] & board.PieceSet(chess.Knight, colour)
	attackers |= kingAttacks[sq] & board.PieceSet(chess.King, colour)

	queens := board.PieceSet(chess.Queen, colour)
	attackers |= bishopRays(sq, occupied) & (board.PieceSet(chess.Bishop, colour) | queens)
	attackers |= rookRays(sq, occupied) & (board.PieceSet(chess.Rook, colour) | queens)

	return attackers & occupied
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return Attackers(board, byColour, sq) != 0
}

// between returns the squares strictly between a and b when they share a
// rank, file or diagonal; otherwise the empty set.
func between(a, b chess.Square) chess.SquareSet {
	df := sign(b.File() - a.File())
	dr := sign(b.Rank() - a.Rank())
	fileDist := abs(b.File() - a.File())
	rankDist := abs(b.Rank() - a.Rank())
	if a == b || (fileDist != 0 && rankDist != 0 && fileDist != rankDist) {
		return 0
	}

	var set chess.SquareSet
	for sq, ok := a.Offset(df, dr); ok && sq != b; sq, ok = sq.Offset(df, dr) {
		set = set.Add(sq)
	}
	return set
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign maps x to -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
