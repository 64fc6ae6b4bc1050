package features

import "github.com/lgbarn/chess-features/internal/chess"

// Offset is a (rank, file) displacement from the king square.
type Offset struct {
	Rank, File int
}

// Ring1Offsets are the eight squares adjacent to the king.
var Ring1Offsets = []Offset{
	{1, 0}, {1, -1}, {1, 1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {0, -1},
}

// Ring2Offsets are the sixteen squares at Chebyshev distance two.
var Ring2Offsets = []Offset{
	{2, -2}, {2, -1}, {1, 2}, {2, 1}, {-2, -2}, {-2, -1}, {-1, -2}, {-2, 1},
	{2, 0}, {1, -2}, {-1, 2}, {-2, 0}, {0, 2}, {2, 2}, {-2, 2}, {0, -2},
}

// KingRing returns the squares at the given offsets from king that fall on
// the board.
func KingRing(king chess.Square, offsets []Offset) chess.SquareSet {
	var ring chess.SquareSet
	for _, o := range offsets {
		if sq, ok := king.Offset(o.File, o.Rank); ok {
			ring = ring.Add(sq)
		}
	}
	return ring
}

// RingFeatures counts what stands on and around a king ring. Every vector is
// indexed by piece kind.
type RingFeatures struct {
	AttackersLookingAt [chess.NumPieceKinds]int
	DefendersLookingAt [chess.NumPieceKinds]int
	AttackersAt        [chess.NumPieceKinds]int
	DefendersAt        [chess.NumPieceKinds]int
}
