package chess

// MoveClass categorises a move by how it changes the board.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingMove
	KingsideCastle
	QueensideCastle
)

// Move is a single move from one square to another.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	Class MoveClass
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// String returns the move in UCI long algebraic notation (e7e8q).
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}
