package features

import (
	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

// ThreatsSize is the length of a threats vector: checks, checkmates and
// stalemates, each indexed by the moving piece kind.
const ThreatsSize = 3 * chess.NumPieceKinds

const (
	checksOffset     = 0
	checkmatesOffset = chess.NumPieceKinds
	stalematesOffset = 2 * chess.NumPieceKinds
)

// ThreatsVector plays every legal move of colour and counts, by moving
// piece kind, those that give check, checkmate or stalemate. If colour is
// not to move the turn is handed over, unless the side to move is in check,
// in which case the vector is all zeros.
func ThreatsVector(board *chess.Board, colour chess.Colour) [ThreatsSize]int {
	var threats [ThreatsSize]int
	if board.ToMove != colour && engine.IsCheck(board) {
		return threats
	}

	position := withTurn(board, colour)
	for _, m := range engine.LegalMoves(position) {
		kind, _, _ := position.PieceAt(m.From)
		next := engine.Push(position, m)
		i := kind.Index()
		if engine.IsCheck(next) {
			threats[checksOffset+i]++
		}
		if engine.IsCheckmate(next) {
			threats[checkmatesOffset+i]++
		}
		if engine.IsStalemate(next) {
			threats[stalematesOffset+i]++
		}
	}
	return threats
}
