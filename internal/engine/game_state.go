package engine

import "github.com/lgbarn/chess-features/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsCheck(board) && !HasLegalMoves(board)
}
