package engine

import "github.com/lgbarn/chess-features/internal/chess"

// IsInCheck returns true if the given colour's king is in check. A side
// without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsCheck returns true if the side to move is in check.
func IsCheck(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove)
}

// IsPinned reports whether the piece on sq is absolutely pinned to colour's
// king by an enemy slider. Without a king nothing is pinned.
func IsPinned(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	king, ok := board.King(colour)
	if !ok || king == sq {
		return false
	}
	occupied := board.Occupancy()
	enemy := colour.Opposite()
	enemyQueens := board.PieceSet(chess.Queen, enemy)

	lines := []struct {
		rays    chess.SquareSet
		sliders chess.SquareSet
	}{
		{rookRays(king, 0), board.PieceSet(chess.Rook, enemy) | enemyQueens},
		{bishopRays(king, 0), board.PieceSet(chess.Bishop, enemy) | enemyQueens},
	}
	for _, line := range lines {
		if !line.rays.Has(sq) {
			continue
		}
		for _, sniper := range (line.rays & line.sliders).Squares() {
			path := between(king, sniper)
			if path.Has(sq) && path&occupied == chess.SquareSet(0).Add(sq) {
				return true
			}
		}
	}
	return false
}
