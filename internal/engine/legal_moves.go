package engine

import "github.com/lgbarn/chess-features/internal/chess"

// promotionPieces are the pieces a pawn may promote to, in generation order.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMoves returns the moves of the side to move that obey piece
// movement rules, ignoring whether they leave the own king in check.
// Castling is included only when it is fully legal.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	own := board.Occupied(colour)
	occupied := board.Occupancy()
	moves := make([]chess.Move, 0, 48)

	for _, from := range own.Squares() {
		piece := chess.ExtractPiece(board.Get(from))
		switch piece {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, from, colour, occupied)
		case chess.King:
			for _, to := range (kingAttacks[from] &^ own).Squares() {
				moves = append(moves, chess.Move{From: from, To: to, Class: chess.KingMove})
			}
		default:
			targets := pieceAttacks(piece, colour, from, occupied) &^ own
			for _, to := range targets.Squares() {
				moves = append(moves, chess.Move{From: from, To: to, Class: chess.PieceMove})
			}
		}
	}

	return appendCastlingMoves(moves, board)
}

// appendPawnMoves adds pushes, captures, promotions and en passant for the
// pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, occupied chess.SquareSet) []chess.Move {
	dir := chess.ColourOffset(colour)
	enemy := board.Occupied(colour.Opposite())

	var targets chess.SquareSet
	if one, ok := from.Offset(0, dir); ok && !occupied.Has(one) {
		targets = targets.Add(one)
		if two, ok := one.Offset(0, dir); ok && from.Rank() == pawnStartRank(colour) && !occupied.Has(two) {
			targets = targets.Add(two)
		}
	}
	targets |= pawnAttacks[colour][from] & enemy

	for _, to := range targets.Squares() {
		if to.Rank() == promotionRank(colour) {
			for _, promoted := range promotionPieces {
				moves = append(moves, chess.Move{From: from, To: to, Promotion: promoted, Class: chess.PawnMoveWithPromotion})
			}
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Class: chess.PawnMove})
	}

	if canCaptureEnPassant(board, from, colour, occupied) {
		moves = append(moves, chess.Move{From: from, To: board.EPSquare, Class: chess.EnPassantPawnMove})
	}
	return moves
}

// canCaptureEnPassant checks the en passant target is reachable by the pawn
// on from and that an enemy pawn stands behind it.
func canCaptureEnPassant(board *chess.Board, from chess.Square, colour chess.Colour, occupied chess.SquareSet) bool {
	if !board.EnPassant || !board.EPSquare.Valid() {
		return false
	}
	ep := board.EPSquare
	if occupied.Has(ep) || !pawnAttacks[colour][from].Has(ep) {
		return false
	}
	victim, ok := ep.Offset(0, -chess.ColourOffset(colour))
	return ok && board.Get(victim) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
}

func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// LegalMoves returns the legal moves of the side to move. When that side has
// no king there is nothing to leave in check, so every pseudo-legal move is
// legal.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	colour := board.ToMove
	if _, ok := board.King(colour); !ok {
		return pseudo
	}

	legal := pseudo[:0]
	for _, m := range pseudo {
		if m.IsCastle() || leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe plays m on a copy and checks the mover's king.
func leavesKingSafe(board *chess.Board, m chess.Move) bool {
	testBoard := board.Copy()
	colour := testBoard.ToMove
	ApplyMove(testBoard, m)
	return !IsInCheck(testBoard, colour)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	pseudo := PseudoLegalMoves(board)
	if _, ok := board.King(board.ToMove); !ok {
		return len(pseudo) > 0
	}
	for _, m := range pseudo {
		if m.IsCastle() || leavesKingSafe(board, m) {
			return true
		}
	}
	return false
}

// PieceMoves returns the legal moves starting on from.
func PieceMoves(board *chess.Board, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range LegalMoves(board) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}
