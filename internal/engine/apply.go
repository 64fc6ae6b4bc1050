package engine

import "github.com/lgbarn/chess-features/internal/chess"

// ApplyMove plays m for the side to move, updating placement, castling
// rights, en passant, clocks and the turn. The move is assumed to come from
// PseudoLegalMoves or LegalMoves for this board.
func ApplyMove(board *chess.Board, m chess.Move) {
	colour := board.ToMove
	moving := board.Get(m.From)
	captured := board.Get(m.To)
	wasEnPassant := board.EnPassant

	board.ClearEnPassant()

	switch m.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, m.Class)
	case chess.EnPassantPawnMove:
		if wasEnPassant {
			if victim, ok := m.To.Offset(0, -chess.ColourOffset(colour)); ok {
				board.Remove(victim)
			}
		}
		board.Remove(m.From)
		board.Squares[m.To] = moving
	default:
		board.Remove(m.From)
		board.Squares[m.To] = moving
		if m.Promotion != chess.Empty {
			board.Set(m.To, m.Promotion, colour)
		}
	}

	updateCastlingRights(board, m.From, m.To)

	isPawn := chess.ExtractPiece(moving) == chess.Pawn
	if isPawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		board.EnPassant = true
		board.EPSquare = chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if isPawn || captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// Push returns a copy of board with m applied, leaving board untouched.
func Push(board *chess.Board, m chess.Move) *chess.Board {
	next := board.Copy()
	ApplyMove(next, m)
	return next
}
