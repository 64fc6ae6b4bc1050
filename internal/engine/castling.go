package engine

import "github.com/lgbarn/chess-features/internal/chess"

// castlingOption describes one of the four standard castles.
type castlingOption struct {
	right    chess.CastlingRights
	colour   chess.Colour
	class    chess.MoveClass
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

var castlingOptions = []castlingOption{
	{chess.WhiteKingside, chess.White, chess.KingsideCastle, 4, 6, 7, 5},
	{chess.WhiteQueenside, chess.White, chess.QueensideCastle, 4, 2, 0, 3},
	{chess.BlackKingside, chess.Black, chess.KingsideCastle, 60, 62, 63, 61},
	{chess.BlackQueenside, chess.Black, chess.QueensideCastle, 60, 58, 56, 59},
}

// findCastlingOption returns colour's castle of the given class.
func findCastlingOption(colour chess.Colour, class chess.MoveClass) (castlingOption, bool) {
	for _, opt := range castlingOptions {
		if opt.colour == colour && opt.class == class {
			return opt, true
		}
	}
	return castlingOption{}, false
}

// appendCastlingMoves adds the castles available to the side to move: the
// right is held, king and rook are home, the squares between them are empty
// and the king neither starts in, passes through nor lands in check.
func appendCastlingMoves(moves []chess.Move, board *chess.Board) []chess.Move {
	colour := board.ToMove
	occupied := board.Occupancy()
	for _, opt := range castlingOptions {
		if opt.colour != colour || board.Castling&opt.right == 0 {
			continue
		}
		if board.Get(opt.kingFrom) != chess.MakeColouredPiece(colour, chess.King) ||
			board.Get(opt.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		if between(opt.kingFrom, opt.rookFrom)&occupied != 0 {
			continue
		}
		kingPath := between(opt.kingFrom, opt.kingTo).Add(opt.kingFrom).Add(opt.kingTo)
		safe := true
		for _, sq := range kingPath.Squares() {
			if IsSquareAttacked(board, sq, colour.Opposite()) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, chess.Move{From: opt.kingFrom, To: opt.kingTo, Class: opt.class})
		}
	}
	return moves
}

// cleanCastlingRights drops rights whose king or rook is not on its home
// square.
func cleanCastlingRights(board *chess.Board) chess.CastlingRights {
	rights := board.Castling
	for _, opt := range castlingOptions {
		if board.Get(opt.kingFrom) != chess.MakeColouredPiece(opt.colour, chess.King) ||
			board.Get(opt.rookFrom) != chess.MakeColouredPiece(opt.colour, chess.Rook) {
			rights &^= opt.right
		}
	}
	return rights
}

// applyCastle moves king and rook for a castle by the side to move.
func applyCastle(board *chess.Board, class chess.MoveClass) {
	opt, ok := findCastlingOption(board.ToMove, class)
	if !ok {
		return
	}
	king := board.Get(opt.kingFrom)
	rook := board.Get(opt.rookFrom)
	board.Remove(opt.kingFrom)
	board.Remove(opt.rookFrom)
	board.Squares[opt.kingTo] = king
	board.Squares[opt.rookTo] = rook
}

// updateCastlingRights removes rights touched by a move: any move from or
// to a king or rook home square.
func updateCastlingRights(board *chess.Board, from, to chess.Square) {
	for _, opt := range castlingOptions {
		switch from {
		case opt.kingFrom, opt.rookFrom:
			board.Castling &^= opt.right
		}
		switch to {
		case opt.kingFrom, opt.rookFrom:
			board.Castling &^= opt.right
		}
	}
}
