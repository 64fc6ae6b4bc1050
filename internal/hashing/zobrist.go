package hashing

import "github.com/lgbarn/chess-features/internal/chess"

// Zobrist keys. Pieces are indexed by their coloured value, which is below 64.
var (
	pieceKeys     [64][chess.NumSquares]uint64
	toMoveKey     uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for _, kind := range chess.PieceKinds {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			piece := chess.MakeColouredPiece(colour, kind)
			for sq := range pieceKeys[piece] {
				pieceKeys[piece][sq] = next()
			}
		}
	}
	toMoveKey = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// GenerateZobristHash hashes the parts of a position that feature extraction
// depends on: placement, side to move, castling rights and the en passant
// file. Move clocks are ignored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq, piece := range board.Squares {
		if piece != chess.Empty {
			hash ^= pieceKeys[piece][sq]
		}
	}
	if board.ToMove == chess.White {
		hash ^= toMoveKey
	}
	hash ^= castlingKeys[board.Castling&chess.AllCastling]
	if board.EnPassant && board.EPSquare.Valid() {
		hash ^= enPassantKeys[board.EPSquare.File()]
	}
	return hash
}

// WeakHash is a cheap order-independent checksum of piece placement used to
// confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for sq, piece := range board.Squares {
		if piece != chess.Empty {
			sum += uint32(piece) * uint32(sq+1)
		}
	}
	return sum
}
