// Package chess provides core chess types and operations.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return Black, false
}

// Piece represents a chess piece type. Coloured pieces on a board are
// encoded with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// NumPieceKinds is the length of every per-piece vector.
const NumPieceKinds = 6

// PieceKinds lists the piece types in vector order.
var PieceKinds = [NumPieceKinds]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// Index returns the slot of a piece type in a per-piece vector (Pawn = 0 .. King = 5).
func (p Piece) Index() int {
	return int(p - Pawn)
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// CastlingRights is a bit set of the four standard castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// For returns the kingside and queenside flags belonging to colour.
func (cr CastlingRights) For(colour Colour) (kingside, queenside bool) {
	if colour == White {
		return cr&WhiteKingside != 0, cr&WhiteQueenside != 0
	}
	return cr&BlackKingside != 0, cr&BlackQueenside != 0
}
