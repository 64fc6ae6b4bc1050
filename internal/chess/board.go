package chess

// Board represents a position: piece placement plus the state needed to
// generate moves from it.
type Board struct {
	// Coloured pieces indexed by Square; Empty for vacant squares.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Remaining castling options.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the
	// square on which this can be made.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		EPSquare:   NoSquare,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[NewSquare(file, 0)] = W(backRank[file])
		b.Squares[NewSquare(file, 1)] = W(Pawn)
		b.Squares[NewSquare(file, 6)] = B(Pawn)
		b.Squares[NewSquare(file, 7)] = B(backRank[file])
	}

	b.Castling = AllCastling
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = NoSquare
	b.HalfmoveClock = 0
}

// Get returns the coloured piece on sq (Empty if vacant).
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq]
}

// PieceAt returns the kind and colour of the piece on sq; ok is false for
// an empty square.
func (b *Board) PieceAt(sq Square) (piece Piece, colour Colour, ok bool) {
	p := b.Squares[sq]
	if p == Empty {
		return Empty, Black, false
	}
	return ExtractPiece(p), ExtractColour(p), true
}

// Set places a piece of the given kind and colour on sq.
func (b *Board) Set(sq Square, piece Piece, colour Colour) {
	b.Squares[sq] = MakeColouredPiece(colour, piece)
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	b.Squares[sq] = Empty
}

// Pieces returns the squares holding pieces of kind and colour, ascending.
func (b *Board) Pieces(kind Piece, colour Colour) []Square {
	want := MakeColouredPiece(colour, kind)
	var squares []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == want {
			squares = append(squares, sq)
		}
	}
	return squares
}

// PieceSet returns the pieces of kind and colour as a mask.
func (b *Board) PieceSet(kind Piece, colour Colour) SquareSet {
	want := MakeColouredPiece(colour, kind)
	var set SquareSet
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == want {
			set = set.Add(sq)
		}
	}
	return set
}

// Occupied returns every square holding a piece of colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var set SquareSet
	for sq, p := range b.Squares {
		if p != Empty && ExtractColour(p) == colour {
			set = set.Add(Square(sq))
		}
	}
	return set
}

// Occupancy returns every occupied square.
func (b *Board) Occupancy() SquareSet {
	var set SquareSet
	for sq, p := range b.Squares {
		if p != Empty {
			set = set.Add(Square(sq))
		}
	}
	return set
}

// King returns the square of colour's king. With several kings (only
// possible on hand-built boards) the lowest square wins.
func (b *Board) King(colour Colour) (Square, bool) {
	want := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == want {
			return sq, true
		}
	}
	return NoSquare, false
}

// HasCastlingRights reports whether colour keeps either castling option.
func (b *Board) HasCastlingRights(colour Colour) bool {
	kingside, queenside := b.Castling.For(colour)
	return kingside || queenside
}

// ClearEnPassant drops any en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = NoSquare
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Mirror returns a copy reflected vertically with colours swapped, so that
// White's view of the result equals Black's view of b.
func (b *Board) Mirror() *Board {
	m := b.Copy()
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.Squares[sq.Mirror()]
		if p == Empty {
			m.Squares[sq] = Empty
			continue
		}
		m.Squares[sq] = MakeColouredPiece(ExtractColour(p).Opposite(), ExtractPiece(p))
	}
	m.ToMove = b.ToMove.Opposite()

	var castling CastlingRights
	if b.Castling&WhiteKingside != 0 {
		castling |= BlackKingside
	}
	if b.Castling&WhiteQueenside != 0 {
		castling |= BlackQueenside
	}
	if b.Castling&BlackKingside != 0 {
		castling |= WhiteKingside
	}
	if b.Castling&BlackQueenside != 0 {
		castling |= WhiteQueenside
	}
	m.Castling = castling

	if b.EnPassant {
		m.EPSquare = b.EPSquare.Mirror()
	}
	return m
}
