// Package engine provides the chess rules queried by the feature analyzers:
// FEN parsing, attack maps, pins, move generation and game-end detection.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Trailing fields may be
// omitted; they default to white to move, no castling, no en passant, "0 1".
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank, file := 7, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if !chess.OnBoard(file, rank) {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.NewSquare(file, rank), piece, colour)
			file++
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement %q: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is
// kept only when king and rook still stand on their home squares.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling |= chess.WhiteKingside
		case 'Q':
			board.Castling |= chess.WhiteQueenside
		case 'k':
			board.Castling |= chess.BlackKingside
		case 'q':
			board.Castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	board.Castling = cleanCastlingRights(board)
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok || (sq.Rank() != 2 && sq.Rank() != 5) {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EPSquare.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if board.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, f := range []struct {
		right  chess.CastlingRights
		letter byte
	}{
		{chess.WhiteKingside, 'K'},
		{chess.WhiteQueenside, 'Q'},
		{chess.BlackKingside, 'k'},
		{chess.BlackQueenside, 'q'},
	} {
		if board.Castling&f.right != 0 {
			sb.WriteByte(f.letter)
		}
	}
}
