package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrNoKing", ErrNoKing},
		{"ErrUnknownFormat", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("extracting features: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:    ErrNoKing,
				File:   "games.pgn",
				Record: 5,
				Ply:    12,
				Colour: "Black",
				FEN:    "8/8/8/8/8/8/8/4K3 w - - 0 1",
			},
			contains: []string{"games.pgn", "record 5", "ply 12", "Black", "8/8/8", "no king"},
		},
		{
			name: "minimal context",
			err:  &PositionError{Err: ErrInvalidFEN, Record: 1},
			want: "record 1: invalid FEN string",
		},
		{
			name: "error only",
			err:  &PositionError{Err: ErrInvalidFEN},
			want: "invalid FEN string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("PositionError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{Err: ErrNoKing, Record: 3, Colour: "White"}
	wrapped := fmt.Errorf("processing failed: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Record != 3 {
		t.Errorf("extracted.Record = %d, want 3", extracted.Record)
	}
	if !errors.Is(wrapped, ErrNoKing) {
		t.Error("errors.Is(wrapped, ErrNoKing) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "full location",
			err: &ParseError{
				Err:      ErrParseFailure,
				File:     "positions.fen",
				Line:     100,
				Column:   15,
				Expected: "centipawn value",
				Got:      "text",
			},
			want: "positions.fen:100:15: expected centipawn value, got text: parse failure",
		},
		{
			name: "line only",
			err:  &ParseError{Err: ErrInvalidFEN, File: "a.fen", Line: 2},
			want: "a.fen:2: invalid FEN string",
		},
		{
			name: "pgn game",
			err:  &ParseError{Err: fmt.Errorf("%w: bad move", ErrParseFailure), File: "games.pgn", Game: 3},
			want: "games.pgn game 3: parse failure: bad move",
		},
		{
			name: "game without file",
			err:  &ParseError{Err: ErrParseFailure, Game: 1},
			want: "game 1: parse failure",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidFEN, File: "positions.fen", Line: 1}
	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
