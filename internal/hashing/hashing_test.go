package hashing

import (
	"testing"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()
	board2 := mustBoard(t, engine.InitialFEN)

	if h1, h2 := GenerateZobristHash(board1), GenerateZobristHash(board2); h1 != h2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", h1, h2)
	}
	if w1, w2 := WeakHash(board1), WeakHash(board2); w1 != w2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", w1, w2)
	}
}

func TestZobristHash_Components(t *testing.T) {
	base := "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
	tests := []struct {
		name string
		fen  string
		same bool
	}{
		{"identical", base, true},
		{"clocks ignored", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 7 40", true},
		{"side to move", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR b KQkq e6 0 3", false},
		{"castling rights", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w Kkq e6 0 3", false},
		{"en passant", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 3", false},
		{"placement", "rnbqkbnr/pppp1ppp/8/4pP2/8/5N2/PPPPP1PP/RNBQKB1R w KQkq e6 0 3", false},
	}

	want := GenerateZobristHash(mustBoard(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateZobristHash(mustBoard(t, tt.fen))
			if (got == want) != tt.same {
				t.Errorf("GenerateZobristHash(%q) equal to base = %v, want %v", tt.fen, got == want, tt.same)
			}
		})
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(0)
	start := Signature(mustBoard(t, engine.InitialFEN))
	other := Signature(mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))

	if detector.CheckAndAdd(start) {
		t.Error("First position was marked as duplicate")
	}
	if !detector.CheckAndAdd(start) {
		t.Error("Duplicate position was not detected")
	}
	if detector.CheckAndAdd(other) {
		t.Error("Different position was marked as duplicate")
	}

	if got := detector.DuplicateCount(); got != 1 {
		t.Errorf("DuplicateCount() = %d, want 1", got)
	}
	if got := detector.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}
}

func TestDuplicateDetector_WeakHashMismatch(t *testing.T) {
	detector := NewDuplicateDetector(0)
	sig := PositionSignature{Hash: 42, WeakHash: 1}
	collision := PositionSignature{Hash: 42, WeakHash: 2}

	detector.CheckAndAdd(sig)
	if detector.CheckAndAdd(collision) {
		t.Error("Zobrist collision with different weak hash was reported duplicate")
	}
	if got := detector.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(2)
	sigs := []PositionSignature{{Hash: 1}, {Hash: 2}, {Hash: 3}}

	for _, sig := range sigs {
		if detector.CheckAndAdd(sig) {
			t.Errorf("CheckAndAdd(%v) = true on first sight", sig)
		}
	}
	if !detector.IsFull() {
		t.Error("IsFull() = false, want true")
	}
	if got := detector.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}
	if !detector.CheckAndAdd(sigs[0]) {
		t.Error("remembered position not detected after filling")
	}
	if detector.CheckAndAdd(sigs[2]) {
		t.Error("position seen after filling should not be remembered")
	}

	if NewDuplicateDetector(0).IsFull() {
		t.Error("unlimited detector reports full")
	}
}
