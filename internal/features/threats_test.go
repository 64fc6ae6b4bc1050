package features

import (
	"testing"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/testutil"
)

func threats(checks, checkmates, stalemates pieceVector) [ThreatsSize]int {
	var v [ThreatsSize]int
	copy(v[checksOffset:], checks[:])
	copy(v[checkmatesOffset:], checkmates[:])
	copy(v[stalematesOffset:], stalemates[:])
	return v
}

func TestThreatsVector(t *testing.T) {
	none := [ThreatsSize]int{}

	tests := []struct {
		name  string
		fen   string
		white [ThreatsSize]int
		black [ThreatsSize]int
	}{
		{"start", startFEN, none, none},
		{
			"side to move in check",
			"r3k1n1/pppp1ppp/3n4/bq2p3/2b1P1r1/1QK5/P5PP/RNB2BNR w q - 0 19",
			none, none,
		},
		{
			"black checks",
			"r3k1n1/pppp1ppp/1b1n4/1q2p3/2b1P1r1/1QK5/P5PP/RNB2BNR w q - 0 19",
			none,
			threats(pieceVector{0, 1, 2, 1, 3, 0}, pieceVector{}, pieceVector{}),
		},
		{
			"queen mates",
			"1Qn1k1n1/1ppp1ppp/1b6/3qpK2/2b1P1r1/8/P5PP/RNB2BNR w - - 0 19",
			threats(pieceVector{0, 0, 0, 0, 1, 0}, pieceVector{}, pieceVector{}),
			threats(pieceVector{1, 2, 0, 2, 2, 0}, pieceVector{0, 0, 0, 0, 2, 0}, pieceVector{}),
		},
		{
			"pawn and knight mates",
			"1Qn1k1n1/1ppp1pp1/1b6/3qpK1p/2b1P1r1/8/P5PP/RNB2BNR w - - 0 19",
			threats(pieceVector{0, 0, 0, 0, 1, 0}, pieceVector{}, pieceVector{}),
			threats(pieceVector{1, 2, 0, 2, 2, 0}, pieceVector{1, 1, 0, 0, 2, 0}, pieceVector{}),
		},
		{
			"white queen mates",
			"1Qn1k1n1/1ppp1ppN/1b6/3qpK1p/2b1P1r1/B7/P5PP/R4BNR w - - 0 19",
			threats(pieceVector{0, 1, 0, 0, 1, 0}, pieceVector{0, 0, 0, 0, 1, 0}, pieceVector{}),
			threats(pieceVector{1, 2, 0, 2, 2, 0}, pieceVector{1, 1, 0, 0, 2, 0}, pieceVector{}),
		},
		{
			"bishop covers mating square",
			"1Qn1k1n1/1ppp1ppN/1b6/3qpK1p/2B1P1r1/B7/P5PP/R5NR w - - 0 19",
			threats(pieceVector{0, 1, 0, 0, 1, 0}, pieceVector{0, 0, 0, 0, 1, 0}, pieceVector{}),
			threats(pieceVector{1, 2, 0, 2, 2, 0}, pieceVector{1, 1, 0, 0, 1, 0}, pieceVector{}),
		},
		{
			"rook mate",
			"3k4/8/3K4/8/8/8/8/7R w - - 0 100",
			threats(pieceVector{0, 0, 0, 1, 0, 0}, pieceVector{0, 0, 0, 1, 0, 0}, pieceVector{}),
			none,
		},
		{
			"rook checks",
			"4k3/8/3K4/8/8/8/8/7R w - - 0 100",
			threats(pieceVector{0, 0, 0, 2, 0, 0}, pieceVector{}, pieceVector{}),
			none,
		},
		{
			"bishop supports rook mate",
			"4k3/8/3K4/8/8/8/B7/7R w - - 0 100",
			threats(pieceVector{0, 0, 1, 2, 0, 0}, pieceVector{0, 0, 0, 1, 0, 0}, pieceVector{}),
			none,
		},
		{
			"knight mates",
			"1rkr4/1nbn4/B7/5N2/8/8/2RK4/8 w - - 0 100",
			threats(pieceVector{0, 2, 1, 1, 0, 0}, pieceVector{0, 2, 0, 0, 0, 0}, pieceVector{}),
			threats(pieceVector{0, 5, 0, 0, 0, 0}, pieceVector{}, pieceVector{}),
		},
		{
			"discovered checks by king",
			"3K4/8/3k4/8/8/3q4/8/8 b - - 0 100",
			none,
			threats(pieceVector{0, 0, 0, 0, 0, 4}, pieceVector{}, pieceVector{}),
		},
		{
			"king stalemates",
			"8/8/3q4/8/3k4/8/3p4/3K4 b - - 0 100",
			none,
			threats(pieceVector{}, pieceVector{}, pieceVector{0, 0, 0, 0, 0, 1}),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.fen)
			testutil.AssertEqual(t, ThreatsVector(board, chess.White), tt.white, "ThreatsVector(White)")
			testutil.AssertEqual(t, ThreatsVector(board, chess.Black), tt.black, "ThreatsVector(Black)")

			bf := mustBoardFeatures(t, tt.fen, chess.White)
			testutil.AssertEqual(t, bf.ThreatsVector(), tt.white, "BoardFeatures.ThreatsVector(White)")
		})
	}
}

func TestThreatsVector_LeavesBoardUntouched(t *testing.T) {
	const fen = "4k3/8/3K4/8/8/8/B7/7R b - - 0 100"
	board := testutil.MustBoard(t, fen)
	before := *board

	ThreatsVector(board, chess.White)

	if *board != before {
		t.Errorf("ThreatsVector() modified the board")
	}
}
