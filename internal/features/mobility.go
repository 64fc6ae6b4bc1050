package features

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

// MobilityMap maps an origin square to the destinations reachable from it.
// Origins without moves are absent, except the king square which is always
// present.
type MobilityMap map[chess.Square][]chess.Square

// Total returns the number of destinations over all origins.
func (m MobilityMap) Total() int {
	total := 0
	for _, dests := range m {
		total += len(dests)
	}
	return total
}

// Origins returns the origin squares in ascending order.
func (m MobilityMap) Origins() []chess.Square {
	origins := maps.Keys(m)
	slices.Sort(origins)
	return origins
}

// ComputeMobility builds colour's mobility map for board. The turn is handed
// to colour if needed. Non-king pieces are generated with the king replaced
// by a pawn of the same colour, so pins and checks do not restrict them;
// king moves are the real legal king moves, castling included.
func ComputeMobility(board *chess.Board, colour chess.Colour) (MobilityMap, error) {
	base, err := newBase(board, colour)
	if err != nil {
		return nil, err
	}
	return base.MobilityMap(), nil
}

func buildMobility(board *chess.Board, colour chess.Colour, king chess.Square) MobilityMap {
	normalized := withTurn(board, colour)

	substituted := normalized.Copy()
	substituted.Set(king, chess.Pawn, colour)

	mobility := make(MobilityMap)
	for _, m := range engine.LegalMoves(substituted) {
		if m.From == king {
			continue
		}
		mobility[m.From] = append(mobility[m.From], m.To)
	}

	kingMoves := []chess.Square{}
	for _, m := range engine.PieceMoves(normalized, king) {
		kingMoves = append(kingMoves, m.To)
	}
	mobility[king] = kingMoves
	return mobility
}

// withTurn returns a copy of board with colour to move. Handing over the
// turn drops the en passant square, which belongs to the other side.
func withTurn(board *chess.Board, colour chess.Colour) *chess.Board {
	normalized := board.Copy()
	if normalized.ToMove != colour {
		normalized.ToMove = colour
		normalized.ClearEnPassant()
	}
	return normalized
}
