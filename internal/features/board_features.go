package features

import (
	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

// fianchetto lists the squares of one fianchetto setup from White's side.
type fianchetto struct {
	bishop, edgePawn, pushedPawn chess.Square
}

var (
	queenFianchetto = fianchetto{bishop: 9, edgePawn: 8, pushedPawn: 17}
	kingFianchetto  = fianchetto{bishop: 14, edgePawn: 15, pushedPawn: 22}
)

// BoardFeatures holds material, mobility and threat aggregates for one side.
type BoardFeatures struct {
	Base

	threats    memo[[ThreatsSize]int]
	legalMoves memo[int]
}

// NewBoardFeatures returns a board aggregate analyzer for colour.
func NewBoardFeatures(board *chess.Board, colour chess.Colour) (*BoardFeatures, error) {
	base, err := newBase(board, colour)
	if err != nil {
		return nil, err
	}
	return &BoardFeatures{Base: base}, nil
}

// FianchettoQueen reports a bishop on b2 (b7) backed by pawns on a2 and b3
// (a7 and b6).
func (f *BoardFeatures) FianchettoQueen() bool {
	return f.hasFianchetto(queenFianchetto)
}

// FianchettoKing reports a bishop on g2 (g7) backed by pawns on h2 and g3
// (h7 and g6).
func (f *BoardFeatures) FianchettoKing() bool {
	return f.hasFianchetto(kingFianchetto)
}

func (f *BoardFeatures) hasFianchetto(setup fianchetto) bool {
	bishop, edgePawn, pushedPawn := setup.bishop, setup.edgePawn, setup.pushedPawn
	if f.colour == chess.Black {
		bishop, edgePawn, pushedPawn = bishop.Mirror(), edgePawn.Mirror(), pushedPawn.Mirror()
	}
	return f.owns(bishop, chess.Bishop) && f.owns(edgePawn, chess.Pawn) && f.owns(pushedPawn, chess.Pawn)
}

func (f *BoardFeatures) owns(sq chess.Square, kind chess.Piece) bool {
	return f.board.Get(sq) == chess.MakeColouredPiece(f.colour, kind)
}

// Connectivity sums, over our pieces, the number of our pieces each attacks.
func (f *BoardFeatures) Connectivity() int {
	ours := f.board.Occupied(f.colour)
	total := 0
	for _, sq := range ours.Squares() {
		total += (engine.AttacksFrom(f.board, sq) & ours).Len()
	}
	return total
}

// MaterialVectorCount returns our piece counts by kind.
func (f *BoardFeatures) MaterialVectorCount() [chess.NumPieceKinds]int {
	var counts [chess.NumPieceKinds]int
	for _, kind := range chess.PieceKinds {
		counts[kind.Index()] = f.board.PieceSet(kind, f.colour).Len()
	}
	return counts
}

// ConnectedRooks reports our rooks defending one another.
func (f *BoardFeatures) ConnectedRooks() bool {
	return f.piecesConnected(chess.Rook)
}

// ConnectedKnights reports our knights defending one another.
func (f *BoardFeatures) ConnectedKnights() bool {
	return f.piecesConnected(chess.Knight)
}

// BishopPair reports more than one bishop.
func (f *BoardFeatures) BishopPair() bool {
	return len(f.BishopsMobility()) > 1
}

// BishopsMobility returns the sorted move counts of our bishops.
func (f *BoardFeatures) BishopsMobility() []int {
	return f.mobilityCounts(chess.Bishop)
}

// KnightsMobility returns the sorted move counts of our knights.
func (f *BoardFeatures) KnightsMobility() []int {
	return f.mobilityCounts(chess.Knight)
}

// RooksMobility returns the sorted move counts of our rooks.
func (f *BoardFeatures) RooksMobility() []int {
	return f.mobilityCounts(chess.Rook)
}

// QueensMobility returns the sorted move counts of our queens.
func (f *BoardFeatures) QueensMobility() []int {
	return f.mobilityCounts(chess.Queen)
}

// PawnMobilitySum counts every pawn destination, promotions once per piece.
func (f *BoardFeatures) PawnMobilitySum() int {
	mobility := f.MobilityMap()
	sum := 0
	for _, sq := range mobility.Origins() {
		if chess.ExtractPiece(f.board.Get(sq)) == chess.Pawn {
			sum += len(mobility[sq])
		}
	}
	return sum
}

// KnightsCentrality returns the sorted centrality of our knights.
func (f *BoardFeatures) KnightsCentrality() []int {
	return f.piecesCentrality(chess.Knight)
}

// BishopsCentrality returns the sorted centrality of our bishops.
func (f *BoardFeatures) BishopsCentrality() []int {
	return f.piecesCentrality(chess.Bishop)
}

// QueensCentrality returns the sorted centrality of our queens.
func (f *BoardFeatures) QueensCentrality() []int {
	return f.piecesCentrality(chess.Queen)
}

// OpenFilesRooksCount counts our rooks on files without pawns of either
// colour.
func (f *BoardFeatures) OpenFilesRooksCount() int {
	var pawnFiles [chess.BoardSize]bool
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range f.board.Pieces(chess.Pawn, colour) {
			pawnFiles[sq.File()] = true
		}
	}
	count := 0
	for _, sq := range f.board.Pieces(chess.Rook, f.colour) {
		if !pawnFiles[sq.File()] {
			count++
		}
	}
	return count
}

// PinsVector counts our pieces pinned to our king, by kind.
func (f *BoardFeatures) PinsVector() [chess.NumPieceKinds]int {
	var pins [chess.NumPieceKinds]int
	for _, sq := range f.board.Occupied(f.colour).Squares() {
		if engine.IsPinned(f.board, f.colour, sq) {
			pins[chess.ExtractPiece(f.board.Get(sq)).Index()]++
		}
	}
	return pins
}

// LegalMovesCount returns the number of legal moves of the side actually to
// move, whichever colour is analyzed.
func (f *BoardFeatures) LegalMovesCount() int {
	return f.legalMoves.get(func() int {
		return len(engine.LegalMoves(f.board))
	})
}

// ThreatsVector returns the memoized ThreatsVector of the analyzed side.
func (f *BoardFeatures) ThreatsVector() [ThreatsSize]int {
	return f.threats.get(func() [ThreatsSize]int {
		return ThreatsVector(f.board, f.colour)
	})
}

// OurPiecesCount counts the analyzed side's pieces, king included.
func (f *BoardFeatures) OurPiecesCount() int {
	return f.board.Occupied(f.colour).Len()
}

// TheirPiecesCount counts the opponent's pieces, king included.
func (f *BoardFeatures) TheirPiecesCount() int {
	return f.board.Occupied(f.colour.Opposite()).Len()
}

// AllPiecesCount counts every piece on the board.
func (f *BoardFeatures) AllPiecesCount() int {
	return f.OurPiecesCount() + f.TheirPiecesCount()
}
