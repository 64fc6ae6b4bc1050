package features

import (
	"github.com/lgbarn/chess-features/internal/chess"
)

// centralSquares are d4, e4, d5 and e5.
var centralSquares = chess.SquareSet(0).
	Add(chess.NewSquare(3, 3)).
	Add(chess.NewSquare(4, 3)).
	Add(chess.NewSquare(3, 4)).
	Add(chess.NewSquare(4, 4))

// PawnStructure describes one side's pawns.
type PawnStructure struct {
	Base

	pawnsAtFile [chess.BoardSize]int

	blocked memo[int]
	passed  memo[int]
	islands memo[int]
}

// NewPawnStructure returns a pawn structure analyzer for colour.
func NewPawnStructure(board *chess.Board, colour chess.Colour) (*PawnStructure, error) {
	base, err := newBase(board, colour)
	if err != nil {
		return nil, err
	}
	return newPawnStructure(base), nil
}

func newPawnStructure(base Base) *PawnStructure {
	ps := &PawnStructure{Base: base}
	for _, sq := range ps.board.Pieces(chess.Pawn, ps.colour) {
		ps.pawnsAtFile[sq.File()]++
	}
	return ps
}

// CentralPawns counts pawns on d4, e4, d5 and e5.
func (p *PawnStructure) CentralPawns() int {
	return (p.board.PieceSet(chess.Pawn, p.colour) & centralSquares).Len()
}

// PawnsAdvancements returns, per file, the highest rank holding one of our
// pawns, or -1 when the file has none. Ranks are absolute.
func (p *PawnStructure) PawnsAdvancements() [chess.BoardSize]int {
	var files [chess.BoardSize]int
	for i := range files {
		files[i] = -1
	}
	for _, sq := range p.board.Pieces(chess.Pawn, p.colour) {
		files[sq.File()] = max(files[sq.File()], sq.Rank())
	}
	return files
}

// BlockedPawns counts pawns that cannot move and have an enemy piece
// directly in front of them.
func (p *PawnStructure) BlockedPawns() int {
	return p.blocked.get(func() int {
		forward := 1
		if p.colour == chess.Black {
			forward = -1
		}
		mobility := p.MobilityMap()
		count := 0
		for _, sq := range p.board.Pieces(chess.Pawn, p.colour) {
			if _, ok := mobility[sq]; ok {
				continue
			}
			front, ok := sq.Offset(0, forward)
			if !ok {
				continue
			}
			if _, colour, occupied := p.board.PieceAt(front); occupied && colour != p.colour {
				count++
			}
		}
		return count
	})
}

// IsolatedPawns counts the pawns standing on files whose neighbouring files
// hold none of our pawns.
func (p *PawnStructure) IsolatedPawns() int {
	isolated := 0
	for file, n := range p.pawnsAtFile {
		if n == 0 {
			continue
		}
		if file > 0 && p.pawnsAtFile[file-1] > 0 {
			continue
		}
		if file < chess.BoardSize-1 && p.pawnsAtFile[file+1] > 0 {
			continue
		}
		isolated += n
	}
	return isolated
}

// DoublePawns counts files holding more than one of our pawns.
func (p *PawnStructure) DoublePawns() int {
	files := 0
	for _, n := range p.pawnsAtFile {
		if n > 1 {
			files++
		}
	}
	return files
}

// PassedPawns counts pawns with no enemy pawn ahead of them on their own or
// an adjacent file. Black is analyzed on the mirrored board so that forward
// is always towards higher ranks.
func (p *PawnStructure) PassedPawns() int {
	return p.passed.get(func() int {
		board := p.board
		if p.colour == chess.Black {
			board = board.Mirror()
		}
		// furthest[f] is the highest rank holding an enemy pawn on file f.
		var furthest [chess.BoardSize]int
		for i := range furthest {
			furthest[i] = -1
		}
		for _, sq := range board.Pieces(chess.Pawn, chess.Black) {
			furthest[sq.File()] = max(furthest[sq.File()], sq.Rank())
		}

		passed := 0
		for _, sq := range board.Pieces(chess.Pawn, chess.White) {
			blocked := false
			for file := sq.File() - 1; file <= sq.File()+1; file++ {
				if file >= 0 && file < chess.BoardSize && furthest[file] > sq.Rank() {
					blocked = true
					break
				}
			}
			if !blocked {
				passed++
			}
		}
		return passed
	})
}

// PawnIslands counts groups of our pawns connected by file, rank or
// diagonal adjacency.
func (p *PawnStructure) PawnIslands() int {
	return p.islands.get(func() int {
		return countIslands(p.board.PieceSet(chess.Pawn, p.colour))
	})
}
