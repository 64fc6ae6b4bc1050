package features

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
)

// ringCacheSize bounds the ring feature cache of one analyzer.
const ringCacheSize = 8

// KingSafety describes the neighbourhood of one side's king.
type KingSafety struct {
	Base

	rings *lru.Cache[chess.SquareSet, RingFeatures]

	checked memo[bool]
}

// NewKingSafety returns a king safety analyzer for colour.
func NewKingSafety(board *chess.Board, colour chess.Colour) (*KingSafety, error) {
	base, err := newBase(board, colour)
	if err != nil {
		return nil, err
	}
	return newKingSafety(base)
}

func newKingSafety(base Base) (*KingSafety, error) {
	rings, err := lru.New[chess.SquareSet, RingFeatures](ringCacheSize)
	if err != nil {
		return nil, err
	}
	return &KingSafety{Base: base, rings: rings}, nil
}

// Checked reports whether colour is to move and in check.
func (k *KingSafety) Checked() bool {
	return k.checked.get(func() bool {
		return k.board.ToMove == k.colour && engine.IsCheck(k.board)
	})
}

// CastlingRights reports whether colour may still castle on either side.
func (k *KingSafety) CastlingRights() bool {
	return k.board.HasCastlingRights(k.colour)
}

// AttackersLookingAtRing1 counts, by kind, enemy pieces attacking a square
// of the first ring.
func (k *KingSafety) AttackersLookingAtRing1() [chess.NumPieceKinds]int {
	return k.ring(Ring1Offsets).AttackersLookingAt
}

// AttackersAtRing1 counts, by kind, enemy pieces standing on the first ring.
func (k *KingSafety) AttackersAtRing1() [chess.NumPieceKinds]int {
	return k.ring(Ring1Offsets).AttackersAt
}

// DefendersAtRing1 counts, by kind, own pieces standing on the first ring.
func (k *KingSafety) DefendersAtRing1() [chess.NumPieceKinds]int {
	return k.ring(Ring1Offsets).DefendersAt
}

// DefendersLookingAtRing1 counts, by kind, own pieces defending a square of
// the first ring.
func (k *KingSafety) DefendersLookingAtRing1() [chess.NumPieceKinds]int {
	return k.ring(Ring1Offsets).DefendersLookingAt
}

// AttackersLookingAtRing2 is AttackersLookingAtRing1 for the second ring.
func (k *KingSafety) AttackersLookingAtRing2() [chess.NumPieceKinds]int {
	return k.ring(Ring2Offsets).AttackersLookingAt
}

// AttackersAtRing2 is AttackersAtRing1 for the second ring.
func (k *KingSafety) AttackersAtRing2() [chess.NumPieceKinds]int {
	return k.ring(Ring2Offsets).AttackersAt
}

// DefendersAtRing2 is DefendersAtRing1 for the second ring.
func (k *KingSafety) DefendersAtRing2() [chess.NumPieceKinds]int {
	return k.ring(Ring2Offsets).DefendersAt
}

// DefendersLookingAtRing2 is DefendersLookingAtRing1 for the second ring.
func (k *KingSafety) DefendersLookingAtRing2() [chess.NumPieceKinds]int {
	return k.ring(Ring2Offsets).DefendersLookingAt
}

// KingMobility returns the number of legal king moves, castling included.
func (k *KingSafety) KingMobility() int {
	return len(k.MobilityMap()[k.king])
}

// KingCentrality returns the centrality of the king square.
func (k *KingSafety) KingCentrality() int {
	return Centrality(k.king)
}

func (k *KingSafety) ring(offsets []Offset) RingFeatures {
	mask := KingRing(k.king, offsets)
	if features, ok := k.rings.Get(mask); ok {
		return features
	}
	features := k.ringFeatures(mask)
	k.rings.Add(mask, features)
	return features
}

// ringFeatures counts the pieces standing on ring and the pieces attacking
// it. A piece attacking several ring squares is counted once.
func (k *KingSafety) ringFeatures(ring chess.SquareSet) RingFeatures {
	var (
		features      RingFeatures
		attackersSeen chess.SquareSet
		defendersSeen chess.SquareSet
	)
	them := k.colour.Opposite()

	for _, sq := range ring.Squares() {
		if piece, colour, ok := k.board.PieceAt(sq); ok {
			if colour == k.colour {
				features.DefendersAt[piece.Index()]++
			} else {
				features.AttackersAt[piece.Index()]++
			}
		}

		for _, from := range engine.Attackers(k.board, them, sq).Squares() {
			if attackersSeen.Has(from) {
				continue
			}
			attackersSeen = attackersSeen.Add(from)
			piece, _, _ := k.board.PieceAt(from)
			features.AttackersLookingAt[piece.Index()]++
		}
		for _, from := range engine.Attackers(k.board, k.colour, sq).Squares() {
			if defendersSeen.Has(from) {
				continue
			}
			defendersSeen = defendersSeen.Add(from)
			piece, _, _ := k.board.PieceAt(from)
			features.DefendersLookingAt[piece.Index()]++
		}
	}
	return features
}
