package features

import (
	"fmt"

	"github.com/lgbarn/chess-features/internal/chess"
)

// FeatureVector is the complete description of a position from one side.
type FeatureVector struct {
	Colour chess.Colour `json:"-"`

	FianchettoQueen     bool                     `json:"fianchetto_queen"`
	FianchettoKing      bool                     `json:"fianchetto_king"`
	Connectivity        int                      `json:"connectivity"`
	MaterialVectorCount [chess.NumPieceKinds]int `json:"material_vector_count"`
	ConnectedRooks      bool                     `json:"connected_rooks"`
	ConnectedKnights    bool                     `json:"connected_knights"`
	BishopPair          bool                     `json:"bishop_pair"`
	BishopsMobility     []int                    `json:"bishops_mobility"`
	KnightsMobility     []int                    `json:"knights_mobility"`
	RooksMobility       []int                    `json:"rooks_mobility"`
	QueensMobility      []int                    `json:"queens_mobility"`
	PawnMobilitySum     int                      `json:"pawn_mobility_sum"`
	KnightsCentrality   []int                    `json:"knights_centrality"`
	BishopsCentrality   []int                    `json:"bishops_centrality"`
	QueensCentrality    []int                    `json:"queens_centrality"`
	OpenFilesRooksCount int                      `json:"open_files_rooks_count"`
	PinsVector          [chess.NumPieceKinds]int `json:"pins_vector"`
	LegalMovesCount     int                      `json:"legal_moves_count"`
	ThreatsVector       [ThreatsSize]int         `json:"threats_vector"`
	OurPiecesCount      int                      `json:"our_pieces_count"`
	TheirPiecesCount    int                      `json:"their_pieces_count"`
	AllPiecesCount      int                      `json:"all_pieces_count"`

	Checked                 bool                     `json:"checked"`
	CastlingRights          bool                     `json:"castling_rights"`
	AttackersLookingAtRing1 [chess.NumPieceKinds]int `json:"king_attackers_looking_at_ring_1"`
	AttackersAtRing1        [chess.NumPieceKinds]int `json:"king_attackers_at_ring_1"`
	DefendersAtRing1        [chess.NumPieceKinds]int `json:"king_defenders_at_ring_1"`
	DefendersLookingAtRing1 [chess.NumPieceKinds]int `json:"king_defenders_looking_at_ring_1"`
	AttackersLookingAtRing2 [chess.NumPieceKinds]int `json:"king_attackers_looking_at_ring_2"`
	AttackersAtRing2        [chess.NumPieceKinds]int `json:"king_attackers_at_ring_2"`
	DefendersAtRing2        [chess.NumPieceKinds]int `json:"king_defenders_at_ring_2"`
	DefendersLookingAtRing2 [chess.NumPieceKinds]int `json:"king_defenders_looking_at_ring_2"`
	KingMobility            int                      `json:"king_mobility"`
	KingCentrality          int                      `json:"king_centrality"`

	CentralPawns      int                  `json:"central_pawns"`
	PawnsAdvancements [chess.BoardSize]int `json:"pawns_advancements"`
	BlockedPawns      int                  `json:"blocked_pawns"`
	IsolatedPawns     int                  `json:"isolated_pawns"`
	DoublePawns       int                  `json:"double_pawns"`
	PassedPawns       int                  `json:"passed_pawns"`
	PawnIslands       int                  `json:"pawn_islands"`
}

// Extract computes the feature vector of board from colour's side. It fails
// with errors.ErrNoKing when colour has no king.
func Extract(board *chess.Board, colour chess.Colour) (*FeatureVector, error) {
	base, err := newBase(board, colour)
	if err != nil {
		return nil, fmt.Errorf("extracting features: %w", err)
	}
	// The analyzers share one board copy and one mobility map.
	base.MobilityMap()

	bf := &BoardFeatures{Base: base}
	ks, err := newKingSafety(base)
	if err != nil {
		return nil, err
	}
	ps := newPawnStructure(base)

	return &FeatureVector{
		Colour: colour,

		FianchettoQueen:     bf.FianchettoQueen(),
		FianchettoKing:      bf.FianchettoKing(),
		Connectivity:        bf.Connectivity(),
		MaterialVectorCount: bf.MaterialVectorCount(),
		ConnectedRooks:      bf.ConnectedRooks(),
		ConnectedKnights:    bf.ConnectedKnights(),
		BishopPair:          bf.BishopPair(),
		BishopsMobility:     bf.BishopsMobility(),
		KnightsMobility:     bf.KnightsMobility(),
		RooksMobility:       bf.RooksMobility(),
		QueensMobility:      bf.QueensMobility(),
		PawnMobilitySum:     bf.PawnMobilitySum(),
		KnightsCentrality:   bf.KnightsCentrality(),
		BishopsCentrality:   bf.BishopsCentrality(),
		QueensCentrality:    bf.QueensCentrality(),
		OpenFilesRooksCount: bf.OpenFilesRooksCount(),
		PinsVector:          bf.PinsVector(),
		LegalMovesCount:     bf.LegalMovesCount(),
		ThreatsVector:       bf.ThreatsVector(),
		OurPiecesCount:      bf.OurPiecesCount(),
		TheirPiecesCount:    bf.TheirPiecesCount(),
		AllPiecesCount:      bf.AllPiecesCount(),

		Checked:                 ks.Checked(),
		CastlingRights:          ks.CastlingRights(),
		AttackersLookingAtRing1: ks.AttackersLookingAtRing1(),
		AttackersAtRing1:        ks.AttackersAtRing1(),
		DefendersAtRing1:        ks.DefendersAtRing1(),
		DefendersLookingAtRing1: ks.DefendersLookingAtRing1(),
		AttackersLookingAtRing2: ks.AttackersLookingAtRing2(),
		AttackersAtRing2:        ks.AttackersAtRing2(),
		DefendersAtRing2:        ks.DefendersAtRing2(),
		DefendersLookingAtRing2: ks.DefendersLookingAtRing2(),
		KingMobility:            ks.KingMobility(),
		KingCentrality:          ks.KingCentrality(),

		CentralPawns:      ps.CentralPawns(),
		PawnsAdvancements: ps.PawnsAdvancements(),
		BlockedPawns:      ps.BlockedPawns(),
		IsolatedPawns:     ps.IsolatedPawns(),
		DoublePawns:       ps.DoublePawns(),
		PassedPawns:       ps.PassedPawns(),
		PawnIslands:       ps.PawnIslands(),
	}, nil
}

// Field is one named entry of a feature vector. Fixed fields always carry
// the same number of values; the others are per-piece lists whose length
// depends on the position.
type Field struct {
	Name   string
	Values []int
	Fixed  bool
}

// Fields returns the vector's entries in their canonical order. Booleans
// become 0 or 1.
func (v *FeatureVector) Fields() []Field {
	return []Field{
		scalar("fianchetto_queen", boolToInt(v.FianchettoQueen)),
		scalar("fianchetto_king", boolToInt(v.FianchettoKing)),
		scalar("connectivity", v.Connectivity),
		fixed("material_vector_count", v.MaterialVectorCount[:]),
		scalar("connected_rooks", boolToInt(v.ConnectedRooks)),
		scalar("connected_knights", boolToInt(v.ConnectedKnights)),
		scalar("bishop_pair", boolToInt(v.BishopPair)),
		list("bishops_mobility", v.BishopsMobility),
		list("knights_mobility", v.KnightsMobility),
		list("rooks_mobility", v.RooksMobility),
		list("queens_mobility", v.QueensMobility),
		scalar("pawn_mobility_sum", v.PawnMobilitySum),
		list("knights_centrality", v.KnightsCentrality),
		list("bishops_centrality", v.BishopsCentrality),
		list("queens_centrality", v.QueensCentrality),
		scalar("open_files_rooks_count", v.OpenFilesRooksCount),
		fixed("pins_vector", v.PinsVector[:]),
		scalar("legal_moves_count", v.LegalMovesCount),
		fixed("threats_vector", v.ThreatsVector[:]),
		scalar("our_pieces_count", v.OurPiecesCount),
		scalar("their_pieces_count", v.TheirPiecesCount),
		scalar("all_pieces_count", v.AllPiecesCount),

		scalar("checked", boolToInt(v.Checked)),
		scalar("castling_rights", boolToInt(v.CastlingRights)),
		fixed("king_attackers_looking_at_ring_1", v.AttackersLookingAtRing1[:]),
		fixed("king_attackers_at_ring_1", v.AttackersAtRing1[:]),
		fixed("king_defenders_at_ring_1", v.DefendersAtRing1[:]),
		fixed("king_defenders_looking_at_ring_1", v.DefendersLookingAtRing1[:]),
		fixed("king_attackers_looking_at_ring_2", v.AttackersLookingAtRing2[:]),
		fixed("king_attackers_at_ring_2", v.AttackersAtRing2[:]),
		fixed("king_defenders_at_ring_2", v.DefendersAtRing2[:]),
		fixed("king_defenders_looking_at_ring_2", v.DefendersLookingAtRing2[:]),
		scalar("king_mobility", v.KingMobility),
		scalar("king_centrality", v.KingCentrality),

		scalar("central_pawns", v.CentralPawns),
		fixed("pawns_advancements", v.PawnsAdvancements[:]),
		scalar("blocked_pawns", v.BlockedPawns),
		scalar("isolated_pawns", v.IsolatedPawns),
		scalar("double_pawns", v.DoublePawns),
		scalar("passed_pawns", v.PassedPawns),
		scalar("pawn_islands", v.PawnIslands),
	}
}

func scalar(name string, value int) Field {
	return Field{Name: name, Values: []int{value}, Fixed: true}
}

func fixed(name string, values []int) Field {
	return Field{Name: name, Values: values, Fixed: true}
}

func list(name string, values []int) Field {
	return Field{Name: name, Values: values}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
