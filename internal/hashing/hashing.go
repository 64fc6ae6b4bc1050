// Package hashing provides duplicate detection for analyzed positions.
package hashing

import (
	"github.com/lgbarn/chess-features/internal/chess"
)

// DuplicateDetector remembers the positions seen so far in a run.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// maxPositions caps the remembered positions; 0 means unlimited
	maxPositions int
	count        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature identifies one position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a second, independent checksum
	WeakHash uint32
}

// NewDuplicateDetector creates a detector remembering at most maxPositions
// positions (0 for no limit). Once full, new positions are still reported
// unique but no longer remembered.
func NewDuplicateDetector(maxPositions int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:    make(map[uint64][]PositionSignature),
		maxPositions: maxPositions,
	}
}

// Signature computes the signature of board.
func Signature(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd reports whether sig was seen before and remembers it if not.
func (d *DuplicateDetector) CheckAndAdd(sig PositionSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

// IsFull reports whether the detector has reached its capacity.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxPositions > 0 && d.count >= d.maxPositions
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of remembered positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}
