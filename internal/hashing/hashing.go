// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/fentrack-go/internal/chess"
)

// DuplicateDetector tracks seen positions and reports repeats.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	entries     int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Source identifies where the position was first seen, e.g. a line number
	Source int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity; once full, new positions are
// still checked but no longer recorded.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks whether the position was seen before and records it if
// not. On a repeat it returns the source of the first sighting and true.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position, source int) (int, bool) {
	if pos == nil {
		return 0, false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(pos),
		WeakHash: WeakHash(pos),
		Source:   source,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Source, true
		}
	}

	if d.IsFull() {
		return 0, false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
	return 0, false
}

// signaturesMatch checks if two signatures describe the same position.
func signaturesMatch(a, b PositionSignature) bool {
	return a.Hash == b.Hash && a.WeakHash == b.WeakHash
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

