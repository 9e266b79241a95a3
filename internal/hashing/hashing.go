// Package hashing provides duplicate detection for puzzle batches.
package hashing

import (
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// DuplicateDetector tracks seen layouts for duplicate puzzle detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]Signature
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature stores identifying information about a puzzle.
type Signature struct {
	// Hash is the Zobrist hash of the layout
	Hash uint64
	// Weak is compared before Notation so most Zobrist collisions are
	// rejected without a string comparison
	Weak uint32
	// Notation is the canonical text form, compared to rule out collisions
	Notation string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// SignatureOf computes the signature of p.
func SignatureOf(p *puzzle.Puzzle) Signature {
	return Signature{
		Hash:     GenerateZobristHash(p),
		Weak:     WeakHash(p),
		Notation: p.Notation(),
	}
}

// CheckAndAdd checks if a puzzle is a duplicate and adds it to the hash table.
// Returns true if the puzzle is a duplicate. Once the detector is full, new
// layouts are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(p *puzzle.Puzzle) bool {
	if p == nil {
		return false
	}
	sig := SignatureOf(p)

	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two signatures describe the same layout.
// Notation alone decides; Hash and Weak only short-circuit mismatches.
func signaturesMatch(a, b Signature) bool {
	return a.Hash == b.Hash && a.Weak == b.Weak && a.Notation == b.Notation
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique puzzles stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.size = 0
	d.duplicateCount = 0
}
