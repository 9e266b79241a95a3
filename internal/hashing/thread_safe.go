package hashing

import (
	"sync"

	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks if a puzzle is a duplicate and adds it to the hash table.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(p *puzzle.Puzzle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(p)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique puzzles.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
