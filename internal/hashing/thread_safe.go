package hashing

import (
	"sync"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by the workers
// of a validation batch.
type ThreadSafeDuplicateDetector struct {
	mu       sync.RWMutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a detector remembering at most
// maxCapacity distinct positions (0 = no limit).
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{detector: NewDuplicateDetector(maxCapacity)}
}

// CheckAndAdd records key at index and reports whether it was seen before.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(key string, index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(key, index)
}

// FirstIndex returns the lowest index key was recorded at.
func (d *ThreadSafeDuplicateDetector) FirstIndex(key string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.FirstIndex(key)
}

// DuplicateOf returns the first index of key when that is not index
// itself, or -1 when the position at index is the first of its kind or was
// never stored.
func (d *ThreadSafeDuplicateDetector) DuplicateOf(key string, index int) int {
	first, ok := d.FirstIndex(key)
	if !ok || first == index {
		return -1
	}
	return first
}

// DuplicateCount returns the number of repeated positions seen.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of distinct positions stored.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull reports whether the capacity limit has been reached.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
