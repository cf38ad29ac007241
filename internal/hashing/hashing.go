// Package hashing tracks repeated chess positions.
//
// Positions are identified by their repetition key: the placement, active
// colour, castling and en passant fields of a FEN string. Move counters are
// excluded so that transpositions reached at different points of a game
// compare equal.
package hashing

// RepetitionTable counts how often each position key has occurred in a game.
type RepetitionTable struct {
	counts   map[string]int
	maxCount int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[string]int)}
}

// Record adds one occurrence of key and returns its new count.
func (r *RepetitionTable) Record(key string) int {
	r.counts[key]++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how often key has been recorded.
func (r *RepetitionTable) Count(key string) int {
	return r.counts[key]
}

// MaxCount returns the highest count of any key.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// Len returns the number of distinct positions recorded.
func (r *RepetitionTable) Len() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[string]int)
	r.maxCount = 0
}

// DuplicateDetector tracks seen positions across a batch of inputs.
type DuplicateDetector struct {
	// first maps a position key to the lowest input index it was seen at
	first map[string]int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of distinct keys; 0 means unlimited
	maxCapacity int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		first:       make(map[string]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records key as seen at index and reports whether it had
// been seen before. The lowest index wins, so the outcome of FirstIndex
// does not depend on the order in which items arrive.
// Once the detector is full new keys are not stored.
func (d *DuplicateDetector) CheckAndAdd(key string, index int) bool {
	if prev, ok := d.first[key]; ok {
		d.duplicateCount++
		if index < prev {
			d.first[key] = index
		}
		return true
	}

	if d.IsFull() {
		return false
	}
	d.first[key] = index
	return false
}

// FirstIndex returns the lowest index key was recorded at.
func (d *DuplicateDetector) FirstIndex(key string) (int, bool) {
	idx, ok := d.first[key]
	return idx, ok
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.first)
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.first) >= d.maxCapacity
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.first = make(map[string]int)
	d.duplicateCount = 0
}
