// Package hashing detects repeated legality queries across fixture suites.
package hashing

// QuerySignature identifies one evaluated case.
type QuerySignature struct {
	// Hash is the QueryHash of the case
	Hash uint64
	// Rows and Columns are the board extents
	Rows, Columns int
	// Label names the case in reports
	Label string
}

// DuplicateDetector tracks seen queries.
type DuplicateDetector struct {
	// hashTable stores seen signatures by hash
	hashTable map[uint64][]QuerySignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// stored counts signatures in hashTable
	stored int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]QuerySignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks whether sig repeats an earlier query and records it.
// For a duplicate it returns the earlier signature and true.
// Once the detector is full, new signatures are checked but not stored.
func (d *DuplicateDetector) CheckAndAdd(sig QuerySignature) (QuerySignature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return QuerySignature{}, false
}

// signaturesMatch checks if two signatures describe the same query.
func signaturesMatch(a, b QuerySignature) bool {
	return a.Hash == b.Hash && a.Rows == b.Rows && a.Columns == b.Columns
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored unique queries.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]QuerySignature)
	d.duplicateCount = 0
	d.stored = 0
}
