package engine

import "github.com/arfali/othello-engine/internal/board"

// Bound classifies a stored transposition score relative to the alpha-beta
// window that produced it (spec.md §4.3).
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// TTEntry is one transposition-table slot: (score, best move, bound kind,
// depth), keyed externally by board.Board.Hash().
type TTEntry struct {
	key      uint64
	Score    int
	BestMove board.Action
	Bound    Bound
	Depth    int
	valid    bool
}

// TranspositionTable is a fixed-size hash table mapping position
// fingerprints to search results. It survives across iterative-deepening
// iterations and across driver calls within the same process (spec.md
// §3's "Lifetime = process"), and is owned by a single Engine instance —
// never a package-level global (spec.md §9).
//
// Sized and replacement-policy grounded in the teacher's
// internal/engine/transposition.go: a power-of-two slot count for fast
// masking, "replace if not shallower" for the same position.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable creates a table sized to hold approximately
// sizeMB megabytes of entries.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const approxEntrySize = 72 // bytes per TTEntry on a 64-bit platform
	numEntries := roundDownPow2(uint64(sizeMB) * 1024 * 1024 / approxEntrySize)
	if numEntries == 0 {
		numEntries = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownPow2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash, returning the stored entry and true if present.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	e := tt.entries[hash&tt.mask]
	if e.valid && e.key == hash {
		return e, true
	}
	return TTEntry{}, false
}

// Store records a search result, classifying it against the original
// alpha/beta window (spec.md §4.3): score <= alpha0 is an upper bound,
// score >= beta0 a lower bound, otherwise exact. An existing entry for
// the same position is kept if it is deeper; otherwise the slot is
// overwritten, including when it holds a different position.
func (tt *TranspositionTable) Store(hash uint64, depth, score, alpha0, beta0 int, best board.Action) {
	idx := hash & tt.mask
	existing := &tt.entries[idx]
	if existing.valid && existing.key == hash && existing.Depth > depth {
		return
	}

	bound := Exact
	switch {
	case score <= alpha0:
		bound = UpperBound
	case score >= beta0:
		bound = LowerBound
	}

	*existing = TTEntry{
		key:      hash,
		Score:    score,
		BestMove: best,
		Bound:    bound,
		Depth:    depth,
		valid:    true,
	}
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}
