// Package pairindex tracks adjacent-symbol-pair occurrence counts during
// learning. Counts live in an append-only dense vector so the learner's
// argmax step is a plain linear scan: no heap, no priority queue, so two
// pairs tied on count always resolve the same way regardless of insertion
// history.
package pairindex

import "sort"

// Pair identifies two adjacent symbol ids.
type Pair struct {
	A, B int32
}

// Less orders pairs lexicographically on (A, B), used to break count ties
// deterministically in Argmax.
func (p Pair) Less(o Pair) bool {
	if p.A != o.A {
		return p.A < o.A
	}
	return p.B < o.B
}

type record struct {
	pair  Pair
	count int64
}

// Index is the dense-vector-plus-map pair tracker described above. The zero
// value is not usable; construct with New.
type Index struct {
	records []record
	slot    map[Pair]int
	occ     map[Pair]map[int]struct{}
}

// New returns an empty index with capacity preallocated for the given number
// of distinct pairs, a hint only.
func New(capacityHint int) *Index {
	return &Index{
		slot: make(map[Pair]int, capacityHint),
		occ:  make(map[Pair]map[int]struct{}, capacityHint),
	}
}

// Adjust changes the running count for pair by delta, attributing the change
// to wordID. A pair with no existing record is only created when delta is
// positive; a negative delta against a pair the index has never seen is a
// no-op, matching the permissive bookkeeping used throughout learning (an
// occurrence set may legitimately point at a word that no longer contains
// the pair).
func (idx *Index) Adjust(pair Pair, delta int64, wordID int) {
	i, ok := idx.slot[pair]
	if !ok {
		if delta <= 0 {
			return
		}
		i = len(idx.records)
		idx.records = append(idx.records, record{pair: pair})
		idx.slot[pair] = i
	}
	idx.records[i].count += delta

	if delta > 0 {
		set := idx.occ[pair]
		if set == nil {
			set = make(map[int]struct{})
			idx.occ[pair] = set
		}
		set[wordID] = struct{}{}
	}
}

// Observe registers the initial adjacent pairs of a word's symbol sequence,
// each weighted by the word's corpus frequency.
func (idx *Index) Observe(wordID int, seq []int32, weight uint32) {
	for i := 0; i+1 < len(seq); i++ {
		idx.Adjust(Pair{seq[i], seq[i+1]}, int64(weight), wordID)
	}
}

// Argmax returns the pair with the strictly greatest count, breaking ties by
// Pair.Less. It reports ok=false when no pair has a positive count.
func (idx *Index) Argmax() (best Pair, count int64, ok bool) {
	for _, rec := range idx.records {
		if rec.count <= 0 {
			continue
		}
		if !ok || rec.count > count || (rec.count == count && rec.pair.Less(best)) {
			best, count, ok = rec.pair, rec.count, true
		}
	}
	return best, count, ok
}

// Occurrences returns a sorted snapshot of the word ids ever recorded as
// containing pair. The set is permissive: some entries may no longer
// contain the pair by the time the caller inspects them, the caller's
// per-word walk must re-verify before acting.
func (idx *Index) Occurrences(pair Pair) []int {
	set := idx.occ[pair]
	if len(set) == 0 {
		return nil
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ZeroOut forces pair's count to zero, used after a merge round has fully
// consumed every occurrence of the chosen pair so it cannot be picked again.
func (idx *Index) ZeroOut(pair Pair) {
	if i, ok := idx.slot[pair]; ok {
		idx.records[i].count = 0
	}
}

// Count returns the current count recorded for pair.
func (idx *Index) Count(pair Pair) int64 {
	if i, ok := idx.slot[pair]; ok {
		return idx.records[i].count
	}
	return 0
}
