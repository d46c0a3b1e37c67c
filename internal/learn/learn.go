// Package learn implements the merge learner (component D): it greedily
// picks the most frequent adjacent symbol pair across a weighted corpus and
// folds it into a single symbol, repeating until a merge budget is spent or
// no pair remains worth merging.
package learn

import (
	"log"
	"sort"

	"github.com/jmrf/fastbpe-go/internal/pairindex"
	"github.com/jmrf/fastbpe-go/internal/symbol"
)

// MergeRule records one learned merge, in the order it was chosen. Count is
// the pair's occurrence count at the moment it was selected.
type MergeRule struct {
	Left, Right string
	Count       uint32
}

// word is a doubly-linked view over a word's symbol sequence. Linking by
// index (rather than slicing) lets a merge splice two nodes together in
// O(1) instead of rebuilding the sequence.
type word struct {
	tok    []int32
	prev   []int32
	next   []int32
	head   int32
	weight uint32
}

const sentinel = -1

func newWord(ids []int32, weight uint32) *word {
	w := &word{
		tok:    ids,
		prev:   make([]int32, len(ids)),
		next:   make([]int32, len(ids)),
		weight: weight,
	}
	for i := range ids {
		w.prev[i] = int32(i - 1)
		w.next[i] = int32(i + 1)
	}
	if len(ids) > 0 {
		w.next[len(ids)-1] = sentinel
	} else {
		w.head = sentinel
	}
	return w
}

// sequence returns the word's current symbols, walking the live list.
func (w *word) sequence() []int32 {
	out := make([]int32, 0, len(w.tok))
	for i := w.head; i != sentinel; i = w.next[i] {
		out = append(out, w.tok[i])
	}
	return out
}

// Learn runs the greedy BPE merge loop over counts (word -> corpus
// frequency) and returns up to kPairs merge rules, in selection order. It
// stops early once no adjacent pair occurs more than zero times.
func Learn(counts map[string]uint32, kPairs int) []MergeRule {
	if kPairs <= 0 || len(counts) == 0 {
		return nil
	}

	// Process words in a fixed order so symbol-id assignment, and therefore
	// the lexicographic Argmax tie-break, is independent of map iteration
	// order and reproducible across runs.
	uniqueWords := make([]string, 0, len(counts))
	for w := range counts {
		uniqueWords = append(uniqueWords, w)
	}
	sort.Strings(uniqueWords)

	table := symbol.NewTable()
	words := make([]*word, 0, len(uniqueWords))
	for _, w := range uniqueWords {
		words = append(words, newWord(table.Tokenize(w), counts[w]))
	}

	idx := pairindex.New(len(words) * 4)
	for wi, w := range words {
		idx.Observe(wi, w.sequence(), w.weight)
	}

	lastReported := -1
	rules := make([]MergeRule, 0, kPairs)
	for len(rules) < kPairs {
		best, count, ok := idx.Argmax()
		if !ok {
			break
		}

		leftStr, rightStr := table.String(best.A), table.String(best.B)
		newID := table.Intern(leftStr + rightStr)
		rules = append(rules, MergeRule{Left: leftStr, Right: rightStr, Count: uint32(count)})

		for _, wi := range idx.Occurrences(best) {
			applyMerge(words[wi], wi, best, newID, idx)
		}
		idx.ZeroOut(best)

		if pct := len(rules) * 100 / kPairs; pct != lastReported {
			log.Printf("learn: %d%% (%d/%d merges, last pair count %d)", pct, len(rules), kPairs, count)
			lastReported = pct
		}
	}
	log.Printf("learn: done, %d merges learned from %d distinct words", len(rules), len(words))

	return rules
}

// applyMerge walks w's live list once, replacing every non-overlapping
// occurrence of pair with newID and updating the neighboring pair counts it
// disturbs along the way.
func applyMerge(w *word, wordID int, pair pairindex.Pair, newID int32, idx *pairindex.Index) {
	weight := int64(w.weight)
	cur := w.head
	for cur != sentinel {
		nxt := w.next[cur]
		if nxt == sentinel || w.tok[cur] != pair.A || w.tok[nxt] != pair.B {
			cur = nxt
			continue
		}

		p, q := cur, nxt
		prevPos, nextPos := w.prev[p], w.next[q]

		if prevPos != sentinel {
			left := w.tok[prevPos]
			idx.Adjust(pairindex.Pair{A: left, B: pair.A}, -weight, wordID)
			idx.Adjust(pairindex.Pair{A: left, B: newID}, weight, wordID)
		}
		if nextPos != sentinel {
			right := w.tok[nextPos]
			idx.Adjust(pairindex.Pair{A: pair.B, B: right}, -weight, wordID)
			idx.Adjust(pairindex.Pair{A: newID, B: right}, weight, wordID)
		}

		w.tok[p] = newID
		w.next[p] = nextPos
		if nextPos != sentinel {
			w.prev[nextPos] = p
		}

		cur = nextPos
	}
}
