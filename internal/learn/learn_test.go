package learn

import (
	"testing"

	"github.com/jmrf/fastbpe-go/internal/pairindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnPicksMostFrequentPairFirst(t *testing.T) {
	// "low", "lower", "newest", "widest" weighted like the classic BPE walkthrough.
	counts := map[string]uint32{
		"low":    5,
		"lower":  2,
		"newest": 6,
		"widest": 3,
	}
	rules := Learn(counts, 1)
	require.Len(t, rules, 1)
	// "e" + "s" occurs in "newest" (6) and "widest" (3) = 9, the highest count.
	assert.Equal(t, "e", rules[0].Left)
	assert.Equal(t, "s", rules[0].Right)
	assert.Equal(t, uint32(9), rules[0].Count)
}

func TestLearnStopsWhenNoPairRemains(t *testing.T) {
	counts := map[string]uint32{"a": 1}
	rules := Learn(counts, 10)
	assert.Empty(t, rules)
}

func TestLearnRespectsBudget(t *testing.T) {
	counts := map[string]uint32{
		"low":    5,
		"lower":  2,
		"newest": 6,
		"widest": 3,
	}
	rules := Learn(counts, 2)
	assert.Len(t, rules, 2)
}

// TestApplyMergeNonOverlapping exercises the merge sweep directly on a raw
// four-symbol word, independent of the end-of-word convention, matching the
// classic "a a a a" overlap case: three raw occurrences of (a,a) yield two
// merges, not three, because a consumed node can't participate again in the
// same sweep.
func TestApplyMergeNonOverlapping(t *testing.T) {
	w := newWord([]int32{1, 1, 1, 1}, 1)
	idx := pairindex.New(2)
	idx.Observe(0, w.sequence(), w.weight)

	best, count, ok := idx.Argmax()
	require.True(t, ok)
	assert.Equal(t, pairindex.Pair{A: 1, B: 1}, best)
	assert.Equal(t, int64(3), count)

	newID := int32(2)
	applyMerge(w, 0, best, newID, idx)
	idx.ZeroOut(best)

	assert.Equal(t, []int32{2, 2}, w.sequence())
}
