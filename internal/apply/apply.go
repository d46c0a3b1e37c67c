// Package apply implements the merge applier (component E): given a learned
// codes table it segments words into their BPE token sequence, optionally
// restricted to a fixed vocabulary, and renders whole texts back out with
// their original spacing intact.
package apply

import (
	"runtime"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/jmrf/fastbpe-go/internal/codec"
	"github.com/jmrf/fastbpe-go/internal/symbol"
	"github.com/jmrf/fastbpe-go/internal/wordcount"
)

// cacheSize bounds the per-process word-segmentation cache. fastBPE corpora
// are dominated by a long tail of repeated common words, so an ARC cache
// (recency and frequency both tracked) pays for itself quickly.
const cacheSize = 65536

// Applier segments words according to a fixed codes table and, optionally, a
// vocabulary restriction, caching results across calls.
type Applier struct {
	codes codec.Codes
	vocab codec.Vocab
	cache *lru.ARCCache
}

// New builds an Applier. vocab may be nil, in which case no vocabulary
// restriction is performed.
func New(codes codec.Codes, vocab codec.Vocab) (*Applier, error) {
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "apply: build cache")
	}
	return &Applier{codes: codes, vocab: vocab, cache: cache}, nil
}

// SegmentWord returns the BPE-segmented, "@@ "-joined form of a single word.
func (a *Applier) SegmentWord(w string) string {
	if cached, ok := a.cache.Get(w); ok {
		return cached.(string)
	}
	symbols := reduceWord(symbol.Split(w), a.codes)
	if len(a.vocab) > 0 {
		symbols = restrictVocab(symbols, a.codes, a.vocab)
	}
	out := joinSegments(symbols)
	a.cache.Add(w, out)
	return out
}

// workers caps parallelism at the host's core count, never more than 10,
// and always at least 1.
func workers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// segmentAll computes SegmentWord for every word in words concurrently. Each
// worker owns a private result map and writes only to the stride of indices
// it was assigned, so no synchronization is needed beyond the errgroup
// barrier and the shared cache's own locking.
func (a *Applier) segmentAll(words []string) (map[string]string, error) {
	w := workers()
	if w > len(words) {
		w = len(words)
	}
	if w < 1 {
		return map[string]string{}, nil
	}

	partials := make([]map[string]string, w)
	g := new(errgroup.Group)
	for worker := 0; worker < w; worker++ {
		worker := worker
		g.Go(func() error {
			local := make(map[string]string)
			for i := worker; i < len(words); i += w {
				local[words[i]] = a.SegmentWord(words[i])
			}
			partials[worker] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(words))
	for _, p := range partials {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged, nil
}

// ApplyText segments every word of text and renders the result with the
// original whitespace between words preserved. A text that does not already
// end on a separator gets a trailing newline, as wordcount.Pad adds one.
func (a *Applier) ApplyText(text string) (string, error) {
	padded := wordcount.Pad(text)
	counts, err := wordcount.FromBytes([]byte(padded))
	if err != nil {
		return "", errors.Wrap(err, "apply: scan text")
	}

	words := counts.Words()
	sort.Strings(words)
	segmented, err := a.segmentAll(words)
	if err != nil {
		return "", errors.Wrap(err, "apply: segment words")
	}

	return render(padded, segmented), nil
}

// render walks raw, substituting each word with its segmentation from
// segmented while copying every separator byte through untouched. Every word
// render encounters must already have a precomputed segmentation: that
// invariant is the caller's responsibility (segmentAll covers every word
// wordcount found in the same padded text), so a miss here means the two
// scans disagreed and panics rather than silently dropping text.
func render(raw string, segmented map[string]string) string {
	var out strings.Builder
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		seg, ok := segmented[w]
		if !ok {
			panic(errors.Errorf("apply: no segmentation computed for word %q", w))
		}
		out.WriteString(seg)
		word.Reset()
	}

	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b == ' ' || b == '\n' || b == '\r' {
			flush()
			out.WriteByte(b)
			continue
		}
		word.WriteByte(b)
	}
	flush()
	return out.String()
}

// reduceWord repeatedly finds the lowest-rank mergeable pair present
// anywhere in symbols and merges every non-overlapping occurrence of that
// exact pair in a single left-to-right pass, until no pair in codes matches.
func reduceWord(symbols []string, codes codec.Codes) []string {
	for len(symbols) > 1 {
		bestRank := -1
		var bestPair codec.Pair
		found := false
		for i := 0; i < len(symbols)-1; i++ {
			p := codec.Pair{Left: symbols[i], Right: symbols[i+1]}
			if r, ok := codes.Rank[p]; ok && (!found || r < bestRank) {
				bestRank, bestPair, found = r, p, true
			}
		}
		if !found {
			break
		}

		next := make([]string, 0, len(symbols))
		for i := 0; i < len(symbols); {
			if i+1 < len(symbols) && symbols[i] == bestPair.Left && symbols[i+1] == bestPair.Right {
				next = append(next, symbols[i]+symbols[i+1])
				i += 2
			} else {
				next = append(next, symbols[i])
				i++
			}
		}
		symbols = next
	}
	return symbols
}

// restrictVocab decomposes any symbol absent from vocab back down toward
// symbols vocab does contain, using codes' reverse lookup to undo merges.
func restrictVocab(symbols []string, codes codec.Codes, vocab codec.Vocab) []string {
	out := make([]string, 0, len(symbols))
	for i, s := range symbols {
		if inVocab(s, i == len(symbols)-1, vocab) {
			out = append(out, s)
			continue
		}
		out = append(out, decompose(s, codes, vocab, i == len(symbols)-1, 0)...)
	}
	return out
}

// maxDecomposeDepth bounds the recursive unwind in decompose. A merged
// symbol can only have been produced by merges that happened before it, so
// its decomposition depth is bounded by the number of merges learned; a
// well-formed codes file can never make that recursion loop.
const maxDecomposeDepth = 1 << 20

// inVocab applies the same probe the original vocab files use: a non-final
// symbol is looked up with a trailing "@@" continuation marker, a final
// symbol has its "</w>" suffix stripped before the lookup.
func inVocab(s string, final bool, vocab codec.Vocab) bool {
	probe := s
	if final {
		probe = strings.TrimSuffix(s, symbol.EndOfWord)
	} else {
		probe = s + symbol.Delimiter
	}
	_, ok := vocab[probe]
	return ok
}

// decompose recursively unwinds a merged symbol into the pair of symbols
// that produced it, stopping at any symbol vocab accepts or at a symbol
// codes has no record of merging (a base code point).
func decompose(s string, codes codec.Codes, vocab codec.Vocab, final bool, depth int) []string {
	if depth > maxDecomposeDepth {
		panic(errors.Errorf("apply: vocabulary decomposition of %q did not terminate", s))
	}
	pair, ok := codes.Reversed[s]
	if !ok {
		return []string{s}
	}

	var out []string
	if inVocab(pair.Left, false, vocab) {
		out = append(out, pair.Left)
	} else {
		out = append(out, decompose(pair.Left, codes, vocab, false, depth+1)...)
	}
	if inVocab(pair.Right, final, vocab) {
		out = append(out, pair.Right)
	} else {
		out = append(out, decompose(pair.Right, codes, vocab, final, depth+1)...)
	}
	return out
}

// joinSegments renders a word's final symbol sequence the way fastBPE codes
// files always have: an "@@ " separator between kept symbols, and the
// trailing end-of-word marker stripped from the last one.
func joinSegments(symbols []string) string {
	var b strings.Builder
	for i, s := range symbols {
		b.WriteString(s)
		if i != len(symbols)-1 {
			b.WriteString(symbol.Delimiter)
			b.WriteByte(' ')
		}
	}
	return strings.TrimSuffix(b.String(), symbol.EndOfWord)
}
