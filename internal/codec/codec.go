// Package codec reads and writes the plain-text vocabulary and merge-codes
// artifacts that let a learning run and an application run be split across
// separate invocations, and formats the vocabulary dump used by getvocab.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jmrf/fastbpe-go/internal/learn"
	"github.com/pkg/errors"
)

// Vocab maps a surface symbol to its occurrence count, as loaded from a
// vocabulary file.
type Vocab map[string]uint32

// Pair identifies an ordered pair of surface symbols.
type Pair struct {
	Left, Right string
}

// Codes holds a learned merge table in the two shapes the applier needs: a
// rank lookup by (left, right), lower rank applied first, and a reverse
// lookup from a merged symbol back to the pair that produced it, used for
// vocabulary-restricted decomposition.
type Codes struct {
	Rank     map[Pair]int
	Reversed map[string]Pair
}

// ReadVocabFile parses lines of "<symbol> <count>" into a Vocab. Duplicate
// symbols are rejected: a well-formed vocab file never repeats a key.
func ReadVocabFile(r io.Reader) (Vocab, error) {
	vocab := make(Vocab)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("codec: vocab line %d: expected \"symbol count\", got %q", line, text)
		}
		count, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "codec: vocab line %d: bad count", line)
		}
		if _, dup := vocab[fields[0]]; dup {
			// A well-formed vocab file never repeats a key; this is a
			// corrupted-artifact assertion, not a recoverable input error.
			panic(errors.Errorf("codec: vocab line %d: duplicate symbol %q", line, fields[0]))
		}
		vocab[fields[0]] = uint32(count)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "codec: scan vocab")
	}
	return vocab, nil
}

// ReadCodesFile parses lines of "<left> <right> <count>" into Codes. A
// merge's rank is its 0-based position among the file's non-blank lines,
// matching the order merges were learned and must be replayed in.
func ReadCodesFile(r io.Reader) (Codes, error) {
	codes := Codes{
		Rank:     make(map[Pair]int),
		Reversed: make(map[string]Pair),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	rank := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return Codes{}, errors.Errorf("codec: codes line %d: expected \"left right count\", got %q", lineNo, text)
		}
		if _, err := strconv.ParseUint(fields[2], 10, 32); err != nil {
			return Codes{}, errors.Wrapf(err, "codec: codes line %d: bad count", lineNo)
		}
		p := Pair{Left: fields[0], Right: fields[1]}
		if _, dup := codes.Rank[p]; dup {
			// A well-formed codes file never repeats a pair; this is a
			// corrupted-artifact assertion, not a recoverable input error.
			panic(errors.Errorf("codec: codes line %d: duplicate pair (%q, %q)", lineNo, p.Left, p.Right))
		}
		concat := p.Left + p.Right
		if _, dup := codes.Reversed[concat]; dup {
			// Two distinct pairs concatenating to the same string would
			// silently collide in the reverse lookup used for vocabulary
			// decomposition; a well-formed codes file never does this.
			panic(errors.Errorf("codec: codes line %d: pair (%q, %q) duplicates concatenation %q", lineNo, p.Left, p.Right, concat))
		}
		codes.Rank[p] = rank
		codes.Reversed[concat] = p
		rank++
	}
	if err := scanner.Err(); err != nil {
		return Codes{}, errors.Wrap(err, "codec: scan codes")
	}
	return codes, nil
}

// WriteCodes writes rules in learned order, one "<left> <right> <count>" line
// per rule, matching the format ReadCodesFile expects back.
func WriteCodes(w io.Writer, rules []learn.MergeRule) error {
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", r.Left, r.Right, r.Count); err != nil {
			return errors.Wrap(err, "codec: write codes")
		}
	}
	return errors.Wrap(bw.Flush(), "codec: flush codes")
}

// WriteVocab writes counts sorted by descending count, then ascending
// lexicographic order of the symbol, matching getvocab's historical output
// order.
func WriteVocab(w io.Writer, counts map[string]uint32) error {
	type entry struct {
		symbol string
		count  uint32
	}
	entries := make([]entry, 0, len(counts))
	for s, c := range counts {
		entries = append(entries, entry{s, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].symbol < entries[j].symbol
	})

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.symbol, e.count); err != nil {
			return errors.Wrap(err, "codec: write vocab")
		}
	}
	return errors.Wrap(bw.Flush(), "codec: flush vocab")
}
