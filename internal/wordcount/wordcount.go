// Package wordcount implements the word counter (component A): it scans raw
// text, splits on spaces and newlines, and accumulates per-word occurrence
// counts that feed both the vocabulary dump and the merge learner.
package wordcount

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jmrf/fastbpe-go/internal/fileio"
	"github.com/pkg/errors"
)

// Counts maps a word to the number of times it occurred across the scanned
// input. Words never include the separator that followed them.
type Counts map[string]uint32

// FromReader scans r and returns per-word occurrence counts. Runs of spaces
// and newlines are treated purely as separators and never produce an empty
// word entry.
func FromReader(r io.Reader) (Counts, error) {
	counts := make(Counts)
	br := bufio.NewReaderSize(r, 64*1024)

	var word []byte
	flush := func() {
		if len(word) == 0 {
			return
		}
		counts[string(word)]++
		word = word[:0]
	}

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			flush()
			return counts, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "wordcount: read input")
		}
		if b == ' ' || b == '\n' || b == '\r' {
			flush()
			continue
		}
		word = append(word, b)
	}
}

// FromBytes is a convenience wrapper around FromReader for in-memory data.
func FromBytes(data []byte) (Counts, error) {
	return FromReader(bytes.NewReader(data))
}

// Pad appends a trailing newline when text doesn't already end on a
// separator, so the final word is never left dangling mid-scan. Matches the
// original's padText, used both here and by the applier before rendering.
func Pad(text string) string {
	if text == "" {
		return text
	}
	last := text[len(text)-1]
	if last == ' ' || last == '\n' || last == '\r' {
		return text
	}
	return text + "\n"
}

// FromText is the in-memory sibling of FromFile: it counts words directly
// in an in-process string rather than a file on disk, matching the
// original's getvocabs entry point.
func FromText(text string) (Counts, error) {
	return FromBytes([]byte(Pad(text)))
}

// FromFile reads path and counts its words.
func FromFile(path string) (Counts, error) {
	data, err := fileio.ReadAll(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// FromFiles reads every path in paths and folds their word counts together,
// matching the original's two-input-file getvocab/learnbpe invocations
// generalized to any number of inputs. An empty path is treated as absent,
// matching the original's "if (inputFile2 != "") readText(...)" convention
// for an optional second corpus.
func FromFiles(paths ...string) (Counts, error) {
	total := make(Counts)
	for _, path := range paths {
		if path == "" {
			continue
		}
		counts, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		Merge(total, counts)
	}
	return total, nil
}

// Merge folds other into counts, summing occurrences for shared words. It
// supports the multi-file getvocab/learnbpe invocations, which combine
// several corpora before learning or reporting.
func Merge(counts Counts, other Counts) {
	for w, c := range other {
		counts[w] += c
	}
}

// Words returns the set of distinct words in counts, in no particular order.
func (c Counts) Words() []string {
	words := make([]string, 0, len(c))
	for w := range c {
		words = append(words, w)
	}
	return words
}
