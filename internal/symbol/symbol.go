// Package symbol splits words into the code-point symbol sequences that the
// learner and applier both operate over, and interns symbol strings to small
// integer ids for the learner's hot path.
package symbol

const (
	// EndOfWord marks the final symbol of every word.
	EndOfWord = "</w>"
	// Delimiter separates two symbols that belong to the same original word
	// but were not merged into a single token.
	Delimiter = "@@"
)

// isContinuation reports whether b is a UTF-8 continuation byte.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Split breaks word into its initial symbol sequence: one symbol per Unicode
// code point, with EndOfWord appended to the last symbol. Invalid UTF-8 is
// tolerated: a new symbol starts at every byte that is not a continuation
// byte, so a stray continuation byte stays attached to the symbol before it.
func Split(word string) []string {
	if word == "" {
		return nil
	}
	var points []string
	start := 0
	for i := 1; i < len(word); i++ {
		if !isContinuation(word[i]) {
			points = append(points, word[start:i])
			start = i
		}
	}
	points = append(points, word[start:])
	points[len(points)-1] += EndOfWord
	return points
}

// Table interns symbol strings into append-only integer ids. Ids are never
// recycled, so a Table only grows for the lifetime of a learning run.
type Table struct {
	strings []string
	ids     map[string]int32
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{ids: make(map[string]int32)}
}

// Intern returns the id for s, assigning a new one the first time s is seen.
func (t *Table) Intern(s string) int32 {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := int32(len(t.strings))
	t.strings = append(t.strings, s)
	t.ids[s] = id
	return id
}

// String returns the string interned under id. It panics if id is out of
// range, which only happens on an internal invariant violation.
func (t *Table) String(id int32) string {
	return t.strings[id]
}

// Tokenize splits word and interns each resulting symbol, returning the
// sequence of symbol ids.
func (t *Table) Tokenize(word string) []int32 {
	parts := Split(word)
	ids := make([]int32, len(parts))
	for i, p := range parts {
		ids[i] = t.Intern(p)
	}
	return ids
}
