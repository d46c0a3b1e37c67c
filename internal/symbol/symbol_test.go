package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitASCII(t *testing.T) {
	got := Split("cat")
	assert.Equal(t, []string{"c", "a", "t</w>"}, got)
}

func TestSplitSingleRune(t *testing.T) {
	got := Split("a")
	assert.Equal(t, []string{"a</w>"}, got)
}

func TestSplitMultibyte(t *testing.T) {
	// "café" - é is two UTF-8 bytes, must stay one symbol.
	got := Split("café")
	assert.Equal(t, []string{"c", "a", "f", "é</w>"}, got)
}

func TestSplitEmpty(t *testing.T) {
	assert.Nil(t, Split(""))
}

func TestTableInternReusesIDs(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("a")
	b := tbl.Intern("b")
	a2 := tbl.Intern("a")
	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, "a", tbl.String(a))
	assert.Equal(t, "b", tbl.String(b))
}

func TestTableTokenize(t *testing.T) {
	tbl := NewTable()
	ids := tbl.Tokenize("ab")
	assert.Len(t, ids, 2)
	assert.Equal(t, "a", tbl.String(ids[0]))
	assert.Equal(t, "b</w>", tbl.String(ids[1]))
}
