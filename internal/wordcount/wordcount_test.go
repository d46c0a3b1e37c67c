package wordcount

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReaderCountsWords(t *testing.T) {
	counts, err := FromReader(strings.NewReader("the cat sat on the mat\nthe cat ran\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), counts["the"])
	assert.Equal(t, uint32(2), counts["cat"])
	assert.Equal(t, uint32(1), counts["sat"])
	assert.Equal(t, uint32(1), counts["mat"])
	assert.Equal(t, uint32(1), counts["ran"])
}

func TestFromReaderIgnoresRunsOfSeparators(t *testing.T) {
	counts, err := FromReader(strings.NewReader("a   b\n\n\nc"))
	require.NoError(t, err)
	assert.Len(t, counts, 3)
	assert.Equal(t, uint32(1), counts["a"])
	assert.Equal(t, uint32(1), counts["b"])
	assert.Equal(t, uint32(1), counts["c"])
	_, ok := counts[""]
	assert.False(t, ok)
}

func TestMergeSumsCounts(t *testing.T) {
	a := Counts{"x": 2, "y": 1}
	b := Counts{"x": 3, "z": 4}
	Merge(a, b)
	assert.Equal(t, uint32(5), a["x"])
	assert.Equal(t, uint32(1), a["y"])
	assert.Equal(t, uint32(4), a["z"])
}

func TestPadOnlyAppendsWhenNeeded(t *testing.T) {
	assert.Equal(t, "cat\n", Pad("cat"))
	assert.Equal(t, "cat\n", Pad("cat\n"))
	assert.Equal(t, "cat ", Pad("cat "))
	assert.Equal(t, "", Pad(""))
}

func TestFromTextPadsBeforeScanning(t *testing.T) {
	counts, err := FromText("cat cat")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), counts["cat"])
}

func TestFromFilesMergesAcrossInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("cat dog\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("cat\n"), 0o644))

	counts, err := FromFiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), counts["cat"])
	assert.Equal(t, uint32(1), counts["dog"])
}

func TestFromFilesTreatsEmptyPathAsAbsent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("cat dog\n"), 0o644))

	counts, err := FromFiles(a, "")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), counts["cat"])
	assert.Equal(t, uint32(1), counts["dog"])
}
