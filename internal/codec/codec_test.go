package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmrf/fastbpe-go/internal/learn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVocabFile(t *testing.T) {
	vocab, err := ReadVocabFile(strings.NewReader("low 5\nwidest 3\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), vocab["low"])
	assert.Equal(t, uint32(3), vocab["widest"])
}

func TestReadVocabFileRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = ReadVocabFile(strings.NewReader("low 5\nlow 2\n"))
	})
}

func TestReadCodesFileRanksByLine(t *testing.T) {
	codes, err := ReadCodesFile(strings.NewReader("e s 9\nl o 7\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, codes.Rank[Pair{"e", "s"}])
	assert.Equal(t, 1, codes.Rank[Pair{"l", "o"}])
	assert.Equal(t, Pair{"e", "s"}, codes.Reversed["es"])
}

func TestReadCodesFileRejectsDuplicateConcatenation(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = ReadCodesFile(strings.NewReader("ab c 5\na bc 3\n"))
	})
}

func TestReadCodesFileRejectsWrongFieldCount(t *testing.T) {
	_, err := ReadCodesFile(strings.NewReader("a b\n"))
	assert.Error(t, err)
}

func TestWriteCodesRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	rules := []learn.MergeRule{{Left: "e", Right: "s", Count: 9}, {Left: "l", Right: "o", Count: 7}}
	require.NoError(t, WriteCodes(&buf, rules))

	codes, err := ReadCodesFile(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, codes.Rank[Pair{"e", "s"}])
	assert.Equal(t, 1, codes.Rank[Pair{"l", "o"}])
}

func TestWriteVocabOrdersByCountThenLex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVocab(&buf, map[string]uint32{"b": 1, "a": 1, "z": 5}))
	assert.Equal(t, "z 5\na 1\nb 1\n", buf.String())
}
