package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadAllRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(path, []byte("hello world")))

	got, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
