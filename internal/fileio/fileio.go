// Package fileio is the on-disk boundary for the CLI commands. The original
// implementation memory-maps its inputs and outputs; no example repo in this
// codebase's lineage pulls in an mmap library, and the buffered reads and
// writes here are observably equivalent for every operation this module
// performs (a full read followed by in-memory processing, then a single
// write of the result) so they stand in for it.
package fileio

import (
	"os"

	"github.com/pkg/errors"
)

// ReadAll reads the entirety of path into memory.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fileio: read %s", path)
	}
	return data, nil
}

// WriteAll writes data to path, truncating any existing contents.
func WriteAll(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "fileio: write %s", path)
	}
	return nil
}
