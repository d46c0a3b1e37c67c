// Package fastbpe is the library surface of this module: learning and
// applying byte-pair-encoding merges, and reading/writing the two artifact
// file formats. cmd/fastbpe is a thin Cobra CLI built on top of these
// functions, using internal/codec and internal/fileio only to write its
// output and read its input text.
package fastbpe

import (
	"bytes"

	"github.com/jmrf/fastbpe-go/internal/apply"
	"github.com/jmrf/fastbpe-go/internal/codec"
	"github.com/jmrf/fastbpe-go/internal/fileio"
	"github.com/jmrf/fastbpe-go/internal/learn"
	"github.com/jmrf/fastbpe-go/internal/wordcount"
)

// MergeRule is a single learned merge, re-exported from internal/learn so
// callers outside this module never need to import an internal package.
type MergeRule = learn.MergeRule

// Vocab maps a surface symbol to its occurrence count.
type Vocab = codec.Vocab

// Codes is a learned merge table loaded from a codes file.
type Codes = codec.Codes

// GetVocab counts words across one or more corpus files.
func GetVocab(paths ...string) (wordcount.Counts, error) {
	return wordcount.FromFiles(paths...)
}

// GetVocabs is the in-memory sibling of GetVocab: it counts words directly
// in text rather than reading it from disk.
func GetVocabs(text string) (wordcount.Counts, error) {
	return wordcount.FromText(text)
}

// LearnBPE learns kPairs merges from the words of one or more corpus files.
func LearnBPE(kPairs int, paths ...string) ([]MergeRule, error) {
	counts, err := wordcount.FromFiles(paths...)
	if err != nil {
		return nil, err
	}
	return learn.Learn(counts, kPairs), nil
}

// LearnBPEs is the in-memory sibling of LearnBPE.
func LearnBPEs(kPairs int, text string) ([]MergeRule, error) {
	counts, err := wordcount.FromText(text)
	if err != nil {
		return nil, err
	}
	return learn.Learn(counts, kPairs), nil
}

// ReadVocabFile loads a vocabulary file written by GetVocab/codec.WriteVocab.
func ReadVocabFile(path string) (Vocab, error) {
	data, err := fileio.ReadAll(path)
	if err != nil {
		return nil, err
	}
	return codec.ReadVocabFile(bytes.NewReader(data))
}

// ReadCodesFile loads a codes file written by LearnBPE/codec.WriteCodes.
func ReadCodesFile(path string) (Codes, error) {
	data, err := fileio.ReadAll(path)
	if err != nil {
		return Codes{}, err
	}
	return codec.ReadCodesFile(bytes.NewReader(data))
}

// ApplyBPE segments text according to codes, optionally restricted to
// vocab (pass a nil or empty Vocab to skip restriction).
func ApplyBPE(text string, codes Codes, vocab Vocab) (string, error) {
	applier, err := apply.New(codes, vocab)
	if err != nil {
		return "", err
	}
	return applier.ApplyText(text)
}

// ApplyBPEFromFiles is ApplyBPE with codes and vocab loaded from disk first.
// An empty vocabPath means no vocabulary restriction, matching the CLI's
// optional VOCAB argument.
func ApplyBPEFromFiles(text string, codesPath, vocabPath string) (string, error) {
	codes, err := ReadCodesFile(codesPath)
	if err != nil {
		return "", err
	}
	var vocab Vocab
	if vocabPath != "" {
		vocab, err = ReadVocabFile(vocabPath)
		if err != nil {
			return "", err
		}
	}
	return ApplyBPE(text, codes, vocab)
}
