package main

import (
	"io"

	fastbpe "github.com/jmrf/fastbpe-go"
	"github.com/jmrf/fastbpe-go/internal/codec"
	"github.com/spf13/cobra"
)

// newGetVocabCmd mirrors the original "getvocab"/"getvocabs" verbs: count
// words across one or two input files and print the vocabulary, most
// frequent first.
func newGetVocabCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "getvocab IN1 [IN2]",
		Short: "Print word counts from one or two corpora",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := fastbpe.GetVocab(args...)
			if err != nil {
				return err
			}
			return codec.WriteVocab(out, counts)
		},
	}
}
