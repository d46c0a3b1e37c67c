package main

import (
	fastbpe "github.com/jmrf/fastbpe-go"
	"github.com/jmrf/fastbpe-go/internal/fileio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newApplyBPECmd mirrors the original "applybpe" verb: segment IN with the
// learned CODES, optionally restricted to VOCAB, writing the result to OUT.
func newApplyBPECmd() *cobra.Command {
	return &cobra.Command{
		Use:   "applybpe OUT IN CODES [VOCAB]",
		Short: "Apply learned merges to a corpus",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, inPath, codesPath := args[0], args[1], args[2]
			var vocabPath string
			if len(args) == 4 {
				vocabPath = args[3]
			}

			text, err := fileio.ReadAll(inPath)
			if err != nil {
				return err
			}

			segmented, err := fastbpe.ApplyBPEFromFiles(string(text), codesPath, vocabPath)
			if err != nil {
				return errors.Wrap(err, "apply merges")
			}

			return fileio.WriteAll(outPath, []byte(segmented))
		},
	}
}
