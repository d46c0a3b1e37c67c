package main

import (
	"io"
	"strconv"

	fastbpe "github.com/jmrf/fastbpe-go"
	"github.com/jmrf/fastbpe-go/internal/codec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newLearnBPECmd mirrors the original "learnbpe"/"learnbpes" verbs: learn K
// merge rules from one or two input corpora and print the codes.
func newLearnBPECmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "learnbpe K IN1 [IN2]",
		Short: "Learn K byte-pair-encoding merges from one or two corpora",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return errors.Wrapf(err, "invalid merge count %q", args[0])
			}
			rules, err := fastbpe.LearnBPE(int(k), args[1:]...)
			if err != nil {
				return err
			}
			return codec.WriteCodes(out, rules)
		},
	}
}
