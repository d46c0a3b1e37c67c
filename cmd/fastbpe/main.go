// Command fastbpe learns and applies byte-pair-encoding merge rules over
// whitespace-delimited text corpora.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fastbpe",
		Short:         "Learn and apply byte-pair-encoding merges",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGetVocabCmd(os.Stdout))
	root.AddCommand(newLearnBPECmd(os.Stdout))
	root.AddCommand(newApplyBPECmd())
	return root
}
