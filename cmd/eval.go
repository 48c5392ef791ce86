package cmd

import (
	"github.com/mouse-blink/bytebeat/internal/domain"
	"github.com/spf13/cobra"
)

var evalFileFlag string
var evalFromFlag int64
var evalCountFlag int
var evalStepFlag int64

// evalCmd represents the eval command.
var evalCmd = newEvalCmd()

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Print samples and plotted values for a range of ticks",
		RunE: func(_ *cobra.Command, args []string) error {
			src := sourceArgs(evalFileFlag, args)
			if err := requireSource(src); err != nil {
				return err
			}

			return currentWorkflow().Eval(domain.EvalArgs{
				SourceArgs: src,
				Config:     renderConfig(),
				From:       evalFromFlag,
				Count:      evalCountFlag,
				Step:       evalStepFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&evalFileFlag, "file", "f", "", "read the expression from a file")
	cmd.Flags().Int64Var(&evalFromFlag, "from", 0, "first tick")
	cmd.Flags().IntVarP(&evalCountFlag, "count", "n", 16, "number of ticks")
	cmd.Flags().Int64Var(&evalStepFlag, "step", 1, "distance between ticks")

	return cmd
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
