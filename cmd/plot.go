package cmd

import (
	"time"

	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/spf13/cobra"
)

var plotFileFlag string
var plotAtFlag time.Duration
var plotWidthFlag int
var plotHeightFlag int
var plotOutFlag string

// plotCmd represents the plot command.
var plotCmd = newPlotCmd()

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "Write an SVG plot of the output and plotted values",
		Long: `Plot evaluates the window of samples ending at --at and writes one SVG
panel per series: the output first, then every plot() tap or annotated
variable. The document goes to standard output unless --out is given.`,
		RunE: func(_ *cobra.Command, args []string) error {
			src := sourceArgs(plotFileFlag, args)
			if err := requireSource(src); err != nil {
				return err
			}

			return currentWorkflow().Plot(domain.PlotArgs{
				SourceArgs: src,
				Config:     renderConfig(),
				At:         plotAtFlag,
				Window:     windowFlag,
				Width:      plotWidthFlag,
				Height:     plotHeightFlag,
				Out:        m.Path(plotOutFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&plotFileFlag, "file", "f", "", "read the expression from a file")
	cmd.Flags().DurationVar(&plotAtFlag, "at", time.Second, "session time the plot window ends at")
	cmd.Flags().IntVar(&plotWidthFlag, "width", 800, "panel width")
	cmd.Flags().IntVar(&plotHeightFlag, "height", 160, "panel height")
	cmd.Flags().StringVarP(&plotOutFlag, "out", "o", "", "SVG file to write")

	return cmd
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
