package cmd

import (
	"os"
	"os/signal"

	"github.com/mouse-blink/bytebeat/internal/domain"
	"github.com/spf13/cobra"
)

var playFileFlag string
var playNoAudioFlag bool
var playWatchFlag bool

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [expression]",
		Short: "Play an expression and edit it live",
		Long: `Play starts audio output for the expression and opens the live editor
when attached to a terminal. Edits take effect 150ms after the last
keystroke; a broken edit keeps the previous expression playing.

Use "-" as --file to read the expression from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return currentWorkflow().Play(ctx, domain.PlayArgs{
				SourceArgs: sourceArgs(playFileFlag, args),
				Config:     renderConfig(),
				Window:     windowFlag,
				Watch:      playWatchFlag,
				NoAudio:    playNoAudioFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&playFileFlag, "file", "f", "", "read the expression from a file")
	cmd.Flags().BoolVar(&playNoAudioFlag, "no-audio", false, "run without a sound device")
	cmd.Flags().BoolVar(&playWatchFlag, "watch", true, "reload --file when it changes")

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}
