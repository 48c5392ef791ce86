// Package cmd provides the root command and CLI setup for bytebeat.
package cmd

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mouse-blink/bytebeat/internal/adapter"
	"github.com/mouse-blink/bytebeat/internal/controller"
	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/spf13/cobra"
)

const framesPerBuffer = 512

var errNoSource = errors.New("no expression given: pass it as arguments or use --file")

var fsAdapter adapter.SourceFSAdapter
var plotStore adapter.PlotStore
var audioOut adapter.AudioAdapter
var silentOut adapter.AudioAdapter
var ui domain.UI
var workflow domain.Workflow
var logger *slog.Logger
var logOutput *os.File

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	plotStore = adapter.NewPlotStore(os.Stdout)
	audioOut = adapter.NewPortAudioAdapter(domain.DefaultDeviceRate, framesPerBuffer)
	silentOut = adapter.NewNullAudioAdapter(domain.DefaultDeviceRate, framesPerBuffer)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

// currentWorkflow builds the workflow on first use so it picks up the
// logger configured from flags.
func currentWorkflow() domain.Workflow {
	if workflow == nil {
		workflow = domain.NewWorkflow(fsAdapter, plotStore, audioOut, silentOut, ui, logger)
	}

	return workflow
}

var rateFlag int
var classicFlag bool
var floatFlag bool
var gainFlag float64
var windowFlag int
var logFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	defaults := m.DefaultRenderConfig()

	cmd := &cobra.Command{
		Use:   "bytebeat",
		Short: "Live-coded bytebeat player and plotter",
		Long: `Bytebeat plays audio generated by a single expression of the time
counter t, evaluated once per sample.

  bytebeat play 't & t >> 8'         play and edit the expression live
  bytebeat play --file beat.bb       play a file and reload it on change
  bytebeat eval --count 8 't*5&t>>7'  print samples and plotted values
  bytebeat plot --out beat.svg -f beat.bb

Wrap parts of the expression in plot(...) or annotate variables with
"// plot(name)" comments to chart them alongside the output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logFileFlag)
		},
	}
	cmd.PersistentFlags().IntVarP(&rateFlag, "rate", "r", defaults.SampleRate, "expression sample rate in Hz (500..48000)")
	cmd.PersistentFlags().BoolVar(&classicFlag, "classic", false, "classic mode: byte output history available as h")
	cmd.PersistentFlags().BoolVar(&floatFlag, "float", false, "float mode: t in seconds, output in -1..1")
	cmd.PersistentFlags().Float64VarP(&gainFlag, "gain", "g", defaults.Gain, "output gain (0..1, applied squared)")
	cmd.PersistentFlags().IntVarP(&windowFlag, "window", "w", 0, "plot window in samples for inline plot() taps")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write debug logs to this file")

	return cmd
}

func setupLogging(path string) error {
	if path == "" || logger != nil {
		return nil
	}

	f, err := tea.LogToFile(path, "bytebeat")
	if err != nil {
		return err
	}

	logOutput = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return nil
}

func renderConfig() m.RenderConfig {
	return m.NewRenderConfig(rateFlag, classicFlag, floatFlag, gainFlag)
}

func sourceArgs(file string, args []string) domain.SourceArgs {
	return domain.SourceArgs{
		Path: m.Path(file),
		Code: strings.Join(args, " "),
	}
}

func requireSource(src domain.SourceArgs) error {
	if src.Path == "" && strings.TrimSpace(src.Code) == "" {
		return errNoSource
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if logOutput != nil {
		_ = logOutput.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}
