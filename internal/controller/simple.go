package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Run prints the session parameters and blocks until ctx is done.
func (s *SimpleUI) Run(ctx context.Context, player domain.Player) error {
	cfg := player.Config()

	mode := "byte"
	if cfg.Float {
		mode = "float"
	}

	if cfg.Classic {
		mode += ", classic"
	}

	s.printf("%s at %d Hz (%s, gain %.2f)\n", player.State(), cfg.SampleRate, mode, cfg.Gain)

	<-ctx.Done()

	s.printf("stopped after %d ticks\n", player.Tick())

	return nil
}

// DisplayNotification prints engine and player notices.
func (s *SimpleUI) DisplayNotification(n m.Notification) {
	s.printf("%s\n", notificationText(n))
}

// DisplayEval prints one table row per evaluated tick.
func (s *SimpleUI) DisplayEval(rows []m.EvalRow, taps []m.Tap) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(evalHeader(taps))
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range rows {
		table.Append(evalRecord(row, taps))
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayPlot summarizes the written plot panels.
func (s *SimpleUI) DisplayPlot(out m.Path, plots []m.Plot) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Series", "Min", "Max", "Points"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, plot := range plots {
		if plot.Placeholder {
			table.Append([]string{plot.Name, "-", "-", "0"})

			continue
		}

		table.Append([]string{
			plot.Name,
			formatValue(plot.Min),
			formatValue(plot.Max),
			fmt.Sprintf("%d", len(plot.Points)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Wrote %s", out), "", "", fmt.Sprintf("%d", len(plots))})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
