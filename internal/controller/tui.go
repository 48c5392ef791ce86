package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"golang.org/x/term"
)

var errAlreadyStarted = errors.New("ui already started")

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI. A nil input disables keyboard handling.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Run shows the live-coding screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context, player domain.Player) error {
	model := newPlayModel(player)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if err := t.startWithModel(model, tea.WithAltScreen()); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		t.Close()
	case <-t.done:
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

func (t *TUI) startWithModel(model tea.Model, options ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return errAlreadyStarted
	}

	opts := append([]tea.ProgramOption{tea.WithInput(t.input), tea.WithOutput(t.output)}, options...)

	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		_, err := program.Run()

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()

		close(done)
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close quits the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// DisplayNotification forwards n to the running screen.
func (t *TUI) DisplayNotification(n m.Notification) {
	t.send(notificationMsg(n))
}

// DisplayEval prints a styled table of evaluated ticks.
func (t *TUI) DisplayEval(rows []m.EvalRow, taps []m.Tap) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, evalHeader(taps))

	for _, row := range rows {
		records = append(records, evalRecord(row, taps))
	}

	_, err := fmt.Fprintln(t.output, renderTable(records))

	return err
}

// DisplayPlot prints the written plot panels.
func (t *TUI) DisplayPlot(out m.Path, plots []m.Plot) error {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	records := [][]string{{"Series", "Min", "Max", "Points"}}

	for _, plot := range plots {
		if plot.Placeholder {
			records = append(records, []string{plot.Name, "-", "-", "0"})

			continue
		}

		records = append(records, []string{
			plot.Name, formatValue(plot.Min), formatValue(plot.Max), fmt.Sprintf("%d", len(plot.Points)),
		})
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Wrote %s", out)),
		renderTable(records),
	))

	return err
}

// renderTable draws records as a bordered table; the first record is the
// header. Numeric columns are right-aligned.
func renderTable(records [][]string) string {
	if len(records) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(records[0]...).
		Rows(records[1:]...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle.Align(lipgloss.Right)
		}).
		Render()
}
