package controller

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	domainmocks "github.com/mouse-blink/bytebeat/internal/domain/mocks"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})

	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	tui := NewTUI(nil, &syncBuffer{})

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.send(notificationMsg{Kind: m.NoticeState, Message: "running"})

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_StartWithModel_Twice(t *testing.T) {
	tui := NewTUI(nil, &syncBuffer{})

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	if err := tui.startWithModel(quitModel{}); err != errAlreadyStarted {
		t.Fatalf("second startWithModel error = %v, want %v", err, errAlreadyStarted)
	}

	waitOrFail(t, "Wait()", tui.Wait)
}

func TestTUI_NotStarted_NoPanic(t *testing.T) {
	tui := NewTUI(nil, &syncBuffer{})

	tui.send(notificationMsg{Kind: m.NoticeState, Message: "running"})
	tui.DisplayNotification(m.Notification{Kind: m.NoticeState, Message: "running"})
	tui.Wait()
	tui.Close()
}

func TestTUI_Run_QuitsWhenContextIsDone(t *testing.T) {
	player := domainmocks.NewMockPlayer(t)
	player.EXPECT().Source().Return("t").Maybe()
	player.EXPECT().Sample().Return(m.PlotSeries{{Name: m.SeriesSample, Values: []float64{0, 1, 2}}}, nil).Maybe()
	player.EXPECT().Config().Return(m.DefaultRenderConfig()).Maybe()
	player.EXPECT().State().Return(m.Running).Maybe()
	player.EXPECT().Tick().Return(0).Maybe()

	tui := NewTUI(nil, &syncBuffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	waitOrFail(t, "Run()", func() {
		if err := tui.Run(ctx, player); err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
}

func TestTUI_DisplayEval(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(nil, &buf)

	rows := []m.EvalRow{
		{T: 0, Sample: 0, Output: 0, Taps: []float64{0}},
		{T: 10, Sample: 6, Output: 6, Taps: []float64{5}},
	}

	if err := tui.DisplayEval(rows, []m.Tap{{Name: "t>>1"}}); err != nil {
		t.Fatalf("DisplayEval() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Sample", "Output", "t>>1", "10", "6", "5"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayPlot(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(nil, &buf)

	plots := []m.Plot{
		{Name: m.SeriesSample, Min: -1, Max: 1, Points: make([]m.Point, 8)},
		{Name: "bass", Placeholder: true},
	}

	if err := tui.DisplayPlot("beat.svg", plots); err != nil {
		t.Fatalf("DisplayPlot() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Wrote beat.svg", "sample", "-1", "8", "bass"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		lines   int
		cells   []string
	}{
		{"empty", nil, 0, nil},
		{"single row", [][]string{{"Series", "Min"}, {"bass", "-1"}}, 5, []string{"Series", "bass", "-1"}},
		{"header and rows", [][]string{{"t", "Sample"}, {"100", "1"}, {"101", "255"}}, 6, []string{"Sample", "100", "255"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderTable(tt.records)
			if tt.lines == 0 {
				if out != "" {
					t.Fatalf("renderTable() = %q, want empty", out)
				}

				return
			}

			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if len(lines) != tt.lines {
				t.Fatalf("renderTable() lines = %d, want %d:\n%s", len(lines), tt.lines, out)
			}

			for _, line := range lines[1:] {
				if lipgloss.Width(line) != lipgloss.Width(lines[0]) {
					t.Fatalf("renderTable() rows differ in width: %q vs %q", lines[0], line)
				}
			}

			for _, cell := range tt.cells {
				if !strings.Contains(out, cell) {
					t.Fatalf("renderTable() missing %q:\n%s", cell, out)
				}
			}
		})
	}
}
