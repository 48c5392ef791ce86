package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

const (
	editorHeight = 6
	gainStep     = 0.05
	maxCharts    = 4
)

// playModel is the live-coding screen: an editor over the expression, the
// playback status and one chart per plotted series.
type playModel struct {
	player domain.Player
	editor textarea.Model
	keys   playKeyMap
	help   help.Model
	gain   progress.Model
	plots  []m.Plot
	notice m.Notification
	err    error
	source string
	width  int
	height int
}

func newPlayModel(player domain.Player) playModel {
	source := player.Source()

	editor := textarea.New()
	editor.Placeholder = "t & t >> 8"
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.SetHeight(editorHeight)
	editor.SetValue(source)
	editor.Focus()

	gain := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)

	pm := playModel{
		player: player,
		editor: editor,
		keys:   newPlayKeyMap(),
		help:   help.New(),
		gain:   gain,
		source: source,
	}

	return pm.resize(80, 24)
}

func (pm playModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, frameTick())
}

func (pm playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case frameMsg:
		return pm.handleFrame(), frameTick()

	case notificationMsg:
		pm.notice = m.Notification(msg)

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyMsg(msg)
	}

	var cmd tea.Cmd

	pm.editor, cmd = pm.editor.Update(msg)

	return pm, cmd
}

func (pm playModel) resize(width, height int) playModel {
	pm.width = width
	pm.height = height
	pm.editor.SetWidth(max(20, width-4))
	pm.help.Width = width
	pm.gain.Width = max(10, min(40, width-24))

	return pm
}

func (pm playModel) chartCols() int {
	return max(chartMinCols, pm.width-4)
}

func (pm playModel) handleFrame() playModel {
	if source := pm.player.Source(); source != pm.source {
		pm.source = source
		pm.editor.SetValue(source)
	}

	series, err := pm.player.Sample()
	if err != nil {
		return pm
	}

	if len(series) > maxCharts {
		series = series[:maxCharts]
	}

	pm.plots = domain.Render(series, float64(pm.chartCols()-1), float64(chartRows-1))

	return pm
}

func (pm playModel) handleKeyMsg(msg tea.KeyMsg) (playModel, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Toggle):
		pm.err = pm.player.Toggle()

		return pm, nil

	case key.Matches(msg, pm.keys.Help):
		pm.help.ShowAll = !pm.help.ShowAll

		return pm, nil

	case key.Matches(msg, pm.keys.RateDown), key.Matches(msg, pm.keys.RateUp):
		dir := 1
		if key.Matches(msg, pm.keys.RateDown) {
			dir = -1
		}

		cfg := pm.player.Config()
		cfg.SampleRate = stepRate(cfg.SampleRate, dir)
		pm.player.Configure(cfg)

		return pm, nil

	case key.Matches(msg, pm.keys.GainDown):
		pm.player.SetGain(pm.player.Config().Gain - gainStep)

		return pm, nil

	case key.Matches(msg, pm.keys.GainUp):
		pm.player.SetGain(pm.player.Config().Gain + gainStep)

		return pm, nil

	case key.Matches(msg, pm.keys.Classic):
		cfg := pm.player.Config()
		cfg.Classic = !cfg.Classic
		pm.player.Configure(cfg)

		return pm, nil

	case key.Matches(msg, pm.keys.Float):
		cfg := pm.player.Config()
		cfg.Float = !cfg.Float
		pm.player.Configure(cfg)

		return pm, nil
	}

	var cmd tea.Cmd

	pm.editor, cmd = pm.editor.Update(msg)

	if value := pm.editor.Value(); value != pm.source {
		pm.source = value
		pm.player.Edit(value)
	}

	return pm, cmd
}

func (pm playModel) View() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(0, 0, 0, 1)

	editorStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)

	charts := make([]string, 0, len(pm.plots))
	for i, plot := range pm.plots {
		charts = append(charts, renderChart(plot, i, pm.chartCols(), chartRows))
	}

	chartStyle := lipgloss.NewStyle().Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("bytebeat"),
		pm.viewStatus(),
		editorStyle.Render(pm.editor.View()),
		chartStyle.Render(lipgloss.JoinVertical(lipgloss.Left, charts...)),
		pm.viewGain(),
		pm.viewNotice(),
		pm.help.View(pm.keys),
	)
}

func (pm playModel) viewStatus() string {
	cfg := pm.player.Config()
	state := pm.player.State()

	stateColors := map[m.PlaybackState]lipgloss.Color{
		m.Running:   lipgloss.Color("2"),
		m.Suspended: lipgloss.Color("3"),
		m.Stopped:   lipgloss.Color("8"),
	}

	stateStyle := lipgloss.NewStyle().Foreground(stateColors[state]).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	mode := "byte"
	if cfg.Float {
		mode = "float"
	}

	if cfg.Classic {
		mode += " classic"
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(fmt.Sprintf("%s  t=%s  %s Hz  %s",
		stateStyle.Render(state.String()),
		accentStyle.Render(fmt.Sprintf("%d", pm.player.Tick())),
		accentStyle.Render(fmt.Sprintf("%d", cfg.SampleRate)),
		accentStyle.Render(mode),
	))
}

func (pm playModel) viewGain() string {
	gain := pm.player.Config().Gain

	return lipgloss.NewStyle().Padding(0, 1).Render(fmt.Sprintf("gain %s %.2f", pm.gain.ViewAs(gain), gain))
}

func (pm playModel) viewNotice() string {
	style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))

	text := pm.notice.Message
	if pm.err != nil {
		text = "error: " + pm.err.Error()
	} else if pm.notice.IsError() {
		text = notificationText(pm.notice)
	}

	if pm.err != nil || pm.notice.IsError() {
		style = style.Foreground(lipgloss.Color("1")).Bold(true)
	}

	return style.Render(text)
}
