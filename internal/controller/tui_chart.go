package controller

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

const (
	chartRows    = 6
	chartMinCols = 10
	chartDot     = '•'
)

var chartColors = []lipgloss.Color{"6", "5", "3", "2", "4", "13"}

// renderChart draws plot points, already scaled to cols x rows, onto a
// character grid.
func renderChart(plot m.Plot, index, cols, rows int) string {
	color := chartColors[index%len(chartColors)]

	labelStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	rangeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if plot.Placeholder {
		return lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(truncateToWidth(plot.Name, cols)),
			rangeStyle.Render("no samples"),
		)
	}

	label := fmt.Sprintf("%s %s",
		labelStyle.Render(truncateToWidth(plot.Name, cols/2)),
		rangeStyle.Render(fmt.Sprintf("[%s .. %s]", formatValue(plot.Min), formatValue(plot.Max))),
	)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	for _, p := range plot.Points {
		c := clampCell(p.X, cols)
		r := clampCell(p.Y, rows)
		grid[r][c] = chartDot
	}

	lines := make([]string, rows)
	for r, line := range grid {
		lines[r] = string(line)
	}

	body := lipgloss.NewStyle().Foreground(color).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, label, body)
}

func clampCell(v float64, n int) int {
	if math.IsNaN(v) {
		return 0
	}

	i := int(math.Round(v))

	return max(0, min(n-1, i))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
