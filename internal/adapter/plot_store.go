package adapter

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

const (
	panelGap    = 24
	labelHeight = 16
)

var plotColors = []string{"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4", "#42d4f4", "#f032e6", "#9a6324"}

// PlotStore persists rendered plots.
type PlotStore interface {
	// Save writes plots as one SVG document to path, or to standard output
	// when path is empty or StdinPath.
	Save(path m.Path, plots []m.Plot, width, height int) error
}

type plotStore struct {
	stdout io.Writer
}

// NewPlotStore constructs a PlotStore writing unnamed documents to stdout.
func NewPlotStore(stdout io.Writer) PlotStore {
	return &plotStore{stdout: stdout}
}

func (ps *plotStore) Save(path m.Path, plots []m.Plot, width, height int) error {
	doc := renderSVG(plots, width, height)

	if path == "" || path == StdinPath {
		_, err := io.WriteString(ps.stdout, doc)

		return err
	}

	if err := os.WriteFile(string(path), []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write plot %s: %w", path, err)
	}

	return nil
}

// renderSVG stacks one panel per plot, each with a label line above it.
func renderSVG(plots []m.Plot, width, height int) string {
	panel := height + labelHeight + panelGap
	total := max(len(plots)*panel-panelGap, 0)

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, total, width, total)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#111"/>`+"\n", width, total)

	for i, plot := range plots {
		color := plotColors[i%len(plotColors)]

		fmt.Fprintf(&b, `<g transform="translate(0 %d)">`+"\n", i*panel)
		b.WriteString(`<text x="4" y="12" font-family="monospace" font-size="12" fill="#ccc">`)
		_ = xml.EscapeText(&b, []byte(label(plot)))
		b.WriteString("</text>\n")

		if !plot.Placeholder {
			fmt.Fprintf(&b, `<path transform="translate(0 %d)" d="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
				labelHeight, plot.Path, color)
		}

		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")

	return b.String()
}

func label(plot m.Plot) string {
	if plot.Placeholder {
		return plot.Name + " (no samples)"
	}

	return fmt.Sprintf("%s [%g, %g]", plot.Name, plot.Min, plot.Max)
}
