package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// Render maps every series onto a width x height canvas, each normalised to
// its own min/max. Empty series become placeholders without a path.
func Render(series m.PlotSeries, width, height float64) []m.Plot {
	plots := make([]m.Plot, 0, len(series))
	for _, s := range series {
		plots = append(plots, renderSeries(s, width, height))
	}

	return plots
}

func renderSeries(s m.Series, width, height float64) m.Plot {
	plot := m.Plot{Name: s.Name}
	if len(s.Values) == 0 {
		plot.Placeholder = true

		return plot
	}

	lo, hi := math.Inf(1), math.Inf(-1)

	for _, v := range s.Values {
		v = expr.Finite(v)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}

	plot.Min, plot.Max = lo, hi
	plot.Points = make([]m.Point, len(s.Values))

	n := len(s.Values)

	var path strings.Builder

	for i, v := range s.Values {
		x := 0.0
		if n > 1 {
			x = float64(i) * width / float64(n-1)
		}

		y := height - (expr.Finite(v)-lo)/span*height
		plot.Points[i] = m.Point{X: x, Y: y}

		if i == 0 {
			path.WriteString("M ")
		} else {
			path.WriteString(" L ")
		}

		path.WriteString(strconv.FormatFloat(x, 'f', 2, 64))
		path.WriteByte(' ')
		path.WriteString(strconv.FormatFloat(y, 'f', 2, 64))
	}

	plot.Path = path.String()

	return plot
}
