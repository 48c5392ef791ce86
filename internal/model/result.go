package model

// Result is the outcome of one evaluation of a compiled expression.
type Result struct {
	Sample float64
	// Taps holds one value per tap, in discovery order.
	Taps []float64
}

// SeriesSample is the name of the series carrying the expression output.
const SeriesSample = "sample"

// Series is a named sequence of plotted values.
type Series struct {
	Name   string
	Values []float64
}

// PlotSeries is an ordered set of series: "sample" first, then one per tap.
// Tap names are not required to be unique.
type PlotSeries []Series

// Get returns the first series called name.
func (p PlotSeries) Get(name string) (Series, bool) {
	for _, s := range p {
		if s.Name == name {
			return s, true
		}
	}

	return Series{}, false
}

// Names lists the series names in order.
func (p PlotSeries) Names() []string {
	names := make([]string, 0, len(p))
	for _, s := range p {
		names = append(names, s.Name)
	}

	return names
}

// EvalRow is one line of an offline evaluation listing.
type EvalRow struct {
	T      float64
	Sample float64
	Output int
	Taps   []float64
}
