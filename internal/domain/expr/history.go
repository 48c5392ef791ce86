package expr

import "math"

// HistorySize is the number of previous outputs visible in classic mode.
const HistorySize = 64

// History is a fixed-size ring of previous output values. The zero value is
// an empty history where every entry reads as 0.
type History struct {
	buf  [HistorySize]float64
	head int
}

// Push records the most recent output.
func (h *History) Push(v float64) {
	h.head = (h.head + 1) % HistorySize
	h.buf[h.head] = v
}

// At returns the output n ticks back, At(0) being the latest. Out of range
// reads yield NaN.
func (h *History) At(n int) float64 {
	if n < 0 || n >= HistorySize {
		return math.NaN()
	}

	return h.buf[(h.head-n+HistorySize)%HistorySize]
}

// Reset forgets every recorded value.
func (h *History) Reset() {
	*h = History{}
}
