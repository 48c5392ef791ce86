package expr

import (
	"math"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// evalFn evaluates one node against a scope.
type evalFn func(s *Scope) float64

// Scope is the mutable evaluation state of one producer. A Scope must not be
// shared between goroutines; each loop evaluating a Program owns its own.
type Scope struct {
	vars    []float64
	defined []bool
	taps    []float64
	cells   []float64
	history *History
	err     error
}

func (s *Scope) fail(msg string) float64 {
	if s.err == nil {
		s.err = &m.RuntimeError{Msg: msg}
	}

	return math.NaN()
}

// History returns the classic-mode history threaded into every evaluation.
func (s *Scope) History() *History {
	return s.history
}

// Program is a compiled expression. It is immutable and may be evaluated
// concurrently through distinct scopes.
type Program struct {
	expression string
	mode       m.TapMode
	classic    bool
	body       evalFn
	// bindings read annotation taps after the body ran.
	bindings []evalFn
	slots    int
	cells    int
	taps     []m.Tap
	window   int
}

// Expression returns the comment-free source the program was built from.
func (p *Program) Expression() string { return p.expression }

// Mode reports how taps were discovered.
func (p *Program) Mode() m.TapMode { return p.mode }

// Classic reports whether the program reads the output history.
func (p *Program) Classic() bool { return p.classic }

// Taps returns the discovered taps in evaluation order.
func (p *Program) Taps() []m.Tap {
	taps := make([]m.Tap, len(p.taps))
	copy(taps, p.taps)

	return taps
}

// Window returns the plot window requested by annotations, or 0 in auto mode.
func (p *Program) Window() int { return p.window }

// NewScope allocates the evaluation state for one producer. A nil history
// gets a fresh one.
func (p *Program) NewScope(history *History) *Scope {
	if history == nil {
		history = &History{}
	}

	return &Scope{
		vars:    make([]float64, p.slots),
		defined: make([]bool, p.slots),
		cells:   make([]float64, p.cells),
		taps:    make([]float64, len(p.taps)),
		history: history,
	}
}

// Eval runs the program for time value t. The returned Result.Taps aliases
// the scope and is overwritten by the next call. Numeric anomalies in the
// sample collapse to 0; faults are reported as *model.RuntimeError.
func (p *Program) Eval(s *Scope, t float64) (m.Result, error) {
	clear(s.defined)
	clear(s.taps)

	s.err = nil
	s.vars[slotT] = t
	s.defined[slotT] = true

	v := p.body(s)

	for i, bind := range p.bindings {
		if s.err != nil {
			break
		}

		s.taps[i] = bind(s)
	}

	if s.err != nil {
		return m.Result{}, s.err
	}

	return m.Result{Sample: Finite(v), Taps: s.taps}, nil
}
