package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// ErrNothingLoaded is returned when sampling before a program was loaded.
var ErrNothingLoaded = errors.New("no expression loaded")

// Clock reports the current time.
type Clock func() time.Time

// Plotter replays an expression over a sliding window of ticks derived from
// the time elapsed since its session started.
type Plotter interface {
	// Load compiles source and restarts the session clock. A failed load
	// leaves the previous session untouched.
	Load(source string, cfg m.RenderConfig, mode m.TapMode) error
	// Sample evaluates the window ending at the current elapsed time. While
	// the session is stopped it returns the last series produced.
	Sample() (m.PlotSeries, error)
	// SampleAt evaluates the window ending at elapsed without touching the
	// session state.
	SampleAt(elapsed time.Duration) (m.PlotSeries, error)
	Running() bool
	// Resume restarts the session clock of the loaded program.
	Resume()
	Stop()
	Window() int
	Taps() []m.Tap
}

type plotter struct {
	compiler Compiler
	now      Clock
	override int
	log      *slog.Logger

	mu      sync.Mutex
	prog    *expr.Program
	scope   *expr.Scope
	cfg     m.RenderConfig
	window  int
	started time.Time
	running bool
	last    m.PlotSeries
}

// NewPlotter creates a Plotter. A positive window overrides the window
// chosen for auto-mode programs; a nil clock uses time.Now.
func NewPlotter(compiler Compiler, now Clock, window int, log *slog.Logger) Plotter {
	if now == nil {
		now = time.Now
	}

	return &plotter{
		compiler: compiler,
		now:      now,
		override: window,
		log:      orDiscard(log),
	}
}

func (p *plotter) Load(source string, cfg m.RenderConfig, mode m.TapMode) error {
	cfg = cfg.Normalized()

	prog, err := p.compiler.Compile(source, mode, cfg.Classic)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.prog = prog
	p.scope = prog.NewScope(nil)
	p.cfg = cfg
	p.window = p.windowFor(prog)
	p.started = p.now()
	p.running = true
	p.last = nil

	p.log.Debug("plot session loaded", "mode", mode, "window", p.window, "taps", len(prog.Taps()))

	return nil
}

func (p *plotter) windowFor(prog *expr.Program) int {
	if prog.Mode() == m.TapAnnotation {
		return prog.Window()
	}

	if p.override > 0 {
		return max(p.override, m.MinWindow)
	}

	return m.DefaultPlotWindow
}

func (p *plotter) Sample() (m.PlotSeries, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prog == nil {
		return nil, ErrNothingLoaded
	}

	if !p.running {
		return p.last, nil
	}

	series, err := p.sampleLocked(p.now().Sub(p.started))
	if err != nil {
		p.running = false
		p.log.Info("plot session stopped", "error", err)

		return p.last, err
	}

	p.last = series

	return series, nil
}

func (p *plotter) SampleAt(elapsed time.Duration) (m.PlotSeries, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prog == nil {
		return nil, ErrNothingLoaded
	}

	return p.sampleLocked(elapsed)
}

func (p *plotter) sampleLocked(elapsed time.Duration) (m.PlotSeries, error) {
	rate := float64(p.cfg.SampleRate)
	base := max(0, int64(math.Floor(elapsed.Seconds()*rate))-int64(p.window)+1)

	taps := p.prog.Taps()
	series := make(m.PlotSeries, 0, len(taps)+1)
	series = append(series, m.Series{Name: m.SeriesSample, Values: make([]float64, p.window)})

	for _, tap := range taps {
		series = append(series, m.Series{Name: tap.Name, Values: make([]float64, p.window)})
	}

	p.scope.History().Reset()

	for i := 0; i < p.window; i++ {
		tick := base + int64(i)

		x := float64(tick)
		if p.cfg.Float {
			x /= rate
		}

		res, err := p.prog.Eval(p.scope, x)
		if err != nil {
			return nil, fmt.Errorf("plotting t=%d: %w", tick, err)
		}

		sample := res.Sample
		if !p.cfg.Float {
			sample = float64(expr.ByteOf(sample))
		}

		series[0].Values[i] = sample

		for j, v := range res.Taps {
			series[j+1].Values[i] = expr.Finite(v)
		}

		if p.cfg.Classic {
			p.scope.History().Push(historyValue(sample, p.cfg.Float))
		}
	}

	return series, nil
}

func historyValue(sample float64, float bool) float64 {
	if float {
		return clampSigned(sample)
	}

	return sample
}

func (p *plotter) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

func (p *plotter) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prog == nil {
		return
	}

	p.started = p.now()
	p.running = true
}

func (p *plotter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.running = false
}

func (p *plotter) Window() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.window
}

func (p *plotter) Taps() []m.Tap {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prog == nil {
		return nil
	}

	return p.prog.Taps()
}
