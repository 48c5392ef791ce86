package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mouse-blink/bytebeat/internal/adapter"
	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// DebounceDelay is how long edits and configuration changes settle before
// they are compiled.
const DebounceDelay = 150 * time.Millisecond

// Player is the controlling side of a live session: it debounces edits,
// feeds the engine and the plotter and owns the audio stream.
//
//nolint:interfacebloat // The UI drives the whole session through this one handle.
type Player interface {
	// Start opens the audio stream if needed, resets time and plays.
	Start() error
	// Stop suspends the audio stream.
	Stop() error
	Toggle() error
	State() m.PlaybackState
	// Edit replaces the source; it is applied after DebounceDelay.
	Edit(source string)
	// Configure replaces the render configuration, debounced like Edit.
	Configure(cfg m.RenderConfig)
	// SetGain changes the output gain immediately.
	SetGain(gain float64)
	// Flush applies pending edits now.
	Flush()
	Source() string
	Config() m.RenderConfig
	Tick() int64
	Sample() (m.PlotSeries, error)
	Notifications() <-chan m.Notification
	// Run relays engine notifications until ctx is done.
	Run(ctx context.Context) error
	Close() error
}

type player struct {
	engine  Engine
	plotter Plotter
	audio   adapter.AudioAdapter
	log     *slog.Logger
	notices chan m.Notification

	// flushMu orders reloads against each other and against state changes;
	// it is always taken before mu.
	flushMu sync.Mutex

	mu     sync.Mutex
	source string
	cfg    m.RenderConfig
	state  m.PlaybackState
	stream adapter.AudioStream
	timer  *time.Timer
}

// NewPlayer creates a stopped Player.
func NewPlayer(engine Engine, plotter Plotter, audio adapter.AudioAdapter, cfg m.RenderConfig, log *slog.Logger) Player {
	cfg = cfg.Normalized()
	engine.SetGain(cfg.Gain)

	return &player{
		engine:  engine,
		plotter: plotter,
		audio:   audio,
		log:     orDiscard(log),
		notices: make(chan m.Notification, noticeBuffer),
		cfg:     cfg,
	}
}

// DetectTapMode picks annotation mode when the source carries
// `// plot(name)` comments.
func DetectTapMode(source string) m.TapMode {
	if len(expr.ParseAnnotations(source)) > 0 {
		return m.TapAnnotation
	}

	return m.TapAuto
}

func (p *player) Edit(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.source = source
	p.scheduleLocked()
}

func (p *player) Configure(cfg m.RenderConfig) {
	cfg = cfg.Normalized()
	p.engine.SetGain(cfg.Gain)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg = cfg
	p.scheduleLocked()
}

func (p *player) SetGain(gain float64) {
	p.mu.Lock()
	p.cfg = m.NewRenderConfig(p.cfg.SampleRate, p.cfg.Classic, p.cfg.Float, gain)
	gain = p.cfg.Gain
	p.mu.Unlock()

	p.engine.SetGain(gain)
}

func (p *player) scheduleLocked() {
	if p.timer != nil {
		p.timer.Stop()
	}

	p.timer = time.AfterFunc(DebounceDelay, p.Flush)
}

func (p *player) Flush() {
	p.flushMu.Lock()
	defer p.flushMu.Unlock()

	p.flushLocked()
}

func (p *player) flushLocked() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	source, cfg, state := p.source, p.cfg, p.state
	p.mu.Unlock()

	p.engine.Send(m.SetExpression{
		Expression: source,
		SampleRate: cfg.SampleRate,
		Classic:    cfg.Classic,
		Float:      cfg.Float,
	})

	if err := p.plotter.Load(source, cfg, DetectTapMode(source)); err != nil {
		// the engine reports the same compile error
		p.log.Debug("plot not reloaded", "error", err)

		return
	}

	if state != m.Running {
		p.plotter.Stop()
	}
}

func (p *player) Start() error {
	p.flushMu.Lock()
	defer p.flushMu.Unlock()

	p.flushLocked()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		stream, err := p.audio.Open(p.engine.Process)
		if err != nil {
			return fmt.Errorf("opening audio output: %w", err)
		}

		p.stream = stream
	}

	p.engine.Send(m.Reset{})

	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("starting audio output: %w", err)
	}

	p.plotter.Resume()
	p.setStateLocked(m.Running)

	return nil
}

func (p *player) Stop() error {
	p.flushMu.Lock()
	defer p.flushMu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != m.Running {
		return nil
	}

	if err := p.stream.Stop(); err != nil {
		return fmt.Errorf("suspending audio output: %w", err)
	}

	p.plotter.Stop()
	p.setStateLocked(m.Suspended)

	return nil
}

func (p *player) Toggle() error {
	if p.State() == m.Running {
		return p.Stop()
	}

	return p.Start()
}

func (p *player) Close() error {
	p.flushMu.Lock()
	defer p.flushMu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	var err error

	if p.stream != nil {
		err = errors.Join(p.stream.Stop(), p.stream.Close())
		p.stream = nil
	}

	p.plotter.Stop()
	p.setStateLocked(m.Stopped)

	if err != nil {
		return fmt.Errorf("closing audio output: %w", err)
	}

	return nil
}

func (p *player) setStateLocked(state m.PlaybackState) {
	if p.state == state {
		return
	}

	p.state = state
	p.log.Info("playback", "state", state)
	p.notify(m.Notification{Kind: m.NoticeState, Message: state.String()})
}

func (p *player) notify(n m.Notification) {
	select {
	case p.notices <- n:
	default:
		p.log.Warn("notification dropped", "kind", n.Kind)
	}
}

func (p *player) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-p.engine.Notifications():
			p.notify(n)
		}
	}
}

func (p *player) State() m.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.source
}

func (p *player) Config() m.RenderConfig {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cfg
}

func (p *player) Tick() int64 { return p.engine.Tick() }

func (p *player) Sample() (m.PlotSeries, error) { return p.plotter.Sample() }

func (p *player) Notifications() <-chan m.Notification { return p.notices }
