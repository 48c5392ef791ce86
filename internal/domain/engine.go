package domain

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// DefaultDeviceRate is the output device rate used when none is configured.
const DefaultDeviceRate = 44100

const noticeBuffer = 32

// Engine generates audio frames from the current expression. Process is
// called from the audio callback; every other method may be called from any
// goroutine.
type Engine interface {
	// Process fills out with the next mono frames.
	Process(out []float32)
	// Send hands a control message to the engine.
	Send(ctrl m.Control)
	// Notifications delivers compile and runtime reports.
	Notifications() <-chan m.Notification
	// SetGain sets the linear slider position in [0, 1].
	SetGain(gain float64)
	// Tick returns the time counter as of the last processed quantum.
	Tick() int64
	// DeviceRate is the rate Process is driven at.
	DeviceRate() int
}

// snapshot is everything the audio thread needs from one SetExpression.
type snapshot struct {
	program *expr.Program
	scope   *expr.Scope
	rate    int
	classic bool
	float   bool
}

type engine struct {
	compiler   Compiler
	log        *slog.Logger
	deviceRate int

	current atomic.Pointer[snapshot]
	reset   atomic.Bool
	gain    atomic.Uint64
	tick    atomic.Int64
	notices chan m.Notification

	// owned by the audio thread
	active  *snapshot
	t       int64
	acc     float64
	hold    float32
	primed  bool
	halted  bool
	history expr.History
}

// NewEngine creates an Engine driven at deviceRate frames per second.
func NewEngine(compiler Compiler, deviceRate int, log *slog.Logger) Engine {
	if deviceRate <= 0 {
		deviceRate = DefaultDeviceRate
	}

	e := &engine{
		compiler:   compiler,
		log:        orDiscard(log),
		deviceRate: deviceRate,
		notices:    make(chan m.Notification, noticeBuffer),
	}
	e.SetGain(m.DefaultRenderConfig().Gain)

	return e
}

func (e *engine) DeviceRate() int { return e.deviceRate }

func (e *engine) Tick() int64 { return e.tick.Load() }

func (e *engine) Notifications() <-chan m.Notification { return e.notices }

func (e *engine) SetGain(gain float64) {
	coefficient := m.RenderConfig{Gain: gain}.GainCoefficient()
	e.gain.Store(math.Float64bits(coefficient))
}

func (e *engine) Send(ctrl m.Control) {
	switch c := ctrl.(type) {
	case m.SetExpression:
		e.apply(c)
	case m.Reset:
		e.reset.Store(true)
	}
}

func (e *engine) apply(c m.SetExpression) {
	prog, err := e.compiler.Compile(c.Expression, m.TapAuto, c.Classic)
	if err != nil {
		e.log.Info("expression rejected", "error", err)
		e.notify(m.NoticeFor(err))

		return
	}

	snap := &snapshot{
		program: prog,
		scope:   prog.NewScope(&e.history),
		rate:    m.ClampSampleRate(c.SampleRate),
		classic: c.Classic,
		float:   c.Float,
	}
	e.current.Store(snap)

	e.log.Info("expression applied", "rate", snap.rate, "classic", snap.classic, "float", snap.float)
	e.notify(m.Notification{Kind: m.NoticeApplied, Message: fmt.Sprintf("playing at %d Hz", snap.rate)})
}

func (e *engine) notify(n m.Notification) {
	select {
	case e.notices <- n:
	default:
	}
}

func (e *engine) Process(out []float32) {
	if e.reset.CompareAndSwap(true, false) {
		e.t, e.acc, e.hold = 0, 0, 0
		e.primed, e.halted = false, false
		e.history.Reset()
	}

	if snap := e.current.Load(); snap != e.active {
		e.active = snap
		e.primed, e.halted = false, false
	}

	if e.active == nil || e.halted {
		clear(out)
		e.tick.Store(e.t)

		return
	}

	snap := e.active
	gain := float32(math.Float64frombits(e.gain.Load()))
	step := float64(snap.rate) / float64(e.deviceRate)

	for i := range out {
		if !e.primed {
			e.primed = true
			if !e.evaluate(snap) {
				clear(out[i:])

				break
			}
		}

		out[i] = e.hold * gain

		e.acc += step
		for e.acc >= 1 {
			e.acc--
			e.t++

			if !e.evaluate(snap) {
				break
			}
		}

		if e.halted {
			clear(out[i+1:])

			break
		}
	}

	e.tick.Store(e.t)
}

// evaluate computes the held value for the current tick. It reports false
// and halts the engine on a runtime fault.
func (e *engine) evaluate(snap *snapshot) bool {
	x := float64(e.t)
	if snap.float {
		x /= float64(snap.rate)
	}

	res, err := snap.program.Eval(snap.scope, x)
	if err != nil {
		e.halted = true
		e.hold = 0
		e.notify(m.NoticeFor(err))

		return false
	}

	var level float64

	if snap.float {
		level = clampSigned(res.Sample)
		if snap.classic {
			e.history.Push(level)
		}
	} else {
		b := expr.ByteOf(res.Sample)
		level = float64(b)/255*2 - 1

		if snap.classic {
			e.history.Push(float64(b))
		}
	}

	e.hold = float32(level)

	return true
}

func clampSigned(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
