package domain

import (
	"testing"

	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, deviceRate int) Engine {
	t.Helper()

	e := NewEngine(NewCompiler(nil), deviceRate, nil)
	e.SetGain(1)

	return e
}

func drain(ch <-chan m.Notification) []m.Notification {
	var out []m.Notification

	for {
		select {
		case n := <-ch:
			out = append(out, n)
		default:
			return out
		}
	}
}

func kinds(notices []m.Notification) []m.NotificationKind {
	out := make([]m.NotificationKind, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Kind)
	}

	return out
}

func byteLevel(b int) float64 {
	return float64(b)/255*2 - 1
}

func TestEngine_SilentWithoutExpression(t *testing.T) {
	e := newTestEngine(t, 8000)

	out := []float32{1, 1, 1}
	e.Process(out)

	assert.Equal(t, []float32{0, 0, 0}, out)
	assert.Equal(t, int64(0), e.Tick())
}

func TestEngine_ByteModeOnePerFrame(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t", SampleRate: 8000})

	out := make([]float32, 4)
	e.Process(out)

	for i, v := range out {
		assert.InDelta(t, byteLevel(i), v, 1e-6, "frame %d", i)
	}

	assert.Equal(t, int64(4), e.Tick())
	assert.Equal(t, []m.NotificationKind{m.NoticeApplied}, kinds(drain(e.Notifications())))
}

func TestEngine_ByteModeMasksLowByte(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t == 0 ? -1 : 300", SampleRate: 8000})

	out := make([]float32, 2)
	e.Process(out)

	assert.InDelta(t, byteLevel(255), out[0], 1e-6)
	assert.InDelta(t, byteLevel(44), out[1], 1e-6)
}

func TestEngine_StepAndHold(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t*10", SampleRate: 4000})

	out := make([]float32, 6)
	e.Process(out)

	want := []int{0, 0, 10, 10, 20, 20}
	for i := range out {
		assert.InDelta(t, byteLevel(want[i]), out[i], 1e-6, "frame %d", i)
	}

	assert.Equal(t, int64(3), e.Tick())
}

func TestEngine_FasterVirtualRateEvaluatesEveryTick(t *testing.T) {
	e := newTestEngine(t, 1000)
	e.Send(m.SetExpression{Expression: "h + 1", SampleRate: 2000, Classic: true})

	out := make([]float32, 3)
	e.Process(out)

	// every virtual tick pushes into the history, even when not emitted
	assert.InDelta(t, byteLevel(1), out[0], 1e-6)
	assert.InDelta(t, byteLevel(3), out[1], 1e-6)
	assert.InDelta(t, byteLevel(5), out[2], 1e-6)
	assert.Equal(t, int64(6), e.Tick())
}

func TestEngine_ClassicHistory(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "h + 1", SampleRate: 8000, Classic: true})

	out := make([]float32, 5)
	e.Process(out)

	for i, v := range out {
		assert.InDelta(t, byteLevel(i+1), v, 1e-6, "frame %d", i)
	}
}

func TestEngine_FloatMode(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t < 2/8000 ? t : t < 3/8000 ? 2 : -5", SampleRate: 8000, Float: true})

	out := make([]float32, 4)
	e.Process(out)

	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 1.0/8000, out[1], 1e-9)
	assert.InDelta(t, 1, out[2], 1e-9)
	assert.InDelta(t, -1, out[3], 1e-9)
}

func TestEngine_Gain(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.SetGain(0.5)
	e.Send(m.SetExpression{Expression: "255", SampleRate: 8000})

	out := make([]float32, 1)
	e.Process(out)

	assert.InDelta(t, 0.25, out[0], 1e-6)
}

func TestEngine_CompileErrorKeepsPreviousProgram(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t", SampleRate: 8000})
	e.Send(m.SetExpression{Expression: "t +", SampleRate: 8000})

	notices := drain(e.Notifications())
	require.Equal(t, []m.NotificationKind{m.NoticeApplied, m.NoticeCompileError}, kinds(notices))
	assert.True(t, notices[1].IsError())

	out := make([]float32, 3)
	e.Process(out)

	assert.InDelta(t, byteLevel(2), out[2], 1e-6)
}

func TestEngine_EmptyExpression(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "// plot(a)", SampleRate: 8000})

	assert.Equal(t, []m.NotificationKind{m.NoticeEmptyExpression}, kinds(drain(e.Notifications())))

	out := []float32{1}
	e.Process(out)
	assert.Equal(t, []float32{0}, out)
}

func TestEngine_RuntimeErrorSilencesUntilNewExpression(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t > 2 ? t.foo.bar : t", SampleRate: 8000})
	drain(e.Notifications())

	out := make([]float32, 8)
	e.Process(out)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, byteLevel(i), out[i], 1e-6)
	}

	assert.Equal(t, make([]float32, 5), out[3:])
	assert.Equal(t, []m.NotificationKind{m.NoticeRuntimeError}, kinds(drain(e.Notifications())))

	more := []float32{1, 1}
	e.Process(more)
	assert.Equal(t, []float32{0, 0}, more)

	e.Send(m.SetExpression{Expression: "t", SampleRate: 8000})
	e.Process(more)

	// time was not reset by the new expression
	assert.InDelta(t, byteLevel(3), more[0], 1e-6)
	assert.InDelta(t, byteLevel(4), more[1], 1e-6)
}

func TestEngine_Reset(t *testing.T) {
	e := newTestEngine(t, 8000)
	e.Send(m.SetExpression{Expression: "t", SampleRate: 8000})

	out := make([]float32, 4)
	e.Process(out)
	require.Equal(t, int64(4), e.Tick())

	e.Send(m.Reset{})
	e.Process(out)

	assert.InDelta(t, byteLevel(0), out[0], 1e-6)
	assert.Equal(t, int64(4), e.Tick())
}

func TestEngine_RateIsClamped(t *testing.T) {
	e := newTestEngine(t, 48000)
	e.Send(m.SetExpression{Expression: "t", SampleRate: 100000})

	out := make([]float32, 2)
	e.Process(out)

	assert.Equal(t, int64(2), e.Tick())
	assert.Equal(t, 48000, e.DeviceRate())
}
