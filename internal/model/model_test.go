package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "t & t >> 8", "t & t >> 8"},
		{"trailing comment", "t*5 // plot(t)", "t*5"},
		{"comment only", "// plot(a)", ""},
		{"multi line", "a = t*2 // plot(a)\n// note\n  a >> 1  \n", "a = t*2\n\n  a >> 1"},
		{"crlf", "t\r\n", "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.in))
			assert.Equal(t, tt.want, Source{Text: tt.in}.Expression())
		})
	}
}

func TestClampWindow(t *testing.T) {
	assert.Equal(t, 8, ClampWindow(1))
	assert.Equal(t, 256, ClampWindow(256))
	assert.Equal(t, 4096, ClampWindow(9999))
}

func TestTapMode_String(t *testing.T) {
	assert.Equal(t, "auto", TapAuto.String())
	assert.Equal(t, "annotation", TapAnnotation.String())
}

func TestPlaybackState_String(t *testing.T) {
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "suspended", Suspended.String())
}

func TestPlotSeries(t *testing.T) {
	series := PlotSeries{
		{Name: SeriesSample, Values: []float64{1}},
		{Name: "melody", Values: []float64{2}},
		{Name: "melody", Values: []float64{3}},
	}

	assert.Equal(t, []string{"sample", "melody", "melody"}, series.Names())

	got, ok := series.Get("melody")
	assert.True(t, ok)
	assert.Equal(t, []float64{2}, got.Values)

	_, ok = series.Get("bass")
	assert.False(t, ok)
}

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want NotificationKind
	}{
		{"empty", fmt.Errorf("compiling expression: %w", ErrEmptyExpression), NoticeEmptyExpression},
		{"compile", fmt.Errorf("compiling expression: %w", &CompileError{Offset: 3, Msg: "unexpected )"}), NoticeCompileError},
		{"runtime", &RuntimeError{Msg: "cannot read foo of a number"}, NoticeRuntimeError},
		{"other", errors.New("boom"), NoticeCompileError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NoticeFor(tt.err)
			assert.Equal(t, tt.want, n.Kind)
			assert.True(t, n.IsError())
			assert.NotEmpty(t, n.Message)
		})
	}
}

func TestNotification_IsError(t *testing.T) {
	assert.False(t, Notification{Kind: NoticeState}.IsError())
	assert.False(t, Notification{Kind: NoticeApplied}.IsError())
	assert.True(t, Notification{Kind: NoticeRuntimeError}.IsError())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "compile error at 4: unexpected end of input", (&CompileError{Offset: 4, Msg: "unexpected end of input"}).Error())
	assert.Equal(t, "runtime error: x is not defined", (&RuntimeError{Msg: "x is not defined"}).Error())
}
