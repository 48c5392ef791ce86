package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSampleRate(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{100, 500},
		{500, 500},
		{8000, 8000},
		{48000, 48000},
		{100000, 48000},
		{-1, 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSampleRate(tt.in), "ClampSampleRate(%d)", tt.in)
	}
}

func TestNewRenderConfig_ClampsGain(t *testing.T) {
	assert.Equal(t, 0.0, NewRenderConfig(8000, false, false, -0.5).Gain)
	assert.Equal(t, 1.0, NewRenderConfig(8000, false, false, 2).Gain)
	assert.Equal(t, 0.0, NewRenderConfig(8000, false, false, math.NaN()).Gain)
	assert.Equal(t, 0.3, NewRenderConfig(8000, true, true, 0.3).Gain)
}

func TestRenderConfig_Normalized(t *testing.T) {
	cfg := RenderConfig{SampleRate: 100000, Classic: true, Float: true, Gain: 7}

	assert.Equal(t, RenderConfig{SampleRate: 48000, Classic: true, Float: true, Gain: 1}, cfg.Normalized())
}

func TestRenderConfig_GainCoefficient(t *testing.T) {
	assert.InDelta(t, 0.25, RenderConfig{Gain: 0.5}.GainCoefficient(), 1e-12)
	assert.Equal(t, 1.0, RenderConfig{Gain: 1}.GainCoefficient())
	assert.Equal(t, 0.0, RenderConfig{Gain: 0}.GainCoefficient())
	assert.Equal(t, 1.0, RenderConfig{Gain: 3}.GainCoefficient())
}

func TestDefaultRenderConfig(t *testing.T) {
	cfg := DefaultRenderConfig()

	assert.Equal(t, DefaultSampleRate, cfg.SampleRate)
	assert.Equal(t, 0.5, cfg.Gain)
	assert.False(t, cfg.Classic)
	assert.False(t, cfg.Float)
}
