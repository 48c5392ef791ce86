package model

// Sample rate bounds accepted by the engine and the plotter.
const (
	MinSampleRate     = 500
	MaxSampleRate     = 48000
	DefaultSampleRate = 8000
)

// RenderConfig holds the user-facing playback parameters.
type RenderConfig struct {
	SampleRate int
	// Classic exposes the previous output values to the expression as `h`.
	Classic bool
	// Float evaluates `t` in seconds and skips byte quantization.
	Float bool
	// Gain is the linear slider position in [0, 1].
	Gain float64
}

// DefaultRenderConfig returns the configuration used when no flags are set.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{SampleRate: DefaultSampleRate, Gain: 0.5}
}

// NewRenderConfig builds a RenderConfig with every value clamped into range.
func NewRenderConfig(sampleRate int, classic, float bool, gain float64) RenderConfig {
	return RenderConfig{
		SampleRate: ClampSampleRate(sampleRate),
		Classic:    classic,
		Float:      float,
		Gain:       clampUnit(gain),
	}
}

// Normalized returns a copy of c with the sample rate and gain clamped.
func (c RenderConfig) Normalized() RenderConfig {
	return NewRenderConfig(c.SampleRate, c.Classic, c.Float, c.Gain)
}

// GainCoefficient maps the linear slider onto a squared amplitude factor.
func (c RenderConfig) GainCoefficient() float64 {
	g := clampUnit(c.Gain)

	return g * g
}

// ClampSampleRate limits rate to [MinSampleRate, MaxSampleRate].
func ClampSampleRate(rate int) int {
	if rate < MinSampleRate {
		return MinSampleRate
	}

	if rate > MaxSampleRate {
		return MaxSampleRate
	}

	return rate
}

func clampUnit(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
