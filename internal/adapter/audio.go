package adapter

import (
	"sync"
	"time"
)

// ProcessFunc fills one buffer of mono output frames. It is called from the
// audio thread and must not block.
type ProcessFunc func(out []float32)

// AudioAdapter opens output streams on an audio backend.
type AudioAdapter interface {
	// DeviceRate is the frame rate streams are opened at.
	DeviceRate() int
	Open(process ProcessFunc) (AudioStream, error)
}

// AudioStream is an opened output stream. Start resumes a stopped stream.
type AudioStream interface {
	Start() error
	Stop() error
	Close() error
}

// NullAudioAdapter drives the process callback from a ticker at the nominal
// device rate and discards the frames. It backs headless sessions.
type NullAudioAdapter struct {
	rate   int
	frames int
}

// NewNullAudioAdapter creates a NullAudioAdapter delivering buffers of
// frames frames at rate frames per second.
func NewNullAudioAdapter(rate, frames int) *NullAudioAdapter {
	return &NullAudioAdapter{rate: rate, frames: frames}
}

// DeviceRate returns the nominal frame rate.
func (a *NullAudioAdapter) DeviceRate() int { return a.rate }

// Open creates a stopped ticker stream.
func (a *NullAudioAdapter) Open(process ProcessFunc) (AudioStream, error) {
	period := time.Duration(float64(time.Second) * float64(a.frames) / float64(a.rate))

	return &tickerStream{
		process: process,
		buf:     make([]float32, a.frames),
		period:  period,
	}, nil
}

type tickerStream struct {
	process ProcessFunc
	buf     []float32
	period  time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func (s *tickerStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(s.stop, s.done)

	return nil
}

func (s *tickerStream) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.process(s.buf)
		}
	}
}

func (s *tickerStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop == nil {
		return nil
	}

	close(s.stop)
	<-s.done

	s.stop, s.done = nil, nil

	return nil
}

func (s *tickerStream) Close() error {
	return s.Stop()
}
