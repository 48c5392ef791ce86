package adapter

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioAdapter plays through the default PortAudio output device.
type PortAudioAdapter struct {
	rate   int
	frames int
}

// NewPortAudioAdapter creates a PortAudioAdapter opening mono streams at
// rate with frames frames per buffer.
func NewPortAudioAdapter(rate, frames int) *PortAudioAdapter {
	return &PortAudioAdapter{rate: rate, frames: frames}
}

// DeviceRate returns the rate streams are opened at.
func (a *PortAudioAdapter) DeviceRate() int { return a.rate }

// Open initializes PortAudio and opens a stopped default output stream.
// Every opened stream holds one PortAudio initialization until closed.
func (a *PortAudioAdapter) Open(process ProcessFunc) (AudioStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(a.rate), a.frames, func(out []float32) {
		process(out)
	})
	if err != nil {
		_ = portaudio.Terminate()

		return nil, fmt.Errorf("opening default output stream: %w", err)
	}

	return &portAudioStream{stream: stream}, nil
}

type portAudioStream struct {
	stream *portaudio.Stream

	mu      sync.Mutex
	started bool
	closed  bool
}

func (s *portAudioStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.closed {
		return nil
	}

	if err := s.stream.Start(); err != nil {
		return err
	}

	s.started = true

	return nil
}

func (s *portAudioStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.started = false

	return s.stream.Stop()
}

func (s *portAudioStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.started = false

	err := s.stream.Close()
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}

	return err
}
