package model

// PlaybackState describes the audio output lifecycle.
type PlaybackState int

// Available PlaybackState values.
const (
	Stopped PlaybackState = iota
	Running
	Suspended
)

func (s PlaybackState) String() string {
	switch s {
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	default:
		return "stopped"
	}
}
