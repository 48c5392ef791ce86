package model

// Control is a message sent from the controlling side to the audio engine.
type Control interface {
	control()
}

// SetExpression replaces the engine's expression and parameters.
type SetExpression struct {
	Expression string
	SampleRate int
	Classic    bool
	Float      bool
}

// Reset zeroes the engine time counter and history.
type Reset struct{}

func (SetExpression) control() {}
func (Reset) control()         {}

// NotificationKind classifies engine and player notifications.
type NotificationKind string

// Notification kinds.
const (
	NoticeCompileError    NotificationKind = "compileError"
	NoticeRuntimeError    NotificationKind = "runtimeError"
	NoticeEmptyExpression NotificationKind = "emptyExpression"
	NoticeState           NotificationKind = "state"
	NoticeApplied         NotificationKind = "applied"
)

// Notification is advisory text for the user.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// IsError reports whether n describes a failure.
func (n Notification) IsError() bool {
	switch n.Kind {
	case NoticeCompileError, NoticeRuntimeError, NoticeEmptyExpression:
		return true
	default:
		return false
	}
}
