package model

// Plot window bounds.
const (
	// MinWindow and MaxWindow bound windows requested by plot annotations.
	MinWindow = 8
	MaxWindow = 4096
	// DefaultAnnotationWindow is used when no annotation asks for a window.
	DefaultAnnotationWindow = 256
	// DefaultPlotWindow is the window of auto-mode plots.
	DefaultPlotWindow = 8000
)

// TapMode selects how plot taps are discovered in the source.
type TapMode int

const (
	// TapAuto records inline plot(expr) calls.
	TapAuto TapMode = iota
	// TapAnnotation reads `// plot(name[, window])` comments.
	TapAnnotation
)

func (m TapMode) String() string {
	if m == TapAnnotation {
		return "annotation"
	}

	return "auto"
}

// Tap is a point of the expression marked for plotting.
type Tap struct {
	Name string
	// Window is the requested plot window, zero when none was given.
	Window int
}

// ClampWindow limits an annotation window to [MinWindow, MaxWindow].
func ClampWindow(window int) int {
	if window < MinWindow {
		return MinWindow
	}

	if window > MaxWindow {
		return MaxWindow
	}

	return window
}
