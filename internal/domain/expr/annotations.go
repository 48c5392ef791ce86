package expr

import (
	"strconv"
	"strings"
	"unicode"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// ParseAnnotations collects `// plot(name[, window])` comments from source,
// one per line, in line order. Requested windows are clamped.
func ParseAnnotations(source string) []m.Tap {
	var taps []m.Tap

	for _, line := range strings.Split(source, "\n") {
		idx := strings.Index(line, "//")
		if idx < 0 {
			continue
		}

		if tap, ok := parsePlotDirective(line[idx+2:]); ok {
			taps = append(taps, tap)
		}
	}

	return taps
}

// AnnotationWindow is the largest window requested by taps, or
// DefaultAnnotationWindow when none asked for one.
func AnnotationWindow(taps []m.Tap) int {
	window := 0

	for _, tap := range taps {
		if tap.Window > window {
			window = tap.Window
		}
	}

	if window == 0 {
		return m.DefaultAnnotationWindow
	}

	return window
}

func parsePlotDirective(comment string) (m.Tap, bool) {
	s := strings.TrimSpace(comment)
	if !strings.HasPrefix(s, "plot(") {
		return m.Tap{}, false
	}

	s = strings.TrimPrefix(s, "plot(")

	end := strings.Index(s, ")")
	if end < 0 {
		return m.Tap{}, false
	}

	parts := strings.Split(s[:end], ",")
	if len(parts) > 2 {
		return m.Tap{}, false
	}

	name := strings.TrimSpace(parts[0])
	if !isIdentifier(name) {
		return m.Tap{}, false
	}

	tap := m.Tap{Name: name}

	if len(parts) == 2 {
		window, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || window < 0 {
			return m.Tap{}, false
		}

		tap.Window = m.ClampWindow(window)
	}

	return tap, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
