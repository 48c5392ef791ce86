// Package model defines the data structures shared by the bytebeat engine,
// the plotter and the user interfaces.
package model

import "strings"

// Path represents a file system path.
type Path string

// Source is the raw expression text as entered by the user.
type Source struct {
	// Origin is the file the text was read from, empty for inline code.
	Origin Path
	// Hash is a content fingerprint used to skip redundant recompiles.
	Hash string
	Text string
}

// StripComments removes everything after `//` on each line, joins the
// remaining lines and trims the result.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		lines[i] = strings.TrimRight(line, " \t\r")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Expression returns the evaluable part of the source.
func (s Source) Expression() string {
	return StripComments(s.Text)
}
