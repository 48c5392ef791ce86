// Package controller provides the user interfaces for bytebeat sessions.
package controller

import (
	"strconv"

	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

var (
	_ domain.UI = (*SimpleUI)(nil)
	_ domain.UI = (*TUI)(nil)
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func evalHeader(taps []m.Tap) []string {
	header := []string{"t", "Sample", "Output"}
	for _, tap := range taps {
		header = append(header, tap.Name)
	}

	return header
}

func evalRecord(row m.EvalRow, taps []m.Tap) []string {
	record := []string{formatValue(row.T), formatValue(row.Sample), strconv.Itoa(row.Output)}

	for i := range taps {
		value := "-"
		if i < len(row.Taps) {
			value = formatValue(row.Taps[i])
		}

		record = append(record, value)
	}

	return record
}

func notificationText(n m.Notification) string {
	if n.IsError() {
		return "error: " + n.Message
	}

	return n.Message
}
