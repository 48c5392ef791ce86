package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// frameInterval paces plot sampling and repaint.
const frameInterval = time.Second / 30

// Message types.
type frameMsg time.Time

type notificationMsg m.Notification

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
