package domain

import (
	"context"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// UI presents workflows to the user. Implementations live in the
// controller package.
type UI interface {
	// Run drives an interactive session until the user quits or ctx ends.
	Run(ctx context.Context, player Player) error
	DisplayNotification(n m.Notification)
	DisplayEval(rows []m.EvalRow, taps []m.Tap) error
	DisplayPlot(out m.Path, plots []m.Plot) error
	Close()
}
