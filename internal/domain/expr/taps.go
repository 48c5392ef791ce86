package expr

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// numberPlotCalls assigns tap indices to plot(...) calls in post-order, so
// nested calls are numbered before the call enclosing them, and returns the
// taps in that order.
func numberPlotCalls(src string, stmts []node) []m.Tap {
	var taps []m.Tap

	for _, stmt := range stmts {
		walkPostOrder(stmt, func(n node) {
			call, ok := n.(*plotCall)
			if !ok {
				return
			}

			call.index = len(taps)
			taps = append(taps, m.Tap{Name: tapName(src[call.argPos:call.argEnd], call.index)})
		})
	}

	return taps
}

func tapName(argument string, index int) string {
	if name := strings.TrimSpace(argument); name != "" {
		return name
	}

	return fmt.Sprintf("plot %d", index+1)
}
