package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// Compiler turns expression source into an evaluable program.
type Compiler interface {
	Compile(source string, mode m.TapMode, classic bool) (*expr.Program, error)
}

type compiler struct {
	log *slog.Logger
}

// NewCompiler creates a Compiler that logs every compilation outcome.
func NewCompiler(log *slog.Logger) Compiler {
	return &compiler{log: orDiscard(log)}
}

func (c *compiler) Compile(source string, mode m.TapMode, classic bool) (*expr.Program, error) {
	opts := expr.Options{Classic: classic}

	var (
		prog *expr.Program
		err  error
	)

	if mode == m.TapAnnotation {
		prog, err = expr.CompileAnnotated(source, opts)
	} else {
		prog, err = expr.Compile(source, opts)
	}

	if err != nil {
		c.log.Debug("compile failed", "mode", mode, "error", err)

		return nil, fmt.Errorf("compiling expression: %w", err)
	}

	c.log.Debug("compiled", "mode", mode, "classic", classic, "taps", len(prog.Taps()))

	return prog, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}

	return log
}
