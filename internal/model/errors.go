package model

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned when nothing is left after stripping comments.
var ErrEmptyExpression = errors.New("empty expression")

// CompileError reports source that cannot be turned into a program.
type CompileError struct {
	// Offset is the byte offset into the stripped expression.
	Offset int
	Msg    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error at %d: %s", e.Offset, e.Msg)
}

// RuntimeError reports a fault raised while evaluating one tick.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Msg
}

// NoticeFor classifies err into a notification.
func NoticeFor(err error) Notification {
	var (
		compileErr *CompileError
		runtimeErr *RuntimeError
	)

	switch {
	case errors.Is(err, ErrEmptyExpression):
		return Notification{Kind: NoticeEmptyExpression, Message: "nothing to evaluate"}
	case errors.As(err, &compileErr):
		return Notification{Kind: NoticeCompileError, Message: compileErr.Error()}
	case errors.As(err, &runtimeErr):
		return Notification{Kind: NoticeRuntimeError, Message: runtimeErr.Error()}
	default:
		return Notification{Kind: NoticeCompileError, Message: err.Error()}
	}
}
