package util

import (
	"log/slog"
)

// ErrorLogger may be used to report errors. Implementations may decide
// to log, mutate, redirect and discard them. This interface is used in
// places where errors are generated asynchronously, meaning they cannot
// be returned to the caller directly.
type ErrorLogger interface {
	Log(err error)
}

type slogErrorLogger struct {
	logger *slog.Logger
}

// NewSlogErrorLogger creates an ErrorLogger that writes errors to a
// structured logger at level ERROR.
func NewSlogErrorLogger(logger *slog.Logger) ErrorLogger {
	return slogErrorLogger{logger: logger}
}

func (l slogErrorLogger) Log(err error) {
	l.logger.Error(err.Error())
}

type defaultErrorLogger struct{}

func (defaultErrorLogger) Log(err error) {
	slog.Default().Error(err.Error())
}

// DefaultErrorLogger writes errors to the default structured logger.
// The logger is looked up every time an error is logged, so that
// changes made through slog.SetDefault() are respected.
var DefaultErrorLogger ErrorLogger = defaultErrorLogger{}
