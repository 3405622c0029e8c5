// pkg/logger/logger.go

// Package logger wraps zap's sugared logger with the small surface the
// server needs.
package logger

import (
	"go.uber.org/zap"
)

// Logger is a thin wrapper so callers do not import zap directly.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a production logger writing JSON to stdout. Development mode
// switches to the human-readable console encoder.
func New(development bool) (*Logger, error) {
	var zapLogger *zap.Logger
	var err error
	if development {
		zapLogger, err = zap.NewDevelopment()
	} else {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		zapLogger, err = config.Build()
	}
	if err != nil {
		return nil, err
	}
	return &Logger{zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// WithComponent tags every entry with the component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.SugaredLogger.With("component", name)}
}
