// Package logging builds the diagnostic logger used by the command line.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at Info level and above.
// Timestamps and caller information are omitted so diagnostics are stable
// across runs.
func New(w io.Writer) *zap.Logger {
	return NewWithLevel(w, zapcore.InfoLevel)
}

func NewWithLevel(w io.Writer, level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
