// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the regpoly command.
// Library packages never log; only the CLI layer does.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-encoded logger writing to w.
// It logs at Info, or at Debug when debug is set.
func New(w io.Writer, debug bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core)
}

// Sync flushes l, ignoring the error some terminals return for stderr.
func Sync(l *zap.Logger) {
	_ = l.Sync()
}
