package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the logger shared by the invocation and sequence packages.
// It is a no-op logger until Set is called.
func L() *zap.Logger {
	return current.Load()
}

// Set replaces the shared logger and returns a function restoring the previous one.
// A nil logger installs a no-op logger.
func Set(logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// NewDevelopment builds a console logger at debug level writing to stdout.
func NewDevelopment() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}
