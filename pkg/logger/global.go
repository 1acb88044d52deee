package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	// Initialize with charm's default logger.
	defaultLogger.Store(NewWithCharm(charm.Default()))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// Trace logs at TraceLevel on the default logger.
func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

// Tracef logs a formatted message at TraceLevel on the default logger.
func Tracef(format string, args ...any) {
	Default().Log(TraceLevel, fmt.Sprintf(format, args...))
}

func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}
