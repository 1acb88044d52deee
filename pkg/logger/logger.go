package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/cloudposse/yamlbridge/pkg/schema"
)

// Logger wraps a charm logger with the trace level and file handling used by the CLI.
type Logger struct {
	*charm.Logger

	file *os.File
}

// NewWithCharm wraps an existing charm logger.
func NewWithCharm(l *charm.Logger) *Logger {
	l.SetStyles(styles())
	return &Logger{Logger: l}
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return NewWithCharm(charm.New(w))
}

// NewLogger returns a logger at level writing to file. Besides regular files, file may be
// /dev/stderr, /dev/stdout or /dev/null. An empty file means stderr.
func NewLogger(level charm.Level, file string) (*Logger, error) {
	var (
		w     io.Writer
		owned *os.File
	)

	switch file {
	case "", "/dev/stderr":
		w = os.Stderr
	case "/dev/stdout":
		charm.Warn("Sending logs to stdout will break commands that write their result to stdout")
		w = os.Stdout
	case "/dev/null":
		w = io.Discard
	default:
		if strings.HasPrefix(file, "/dev/") {
			return nil, errors.Newf("unsupported device file '%s' for logs", file)
		}
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file '%s'", file)
		}
		w, owned = f, f
	}

	l := NewWithWriter(w)
	l.SetLevel(level)
	l.file = owned
	return l, nil
}

// NewLoggerFromConfig builds a logger from the logs section of the configuration.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}
	return NewLogger(level.Level(), cfg.Logs.File)
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// Tracef logs a formatted message at TraceLevel.
func (l *Logger) Tracef(format string, args ...any) {
	l.Log(TraceLevel, fmt.Sprintf(format, args...))
}

// SetLogLevel changes the level of the logger.
func (l *Logger) SetLogLevel(level charm.Level) error {
	l.SetLevel(level)
	return nil
}

// GetLevelString returns the level name, including "trace" and "off".
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return level.String()
	}
}

// Close releases the log file, if the logger opened one.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
