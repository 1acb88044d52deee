package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

// LogLevel is a log level as spelled in configuration and on the command line.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

const (
	// TraceLevel is one step more verbose than charm's DebugLevel.
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel

	// OffLevel is above every level charm emits, so nothing is logged.
	OffLevel = charm.FatalLevel + 1
)

// ParseLogLevel parses a configured log level. The empty string selects Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	switch l := LogLevel(logLevel); l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff:
		return l, nil
	}
	return "", errors.Wrapf(errUtils.ErrInvalidLogLevel,
		"'%s'. Supported log levels are Trace, Debug, Info, Warning, Off", logLevel)
}

// Level maps the configured level to a charm level.
func (l LogLevel) Level() charm.Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	}
	return InfoLevel
}

// styles returns charm's default styles with a label for the trace level.
func styles() *charm.Styles {
	s := charm.DefaultStyles()
	s.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("61"))
	return s
}
