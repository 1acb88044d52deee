package logger

import (
	"bytes"
	"testing"

	log "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestTraceLevel_RelativeToDebug(t *testing.T) {
	// Trace is exactly one level more verbose than debug.
	assert.Equal(t, log.DebugLevel-1, TraceLevel)
	assert.Less(t, int(TraceLevel), int(log.DebugLevel))
	assert.Greater(t, int(OffLevel), int(log.FatalLevel))
}

func TestPackageLevelFunctions(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	var buf bytes.Buffer
	testLogger := NewWithWriter(&buf)
	SetDefault(testLogger)

	tests := []struct {
		name         string
		level        log.Level
		traceVisible bool
		debugVisible bool
		infoVisible  bool
	}{
		{"Trace level shows all", TraceLevel, true, true, true},
		{"Debug level hides trace", log.DebugLevel, false, true, true},
		{"Info level hides trace and debug", log.InfoLevel, false, false, true},
		{"Warn level hides trace, debug, and info", log.WarnLevel, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger.SetLevel(tt.level)

			buf.Reset()
			Trace("trace message", "path", "$.a")
			assert.Equal(t, tt.traceVisible, bytes.Contains(buf.Bytes(), []byte("trace message")))

			buf.Reset()
			Debug("debug message")
			assert.Equal(t, tt.debugVisible, bytes.Contains(buf.Bytes(), []byte("debug message")))

			buf.Reset()
			Info("info message")
			assert.Equal(t, tt.infoVisible, bytes.Contains(buf.Bytes(), []byte("info message")))

			buf.Reset()
			Warn("warn message")
			assert.Contains(t, buf.String(), "warn message")
		})
	}
}

func TestTraceWithKeyValues(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	var buf bytes.Buffer
	testLogger := NewWithWriter(&buf)
	testLogger.SetLevel(TraceLevel)
	SetDefault(testLogger)

	Trace("converted", "documents", 2, "format", "json")
	Tracef("formatted %s with %d items", "message", 42)

	output := buf.String()
	for _, want := range []string{"converted", "documents", "2", "format", "json", "formatted message with 42 items"} {
		assert.Contains(t, output, want)
	}
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	current := Default()
	SetDefault(nil)
	assert.Same(t, current, Default())
}
