package perf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/yamlbridge/pkg/schema"
)

func reset(t *testing.T) {
	t.Helper()
	EnableTracking(false)
	Reset()
	t.Cleanup(func() {
		EnableTracking(false)
		Reset()
	})
}

func TestTrack_Disabled(t *testing.T) {
	reset(t)

	Track(nil, "noop")()
	Track(&schema.Configuration{}, "noop")()
	assert.Empty(t, Snapshot())

	var buf bytes.Buffer
	require.NoError(t, Report(&buf))
	assert.Empty(t, buf.String())
}

func TestTrack_Global(t *testing.T) {
	reset(t)
	EnableTracking(true)
	assert.True(t, IsTrackingEnabled())

	for range 3 {
		Track(nil, "fast")()
	}
	done := Track(nil, "slow")
	time.Sleep(2 * time.Millisecond)
	done()

	stats := Snapshot()
	require.Len(t, stats, 2)
	assert.Equal(t, "slow", stats[0].Name)
	assert.Equal(t, int64(1), stats[0].Count)
	assert.GreaterOrEqual(t, stats[0].Total, 2*time.Millisecond)
	assert.Equal(t, "fast", stats[1].Name)
	assert.Equal(t, int64(3), stats[1].Count)
	assert.LessOrEqual(t, stats[1].P50, stats[1].Max)
}

func TestTrack_FromConfig(t *testing.T) {
	reset(t)

	cfg := &schema.Configuration{Profiler: schema.Profiler{Enabled: true}}
	Track(cfg, "configured")()
	Track(nil, "ignored")()

	stats := Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, "configured", stats[0].Name)
}

func TestReport(t *testing.T) {
	reset(t)
	EnableTracking(true)
	Track(nil, "bridge.Convert")()

	var buf bytes.Buffer
	require.NoError(t, Report(&buf))
	out := buf.String()
	assert.Contains(t, out, "Function")
	assert.Contains(t, out, "P99")
	assert.Contains(t, out, "bridge.Convert")

	Reset()
	assert.Empty(t, Snapshot())
}
