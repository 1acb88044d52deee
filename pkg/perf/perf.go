// Package perf records wall-clock durations of instrumented functions.
//
// Instrumented functions start with:
//
//	defer perf.Track(cfg, "pkg.Func")()
//
// Tracking is a no-op until it is enabled either globally with EnableTracking or
// through the profiler section of the configuration passed to Track.
package perf

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cloudposse/yamlbridge/pkg/schema"
)

const (
	// Histogram bounds in microseconds: 1us to 1h, 3 significant figures.
	minTrackable = 1
	maxTrackable = int64(time.Hour / time.Microsecond)
	sigFigs      = 3
)

var (
	enabled atomic.Bool

	mu         sync.Mutex
	histograms = map[string]*entry{}
)

type entry struct {
	hist  *hdrhistogram.Histogram
	total time.Duration
}

// Stat is a summary of the durations recorded for one tracked name.
type Stat struct {
	Name  string
	Count int64
	Total time.Duration
	P50   time.Duration
	P99   time.Duration
	Max   time.Duration
}

func noop() {}

// EnableTracking turns global tracking on or off.
func EnableTracking(on bool) {
	enabled.Store(on)
}

// IsTrackingEnabled reports whether global tracking is on.
func IsTrackingEnabled() bool {
	return enabled.Load()
}

// Track starts timing name and returns the function that stops the timer.
func Track(cfg *schema.Configuration, name string) func() {
	if !enabled.Load() && (cfg == nil || !cfg.Profiler.Enabled) {
		return noop
	}

	start := time.Now()
	return func() {
		record(name, time.Since(start))
	}
}

func record(name string, d time.Duration) {
	us := d.Microseconds()
	if us < minTrackable {
		us = minTrackable
	}
	if us > maxTrackable {
		us = maxTrackable
	}

	mu.Lock()
	defer mu.Unlock()

	e, ok := histograms[name]
	if !ok {
		e = &entry{hist: hdrhistogram.New(minTrackable, maxTrackable, sigFigs)}
		histograms[name] = e
	}
	// Values are clamped to the histogram bounds, so RecordValue cannot fail.
	_ = e.hist.RecordValue(us)
	e.total += d
}

// Snapshot returns the recorded statistics ordered by total time, slowest first.
func Snapshot() []Stat {
	mu.Lock()
	defer mu.Unlock()

	stats := make([]Stat, 0, len(histograms))
	for name, e := range histograms {
		stats = append(stats, Stat{
			Name:  name,
			Count: e.hist.TotalCount(),
			Total: e.total,
			P50:   time.Duration(e.hist.ValueAtQuantile(50)) * time.Microsecond,
			P99:   time.Duration(e.hist.ValueAtQuantile(99)) * time.Microsecond,
			Max:   time.Duration(e.hist.Max()) * time.Microsecond,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total == stats[j].Total {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Total > stats[j].Total
	})
	return stats
}

// Reset discards every recorded duration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	histograms = map[string]*entry{}
}

// Report writes a table of the recorded statistics to w.
func Report(w io.Writer) error {
	stats := Snapshot()
	if len(stats) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.Count),
			s.Total.String(),
			s.P50.String(),
			s.P99.String(),
			s.Max.String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Function", "Count", "Total", "P50", "P99", "Max").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}
