// Package metrics records search statistics on a private prometheus
// registry and exports them as a text file at the end of a run.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels a finished search.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

// Summary is a plain copy of the counters, for logging.
type Summary struct {
	Searches   int
	Discovered int
	Pushes     int
	Snapshots  int
	PathLength int
	Elapsed    time.Duration
}

// Recorder holds and manages search metrics.
type Recorder struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	data     Summary

	searches   *prometheus.CounterVec
	discovered *prometheus.CounterVec
	pushes     *prometheus.CounterVec
	snapshots  prometheus.Counter
	pathLength prometheus.Gauge
	duration   *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazesolver_searches_total",
			Help: "Completed searches by mode and outcome.",
		}, []string{"mode", "outcome"}),
		discovered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazesolver_discovered_cells_total",
			Help: "Cells discovered (each at most once per search).",
		}, []string{"mode"}),
		pushes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazesolver_frontier_pushes_total",
			Help: "Frontier insertions including duplicates.",
		}, []string{"mode"}),
		snapshots: f.NewCounter(prometheus.CounterOpts{
			Name: "mazesolver_snapshots_total",
			Help: "Progress frames written.",
		}),
		pathLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "mazesolver_path_length_cells",
			Help: "Cells on the most recent solution path.",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazesolver_search_duration_seconds",
			Help:    "Wall time of a search including hooks.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}, []string{"mode"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(mode string, outcome Outcome, discovered, pushes int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.searches.WithLabelValues(mode, string(outcome)).Inc()
	r.discovered.WithLabelValues(mode).Add(float64(discovered))
	r.pushes.WithLabelValues(mode).Add(float64(pushes))
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())

	r.data.Searches++
	r.data.Discovered += discovered
	r.data.Pushes += pushes
	r.data.Elapsed += elapsed
}

// SnapshotWritten counts one progress frame.
func (r *Recorder) SnapshotWritten() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots.Inc()
	r.data.Snapshots++
}

// SetPathLength records the length of the latest solution.
func (r *Recorder) SetPathLength(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathLength.Set(float64(n))
	r.data.PathLength = n
}

// GetSnapshot returns a copy of current metrics.
func (r *Recorder) GetSnapshot() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.data
}

// WriteToFile exports all metrics in the prometheus text format.
func (r *Recorder) WriteToFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// LogProgress formats the current counters as one line.
func (r *Recorder) LogProgress() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fmt.Sprintf("Searches: %d | Cells: %d discovered, %d pushed | Frames: %d | Path: %d cells | Time: %s",
		r.data.Searches,
		r.data.Discovered,
		r.data.Pushes,
		r.data.Snapshots,
		r.data.PathLength,
		r.data.Elapsed.Round(time.Millisecond),
	)
}
