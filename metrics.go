package partstat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordStats is called after each stats request. cached reports whether
	// the result was served from the identity cache without a scan, duration
	// is the total time taken, err is nil if successful.
	RecordStats(datasetID int64, partitions int, cached bool, duration time.Duration, err error)

	// RecordDecompose is called after a union parent's scan records are
	// decomposed. children is the number of child segments, seeded is how
	// many of them had stats newly stored (children already cached are not
	// touched).
	RecordDecompose(datasetID int64, children, seeded int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStats(int64, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecompose(int64, int, int)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StatsCount        atomic.Int64
	StatsErrors       atomic.Int64
	StatsCached       atomic.Int64
	StatsTotalNanos   atomic.Int64
	PartitionsScanned atomic.Int64
	DecomposeCount    atomic.Int64
	ChildrenSeeded    atomic.Int64
}

// RecordStats implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStats(_ int64, partitions int, cached bool, duration time.Duration, err error) {
	b.StatsCount.Add(1)
	b.StatsTotalNanos.Add(duration.Nanoseconds())
	if cached {
		b.StatsCached.Add(1)
	} else {
		b.PartitionsScanned.Add(int64(partitions))
	}
	if err != nil {
		b.StatsErrors.Add(1)
	}
}

// RecordDecompose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecompose(_ int64, _ int, seeded int) {
	b.DecomposeCount.Add(1)
	b.ChildrenSeeded.Add(int64(seeded))
}
