package fixedarray

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after each buffer allocation attempt.
	// count is the number of elements, bytes the buffer size, err is nil if successful.
	RecordAllocate(count int, bytes int64, err error)

	// RecordRelease is called when a buffer is released or replaced.
	RecordRelease(count int, bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, int64, error) {}
func (NoopMetricsCollector) RecordRelease(int, int64)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount  atomic.Int64
	AllocateErrors atomic.Int64
	AllocatedBytes atomic.Int64
	ReleaseCount   atomic.Int64
	ReleasedBytes  atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(_ int, bytes int64, err error) {
	b.AllocateCount.Add(1)
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocatedBytes.Add(bytes)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(_ int, bytes int64) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocated := b.AllocatedBytes.Load()
	released := b.ReleasedBytes.Load()
	return BasicMetricsStats{
		AllocateCount:  b.AllocateCount.Load(),
		AllocateErrors: b.AllocateErrors.Load(),
		AllocatedBytes: allocated,
		ReleaseCount:   b.ReleaseCount.Load(),
		ReleasedBytes:  released,
		LiveBytes:      allocated - released,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocateCount  int64
	AllocateErrors int64
	AllocatedBytes int64
	ReleaseCount   int64
	ReleasedBytes  int64
	LiveBytes      int64
}
