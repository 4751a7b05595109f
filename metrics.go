package alignmem

import (
	"errors"
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called on every operation and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordAlloc is called after each AlignedAlloc, Alloc or Calloc.
	// size is the requested payload size, err is nil if successful.
	RecordAlloc(size uint64, err error)

	// RecordResize is called after each Resize or ResizeAligned that touched an
	// existing block. moved reports whether the user pointer changed.
	RecordResize(size uint64, moved bool, err error)

	// RecordFree is called after each Free of a non-nil pointer.
	RecordFree()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(uint64, error)        {}
func (NoopMetricsCollector) RecordResize(uint64, bool, error) {}
func (NoopMetricsCollector) RecordFree()                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount     atomic.Int64
	AllocBytes     atomic.Int64
	AllocErrors    atomic.Int64
	OverflowErrors atomic.Int64
	ResizeCount    atomic.Int64
	ResizeMoves    atomic.Int64
	ResizeErrors   atomic.Int64
	FreeCount      atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size uint64, err error) {
	if err != nil {
		b.AllocErrors.Add(1)
		if errors.Is(err, ErrOverflow) {
			b.OverflowErrors.Add(1)
		}
		return
	}
	b.AllocCount.Add(1)
	b.AllocBytes.Add(int64(size)) //nolint:gosec // bounded by MaxAllocableMemory
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(size uint64, moved bool, err error) {
	if err != nil {
		b.ResizeErrors.Add(1)
		if errors.Is(err, ErrOverflow) {
			b.OverflowErrors.Add(1)
		}
		return
	}
	b.ResizeCount.Add(1)
	if moved {
		b.ResizeMoves.Add(1)
	}
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree() {
	b.FreeCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocs := b.AllocCount.Load()
	frees := b.FreeCount.Load()
	return BasicMetricsStats{
		AllocCount:      allocs,
		AllocBytes:      b.AllocBytes.Load(),
		AllocErrors:     b.AllocErrors.Load(),
		OverflowErrors:  b.OverflowErrors.Load(),
		ResizeCount:     b.ResizeCount.Load(),
		ResizeMoves:     b.ResizeMoves.Load(),
		ResizeErrors:    b.ResizeErrors.Load(),
		FreeCount:       frees,
		LiveAllocations: allocs - frees,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount      int64
	AllocBytes      int64
	AllocErrors     int64
	OverflowErrors  int64
	ResizeCount     int64
	ResizeMoves     int64
	ResizeErrors    int64
	FreeCount       int64
	LiveAllocations int64
}
