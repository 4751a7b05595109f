package host

import (
	"sync/atomic"
	"unsafe"
)

// Counting wraps an Allocator, counting calls and optionally failing them.
//
// It is meant for tests that need to observe whether, and how often, the host
// was consulted, or to simulate exhaustion.
type Counting struct {
	inner Allocator

	allocs   atomic.Int64
	reallocs atomic.Int64
	releases atomic.Int64

	failAlloc   atomic.Bool
	failRealloc atomic.Bool
}

// NewCounting wraps inner. A nil inner uses a new GoHeap.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = NewGoHeap()
	}
	return &Counting{inner: inner}
}

// Alloc implements Allocator.
func (h *Counting) Alloc(size uintptr) unsafe.Pointer {
	h.allocs.Add(1)
	if h.failAlloc.Load() {
		return nil
	}
	return h.inner.Alloc(size)
}

// Realloc implements Allocator.
func (h *Counting) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	h.reallocs.Add(1)
	if h.failRealloc.Load() {
		return nil
	}
	return h.inner.Realloc(p, size)
}

// Release implements Allocator.
func (h *Counting) Release(p unsafe.Pointer) {
	h.releases.Add(1)
	h.inner.Release(p)
}

// FailAlloc makes subsequent Alloc calls fail while fail is true.
func (h *Counting) FailAlloc(fail bool) { h.failAlloc.Store(fail) }

// FailRealloc makes subsequent Realloc calls fail while fail is true.
func (h *Counting) FailRealloc(fail bool) { h.failRealloc.Store(fail) }

// Allocs returns the number of Alloc calls, including failed ones.
func (h *Counting) Allocs() int64 { return h.allocs.Load() }

// Reallocs returns the number of Realloc calls, including failed ones.
func (h *Counting) Reallocs() int64 { return h.reallocs.Load() }

// Releases returns the number of Release calls.
func (h *Counting) Releases() int64 { return h.releases.Load() }

// Calls returns the total number of calls of any kind.
func (h *Counting) Calls() int64 {
	return h.allocs.Load() + h.reallocs.Load() + h.releases.Load()
}

// Reset zeroes all counters and clears injected failures.
func (h *Counting) Reset() {
	h.allocs.Store(0)
	h.reallocs.Store(0)
	h.releases.Store(0)
	h.failAlloc.Store(false)
	h.failRealloc.Store(false)
}
