package host

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"github.com/hupe1980/alignmem/internal/resource"
)

// BudgetConfig holds the limits enforced by a Budgeted host.
type BudgetConfig struct {
	// MemoryLimitBytes caps the bytes outstanding at any time. 0 means unlimited.
	MemoryLimitBytes int64

	// AllocsPerSecond caps the sustained Alloc rate. 0 means unlimited.
	AllocsPerSecond float64

	// AllocBurst is the number of Allocs allowed above the sustained rate.
	AllocBurst int

	// WaitTimeout, if positive, makes Alloc and Realloc wait up to this long for
	// budget instead of failing immediately.
	WaitTimeout time.Duration
}

// Budgeted wraps an Allocator with a memory budget and allocation-rate limit.
// A request that does not fit fails like host exhaustion.
type Budgeted struct {
	inner   Allocator
	rc      *resource.Controller
	timeout time.Duration

	mu    sync.Mutex
	sizes map[uintptr]int64
}

// NewBudgeted wraps inner. A nil inner uses a new GoHeap.
func NewBudgeted(inner Allocator, cfg BudgetConfig) *Budgeted {
	if inner == nil {
		inner = NewGoHeap()
	}
	return &Budgeted{
		inner: inner,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes: cfg.MemoryLimitBytes,
			AllocsPerSecond:  cfg.AllocsPerSecond,
			AllocBurst:       cfg.AllocBurst,
		}),
		timeout: cfg.WaitTimeout,
		sizes:   make(map[uintptr]int64),
	}
}

// Alloc implements Allocator.
func (h *Budgeted) Alloc(size uintptr) unsafe.Pointer {
	n := int64(size) //nolint:gosec // bounded by the caller's ceiling
	if n < 0 || !h.acquire(n, true) {
		return nil
	}

	p := h.inner.Alloc(size)
	if p == nil {
		h.rc.ReleaseMemory(n)
		return nil
	}

	h.mu.Lock()
	h.sizes[uintptr(p)] = n
	h.mu.Unlock()
	return p
}

// Realloc implements Allocator.
func (h *Budgeted) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return h.Alloc(size)
	}
	n := int64(size) //nolint:gosec // bounded by the caller's ceiling
	if n < 0 {
		return nil
	}

	h.mu.Lock()
	old, ok := h.sizes[uintptr(p)]
	h.mu.Unlock()
	if !ok {
		return nil
	}

	delta := n - old
	if delta > 0 && !h.acquire(delta, false) {
		return nil
	}

	np := h.inner.Realloc(p, size)
	if np == nil {
		if delta > 0 {
			h.rc.ReleaseMemory(delta)
		}
		return nil
	}
	if delta < 0 {
		h.rc.ReleaseMemory(-delta)
	}

	h.mu.Lock()
	delete(h.sizes, uintptr(p))
	h.sizes[uintptr(np)] = n
	h.mu.Unlock()
	return np
}

// Release implements Allocator.
func (h *Budgeted) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	h.mu.Lock()
	n, ok := h.sizes[uintptr(p)]
	delete(h.sizes, uintptr(p))
	h.mu.Unlock()

	h.inner.Release(p)
	if ok {
		h.rc.ReleaseMemory(n)
	}
}

// MemoryUsage returns the bytes currently outstanding.
func (h *Budgeted) MemoryUsage() int64 {
	return h.rc.MemoryUsage()
}

// MemoryLimit returns the configured budget (0 if unlimited).
func (h *Budgeted) MemoryLimit() int64 {
	return h.rc.MemoryLimit()
}

func (h *Budgeted) acquire(bytes int64, rateLimited bool) bool {
	if h.timeout <= 0 {
		if rateLimited && !h.rc.AllowAlloc() {
			return false
		}
		return h.rc.TryAcquireMemory(bytes)
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if rateLimited {
		if err := h.rc.WaitAlloc(ctx); err != nil {
			return false
		}
	}
	return h.rc.AcquireMemory(ctx, bytes) == nil
}
