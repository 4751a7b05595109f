package host

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Tracking wraps an Allocator with a ledger of live block addresses.
//
// Releasing or resizing an address that is not live (a double free, or a
// pointer the host never returned) is reported and not forwarded, so the inner
// host is never handed a bad pointer. In strict mode the report is a panic;
// otherwise it is logged at warn level.
type Tracking struct {
	inner  Allocator
	logger *slog.Logger
	strict bool

	mu      sync.Mutex
	live    *roaring64.Bitmap
	invalid int64
}

// NewTracking wraps inner. A nil inner uses a new GoHeap.
func NewTracking(inner Allocator, opts ...Option) *Tracking {
	if inner == nil {
		inner = NewGoHeap()
	}
	c := applyOptions(opts)
	return &Tracking{
		inner:  inner,
		logger: c.logger,
		strict: c.strict,
		live:   roaring64.NewBitmap(),
	}
}

// Alloc implements Allocator.
func (h *Tracking) Alloc(size uintptr) unsafe.Pointer {
	p := h.inner.Alloc(size)
	if p == nil {
		return nil
	}

	h.mu.Lock()
	h.live.Add(uint64(uintptr(p)))
	h.mu.Unlock()
	return p
}

// Realloc implements Allocator.
func (h *Tracking) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return h.Alloc(size)
	}

	addr := uint64(uintptr(p))
	h.mu.Lock()
	ok := h.live.Contains(addr)
	h.mu.Unlock()
	if !ok {
		h.report("realloc", addr)
		return nil
	}

	np := h.inner.Realloc(p, size)
	if np == nil {
		return nil
	}

	h.mu.Lock()
	h.live.Remove(addr)
	h.live.Add(uint64(uintptr(np)))
	h.mu.Unlock()
	return np
}

// Release implements Allocator.
func (h *Tracking) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	addr := uint64(uintptr(p))
	h.mu.Lock()
	ok := h.live.CheckedRemove(addr)
	h.mu.Unlock()
	if !ok {
		h.report("release", addr)
		return
	}
	h.inner.Release(p)
}

// Live returns the number of blocks allocated and not yet released.
func (h *Tracking) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return int(h.live.GetCardinality()) //nolint:gosec // bounded by address space
}

// IsLive reports whether p is a live block address.
func (h *Tracking) IsLive(p unsafe.Pointer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live.Contains(uint64(uintptr(p)))
}

// Invalid returns the number of rejected release and realloc calls.
func (h *Tracking) Invalid() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.invalid
}

// Leaks returns the addresses of all live blocks in ascending order.
// Callers typically check it is empty at the end of a test.
func (h *Tracking) Leaks() []uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live.ToArray()
}

// LogLeaks logs every live block at warn level and returns their count.
func (h *Tracking) LogLeaks() int {
	leaks := h.Leaks()
	if h.logger != nil {
		for _, addr := range leaks {
			h.logger.Warn("block not released", "addr", fmt.Sprintf("%#x", addr))
		}
	}
	return len(leaks)
}

func (h *Tracking) report(op string, addr uint64) {
	h.mu.Lock()
	h.invalid++
	h.mu.Unlock()

	if h.strict {
		panic(fmt.Sprintf("host: %s of non-live block %#x", op, addr))
	}
	if h.logger != nil {
		h.logger.Warn("invalid block", "op", op, "addr", fmt.Sprintf("%#x", addr))
	}
}
