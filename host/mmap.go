package host

import (
	"log/slog"
	"sync"
	"unsafe"

	"github.com/hupe1980/alignmem/internal/conv"
	"github.com/hupe1980/alignmem/internal/mmap"
)

// Mmap allocates every block as its own anonymous memory mapping.
//
// Memory lives outside the Go heap and is returned to the OS on Release.
// Sizes are rounded up to whole pages by the kernel, so Mmap suits large
// buffers rather than many small ones.
type Mmap struct {
	mu     sync.Mutex
	maps   map[uintptr]*mmap.Mapping
	logger *slog.Logger
	access AccessPattern
}

// NewMmap creates an Mmap host.
func NewMmap(opts ...Option) *Mmap {
	c := applyOptions(opts)
	return &Mmap{
		maps:   make(map[uintptr]*mmap.Mapping),
		logger: c.logger,
		access: c.access,
	}
}

// Alloc implements Allocator.
func (h *Mmap) Alloc(size uintptr) unsafe.Pointer {
	n, err := conv.UintptrToInt(size)
	if err != nil {
		return nil
	}

	m, err := mmap.MapAnon(n)
	if err != nil {
		if h.logger != nil {
			h.logger.Debug("mmap failed", "size", size, "error", err)
		}
		return nil
	}

	h.advise(m)

	p := m.Addr()
	h.mu.Lock()
	h.maps[uintptr(p)] = m
	h.mu.Unlock()
	return p
}

// Realloc implements Allocator.
func (h *Mmap) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return h.Alloc(size)
	}
	n, err := conv.UintptrToInt(size)
	if err != nil {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.maps[uintptr(p)]
	if !ok {
		return nil
	}
	if err := m.Remap(n); err != nil {
		if h.logger != nil {
			h.logger.Debug("mremap failed", "size", size, "error", err)
		}
		return nil
	}

	h.advise(m)

	np := m.Addr()
	delete(h.maps, uintptr(p))
	h.maps[uintptr(np)] = m
	return np
}

// Release implements Allocator. Unmap failures are logged, not returned.
func (h *Mmap) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	h.mu.Lock()
	m, ok := h.maps[uintptr(p)]
	delete(h.maps, uintptr(p))
	h.mu.Unlock()

	if !ok {
		return
	}
	if err := m.Close(); err != nil && h.logger != nil {
		h.logger.Warn("munmap failed", "size", m.Size(), "error", err)
	}
}

func (h *Mmap) advise(m *mmap.Mapping) {
	if h.access == AccessDefault {
		return
	}
	if err := m.Advise(h.access); err != nil && h.logger != nil {
		h.logger.Debug("madvise failed", "size", m.Size(), "error", err)
	}
}

// Len returns the number of live mappings.
func (h *Mmap) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.maps)
}
