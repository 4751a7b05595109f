package host

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/alignmem/internal/conv"
	"github.com/hupe1980/alignmem/internal/mem"
)

// GoHeap allocates blocks from the Go heap.
//
// Blocks are word-aligned byte slices stored in a side table keyed by address,
// which keeps them reachable after their pointer is hidden in an alignment
// header. Release drops the table entry and leaves reclamation to the GC.
type GoHeap struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
}

// NewGoHeap creates a GoHeap.
func NewGoHeap() *GoHeap {
	return &GoHeap{
		blocks: make(map[uintptr][]byte),
	}
}

// Alloc implements Allocator.
func (h *GoHeap) Alloc(size uintptr) unsafe.Pointer {
	buf := allocBuf(size)
	if buf == nil {
		return nil
	}

	h.mu.Lock()
	h.blocks[mem.AddressOf(buf)] = buf
	h.mu.Unlock()

	return unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for raw addresses
}

// Realloc implements Allocator.
func (h *GoHeap) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return h.Alloc(size)
	}

	h.mu.Lock()
	old, ok := h.blocks[uintptr(p)]
	h.mu.Unlock()
	if !ok {
		return nil
	}

	buf := allocBuf(size)
	if buf == nil {
		return nil
	}
	copy(buf, old)

	h.mu.Lock()
	delete(h.blocks, uintptr(p))
	h.blocks[mem.AddressOf(buf)] = buf
	h.mu.Unlock()

	return unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for raw addresses
}

// Release implements Allocator.
func (h *GoHeap) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.mu.Lock()
	delete(h.blocks, uintptr(p))
	h.mu.Unlock()
}

// Len returns the number of live blocks.
func (h *GoHeap) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}

// allocBuf returns nil instead of panicking when the runtime rejects size.
func allocBuf(size uintptr) (buf []byte) {
	n, err := conv.UintptrToInt(size)
	if err != nil || n == 0 {
		return nil
	}

	defer func() {
		if recover() != nil {
			buf = nil
		}
	}()
	return mem.AllocWords(n)
}
