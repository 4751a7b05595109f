package alignmem

import (
	"context"
	"unsafe"

	"github.com/hupe1980/alignmem/host"
	"github.com/hupe1980/alignmem/internal/mem"
)

// Allocator hands out aligned blocks carved from a host allocator.
//
// Every pointer it returns is preceded by an AddressStorageSize header holding
// the raw host address, which Resize and Free use to find the host block.
// Allocator keeps no mutable state of its own: it is safe for concurrent use on
// distinct pointers exactly when its host is.
type Allocator struct {
	host    host.Allocator
	ceiling uint64
	metrics MetricsCollector
	logger  *Logger
}

// New creates an Allocator.
func New(optFns ...Option) *Allocator {
	o := applyOptions(optFns)
	return &Allocator{
		host:    o.host,
		ceiling: o.maxAllocable,
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
}

// Host returns the host allocator backing a.
func (a *Allocator) Host() host.Allocator {
	return a.host
}

// MaxAllocable returns the largest raw block a will request.
func (a *Allocator) MaxAllocable() uint64 {
	return a.ceiling
}

// CheckSizeOverflow is like the package-level CheckSizeOverflow but uses a's ceiling.
func (a *Allocator) CheckSizeOverflow(count, elemSize uint64) bool {
	return checkSize(count, elemSize, a.ceiling)
}

// AlignedAlloc returns size bytes aligned to alignment, which must be a power
// of two. The contents are unspecified.
func (a *Allocator) AlignedAlloc(alignment, size uintptr) (unsafe.Pointer, error) {
	p, err := a.alignedAlloc("AlignedAlloc", alignment, size)
	a.metrics.RecordAlloc(uint64(size), err)
	return p, err
}

// Alloc returns size bytes aligned to DefaultAlignment.
func (a *Allocator) Alloc(size uintptr) (unsafe.Pointer, error) {
	p, err := a.alignedAlloc("Alloc", DefaultAlignment, size)
	a.metrics.RecordAlloc(uint64(size), err)
	return p, err
}

// Calloc returns count*elemSize zeroed bytes aligned to DefaultAlignment.
// An overflowing product fails with ErrOverflow before the host is consulted.
func (a *Allocator) Calloc(count, elemSize uintptr) (unsafe.Pointer, error) {
	if !a.CheckSizeOverflow(uint64(count), uint64(elemSize)) {
		err := a.fail(&AllocError{Op: "Calloc", Count: uint64(count), Size: uint64(elemSize), cause: ErrOverflow})
		a.metrics.RecordAlloc(uint64(elemSize), err)
		return nil, err
	}

	size := count * elemSize
	p, err := a.alignedAlloc("Calloc", DefaultAlignment, size)
	a.metrics.RecordAlloc(uint64(size), err)
	if err != nil {
		return nil, err
	}
	Zero(p, size)
	return p, nil
}

// Resize changes the size of the block at p to newSize bytes and returns the
// possibly moved block, re-aligned to DefaultAlignment regardless of the
// alignment p was allocated with. Contents are preserved up to the lesser of
// the old and new sizes.
//
// A nil p behaves like Alloc(newSize). A zero newSize frees p and returns
// (nil, nil). On error p is left valid and unchanged.
func (a *Allocator) Resize(p unsafe.Pointer, newSize uintptr) (unsafe.Pointer, error) {
	return a.resize("Resize", p, DefaultAlignment, newSize)
}

// ResizeAligned is like Resize but re-aligns the block to alignment.
func (a *Allocator) ResizeAligned(p unsafe.Pointer, alignment, newSize uintptr) (unsafe.Pointer, error) {
	return a.resize("ResizeAligned", p, alignment, newSize)
}

// Free returns the block at p to the host. Free(nil) is a no-op.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	a.host.Release(rawAddress(p))
	a.metrics.RecordFree()
}

func (a *Allocator) alignedAlloc(op string, alignment, size uintptr) (unsafe.Pointer, error) {
	if !mem.IsPowerOfTwo(alignment) {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(size), Alignment: alignment, cause: ErrInvalidAlignment})
	}
	alignment = effectiveAlignment(alignment)

	n, ok := rawSize(uint64(size), uint64(alignment-1)+uint64(AddressStorageSize), a.ceiling)
	if !ok {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(size), Alignment: alignment, cause: ErrOverflow})
	}

	raw := a.host.Alloc(n)
	if raw == nil {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(size), Alignment: alignment, cause: ErrOutOfMemory})
	}

	p := alignRaw(raw, alignment)
	setRawAddress(p, raw)
	return p, nil
}

func (a *Allocator) resize(op string, p unsafe.Pointer, alignment, newSize uintptr) (unsafe.Pointer, error) {
	if p == nil {
		np, err := a.alignedAlloc(op, alignment, newSize)
		a.metrics.RecordAlloc(uint64(newSize), err)
		return np, err
	}
	if newSize == 0 {
		a.Free(p)
		return nil, nil
	}

	np, err := a.resizeBlock(op, p, alignment, newSize)
	a.metrics.RecordResize(uint64(newSize), err == nil && np != p, err)
	return np, err
}

func (a *Allocator) resizeBlock(op string, p unsafe.Pointer, alignment, newSize uintptr) (unsafe.Pointer, error) {
	if !mem.IsPowerOfTwo(alignment) {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(newSize), Alignment: alignment, cause: ErrInvalidAlignment})
	}
	alignment = effectiveAlignment(alignment)

	raw := rawAddress(p)
	oldOffset := uintptr(p) - uintptr(raw)

	// The new block must still hold the payload at its old offset, which may
	// exceed the slack of the new alignment when p was over-aligned.
	slack := uint64(alignment-1) + uint64(AddressStorageSize)
	if uint64(oldOffset) > slack {
		slack = uint64(oldOffset)
	}

	n, ok := rawSize(uint64(newSize), slack, a.ceiling)
	if !ok {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(newSize), Alignment: alignment, cause: ErrOverflow})
	}

	newRaw := a.host.Realloc(raw, n)
	if newRaw == nil {
		return nil, a.fail(&AllocError{Op: op, Size: uint64(newSize), Alignment: alignment, cause: ErrOutOfMemory})
	}

	np := alignRaw(newRaw, alignment)
	if newOffset := uintptr(np) - uintptr(newRaw); newOffset != oldOffset {
		// The host copied the raw block verbatim; shift the payload to the new
		// aligned offset. Both ranges lie inside the n-byte block.
		copy(unsafe.Slice((*byte)(np), newSize), unsafe.Slice((*byte)(unsafe.Add(newRaw, oldOffset)), newSize))
	}
	setRawAddress(np, newRaw)
	return np, nil
}

func (a *Allocator) fail(err *AllocError) error {
	a.logger.LogAllocFailure(context.Background(), err)
	return err
}
