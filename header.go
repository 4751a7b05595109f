package alignmem

import (
	"unsafe"

	"github.com/hupe1980/alignmem/internal/mem"
)

// AddressStorageSize is the size of the header slot that precedes every user
// pointer. It holds the raw address returned by the host allocator.
const AddressStorageSize = mem.WordSize

// DefaultAlignment is the alignment used by Alloc, Calloc and Resize.
const DefaultAlignment = 2 * AddressStorageSize

func headerSlot(p unsafe.Pointer) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Add(p, -int(AddressStorageSize)))
}

func rawAddress(p unsafe.Pointer) unsafe.Pointer {
	return *headerSlot(p)
}

// setRawAddress stores raw as a plain word. The slot may sit in memory the
// garbage collector does not own, so the write must not go through a pointer
// write barrier.
func setRawAddress(p, raw unsafe.Pointer) {
	*(*uintptr)(unsafe.Pointer(headerSlot(p))) = uintptr(raw)
}

// effectiveAlignment raises alignments below the header size so the header
// slot itself is address aligned. A multiple of the larger power of two is
// also a multiple of the requested one.
func effectiveAlignment(alignment uintptr) uintptr {
	if alignment < AddressStorageSize {
		return AddressStorageSize
	}
	return alignment
}

// alignRaw returns the first address at or after raw+AddressStorageSize that
// is a multiple of alignment.
func alignRaw(raw unsafe.Pointer, alignment uintptr) unsafe.Pointer {
	base := uintptr(raw)
	off := mem.AlignUp(base+AddressStorageSize, alignment) - base
	return unsafe.Add(raw, off)
}

// HeaderOf returns the raw host address recorded before p.
// p must have been returned by an Allocator and not yet freed.
func HeaderOf(p unsafe.Pointer) unsafe.Pointer {
	if p == nil {
		return nil
	}
	return rawAddress(p)
}

// Bytes returns the n bytes starting at p as a slice.
// The slice is valid until p is freed or resized.
func Bytes(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Zero sets the n bytes starting at p to zero.
func Zero(p unsafe.Pointer, n uintptr) {
	if p == nil || n == 0 {
		return
	}
	clear(unsafe.Slice((*byte)(p), n))
}
