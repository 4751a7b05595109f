package mem

import (
	"unsafe"
)

// WordSize is the size in bytes of one machine address.
const WordSize = unsafe.Sizeof(uintptr(0))

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// AlignUp rounds addr up to the next multiple of align.
// align must be a power of two.
func AlignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr, align uintptr) bool {
	return addr&(align-1) == 0
}

// AddressOf returns the address of the first byte of b, or 0 for an empty slice.
func AddressOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0])) //nolint:gosec // unsafe is required for memory alignment
}

// AllocWords allocates a byte slice of the given size whose first byte is
// word aligned.
//
// Go does not guarantee that make([]byte, n) is word aligned for small n, so the
// backing array is allocated as []uint64 and reinterpreted.
func AllocWords(size int) []byte {
	if size <= 0 {
		return nil
	}

	words := make([]uint64, (size+7)/8)
	ptr := unsafe.Pointer(&words[0])        //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*byte)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}
