package alignmem

import "unsafe"

var defaultAllocator = New()

// Default returns the package-level Allocator, backed by a host.GoHeap.
func Default() *Allocator {
	return defaultAllocator
}

// AlignedAlloc calls Default().AlignedAlloc.
func AlignedAlloc(alignment, size uintptr) (unsafe.Pointer, error) {
	return defaultAllocator.AlignedAlloc(alignment, size)
}

// Alloc calls Default().Alloc.
func Alloc(size uintptr) (unsafe.Pointer, error) {
	return defaultAllocator.Alloc(size)
}

// Calloc calls Default().Calloc.
func Calloc(count, elemSize uintptr) (unsafe.Pointer, error) {
	return defaultAllocator.Calloc(count, elemSize)
}

// Resize calls Default().Resize.
func Resize(p unsafe.Pointer, newSize uintptr) (unsafe.Pointer, error) {
	return defaultAllocator.Resize(p, newSize)
}

// Free calls Default().Free.
func Free(p unsafe.Pointer) {
	defaultAllocator.Free(p)
}
