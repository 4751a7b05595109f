//go:build cgo

package host

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Libc forwards to the C library's malloc, realloc and free.
type Libc struct{}

// NewLibc creates a Libc host.
func NewLibc() Libc {
	return Libc{}
}

// Alloc implements Allocator.
func (Libc) Alloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	return C.malloc(C.size_t(size))
}

// Realloc implements Allocator.
func (Libc) Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	return C.realloc(p, C.size_t(size))
}

// Release implements Allocator.
func (Libc) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}
