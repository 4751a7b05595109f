package alignmem

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when size arithmetic would wrap around or exceed
	// the allocator's ceiling. The host allocator is never called.
	ErrOverflow = errors.New("alignmem: size overflow")
	// ErrOutOfMemory is returned when the host allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("alignmem: out of memory")
	// ErrInvalidAlignment is returned when the alignment is not a power of two.
	ErrInvalidAlignment = errors.New("alignmem: alignment must be a power of two")
)

// AllocError describes a failed allocation request.
//
// The failure kind can be tested with errors.Is against ErrOverflow,
// ErrOutOfMemory or ErrInvalidAlignment.
type AllocError struct {
	Op        string
	Count     uint64 // element count, Calloc only
	Size      uint64
	Alignment uintptr
	cause     error
}

func (e *AllocError) Error() string {
	if e.Count != 0 {
		return fmt.Sprintf("%s(count=%d, size=%d): %v", e.Op, e.Count, e.Size, e.cause)
	}
	return fmt.Sprintf("%s(size=%d, alignment=%d): %v", e.Op, e.Size, e.Alignment, e.cause)
}

func (e *AllocError) Unwrap() error { return e.cause }
