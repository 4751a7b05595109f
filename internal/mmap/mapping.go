package mmap

import (
	"sync/atomic"
	"unsafe"
)

// Mapping represents an anonymous read-write memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapAnon creates a private anonymous mapping of at least size bytes.
// The memory is zero-filled by the kernel.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() or Remap() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Addr returns the start address of the mapping, or nil once closed.
func (m *Mapping) Addr() unsafe.Pointer {
	if m.closed.Load() || len(m.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&m.data[0]) //nolint:gosec // unsafe is required for raw addresses
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Remap resizes the mapping to size bytes, possibly moving it.
// Contents up to the lesser of the old and new sizes are preserved.
// On error the mapping is left untouched.
func (m *Mapping) Remap(size int) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	if size == len(m.data) {
		return nil
	}

	data, err := osRemap(m.data, size)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}

// remapCopy is the portable Remap fallback: map a new region, copy, unmap the old one.
func remapCopy(old []byte, size int) ([]byte, error) {
	data, _, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	if err := osUnmap(old); err != nil {
		_ = osUnmap(data)
		return nil, err
	}
	return data, nil
}
