// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// Anonymous mappings hand out memory that lives outside the Go garbage
// collector's control. The host.Mmap allocator uses one mapping per block so
// that every block can be grown, shrunk and returned to the OS independently.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
//	// Grow the mapping, possibly moving it
//	if err := m.Remap(4 << 20); err != nil { ... }
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Linux: mmap(2) with mremap(2) (MREMAP_MAYMOVE) for in-place growth
//   - Other Unix (macOS, BSD): mmap(2); Remap maps a new region and copies
//   - Windows: VirtualAlloc/VirtualFree (madvise is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Remap is not safe to
// call concurrently with any other method on the same Mapping.
package mmap
