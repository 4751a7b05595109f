// Package alignmem provides aligned malloc/calloc/realloc/free on top of a
// general-purpose host allocator.
//
// alignmem does not manage memory itself. It asks a host.Allocator for a raw
// block large enough to hold a header, worst-case alignment padding and the
// payload, returns the first suitably aligned address after the header, and
// records the raw address in the header so Resize and Free can hand the block
// back to the host.
//
//	raw block: [ padding | header (raw address) | payload ... ]
//	                                           ^ returned pointer, aligned
//
// # Quick Start
//
//	a := alignmem.New(alignmem.WithHost(host.NewMmap()))
//
//	p, err := a.AlignedAlloc(64, 1024)
//	if err != nil { ... }
//	buf := alignmem.Bytes(p, 1024)
//
//	p, err = a.Resize(p, 4096) // re-aligned to DefaultAlignment
//	a.Free(p)
//
// Package-level functions (Alloc, Calloc, Resize, Free, AlignedAlloc) use a
// default Allocator backed by host.GoHeap.
//
// # Overflow Safety
//
// Size arithmetic is performed in 64 bits and checked against
// MaxAllocableMemory (1 TiB on 64-bit targets, just under 2 GiB on 32-bit
// targets) before any host call. Calloc checks count*elemSize the same way.
// Requests that fail the check return ErrOverflow without touching the host.
//
// # Errors
//
// Failures return a nil pointer and an *AllocError wrapping one of
// ErrOverflow, ErrOutOfMemory or ErrInvalidAlignment. A failed Resize leaves
// the original block valid. Free never fails.
//
// # Alignment
//
// Alignments must be powers of two. Alignments smaller than
// AddressStorageSize are raised to it so the header slot is itself aligned.
// Resize always re-aligns to DefaultAlignment; use ResizeAligned to keep a
// custom alignment.
//
// # Thread Safety
//
// Allocator holds no mutable state besides its optional metrics collector.
// Concurrent calls on distinct pointers are safe when the host is (all hosts
// in package host are). Concurrent calls on the same pointer are undefined.
//
// # Build Tags
//
// FillUint16, used for 16-bit sample buffers, is excluded from builds with the
// nohighbitdepth tag.
package alignmem
