// Package host provides the general-purpose allocators that alignmem builds on.
//
// A host hands out raw, unaligned blocks; alignmem adds alignment and the
// address header on top. Implementations:
//
//   - GoHeap: Go heap slices kept reachable through a side table (default)
//   - Mmap: one anonymous mapping per block, outside the garbage collector
//   - Libc: malloc/realloc/free through cgo (cgo builds only)
//
// Wrappers compose with any host:
//
//   - Counting: call counters and fault injection, for tests
//   - Tracking: ledger of live blocks that catches double and invalid releases
//   - Budgeted: memory budget and allocation-rate limit
//
// # Example
//
//	h := host.NewTracking(host.NewMmap(), host.WithStrict(true))
//	a := alignmem.New(alignmem.WithHost(h))
package host
