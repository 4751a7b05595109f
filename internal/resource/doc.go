// Package resource implements the Controller for allocation budgets.
//
// The Controller provides centralized management of two resource types:
//
//   - Memory: Track and limit bytes handed out by a host allocator
//   - Allocation rate: Token bucket limiting how many blocks may be requested per second
//
// # Architecture
//
//	┌─────────────────────────────────────────────┐
//	│                 Controller                  │
//	├──────────────────────┬──────────────────────┤
//	│  Memory Limit (sem)  │  Alloc Rate (bucket) │
//	├──────────────────────┼──────────────────────┤
//	│  TryAcquireMemory    │  AllowAlloc          │
//	│  AcquireMemory(ctx)  │  WaitAlloc(ctx)      │
//	│  ReleaseMemory       │                      │
//	│  MemoryUsage         │                      │
//	└──────────────────────┴──────────────────────┘
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. TryAcquireMemory is non-blocking and fails immediately if
// the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if !rc.TryAcquireMemory(1024 * 1024) {
//	    // budget exhausted - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// # Allocation Rate
//
//	rc := resource.NewController(resource.Config{
//	    AllocsPerSecond: 10_000,
//	    AllocBurst:      100,
//	})
//
//	if !rc.AllowAlloc() {
//	    // too many allocations in the current window
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use atomic operations and sync primitives.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
