// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when narrowing size arithmetic to the platform's native width.
//
// Use cases:
//   - Narrowing 64-bit size computations to uintptr before asking a host allocator
//   - Converting between Go's int (platform-dependent) and uintptr for slice views
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
