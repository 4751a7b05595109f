package testutil

import (
	"math"
	"math/rand"
	"sync"
	"unsafe"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform sampling
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Sizes returns num allocation sizes in [1, maxSize], skewed toward small
// sizes the way real allocation traffic is. The size class (power of two) is
// drawn from a Zipf distribution with skew s; the size is uniform within it.
func (r *RNG) Sizes(num int, maxSize uintptr, s float64) []uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	classes := 1
	for uintptr(1)<<classes <= maxSize {
		classes++
	}

	sizes := make([]uintptr, num)
	for i := range sizes {
		c := r.zipfLocked(classes, s)
		lo := uintptr(1) << c >> 1
		hi := min(uintptr(1)<<c, maxSize)
		size := lo + uintptr(r.rand.Int63n(int64(hi-lo)+1))
		sizes[i] = max(size, 1)
	}
	return sizes
}

// Alignments returns num powers of two in [1, 1<<maxLog2].
func (r *RNG) Alignments(num, maxLog2 int) []uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	alignments := make([]uintptr, num)
	for i := range alignments {
		alignments[i] = uintptr(1) << r.rand.Intn(maxLog2+1)
	}
	return alignments
}

func patternByte(i uintptr, seed byte) byte {
	return byte(i*7) + seed
}

// FillPattern writes a position- and seed-dependent byte pattern to the n
// bytes at p.
func FillPattern(p unsafe.Pointer, n uintptr, seed byte) {
	if p == nil || n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = patternByte(uintptr(i), seed)
	}
}

// CheckPattern verifies the pattern written by FillPattern. It returns the
// index of the first mismatching byte and false, or (0, true).
func CheckPattern(p unsafe.Pointer, n uintptr, seed byte) (int, bool) {
	if p == nil || n == 0 {
		return 0, true
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		if b[i] != patternByte(uintptr(i), seed) {
			return i, false
		}
	}
	return 0, true
}

// IsZero reports whether all n bytes at p are zero.
func IsZero(p unsafe.Pointer, n uintptr) bool {
	if p == nil || n == 0 {
		return true
	}
	for _, v := range unsafe.Slice((*byte)(p), n) {
		if v != 0 {
			return false
		}
	}
	return true
}
