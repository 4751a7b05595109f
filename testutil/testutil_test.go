package testutil

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSizes(t *testing.T) {
	rng := NewRNG(4711)

	sizes := rng.Sizes(1000, 4096, 1.2)
	assert.Len(t, sizes, 1000)

	small := 0
	for _, s := range sizes {
		assert.GreaterOrEqual(t, s, uintptr(1))
		assert.LessOrEqual(t, s, uintptr(4096))
		if s <= 64 {
			small++
		}
	}
	assert.Greater(t, small, 500, "sizes should be skewed toward small classes")
}

func TestAlignments(t *testing.T) {
	rng := NewRNG(4711)

	for _, a := range rng.Alignments(500, 12) {
		assert.Equal(t, uintptr(0), a&(a-1), "%d is not a power of two", a)
		assert.LessOrEqual(t, a, uintptr(4096))
	}
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for range 1000 {
		counts[rng.Zipf(10, 1.5)]++
	}
	assert.Greater(t, counts[0], counts[9])
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Uint64()
	rng.Reset()
	v2 := rng.Uint64()

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
	assert.Less(t, rng.Intn(5), 5)
}

func TestPattern(t *testing.T) {
	buf := make([]byte, 300)
	p := unsafe.Pointer(&buf[0])

	assert.True(t, IsZero(p, 300))

	FillPattern(p, 300, 9)
	i, ok := CheckPattern(p, 300, 9)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.False(t, IsZero(p, 300))

	buf[123]++
	i, ok = CheckPattern(p, 300, 9)
	assert.False(t, ok)
	assert.Equal(t, 123, i)

	_, ok = CheckPattern(nil, 10, 0)
	assert.True(t, ok)
	assert.True(t, IsZero(nil, 10))
}
