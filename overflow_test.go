package alignmem

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSizeOverflow(t *testing.T) {
	tests := []struct {
		name            string
		count, elemSize uint64
		want            bool
	}{
		{"zero count", 0, math.MaxUint64, true},
		{"zero size", 10, 0, true},
		{"small", 1024, 1024, true},
		{"exactly ceiling", 1, MaxAllocableMemory, true},
		{"one above ceiling", 1, MaxAllocableMemory + 1, false},
		{"split ceiling", 2, MaxAllocableMemory / 2, true},
		{"wraps uint64", 2, math.MaxUint64/2 + 1, false},
		{"huge count", math.MaxUint64, 2, false},
		{"half max times ten", 10, math.MaxUint64 / 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSizeOverflow(tt.count, tt.elemSize))
		})
	}
}

func TestAllocator_CheckSizeOverflow(t *testing.T) {
	a := New(WithMaxAllocable(100))

	assert.True(t, a.CheckSizeOverflow(0, 1000))
	assert.True(t, a.CheckSizeOverflow(10, 10))
	assert.False(t, a.CheckSizeOverflow(10, 11))
}

func TestRawSize(t *testing.T) {
	slack := uint64(DefaultAlignment-1) + uint64(AddressStorageSize)

	n, ok := rawSize(100, slack, MaxAllocableMemory)
	assert.True(t, ok)
	assert.Equal(t, uintptr(100+slack), n)

	_, ok = rawSize(math.MaxUint64, slack, MaxAllocableMemory)
	assert.False(t, ok, "64-bit addition must not wrap")

	_, ok = rawSize(MaxAllocableMemory, slack, MaxAllocableMemory)
	assert.False(t, ok)
}

func FuzzCheckSizeOverflow(f *testing.F) {
	f.Add(uint64(0), uint64(1))
	f.Add(uint64(3), uint64(math.MaxUint64/3))
	f.Add(uint64(1<<20), uint64(1<<20))

	f.Fuzz(func(t *testing.T, count, elemSize uint64) {
		ok := CheckSizeOverflow(count, elemSize)
		if count == 0 {
			assert.True(t, ok)
			return
		}
		hi, lo := bits.Mul64(count, elemSize)
		want := hi == 0 && lo <= MaxAllocableMemory
		assert.Equal(t, want, ok, "count=%d size=%d", count, elemSize)
	})
}
