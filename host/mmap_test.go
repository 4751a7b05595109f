//go:build unix

package host

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap(t *testing.T) {
	h := NewMmap()
	if p := h.Alloc(1); p == nil {
		t.Skip("anonymous mappings unavailable")
	} else {
		h.Release(p)
	}

	exerciseHost(t, h)
	assert.Equal(t, 0, h.Len())

	t.Run("page aligned", func(t *testing.T) {
		p := h.Alloc(10)
		require.NotNil(t, p)
		assert.Equal(t, uintptr(0), uintptr(p)%4096)
		assert.Equal(t, 1, h.Len())
		h.Release(p)
		assert.Equal(t, 0, h.Len())
	})

	t.Run("zero size", func(t *testing.T) {
		assert.Nil(t, h.Alloc(0))
	})

	t.Run("unknown block", func(t *testing.T) {
		var x [16]byte
		assert.Nil(t, h.Realloc(unsafe.Pointer(&x), 32))
		h.Release(unsafe.Pointer(&x)) // ignored
	})
}

func TestMmap_AccessPattern(t *testing.T) {
	h := NewMmap(WithAccessPattern(AccessSequential))
	p := h.Alloc(3 * 4096)
	if p == nil {
		t.Skip("anonymous mappings unavailable")
	}

	buf := unsafe.Slice((*byte)(p), 3*4096)
	for i := range buf {
		buf[i] = byte(i)
	}

	np := h.Realloc(p, 8*4096)
	require.NotNil(t, np)
	grown := unsafe.Slice((*byte)(np), 3*4096)
	for i := range grown {
		require.Equal(t, byte(i), grown[i])
	}
	h.Release(np)
	assert.Equal(t, 0, h.Len())
}
