package host

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/alignmem/testutil"
)

func write(p unsafe.Pointer, n uintptr, seed byte) {
	testutil.FillPattern(p, n, seed)
}

func check(t *testing.T, p unsafe.Pointer, n uintptr, seed byte) {
	t.Helper()
	if i, ok := testutil.CheckPattern(p, n, seed); !ok {
		t.Fatalf("byte %d does not match the written pattern", i)
	}
}

// exerciseHost runs the Allocator contract against h.
func exerciseHost(t *testing.T, h Allocator) {
	t.Run("alloc", func(t *testing.T) {
		for _, size := range []uintptr{1, 8, 100, 4096, 100_000} {
			p := h.Alloc(size)
			require.NotNil(t, p, "size %d", size)
			assert.Equal(t, uintptr(0), uintptr(p)%8, "raw blocks are word aligned")
			write(p, size, 1)
			check(t, p, size, 1)
			h.Release(p)
		}
	})

	t.Run("realloc preserves prefix", func(t *testing.T) {
		p := h.Alloc(64)
		require.NotNil(t, p)
		write(p, 64, 5)

		p = h.Realloc(p, 10_000)
		require.NotNil(t, p)
		check(t, p, 64, 5)
		write(p, 10_000, 9)

		p = h.Realloc(p, 32)
		require.NotNil(t, p)
		check(t, p, 32, 9)

		h.Release(p)
	})

	t.Run("realloc nil allocates", func(t *testing.T) {
		p := h.Realloc(nil, 16)
		require.NotNil(t, p)
		h.Release(p)
	})

	t.Run("release nil", func(t *testing.T) {
		h.Release(nil)
	})
}

func TestGoHeap(t *testing.T) {
	h := NewGoHeap()
	exerciseHost(t, h)
	assert.Equal(t, 0, h.Len())

	t.Run("zero size", func(t *testing.T) {
		assert.Nil(t, h.Alloc(0))
	})

	t.Run("unknown block", func(t *testing.T) {
		var x [16]byte
		assert.Nil(t, h.Realloc(unsafe.Pointer(&x[0]), 32))
	})

	t.Run("too large", func(t *testing.T) {
		assert.Nil(t, h.Alloc(^uintptr(0)))
	})

	t.Run("len", func(t *testing.T) {
		p := h.Alloc(10)
		q := h.Alloc(10)
		assert.Equal(t, 2, h.Len())
		h.Release(p)
		h.Release(q)
		assert.Equal(t, 0, h.Len())
	})
}

func TestCounting(t *testing.T) {
	h := NewCounting(nil)
	exerciseHost(t, h)

	h.Reset()
	assert.Equal(t, int64(0), h.Calls())

	p := h.Alloc(8)
	require.NotNil(t, p)
	p = h.Realloc(p, 16)
	require.NotNil(t, p)

	h.FailRealloc(true)
	assert.Nil(t, h.Realloc(p, 32))
	h.FailAlloc(true)
	assert.Nil(t, h.Alloc(8))

	h.Release(p)

	assert.Equal(t, int64(2), h.Allocs())
	assert.Equal(t, int64(2), h.Reallocs())
	assert.Equal(t, int64(1), h.Releases())
	assert.Equal(t, int64(5), h.Calls())

	h.Reset()
	assert.NotNil(t, h.Alloc(8), "Reset clears injected failures")
}

func TestTracking(t *testing.T) {
	inner := NewCounting(NewGoHeap())
	h := NewTracking(inner)
	exerciseHost(t, h)
	assert.Equal(t, 0, h.Live())
	assert.Empty(t, h.Leaks())

	t.Run("double release", func(t *testing.T) {
		inner.Reset()
		p := h.Alloc(32)
		require.NotNil(t, p)
		assert.True(t, h.IsLive(p))

		h.Release(p)
		h.Release(p)
		assert.Equal(t, int64(1), inner.Releases(), "second release must not reach the host")
		assert.Equal(t, int64(1), h.Invalid())
		assert.False(t, h.IsLive(p))
	})

	t.Run("realloc of unknown block", func(t *testing.T) {
		var x [8]byte
		assert.Nil(t, h.Realloc(unsafe.Pointer(&x[0]), 16))
		assert.Equal(t, int64(2), h.Invalid())
	})

	t.Run("realloc moves ledger entry", func(t *testing.T) {
		p := h.Alloc(16)
		np := h.Realloc(p, 1<<16)
		require.NotNil(t, np)
		assert.True(t, h.IsLive(np))
		assert.Equal(t, 1, h.Live())
		h.Release(np)
	})

	t.Run("failed inner alloc is not tracked", func(t *testing.T) {
		inner.FailAlloc(true)
		defer inner.FailAlloc(false)
		assert.Nil(t, h.Alloc(16))
		assert.Equal(t, 0, h.Live())
	})
}

func TestTracking_Leaks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := NewTracking(nil, WithLogger(logger))

	p := h.Alloc(8)
	q := h.Alloc(8)
	require.NotNil(t, p)
	require.NotNil(t, q)

	leaks := h.Leaks()
	assert.ElementsMatch(t, []uint64{uint64(uintptr(p)), uint64(uintptr(q))}, leaks)
	assert.Equal(t, 2, h.LogLeaks())
	assert.Contains(t, buf.String(), "block not released")
	assert.Contains(t, buf.String(), fmt.Sprintf("%#x", uintptr(p)))

	h.Release(p)
	h.Release(q)
	h.Release(q)
	assert.Contains(t, buf.String(), "invalid block")
	assert.Equal(t, 0, h.LogLeaks())
}

func TestTracking_Strict(t *testing.T) {
	h := NewTracking(nil, WithStrict(true))
	p := h.Alloc(8)
	h.Release(p)

	assert.Panics(t, func() { h.Release(p) })
}

func TestOptions_Nil(t *testing.T) {
	c := applyOptions([]Option{nil, WithStrict(true)})
	assert.True(t, c.strict)
	assert.Nil(t, c.logger)
}
