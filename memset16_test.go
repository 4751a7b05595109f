//go:build !nohighbitdepth

package alignmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillUint16(t *testing.T) {
	a := New()

	p, err := a.Calloc(66, 2)
	require.NoError(t, err)
	defer a.Free(p)

	got := FillUint16(p, 0x3ff, 64)
	assert.Equal(t, p, got)

	samples := unsafe.Slice((*uint16)(p), 66)
	for i := range 64 {
		assert.Equal(t, uint16(0x3ff), samples[i])
	}
	// Elements past count are untouched
	assert.Equal(t, uint16(0), samples[64])
	assert.Equal(t, uint16(0), samples[65])
}

func TestFillUint16_Empty(t *testing.T) {
	assert.Nil(t, FillUint16(nil, 1, 10))

	var v uint16 = 7
	p := unsafe.Pointer(&v)
	assert.Equal(t, p, FillUint16(p, 9, 0))
	assert.Equal(t, uint16(7), v)
}
