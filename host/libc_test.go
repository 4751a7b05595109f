//go:build cgo

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibc(t *testing.T) {
	h := NewLibc()
	exerciseHost(t, h)

	assert.Nil(t, h.Alloc(0))
	h.Release(nil)
}
