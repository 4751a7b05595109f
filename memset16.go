//go:build !nohighbitdepth

package alignmem

import "unsafe"

// FillUint16 writes count copies of value as consecutive uint16 elements
// starting at dst and returns dst. dst must be 2-byte aligned.
//
// Excluded from builds with the nohighbitdepth tag.
func FillUint16(dst unsafe.Pointer, value uint16, count int) unsafe.Pointer {
	if dst == nil || count <= 0 {
		return dst
	}
	s := unsafe.Slice((*uint16)(dst), count)
	for i := range s {
		s[i] = value
	}
	return dst
}
