package alignmem

import (
	"math/bits"

	"github.com/hupe1980/alignmem/internal/conv"
)

// CheckSizeOverflow reports whether count*elemSize can be allocated: the
// product must not exceed MaxAllocableMemory and must be representable as a
// uintptr. A zero count never overflows.
func CheckSizeOverflow(count, elemSize uint64) bool {
	return checkSize(count, elemSize, MaxAllocableMemory)
}

func checkSize(count, elemSize, ceiling uint64) bool {
	if count == 0 {
		return true
	}
	// Divide before multiplying so the product is only formed once it is known
	// not to wrap.
	if elemSize > ceiling/count {
		return false
	}
	if _, err := conv.Uint64ToUintptr(count * elemSize); err != nil {
		return false
	}
	return true
}

// rawSize returns the host block size for a payload of size bytes preceded by
// slack bytes of header and alignment padding. The sum is formed in 64 bits and
// checked against ceiling before narrowing.
func rawSize(size, slack, ceiling uint64) (uintptr, bool) {
	total, carry := bits.Add64(size, slack, 0)
	if carry != 0 || !checkSize(1, total, ceiling) {
		return 0, false
	}
	return uintptr(total), true
}
