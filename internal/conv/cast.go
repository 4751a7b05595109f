package conv

import (
	"fmt"
	"math"
)

// Uint64ToUintptr converts uint64 to uintptr safely.
// On 64-bit platforms it never fails; on 32-bit platforms values above
// math.MaxUint32 are rejected.
func Uint64ToUintptr(v uint64) (uintptr, error) {
	if uint64(uintptr(v)) != v {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uintptr (too large)", v)
	}
	return uintptr(v), nil
}

// UintptrToInt converts uintptr to int safely.
func UintptrToInt(v uintptr) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
