//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func osRemap(old []byte, size int) ([]byte, error) {
	data, err := unix.Mremap(old, size, unix.MREMAP_MAYMOVE)
	if err != nil {
		// Some sandboxes reject mremap; fall back to map+copy.
		return remapCopy(old, size)
	}
	return data, nil
}
