//go:build !linux

package mmap

func osRemap(old []byte, size int) ([]byte, error) {
	return remapCopy(old, size)
}
