//go:build !unix && !windows

package mmap

import "errors"

var errUnsupported = errors.New("mmap: anonymous mappings are not supported on this platform")

// PageSize returns the OS page size.
func PageSize() int {
	return 4096
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return nil, nil, errUnsupported
}

func osUnmap(data []byte) error {
	return errUnsupported
}

func osAdvise(data []byte, pattern AccessPattern) error {
	return nil
}
