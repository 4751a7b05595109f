package host

import (
	"log/slog"
	"unsafe"

	"github.com/hupe1980/alignmem/internal/mmap"
)

// Allocator is a general-purpose allocator of raw blocks.
//
// Implementations report exhaustion by returning nil; they never panic on it.
type Allocator interface {
	// Alloc returns a block of at least size bytes, or nil.
	Alloc(size uintptr) unsafe.Pointer
	// Realloc resizes the block at p to size bytes, possibly moving it.
	// Contents are preserved up to the lesser of the old and new sizes.
	// On failure it returns nil and p remains valid.
	Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer
	// Release returns the block at p. Release(nil) is a no-op.
	Release(p unsafe.Pointer)
}

// AccessPattern is a paging hint Mmap applies to the blocks it maps.
type AccessPattern = mmap.AccessPattern

// Access patterns accepted by WithAccessPattern.
const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
)

type config struct {
	logger *slog.Logger
	strict bool
	access AccessPattern
}

// Option configures a host allocator.
type Option func(*config)

// WithLogger sets the logger used to report failures that cannot be returned,
// such as a failed unmap or an invalid release.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithStrict makes Tracking panic on misuse instead of logging it.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithAccessPattern sets the paging hint Mmap passes to madvise for every new
// or resized block.
func WithAccessPattern(pattern AccessPattern) Option {
	return func(c *config) {
		c.access = pattern
	}
}

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
