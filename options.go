package alignmem

import (
	"log/slog"

	"github.com/hupe1980/alignmem/host"
)

type options struct {
	host             host.Allocator
	maxAllocable     uint64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithHost configures the host allocator that supplies raw blocks.
//
// If nil is passed, a host.GoHeap is used.
//
// Example with off-heap memory:
//
//	a := alignmem.New(alignmem.WithHost(host.NewMmap()))
func WithHost(h host.Allocator) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithMaxAllocable overrides the largest raw block the allocator will request.
// Requests whose size arithmetic exceeds it fail with ErrOverflow.
//
// If 0 is passed, MaxAllocableMemory is used.
func WithMaxAllocable(n uint64) Option {
	return func(o *options) {
		o.maxAllocable = n
	}
}

// WithMetricsCollector configures a metrics collector for allocator operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &alignmem.BasicMetricsCollector{}
//	a := alignmem.New(alignmem.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Live: %d\n", stats.LiveAllocations)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of failed requests.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.host == nil {
		o.host = host.NewGoHeap()
	}
	if o.maxAllocable == 0 {
		o.maxAllocable = MaxAllocableMemory
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
