package bytereverse

import (
	"log/slog"

	"github.com/simonhull/bytereverse/internal/logger"
)

// DefaultParallelThreshold is the buffer size at which ReverseContext starts
// splitting work across goroutines.
const DefaultParallelThreshold = 4 << 20

// Option configures Load, Write and ReverseContext.
//
// Options use the functional options pattern:
//
//	data, err := bytereverse.Load("in.bin",
//	    bytereverse.WithLogger(log),
//	    bytereverse.WithMaxSize(64<<20),
//	)
type Option func(*options)

// options holds configuration shared by the I/O and reversal operations.
type options struct {
	logger            *slog.Logger // Trace sink (discarded by default)
	maxSize           int64        // Largest file Load will buffer (0 = no limit)
	parallelThreshold int          // Minimum size for a concurrent reversal (<= 0 = never)
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:            logger.Discard(),
		maxSize:           0, // No limit
		parallelThreshold: DefaultParallelThreshold,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger routes trace messages to l.
//
// Load and Write emit one debug record per step (open, seek, measured length,
// allocation, byte counts). Tracing never changes control flow, so passing a
// logger is purely observational.
//
// A nil logger restores the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.Discard()
		}
		o.logger = l
	}
}

// WithMaxSize caps the number of bytes Load is willing to buffer.
//
// Files larger than the cap fail with KindAllocationFailed before any buffer
// is allocated. Default is 0 (no limit beyond what fits in an int).
func WithMaxSize(bytes int64) Option {
	return func(o *options) {
		o.maxSize = bytes
	}
}

// WithParallelThreshold sets the buffer size at which ReverseContext fans out
// across goroutines. Zero or a negative value keeps every reversal on the
// calling goroutine.
func WithParallelThreshold(bytes int) Option {
	return func(o *options) {
		o.parallelThreshold = bytes
	}
}
