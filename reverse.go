package bytereverse

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Reverse returns a new buffer holding src's bytes in reverse order, so that
// out[i] == src[len(src)-1-i]. src is not modified.
func Reverse(src []byte) []byte {
	dst := make([]byte, len(src))
	reverseInto(dst, src, 0, len(src))
	return dst
}

// ReverseInPlace reverses b in place.
func ReverseInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ReverseContext is Reverse for large buffers.
//
// Buffers of at least the parallel threshold (see WithParallelThreshold) are
// split into segments filled concurrently, up to runtime.NumCPU() at a time.
// The result is identical to Reverse. The call returns only after every
// segment is done; if ctx is cancelled first, the partial buffer is dropped
// and ctx's error returned.
func ReverseContext(ctx context.Context, src []byte, opts ...Option) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	n := len(src)

	if o.parallelThreshold <= 0 || n < o.parallelThreshold {
		return Reverse(src), nil
	}

	workers := runtime.NumCPU()
	segment := (n + workers - 1) / workers
	if segment < minSegment {
		segment = minSegment
	}

	o.logger.Debug("reversing buffer concurrently", "bytes", n, "segment", segment)

	dst := make([]byte, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += segment {
		hi := min(lo+segment, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reverseInto(dst, src, lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dst, nil
}

// minSegment keeps goroutines from being spawned for trivially small ranges.
const minSegment = 64 << 10

// reverseInto fills dst[lo:hi] from the mirrored range of src.
// dst and src must have equal length and must not overlap.
func reverseInto(dst, src []byte, lo, hi int) {
	last := len(src) - 1
	for i := lo; i < hi; i++ {
		dst[i] = src[last-i]
	}
}
