package bytereverse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/simonhull/bytereverse/internal/types"
)

// Load reads the whole file at path into a newly allocated buffer.
//
// The buffer is sized exactly to the file length measured by seeking to the
// end, and the returned slice's length is the number of bytes actually read.
// If the file shrinks between measuring and reading, the shorter contents are
// returned.
//
// Load never returns an empty buffer: a zero-length file fails with
// KindEmptyFile. Every failure is an *Error whose Kind names the step that
// failed:
//
//	data, err := bytereverse.Load("in.bin")
//	if errors.Is(err, bytereverse.ErrEmptyFile) {
//		// nothing to reverse
//	}
//
// The file handle is closed before Load returns, on every path.
func Load(path string, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	log := o.logger.With("path", path)

	log.Debug("loading file")

	f, err := os.Open(path)
	if err != nil {
		return nil, &types.Error{Kind: types.KindOpenFailed, Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &types.Error{Kind: types.KindOpenFailed, Path: path, Err: err}
	}
	if fi.IsDir() {
		return nil, &types.Error{Kind: types.KindOpenFailed, Path: path, Err: errIsDir}
	}

	log.Debug("opened file")

	buf, err := readAll(f, path, o)
	if err != nil {
		return nil, err
	}

	log.Debug("loaded file into buffer", "bytes", len(buf))

	return buf, nil
}

// readAll measures r by seeking to its end, rewinds it and reads that many
// bytes into a buffer of exactly that size.
func readAll(r io.ReadSeeker, path string, o *options) ([]byte, error) {
	log := o.logger.With("path", path)

	length, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &types.Error{Kind: types.KindSeekFailed, Path: path, Err: err}
	}

	log.Debug("finished seeking file", "length", length)

	if length == 0 {
		return nil, &types.Error{Kind: types.KindEmptyFile, Path: path}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &types.Error{Kind: types.KindSeekFailed, Path: path, Err: err}
	}

	log.Debug("seeked to beginning of file")

	buf, err := allocate(length, o.maxSize)
	if err != nil {
		return nil, &types.Error{Kind: types.KindAllocationFailed, Path: path, Err: err}
	}

	log.Debug("allocated buffer", "size", len(buf))

	n, err := io.ReadFull(r, buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &types.Error{Kind: types.KindReadFailed, Path: path, Err: err}
	}
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &types.Error{Kind: types.KindReadFailed, Path: path, Err: err}
	}

	return buf[:n], nil
}

// LoadContext is Load with a cancellation check before any I/O starts.
func LoadContext(ctx context.Context, path string, opts ...Option) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(path, opts...)
}

var (
	errIsDir      = errors.New("is a directory")
	errTooLarge   = errors.New("file exceeds configured maximum size")
	errNotAddress = errors.New("file length does not fit in memory")
)

// allocate returns a buffer of exactly length bytes, or an error when the
// length is not representable, exceeds limit (0 = no limit), or is larger
// than the runtime will ever hand out.
//
// Running out of memory for a length the runtime accepts is still fatal.
func allocate(length, limit int64) (buf []byte, err error) {
	if length < 0 || uint64(length) > math.MaxInt {
		return nil, errNotAddress
	}
	if limit > 0 && length > limit {
		return nil, errTooLarge
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", errNotAddress, r)
		}
	}()

	return make([]byte, length), nil
}
