package bytereverse

import (
	"errors"
	"io"
	"os"

	"github.com/simonhull/bytereverse/internal/types"
)

// Write creates (or truncates) the file at path and writes data to it.
//
// It returns the number of bytes written. A write that stores zero bytes is
// a failure, so writing an empty buffer always returns KindWriteFailed.
//
// The file handle is closed on every path. A close error after a successful
// write is reported as KindWriteFailed, since the data may not have reached
// the file.
func Write(path string, data []byte, opts ...Option) (n int, err error) {
	o := applyOptions(opts)
	log := o.logger.With("path", path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, &types.Error{Kind: types.KindCreateFailed, Path: path, Err: err}
	}

	log.Debug("created destination file")

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &types.Error{Kind: types.KindWriteFailed, Path: path, Err: cerr}
		}
	}()

	n, err = f.Write(data)
	if n == 0 {
		if err == nil {
			err = io.ErrShortWrite
		}
		return 0, &types.Error{Kind: types.KindWriteFailed, Path: path, Err: err}
	}
	if err != nil {
		return n, &types.Error{Kind: types.KindWriteFailed, Path: path, Err: err}
	}

	log.Debug("wrote buffer to file", "bytes", n)

	return n, nil
}

// Exists reports whether something is present at path.
//
// Errors other than "not found" count as present, so callers guarding against
// overwrites never clobber a file they could not inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
