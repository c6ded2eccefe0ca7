package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure in the load, reverse and write pipeline.
type Kind int

const (
	// KindUnknown is the zero Kind and never returned by this module.
	KindUnknown Kind = iota
	// KindOpenFailed means the source could not be opened for reading.
	KindOpenFailed
	// KindSeekFailed means measuring or rewinding the source failed.
	KindSeekFailed
	// KindEmptyFile means the source holds zero bytes.
	KindEmptyFile
	// KindAllocationFailed means no buffer of the measured length could be made.
	KindAllocationFailed
	// KindReadFailed means no bytes could be read into the buffer.
	KindReadFailed
	// KindCreateFailed means the destination could not be created or truncated.
	KindCreateFailed
	// KindWriteFailed means the buffer could not be written to the destination.
	KindWriteFailed
	// KindUsageError means the command line was malformed.
	KindUsageError
	// KindDestinationExists means the destination exists and overwriting was not forced.
	KindDestinationExists
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOpenFailed:
		return "open failed"
	case KindSeekFailed:
		return "seek failed"
	case KindEmptyFile:
		return "empty file"
	case KindAllocationFailed:
		return "allocation failed"
	case KindReadFailed:
		return "read failed"
	case KindCreateFailed:
		return "create failed"
	case KindWriteFailed:
		return "write failed"
	case KindUsageError:
		return "usage error"
	case KindDestinationExists:
		return "destination exists"
	default:
		return "unknown"
	}
}

// Error is returned for every failure detected while loading, reversing or
// writing a file.
//
// Error wraps the underlying cause (if any), so both of these work:
//
//	errors.Is(err, types.ErrEmptyFile)
//	errors.Is(err, fs.ErrNotExist)
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
// A target with an empty Path matches any path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Path == "" || t.Path == e.Path)
}

// Sentinels for errors.Is comparisons.
var (
	ErrOpenFailed        = &Error{Kind: KindOpenFailed}
	ErrSeekFailed        = &Error{Kind: KindSeekFailed}
	ErrEmptyFile         = &Error{Kind: KindEmptyFile}
	ErrAllocationFailed  = &Error{Kind: KindAllocationFailed}
	ErrReadFailed        = &Error{Kind: KindReadFailed}
	ErrCreateFailed      = &Error{Kind: KindCreateFailed}
	ErrWriteFailed       = &Error{Kind: KindWriteFailed}
	ErrUsage             = &Error{Kind: KindUsageError}
	ErrDestinationExists = &Error{Kind: KindDestinationExists}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
