package bytereverse

import (
	"github.com/simonhull/bytereverse/internal/types"
)

// Error is an alias to types.Error.
// Re-exported from internal/types so callers can use errors.As without importing internal packages.
type Error = types.Error

// Kind is an alias to types.Kind.
type Kind = types.Kind

// Error kinds.
const (
	KindOpenFailed        = types.KindOpenFailed
	KindSeekFailed        = types.KindSeekFailed
	KindEmptyFile         = types.KindEmptyFile
	KindAllocationFailed  = types.KindAllocationFailed
	KindReadFailed        = types.KindReadFailed
	KindCreateFailed      = types.KindCreateFailed
	KindWriteFailed       = types.KindWriteFailed
	KindUsageError        = types.KindUsageError
	KindDestinationExists = types.KindDestinationExists
)

// Sentinel errors for use with errors.Is.
var (
	ErrOpenFailed        = types.ErrOpenFailed
	ErrSeekFailed        = types.ErrSeekFailed
	ErrEmptyFile         = types.ErrEmptyFile
	ErrAllocationFailed  = types.ErrAllocationFailed
	ErrReadFailed        = types.ErrReadFailed
	ErrCreateFailed      = types.ErrCreateFailed
	ErrWriteFailed       = types.ErrWriteFailed
	ErrUsage             = types.ErrUsage
	ErrDestinationExists = types.ErrDestinationExists
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	return types.KindOf(err)
}
