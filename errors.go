package fixedarray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fixedarray/internal/resource"
)

var (
	// ErrOutOfRange is returned by the checked accessors for an index outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrAllocation is returned when a buffer cannot be allocated.
	ErrAllocation = errors.New("allocation failed")

	// ErrInvalidRange is returned when a source range is malformed
	// (last before first, or a sequence that yields a different number of
	// elements on its second pass).
	ErrInvalidRange = errors.New("invalid range")

	// ErrBudgetExceeded is the cause of an allocation failure when the
	// configured Budget memory limit would be exceeded.
	ErrBudgetExceeded = resource.ErrMemoryLimitExceeded

	// ErrRateLimited is the cause of an allocation failure when the
	// configured Budget allocation rate is exhausted.
	ErrRateLimited = resource.ErrRateLimited
)

// ErrIndex indicates a checked access outside the array bounds.
//
// errors.Is(err, ErrOutOfRange) reports true for an *ErrIndex.
type ErrIndex struct {
	Pos int
	Len int
}

func (e *ErrIndex) Error() string {
	return fmt.Sprintf("index out of range: pos %d not in [0, %d)", e.Pos, e.Len)
}

func (e *ErrIndex) Unwrap() error { return ErrOutOfRange }

// ErrAllocationFailed indicates that a buffer of Count elements (Bytes bytes)
// could not be provided. The receiver of a failed replace operation is left
// unchanged.
//
// errors.Is(err, ErrAllocation) reports true, and the underlying cause
// (e.g. ErrBudgetExceeded) can be accessed via errors.Unwrap.
type ErrAllocationFailed struct {
	Count int
	Bytes int64
	cause error
}

func (e *ErrAllocationFailed) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("allocation failed: %d elements (%d bytes)", e.Count, e.Bytes)
	}
	return fmt.Sprintf("allocation failed: %d elements (%d bytes): %v", e.Count, e.Bytes, e.cause)
}

func (e *ErrAllocationFailed) Is(target error) bool { return target == ErrAllocation }

func (e *ErrAllocationFailed) Unwrap() error { return e.cause }
