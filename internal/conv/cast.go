package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a size computation does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// MaxCount returns the largest element count whose byte size fits in the
// maximum signed offset. Zero-sized elements have no byte limit.
func MaxCount(elemSize uintptr) int {
	if elemSize == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / elemSize)
}

// Bytes converts count*elemSize to int64 safely.
func Bytes(count int, elemSize uintptr) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrOverflow, count)
	}
	if count > MaxCount(elemSize) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes exceed max offset", ErrOverflow, count, elemSize)
	}
	return int64(count) * int64(elemSize), nil //nolint:gosec // bounded by MaxCount
}
