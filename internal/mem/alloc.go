package mem

import (
	"unsafe"

	"github.com/hupe1980/fixedarray/internal/conv"
)

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// MaxLen returns the largest element count of type T whose byte size does
// not exceed the maximum signed offset.
func MaxLen[T any]() int {
	return conv.MaxCount(SizeOf[T]())
}

// Bytes returns the byte size of n elements of type T.
// It fails for negative n and for n > MaxLen[T]().
func Bytes[T any](n int) (int64, error) {
	return conv.Bytes(n, SizeOf[T]())
}

// Alloc allocates a zeroed buffer of exactly n elements.
// The returned slice is nil if n is 0.
func Alloc[T any](n int) ([]T, error) {
	if _, err := Bytes[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}
