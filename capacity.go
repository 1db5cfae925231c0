package fixedarray

import "github.com/hupe1980/fixedarray/internal/mem"

// Empty reports whether the array has no elements.
func (a *Array[T]) Empty() bool {
	return a.Len() == 0
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// MaxLen returns the theoretical maximum length of an array of T: the largest
// count whose byte size does not exceed the maximum signed offset
// (math.MaxInt / sizeof(T)). Zero-sized types report math.MaxInt.
func MaxLen[T any]() int {
	return mem.MaxLen[T]()
}
