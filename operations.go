package fixedarray

import "golang.org/x/exp/constraints"

// Number is the set of element types supported by Iota.
type Number interface {
	constraints.Integer | constraints.Float
}

// Swap exchanges the buffers of a and other in O(1). No element is copied.
// Budget charges travel with their buffers.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.swapStorage(other)
}

// Swap exchanges the buffers of a and b.
func Swap[T any](a, b *Array[T]) {
	a.Swap(b)
}

// Fill overwrites every element with value, in index order.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Clear overwrites every element with the zero value of T.
func (a *Array[T]) Clear() {
	clear(a.data)
}

// Generate overwrites element i with the i-th result of gen. gen is called
// exactly once per element, in index order.
func (a *Array[T]) Generate(gen func() T) {
	for i := range a.data {
		a.data[i] = gen()
	}
}

// Iota overwrites element i with start+i, for i in [0, a.Len()), by
// successively incrementing start.
func Iota[T Number](a *Array[T], start T) {
	v := start
	for i := range a.data {
		a.data[i] = v
		v++
	}
}
