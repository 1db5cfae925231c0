package fixedarray

import (
	"cmp"
	"slices"
)

// Arrays are ordered length first: if the lengths differ, the shorter array
// is less regardless of its elements, so {9, 9} < {1, 1, 1}. Only arrays of
// equal length are compared element by element, lexicographically. This is
// not the usual sequence ordering, where elements decide before length.

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b. Elements are compared with cmp.Compare, so for floats a
// NaN equals NaN and orders before every other value. Less, LessOrEqual,
// Greater and GreaterOrEqual follow Compare. Equal does not: it uses ==, so
// arrays holding NaN can be unequal while Compare reports 0.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses cmpFn to compare elements.
func CompareFunc[T any](a, b *Array[T], cmpFn func(T, T) int) int {
	la, lb := a.Len(), b.Len()
	if la != lb {
		if la < lb {
			return -1
		}
		return +1
	}
	db := b.Data()
	for i, v := range a.Data() {
		if c := cmpFn(v, db[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b have the same length and equal elements.
// Elements are compared with ==, stopping at the first mismatch. For floats
// NaN != NaN, so an array holding NaN is not Equal to itself even though
// Compare returns 0; use EqualFunc or Compare(a, b) == 0 for the ordering
// notion of equality.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// NotEqual reports !Equal(a, b).
func NotEqual[T comparable](a, b *Array[T]) bool { return !Equal(a, b) }

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a orders before or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a orders after or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Array[T]) bool { return Compare(a, b) >= 0 }
