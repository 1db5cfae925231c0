// Package fixedarray provides a fixed-length array whose length is chosen at
// runtime.
//
// An Array[T] owns one contiguous heap buffer of exactly Len() elements. The
// length is fixed at construction; unlike a slice it cannot grow or shrink in
// place. It changes only when the whole contents are replaced (Assign and its
// variants), moved (Move, MoveAssign), exchanged (Swap) or released.
//
// # Quick Start
//
//	arr := fixedarray.Of(1, 2, 3, 4, 5)
//	fmt.Println(arr.Get(1), arr.Front(), arr.Back()) // 2 1 5
//
//	if _, err := arr.At(11); errors.Is(err, fixedarray.ErrOutOfRange) {
//	    // checked access
//	}
//
//	sq, _ := fixedarray.Make[int](5)
//	fixedarray.Iota(sq, 10) // [10 11 12 13 14]
//
// # Ownership
//
// Clone makes an independent deep copy. Move transfers the buffer in O(1)
// and leaves the source empty:
//
//	b, _ := a.Clone() // deep copy
//	c := fixedarray.Move(a) // a is now empty
//
// Replacing contents of a different length builds the new buffer first and
// swaps it in afterwards, so a failed Assign leaves the receiver unchanged.
//
// # Iteration
//
// Cursors are random-access, bidirectional positions in forward (Begin, End)
// and reverse (RBegin, REnd) order, mutable or read-only (CBegin, CEnd, ...).
// All, Values and Backward return range-over-func iterators:
//
//	for i, v := range arr.All() {
//	    fmt.Println(i, v)
//	}
//
// # Ordering
//
// Compare orders arrays by length first; only arrays of equal length are
// compared elementwise. {9, 9} is less than {1, 1, 1}.
//
// # Memory Budgets
//
// A Budget caps the bytes held by buffers charged against it and the rate at
// which they may be allocated. Rejected requests fail with ErrAllocation:
//
//	budget := fixedarray.NewBudget(fixedarray.BudgetConfig{MemoryLimitBytes: 1 << 20})
//	arr, err := fixedarray.Make[float64](1<<20, fixedarray.WithBudget(budget))
//	// errors.Is(err, fixedarray.ErrBudgetExceeded) == true
//
// Release returns a buffer's charge to its budget.
//
// # Thread Safety
//
// An Array has no internal synchronization. Concurrent use of one array
// requires external locking; distinct arrays are independent.
package fixedarray
