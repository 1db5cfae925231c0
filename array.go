package fixedarray

import (
	"fmt"
	"iter"

	"github.com/hupe1980/fixedarray/internal/mem"
)

// Array is a fixed-length array whose length is chosen at runtime.
//
// The length is set at construction and changes only by whole-object
// replacement: Assign and its variants, MoveAssign, Swap and Release.
// The buffer is nil if and only if the length is 0.
//
// The zero value is an empty array ready to use. An Array must not be copied
// by value after first use; use Clone for an independent deep copy and Move
// to transfer ownership. A nil *Array behaves as an empty array for all
// read-only operations.
//
// An Array is not safe for concurrent use. Distinct arrays are independent.
type Array[T any] struct {
	data []T

	// Accounting for data. The charge belongs to the buffer, not to the
	// array, and travels with it on move and swap.
	budget *Budget
	charge int64

	opts *options
}

// New returns an empty array. It never fails.
func New[T any](optFns ...Option) *Array[T] {
	return &Array[T]{opts: applyOptions(optFns)}
}

// Make returns an array of n zero-valued elements.
//
// It fails with an error matching ErrAllocation if n is negative, if n
// exceeds MaxLen[T]() or if the configured Budget rejects the buffer.
// Make(0) is equivalent to New.
func Make[T any](n int, optFns ...Option) (*Array[T], error) {
	return allocate[T](applyOptions(optFns), n)
}

// MakeFilled returns an array of n copies of value.
func MakeFilled[T any](n int, value T, optFns ...Option) (*Array[T], error) {
	a, err := allocate[T](applyOptions(optFns), n)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// FromRange returns an array holding a copy of the elements in [first, last),
// in traversal order. The length is first.Distance(last), computed before any
// element is copied; a negative distance fails with ErrInvalidRange.
func FromRange[T any](first, last ConstCursor[T], optFns ...Option) (*Array[T], error) {
	return fromRange(applyOptions(optFns), first, last)
}

// FromSeq returns an array holding the elements yielded by seq, in order.
//
// seq must be re-iterable: it is ranged over once to count the elements and
// a second time to copy them. If the second pass yields a different number
// of elements, FromSeq fails with ErrInvalidRange.
func FromSeq[T any](seq iter.Seq[T], optFns ...Option) (*Array[T], error) {
	return fromSeq(applyOptions(optFns), seq)
}

// FromSlice returns an array holding a copy of s.
func FromSlice[T any](s []T, optFns ...Option) (*Array[T], error) {
	return fromSlice(applyOptions(optFns), s)
}

// Of returns an array holding a copy of values, in order.
// It uses the default options and never fails.
func Of[T any](values ...T) *Array[T] {
	a, err := fromSlice(&defaultOptions, values)
	if err != nil {
		// Unreachable: len(values) <= MaxLen[T]() and no budget is set.
		panic(err)
	}
	return a
}

// Move returns a new array that owns other's buffer, in O(1).
// No element is copied. other is left empty and reusable.
func Move[T any](other *Array[T]) *Array[T] {
	a := &Array[T]{}
	if other == nil {
		return a
	}
	a.opts = other.opts
	a.take(other)
	return a
}

// Clone returns an independent deep copy of a with the same options.
// Later mutation of either array does not affect the other.
func (a *Array[T]) Clone() (*Array[T], error) {
	return fromSlice(a.options(), a.Data())
}

// Release drops the buffer, refunds its budget charge and leaves the array
// empty and reusable. Calling Release more than once is a no-op.
func (a *Array[T]) Release() {
	if a == nil {
		return
	}
	a.drop()
}

// String formats the elements as [e0 e1 ...].
func (a *Array[T]) String() string {
	if a.Empty() {
		return "[]"
	}
	return fmt.Sprint(a.data)
}

func (a *Array[T]) options() *options {
	if a == nil || a.opts == nil {
		return &defaultOptions
	}
	return a.opts
}

// allocate builds an array of n zero-valued elements. The budget is charged
// before the buffer exists, so a rejected request allocates nothing.
func allocate[T any](o *options, n int) (*Array[T], error) {
	bytes, err := mem.Bytes[T](n)
	if err != nil {
		return nil, allocationFailed(o, n, bytes, err)
	}

	if err := o.budget.acquire(bytes); err != nil {
		return nil, allocationFailed(o, n, bytes, err)
	}

	data, err := mem.Alloc[T](n)
	if err != nil {
		o.budget.release(bytes)
		return nil, allocationFailed(o, n, bytes, err)
	}

	o.metrics.RecordAllocate(n, bytes, nil)
	o.logger.LogAllocate(n, bytes, nil)

	a := &Array[T]{data: data, opts: o}
	if o.budget != nil {
		a.budget = o.budget
		a.charge = bytes
	}
	return a, nil
}

func allocationFailed(o *options, n int, bytes int64, cause error) error {
	o.metrics.RecordAllocate(n, bytes, cause)
	o.logger.LogAllocate(n, bytes, cause)
	return &ErrAllocationFailed{Count: n, Bytes: bytes, cause: cause}
}

func fromSlice[T any](o *options, s []T) (*Array[T], error) {
	a, err := allocate[T](o, len(s))
	if err != nil {
		return nil, err
	}
	copy(a.data, s)
	return a, nil
}

func fromRange[T any](o *options, first, last ConstCursor[T]) (*Array[T], error) {
	n := first.Distance(last)
	if n < 0 {
		return nil, fmt.Errorf("%w: last is %d positions before first", ErrInvalidRange, -n)
	}
	a, err := allocate[T](o, n)
	if err != nil {
		return nil, err
	}
	copyRange(a.data, first, n)
	return a, nil
}

func fromSeq[T any](o *options, seq iter.Seq[T]) (*Array[T], error) {
	return fromSeqN(o, seq, seqLen(seq))
}

func fromSeqN[T any](o *options, seq iter.Seq[T], n int) (*Array[T], error) {
	a, err := allocate[T](o, n)
	if err != nil {
		return nil, err
	}
	if err := copySeq(a.data, seq); err != nil {
		a.drop()
		return nil, err
	}
	return a, nil
}

func seqLen[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// copyRange copies n elements starting at first into dst.
func copyRange[T any](dst []T, first ConstCursor[T], n int) {
	c := first
	for i := 0; i < n; i++ {
		dst[i] = c.Get()
		c = c.Next()
	}
}

// copySeq copies the elements of seq into dst. seq must yield exactly len(dst)
// elements; dst may be partially written when it does not.
func copySeq[T any](dst []T, seq iter.Seq[T]) error {
	i := 0
	for v := range seq {
		if i == len(dst) {
			return fmt.Errorf("%w: sequence yielded more than %d elements on second pass", ErrInvalidRange, len(dst))
		}
		dst[i] = v
		i++
	}
	if i != len(dst) {
		return fmt.Errorf("%w: sequence yielded %d elements on second pass, expected %d", ErrInvalidRange, i, len(dst))
	}
	return nil
}

// drop releases the buffer and its charge.
func (a *Array[T]) drop() {
	if a.data == nil && a.charge == 0 {
		return
	}
	n := len(a.data)
	a.budget.release(a.charge)
	a.data, a.budget, a.charge = nil, nil, 0

	bytes := int64(n) * int64(mem.SizeOf[T]()) //nolint:gosec // n <= MaxLen[T]()
	o := a.options()
	o.metrics.RecordRelease(n, bytes)
	o.logger.LogRelease(n, bytes)
}

// take moves other's buffer and charge into a, which must already be empty.
// other is left empty without refunding anything.
func (a *Array[T]) take(other *Array[T]) {
	a.data, a.budget, a.charge = other.data, other.budget, other.charge
	other.data, other.budget, other.charge = nil, nil, 0
}

// replace swaps tmp's buffer into a and releases a's previous buffer.
func (a *Array[T]) replace(tmp *Array[T]) {
	a.swapStorage(tmp)
	tmp.drop()
}

func (a *Array[T]) swapStorage(other *Array[T]) {
	a.data, other.data = other.data, a.data
	a.budget, other.budget = other.budget, a.budget
	a.charge, other.charge = other.charge, a.charge
}
