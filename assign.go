package fixedarray

import (
	"fmt"
	"iter"
)

// Assign replaces the contents of a with a copy of other.
//
// Assigning an array to itself is a no-op. If the lengths match, elements are
// overwritten in index order without reallocating. Otherwise a replacement
// buffer is built first and swapped in, so on error a is left unchanged.
func (a *Array[T]) Assign(other *Array[T]) error {
	if a == other {
		return nil
	}
	return a.assignSlice(other.Data())
}

// MoveAssign releases the buffer of a and takes ownership of other's buffer.
// other is left empty. Move-assigning an array to itself is a no-op.
func (a *Array[T]) MoveAssign(other *Array[T]) {
	if a == other {
		return
	}
	a.drop()
	if other != nil {
		a.take(other)
	}
}

// AssignValues replaces the contents of a with values, in order.
func (a *Array[T]) AssignValues(values ...T) error {
	return a.assignSlice(values)
}

// AssignN replaces the contents of a with n copies of value.
func (a *Array[T]) AssignN(n int, value T) error {
	if n == len(a.data) {
		a.Fill(value)
		return nil
	}
	tmp, err := allocate[T](a.options(), n)
	if err != nil {
		return err
	}
	tmp.Fill(value)
	a.replace(tmp)
	return nil
}

// AssignRange replaces the contents of a with a copy of [first, last).
//
// The range may point into a itself. Such a range is copied into a new
// buffer first, even when its length equals a.Len().
func (a *Array[T]) AssignRange(first, last ConstCursor[T]) error {
	n := first.Distance(last)
	if n < 0 {
		return fmt.Errorf("%w: last is %d positions before first", ErrInvalidRange, -n)
	}
	if n == len(a.data) && !a.sharesBuffer(first) {
		copyRange(a.data, first, n)
		return nil
	}
	tmp, err := fromRange(a.options(), first, last)
	if err != nil {
		return err
	}
	a.replace(tmp)
	return nil
}

// AssignSeq replaces the contents of a with the elements yielded by seq.
// seq must be re-iterable, as for FromSeq; passing any other sequence is a
// caller error.
//
// If the count matches the current length the elements are overwritten in
// place. A sequence whose second pass yields a different count then leaves a
// partially overwritten and returns ErrInvalidRange; this is the one case in
// which a failed assignment modifies the receiver. With a different count the
// replacement is built first and a is unchanged on error.
func (a *Array[T]) AssignSeq(seq iter.Seq[T]) error {
	n := seqLen(seq)
	if n == len(a.data) {
		return copySeq(a.data, seq)
	}
	tmp, err := fromSeqN(a.options(), seq, n)
	if err != nil {
		return err
	}
	a.replace(tmp)
	return nil
}

// sharesBuffer reports whether c walks over a's current buffer.
func (a *Array[T]) sharesBuffer(c ConstCursor[T]) bool {
	return len(a.data) > 0 && len(c.c.data) > 0 && &c.c.data[0] == &a.data[0]
}

func (a *Array[T]) assignSlice(s []T) error {
	if len(s) == len(a.data) {
		copy(a.data, s)
		return nil
	}
	tmp, err := fromSlice(a.options(), s)
	if err != nil {
		return err
	}
	a.replace(tmp)
	return nil
}
