package fixedarray

import "iter"

// Cursor is a mutable random-access position over an array buffer.
//
// A Cursor does not own anything: it refers to the buffer that was live when
// it was created and goes stale once that buffer is replaced, moved or
// released. Forward cursors step from the first element towards the last,
// reverse cursors from the last towards the first. Cursors obtained from the
// same array and direction may be compared and subtracted.
type Cursor[T any] struct {
	data []T
	pos  int // buffer index of the referenced element
	dir  int // +1 forward, -1 reverse
}

// Get returns the referenced element.
func (c Cursor[T]) Get() T { return c.data[c.pos] }

// Set stores v in the referenced element.
func (c Cursor[T]) Set(v T) { c.data[c.pos] = v }

// Ptr returns a pointer to the referenced element.
func (c Cursor[T]) Ptr() *T { return &c.data[c.pos] }

// At returns the element n steps away, like c.Add(n).Get().
func (c Cursor[T]) At(n int) T { return c.data[c.pos+n*c.dir] }

// Next returns the cursor one step forward in traversal order.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos += c.dir
	return c
}

// Prev returns the cursor one step backward in traversal order.
func (c Cursor[T]) Prev() Cursor[T] {
	c.pos -= c.dir
	return c
}

// Add returns the cursor n steps away in traversal order. n may be negative.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n * c.dir
	return c
}

// Distance returns the number of Next steps from c to to.
func (c Cursor[T]) Distance(to Cursor[T]) int {
	return (to.pos - c.pos) * c.dir
}

// Equal reports whether c and o refer to the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.pos == o.pos && c.dir == o.dir
}

// Less reports whether c comes before o in traversal order.
func (c Cursor[T]) Less(o Cursor[T]) bool {
	return c.Distance(o) > 0
}

// Index returns the buffer index of the referenced position.
// The end of a reverse traversal has index -1.
func (c Cursor[T]) Index() int { return c.pos }

// Reverse reports whether c walks from the last element to the first.
func (c Cursor[T]) Reverse() bool { return c.dir < 0 }

// Const returns a read-only view of c.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{c: c} }

// ConstCursor is the read-only counterpart of Cursor.
type ConstCursor[T any] struct {
	c Cursor[T]
}

// Get returns the referenced element.
func (cc ConstCursor[T]) Get() T { return cc.c.Get() }

// At returns the element n steps away.
func (cc ConstCursor[T]) At(n int) T { return cc.c.At(n) }

// Next returns the cursor one step forward in traversal order.
func (cc ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c: cc.c.Next()} }

// Prev returns the cursor one step backward in traversal order.
func (cc ConstCursor[T]) Prev() ConstCursor[T] { return ConstCursor[T]{c: cc.c.Prev()} }

// Add returns the cursor n steps away in traversal order.
func (cc ConstCursor[T]) Add(n int) ConstCursor[T] { return ConstCursor[T]{c: cc.c.Add(n)} }

// Distance returns the number of Next steps from cc to to.
func (cc ConstCursor[T]) Distance(to ConstCursor[T]) int { return cc.c.Distance(to.c) }

// Equal reports whether cc and o refer to the same position.
func (cc ConstCursor[T]) Equal(o ConstCursor[T]) bool { return cc.c.Equal(o.c) }

// Less reports whether cc comes before o in traversal order.
func (cc ConstCursor[T]) Less(o ConstCursor[T]) bool { return cc.c.Less(o.c) }

// Index returns the buffer index of the referenced position.
func (cc ConstCursor[T]) Index() int { return cc.c.Index() }

// Reverse reports whether cc walks from the last element to the first.
func (cc ConstCursor[T]) Reverse() bool { return cc.c.Reverse() }

// Begin returns a cursor to the first element.
func (a *Array[T]) Begin() Cursor[T] {
	return Cursor[T]{data: a.Data(), pos: 0, dir: 1}
}

// End returns a cursor one past the last element.
func (a *Array[T]) End() Cursor[T] {
	return Cursor[T]{data: a.Data(), pos: a.Len(), dir: 1}
}

// RBegin returns a reverse cursor to the last element.
func (a *Array[T]) RBegin() Cursor[T] {
	return Cursor[T]{data: a.Data(), pos: a.Len() - 1, dir: -1}
}

// REnd returns a reverse cursor one before the first element.
func (a *Array[T]) REnd() Cursor[T] {
	return Cursor[T]{data: a.Data(), pos: -1, dir: -1}
}

// CBegin is the read-only Begin.
func (a *Array[T]) CBegin() ConstCursor[T] { return a.Begin().Const() }

// CEnd is the read-only End.
func (a *Array[T]) CEnd() ConstCursor[T] { return a.End().Const() }

// CRBegin is the read-only RBegin.
func (a *Array[T]) CRBegin() ConstCursor[T] { return a.RBegin().Const() }

// CREnd is the read-only REnd.
func (a *Array[T]) CREnd() ConstCursor[T] { return a.REnd().Const() }

// All returns an iterator over index-value pairs in index order.
// The buffer is read when iteration starts, so the iterator can be reused.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element
// to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
