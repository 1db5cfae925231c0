package fixedarray

// Get returns the element at pos.
// pos must be in [0, Len()); this is not checked beyond Go's own bounds check.
func (a *Array[T]) Get(pos int) T {
	return a.data[pos]
}

// Set stores value at pos.
// pos must be in [0, Len()).
func (a *Array[T]) Set(pos int, value T) {
	a.data[pos] = value
}

// Ptr returns a pointer to the element at pos, valid until the buffer is
// replaced, moved or released.
// pos must be in [0, Len()).
func (a *Array[T]) Ptr(pos int) *T {
	return &a.data[pos]
}

// At returns the element at pos.
// It returns an *ErrIndex matching ErrOutOfRange if pos is outside [0, Len()),
// which includes every pos of an empty array.
func (a *Array[T]) At(pos int) (T, error) {
	if err := a.check(pos); err != nil {
		var zero T
		return zero, err
	}
	return a.data[pos], nil
}

// SetAt stores value at pos, with the same bounds check as At.
func (a *Array[T]) SetAt(pos int, value T) error {
	if err := a.check(pos); err != nil {
		return err
	}
	a.data[pos] = value
	return nil
}

// Front returns the first element. The array must not be empty.
func (a *Array[T]) Front() T {
	return a.data[0]
}

// Back returns the last element. The array must not be empty.
func (a *Array[T]) Back() T {
	return a.data[len(a.data)-1]
}

// Data returns the buffer itself, or nil if the array is empty.
// Writes through the slice are writes to the array. The slice is valid until
// the next operation that replaces, moves or releases the buffer.
func (a *Array[T]) Data() []T {
	if a == nil {
		return nil
	}
	return a.data
}

func (a *Array[T]) check(pos int) error {
	n := a.Len()
	if pos < 0 || pos >= n {
		return &ErrIndex{Pos: pos, Len: n}
	}
	return nil
}
