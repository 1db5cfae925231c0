package fixedarray

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment(t *testing.T) {
	setup := func(t *testing.T) (*Array[int], *Array[int]) {
		arr1 := Of(42, 42, 42)
		arr2 := New[int]()
		require.Equal(t, 3, arr1.Len())
		require.True(t, arr2.Empty())
		return arr1, arr2
	}

	t.Run("Assign", func(t *testing.T) {
		arr1, arr2 := setup(t)

		require.NoError(t, arr2.Assign(arr1))

		require.Equal(t, arr1.Len(), arr2.Len())
		assert.Equal(t, arr1.Data(), arr2.Data())

		arr2.Set(0, 1)
		assert.Equal(t, 42, arr1.Get(0), "assign must deep copy")
	})

	t.Run("AssignSameLengthReusesBuffer", func(t *testing.T) {
		arr1 := Of(1, 2, 3)
		arr2 := Of(7, 8, 9)
		buf := arr2.Data()

		require.NoError(t, arr2.Assign(arr1))

		assert.Equal(t, []int{1, 2, 3}, arr2.Data())
		assert.Same(t, &buf[0], &arr2.Data()[0])
	})

	t.Run("AssignSelf", func(t *testing.T) {
		arr := Of(1, 2, 3)
		buf := arr.Data()

		require.NoError(t, arr.Assign(arr))

		assert.Equal(t, []int{1, 2, 3}, arr.Data())
		assert.Same(t, &buf[0], &arr.Data()[0])
	})

	t.Run("AssignEmpty", func(t *testing.T) {
		arr := Of(1, 2, 3)

		require.NoError(t, arr.Assign(New[int]()))

		assert.True(t, arr.Empty())
		assert.Nil(t, arr.Data())
	})

	t.Run("MoveAssign", func(t *testing.T) {
		arr1, arr2 := setup(t)

		arr2.MoveAssign(arr1)

		assert.True(t, arr1.Empty())
		assert.Nil(t, arr1.Data())

		require.Equal(t, 3, arr2.Len())
		assert.Equal(t, []int{42, 42, 42}, arr2.Data())
	})

	t.Run("MoveAssignSelf", func(t *testing.T) {
		arr := Of(1, 2, 3)

		arr.MoveAssign(arr)

		assert.Equal(t, []int{1, 2, 3}, arr.Data())
	})

	t.Run("AssignValues", func(t *testing.T) {
		_, arr2 := setup(t)

		require.NoError(t, arr2.AssignValues(42, 42, 42))

		require.Equal(t, 3, arr2.Len())
		assert.Equal(t, []int{42, 42, 42}, arr2.Data())
	})

	t.Run("AssignN", func(t *testing.T) {
		_, arr2 := setup(t)

		require.NoError(t, arr2.AssignN(10, 404))

		require.Equal(t, 10, arr2.Len())
		for v := range arr2.Values() {
			assert.Equal(t, 404, v)
		}

		require.NoError(t, arr2.AssignN(10, 7))
		assert.Equal(t, 10, arr2.Len())
		assert.Equal(t, 7, arr2.Back())
	})

	t.Run("AssignNNegative", func(t *testing.T) {
		arr := Of(1, 2, 3)

		err := arr.AssignN(-1, 0)
		assert.ErrorIs(t, err, ErrAllocation)
		assert.Equal(t, []int{1, 2, 3}, arr.Data(), "failed assign must leave the array intact")
	})

	t.Run("AssignRange", func(t *testing.T) {
		arr1, arr2 := setup(t)

		require.NoError(t, arr2.AssignRange(arr1.CBegin(), arr1.CEnd()))

		require.Equal(t, 3, arr2.Len())
		assert.Equal(t, []int{42, 42, 42}, arr2.Data())
	})

	t.Run("AssignRangeSameLength", func(t *testing.T) {
		src := Of(1, 2, 3)
		arr := Of(0, 0, 0)

		require.NoError(t, arr.AssignRange(src.CRBegin(), src.CREnd()))

		assert.Equal(t, []int{3, 2, 1}, arr.Data())
	})

	t.Run("AssignRangeInverted", func(t *testing.T) {
		src := Of(1, 2, 3)
		arr := Of(9)

		err := arr.AssignRange(src.CEnd(), src.CBegin())
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Equal(t, []int{9}, arr.Data())
	})

	t.Run("AssignSeq", func(t *testing.T) {
		_, arr2 := setup(t)

		require.NoError(t, arr2.AssignSeq(slices.Values([]int{42, 42, 42})))
		assert.Equal(t, []int{42, 42, 42}, arr2.Data())

		require.NoError(t, arr2.AssignSeq(slices.Values([]int{1, 2, 3})))
		assert.Equal(t, []int{1, 2, 3}, arr2.Data())
	})

	t.Run("AssignSeqNotRepeatable", func(t *testing.T) {
		arr := Of(5)
		calls := 0
		seq := iter.Seq[int](func(yield func(int) bool) {
			calls++
			for i := 0; i < calls+1; i++ {
				if !yield(i) {
					return
				}
			}
		})

		err := arr.AssignSeq(seq)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Equal(t, []int{5}, arr.Data())
	})

	t.Run("AssignRangeFromSelfReversed", func(t *testing.T) {
		arr := Of(1, 2, 3, 4)

		require.NoError(t, arr.AssignRange(arr.CRBegin(), arr.CREnd()))

		assert.Equal(t, []int{4, 3, 2, 1}, arr.Data())
	})

	t.Run("AssignRangeFromSelfSubrange", func(t *testing.T) {
		arr := Of(1, 2, 3, 4, 5)

		require.NoError(t, arr.AssignRange(arr.CBegin().Add(1), arr.CEnd().Prev()))
		assert.Equal(t, []int{2, 3, 4}, arr.Data())

		require.NoError(t, arr.AssignRange(arr.CBegin(), arr.CEnd()))
		assert.Equal(t, []int{2, 3, 4}, arr.Data())
	})

	t.Run("AssignSeqSameCountShrinkingSecondPass", func(t *testing.T) {
		arr := Of(5, 6, 7)
		calls := 0
		seq := iter.Seq[int](func(yield func(int) bool) {
			calls++
			n := 3
			if calls > 1 {
				n = 2
			}
			for i := 0; i < n; i++ {
				if !yield(100 + i) {
					return
				}
			}
		})

		err := arr.AssignSeq(seq)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Equal(t, 3, arr.Len(), "length is kept")
	})
}
