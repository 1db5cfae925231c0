package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxCount(t *testing.T) {
	t.Run("byte elements", func(t *testing.T) {
		assert.Equal(t, math.MaxInt, MaxCount(1))
	})

	t.Run("eight byte elements", func(t *testing.T) {
		assert.Equal(t, math.MaxInt/8, MaxCount(8))
	})

	t.Run("zero sized elements", func(t *testing.T) {
		assert.Equal(t, math.MaxInt, MaxCount(0))
	})
}

func TestBytes(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Bytes(0, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := Bytes(10, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(40), got)
	})

	t.Run("valid at limit", func(t *testing.T) {
		got, err := Bytes(MaxCount(8), 8)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, int64(math.MaxInt))
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Bytes(-1, 8)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("invalid above limit", func(t *testing.T) {
		_, err := Bytes(MaxCount(8)+1, 8)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
