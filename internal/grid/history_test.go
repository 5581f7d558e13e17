package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoWithSingleEntry(t *testing.T) {
	start := New(3, func(i int) int { return i })
	h := NewHistory(start)

	current, err := h.Undo()

	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Same(t, start, current)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, h.Current().Cells())
}

func TestUndoPopsLatest(t *testing.T) {
	start := New(2, func(int) int { return 0 })
	h := NewHistory(start)

	first := start.Clone()
	require.NoError(t, first.Set(0, 0, 1))
	h.Push(first)

	second := first.Transpose()
	h.Push(second)
	require.Equal(t, 3, h.Len())

	current, err := h.Undo()
	require.NoError(t, err)
	assert.Same(t, first, current)

	current, err = h.Undo()
	require.NoError(t, err)
	assert.Same(t, start, current)

	_, err = h.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(New[int](2, nil))
	h.Push(New[int](2, nil))

	fresh := New(2, func(int) int { return 7 })
	h.Reset(fresh)

	assert.Equal(t, 1, h.Len())
	assert.Same(t, fresh, h.Current())
}
