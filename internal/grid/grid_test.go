package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomGrid(rng *rand.Rand, axis, colors int) *Grid[int] {
	return New(axis, func(int) int { return rng.Intn(colors) })
}

func TestFromCells(t *testing.T) {
	t.Run("copies cells", func(t *testing.T) {
		cells := []int{1, 2, 3, 4}
		g, err := FromCells(2, cells)
		require.NoError(t, err)

		cells[0] = 9
		assert.Equal(t, 1, g.At(0, 0))
		assert.Equal(t, 4, g.At(1, 1))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := FromCells(3, []int{1, 2, 3})
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})
}

func TestSetOutOfRange(t *testing.T) {
	g := New[int](3, nil)

	assert.ErrorIs(t, g.Set(3, 0, 1), ErrOutOfRange)
	assert.ErrorIs(t, g.Set(0, -1, 1), ErrOutOfRange)
	assert.ErrorIs(t, g.SetIndex(9, 1), ErrOutOfRange)
	require.NoError(t, g.Set(2, 1, 5))
	assert.Equal(t, 5, g.AtIndex(7))
	assert.Equal(t, Coord{Row: 2, Col: 1}, g.CoordOf(7))
}

func TestTransposeIsItsOwnInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for axis := 1; axis <= 9; axis++ {
		g := randomGrid(rng, axis, 5)
		twice := g.Transpose().Transpose()
		assert.True(t, g.Equal(twice), "axis %d", axis)
	}
}

func TestTransposeSwapsCells(t *testing.T) {
	g, err := FromCells(3, []int{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})
	require.NoError(t, err)

	tr := g.Transpose()

	assert.Equal(t, []int{
		0, 3, 6,
		1, 4, 7,
		2, 5, 8,
	}, tr.Cells())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, g.Cells(), "receiver must not change")
	assert.Equal(t, g.Len(), tr.Len())
}

func TestFloodFillRecolorsRegion(t *testing.T) {
	g, err := FromCells(4, []int{
		1, 1, 2, 1,
		1, 2, 2, 1,
		1, 1, 2, 2,
		3, 1, 1, 1,
	})
	require.NoError(t, err)

	n := FloodFill(g, 0, 0, 1, 9)

	assert.Equal(t, 8, n)
	assert.Equal(t, []int{
		9, 9, 2, 1,
		9, 2, 2, 1,
		9, 9, 2, 2,
		3, 9, 9, 9,
	}, g.Cells())
}

func TestFloodFillNoOpWhenReplacementEqualsTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGrid(rng, 9, 5)
	before := g.Clone()

	target := g.At(4, 4)
	n := FloodFill(g, 4, 4, target, target)

	assert.Zero(t, n)
	assert.True(t, before.Equal(g))
}

func TestFloodFillNoOpWhenStartDoesNotMatchTarget(t *testing.T) {
	g, err := FromCells(2, []int{1, 1, 1, 1})
	require.NoError(t, err)

	assert.Zero(t, FloodFill(g, 0, 0, 2, 3))
	assert.Equal(t, []int{1, 1, 1, 1}, g.Cells())
	assert.Zero(t, FloodFill(g, 5, 5, 1, 3), "out of range start is ignored")
}

func TestFloodFillProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		axis := 1 + rng.Intn(12)
		g := randomGrid(rng, axis, 1+rng.Intn(5))
		before := g.Clone()

		row, col := rng.Intn(axis), rng.Intn(axis)
		target := g.At(row, col)
		replacement := rng.Intn(6)

		region := Region(before, row, col)
		inRegion := make(map[Coord]bool, len(region))
		for _, c := range region {
			inRegion[c] = true
		}

		n := FloodFill(g, row, col, target, replacement)

		if replacement == target {
			require.True(t, before.Equal(g))
			continue
		}
		require.Equal(t, len(region), n)
		for r := 0; r < axis; r++ {
			for c := 0; c < axis; c++ {
				if inRegion[Coord{Row: r, Col: c}] {
					require.Equal(t, replacement, g.At(r, c))
				} else {
					require.Equal(t, before.At(r, c), g.At(r, c))
				}
			}
		}
	}
}

func TestUniformAndCount(t *testing.T) {
	g := New(3, func(int) int { return 4 })
	assert.True(t, g.Uniform())
	assert.Equal(t, 9, g.Count(4))

	require.NoError(t, g.Set(1, 1, 0))
	assert.False(t, g.Uniform())
	assert.Equal(t, 8, g.Count(4))
}
