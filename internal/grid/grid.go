// Package grid provides the square, row-major board shared by the arcade's
// grid games, together with the operations they are built from: flood fill,
// transpose, snapshot history and pointer-to-cell mapping.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when a cell slice does not hold axis² cells.
	ErrSizeMismatch = errors.New("grid: cell count does not match axis")

	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid is a fixed-size square board stored as a flat row-major slice.
// The length never changes after construction.
type Grid[T comparable] struct {
	axis  int
	cells []T
}

// New creates an axis x axis grid, filling each cell from fill(index).
// A nil fill leaves cells at their zero value.
func New[T comparable](axis int, fill func(i int) T) *Grid[T] {
	if axis < 0 {
		axis = 0
	}
	g := &Grid[T]{
		axis:  axis,
		cells: make([]T, axis*axis),
	}
	if fill != nil {
		for i := range g.cells {
			g.cells[i] = fill(i)
		}
	}
	return g
}

// FromCells builds a grid from a row-major cell slice. The slice is copied.
func FromCells[T comparable](axis int, cells []T) (*Grid[T], error) {
	if axis < 0 || len(cells) != axis*axis {
		return nil, fmt.Errorf("%w: axis %d, %d cells", ErrSizeMismatch, axis, len(cells))
	}
	g := &Grid[T]{axis: axis, cells: make([]T, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// Axis returns the number of cells per row (and per column).
func (g *Grid[T]) Axis() int {
	return g.axis
}

// Len returns the total number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.axis && col >= 0 && col < g.axis
}

// Index returns the flat index of (row, col).
func (g *Grid[T]) Index(row, col int) int {
	return row*g.axis + col
}

// CoordOf returns the row and column of a flat index.
func (g *Grid[T]) CoordOf(i int) Coord {
	return Coord{Row: i / g.axis, Col: i % g.axis}
}

// At returns the cell at (row, col). Panics when out of bounds, like a slice.
func (g *Grid[T]) At(row, col int) T {
	return g.cells[g.Index(row, col)]
}

// AtIndex returns the cell at a flat index.
func (g *Grid[T]) AtIndex(i int) T {
	return g.cells[i]
}

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	g.cells[g.Index(row, col)] = v
	return nil
}

// SetIndex stores v at a flat index.
func (g *Grid[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(g.cells) {
		return fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	g.cells[i] = v
	return nil
}

// Cells returns a copy of the row-major cells.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{axis: g.axis, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same axis and cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.axis != other.axis {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Uniform reports whether every cell holds the same value.
// An empty grid is uniform.
func (g *Grid[T]) Uniform() bool {
	for _, v := range g.cells {
		if v != g.cells[0] {
			return false
		}
	}
	return true
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Transpose returns a new grid with (r, c) and (c, r) swapped for all r < c.
// The receiver is not modified.
func (g *Grid[T]) Transpose() *Grid[T] {
	t := g.Clone()
	for row := 0; row < g.axis; row++ {
		for col := row + 1; col < g.axis; col++ {
			a, b := g.Index(row, col), g.Index(col, row)
			t.cells[a], t.cells[b] = t.cells[b], t.cells[a]
		}
	}
	return t
}
