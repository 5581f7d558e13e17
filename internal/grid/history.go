package grid

import "errors"

// ErrNothingToUndo is returned by Undo when only the starting snapshot is left.
var ErrNothingToUndo = errors.New("grid: no moves to undo")

// History is a stack of grid snapshots. The bottom entry is the starting
// grid and is never popped.
type History[T comparable] struct {
	snapshots []*Grid[T]
}

// NewHistory creates a history whose only entry is start.
func NewHistory[T comparable](start *Grid[T]) *History[T] {
	h := &History[T]{}
	h.Reset(start)
	return h
}

// Reset discards all snapshots and starts over from start.
func (h *History[T]) Reset(start *Grid[T]) {
	h.snapshots = h.snapshots[:0]
	h.snapshots = append(h.snapshots, start)
}

// Push appends a snapshot and makes it current.
func (h *History[T]) Push(g *Grid[T]) {
	h.snapshots = append(h.snapshots, g)
}

// Current returns the topmost snapshot.
func (h *History[T]) Current() *Grid[T] {
	return h.snapshots[len(h.snapshots)-1]
}

// Len returns the number of snapshots, including the starting grid.
func (h *History[T]) Len() int {
	return len(h.snapshots)
}

// Undo pops the latest snapshot and returns the new current one.
// With a single snapshot it leaves the history untouched and returns
// ErrNothingToUndo.
func (h *History[T]) Undo() (*Grid[T], error) {
	if len(h.snapshots) <= 1 {
		return h.Current(), ErrNothingToUndo
	}
	h.snapshots[len(h.snapshots)-1] = nil
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.Current(), nil
}
