package tictactoe

import (
	"github.com/vovakirdan/grid-arcade/internal/grid"
)

// Axis is the number of cells per side.
const Axis = 3

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// WinningLines lists the index triples that win: rows, columns, diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

// NewBoard returns an empty 3x3 board.
func NewBoard() *grid.Grid[Mark] {
	return grid.New[Mark](Axis, nil)
}

// HasWon reports whether player holds all three cells of any winning line.
func HasWon(b *grid.Grid[Mark], player Mark) bool {
	if player == Empty {
		return false
	}
	for _, line := range WinningLines {
		if b.AtIndex(line[0]) == player && b.AtIndex(line[1]) == player && b.AtIndex(line[2]) == player {
			return true
		}
	}
	return false
}

// IsFull reports whether every cell is occupied.
func IsFull(b *grid.Grid[Mark]) bool {
	return b.Count(Empty) == 0
}

// EmptyCells returns the indices of unoccupied cells in ascending order.
func EmptyCells(b *grid.Grid[Mark]) []int {
	cells := make([]int, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		if b.AtIndex(i) == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}
