package tictactoe

import (
	"image/color"

	"github.com/vovakirdan/grid-arcade/internal/grid"
	"github.com/vovakirdan/grid-arcade/internal/raster"
)

type boardView struct {
	b *grid.Grid[Mark]
}

func (v boardView) Axis() int { return v.b.Axis() }

func (boardView) CellFill(int, int) color.Color { return nil }

func (v boardView) CellMark(row, col int) raster.Mark {
	switch v.b.At(row, col) {
	case X:
		return raster.MarkX
	case O:
		return raster.MarkO
	default:
		return raster.MarkNone
	}
}

// RasterBoard returns the current board for image export.
func (g *Game) RasterBoard() raster.Board {
	return boardView{b: g.Board()}
}
