package floodfill

import (
	"image/color"

	"github.com/vovakirdan/grid-arcade/internal/grid"
	"github.com/vovakirdan/grid-arcade/internal/raster"
)

// boardView adapts a color grid for the rasterizer.
type boardView struct {
	g *grid.Grid[RGB]
}

func (v boardView) Axis() int { return v.g.Axis() }

func (v boardView) CellFill(row, col int) color.Color {
	return v.g.At(row, col).NRGBA()
}

func (boardView) CellMark(int, int) raster.Mark { return raster.MarkNone }

// RasterBoard returns the current board for image export.
func (g *Game) RasterBoard() raster.Board {
	return boardView{g: g.Board()}
}
