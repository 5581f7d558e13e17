// Package raster paints game boards to images using the gg software
// renderer. It backs PNG export and screenshots.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/grid-arcade/internal/grid"
)

// Mark is a symbol drawn on top of a cell.
type Mark int

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

// Board is anything that can be drawn as a square grid of cells.
type Board interface {
	Axis() int
	CellFill(row, col int) color.Color
	CellMark(row, col int) Mark
}

// Source is implemented by games that can hand out a rasterizable board.
type Source interface {
	RasterBoard() Board
}

// Options controls the output geometry and colors.
type Options struct {
	CellSize  int // Pixels per cell side
	LineWidth float64
	Grid      color.Color // Grid line color; nil disables grid lines
	Ink       color.Color // Color of X and O marks
}

// DefaultOptions returns 48px cells with thin gray grid lines.
func DefaultOptions() Options {
	return Options{
		CellSize:  48,
		LineWidth: 2,
		Grid:      color.NRGBA{R: 96, G: 96, B: 96, A: 255},
		Ink:       color.Black,
	}
}

// Mapper returns the pixel-to-cell mapper matching the rendered image.
func Mapper(b Board, opts Options) grid.Mapper {
	return grid.Mapper{CellW: opts.CellSize, CellH: opts.CellSize, Axis: b.Axis()}
}

// Render paints the board and returns the drawing context.
// The caller owns the context and should Close it.
func Render(b Board, opts Options) (*gg.Context, error) {
	axis := b.Axis()
	if axis <= 0 || opts.CellSize <= 0 {
		return nil, fmt.Errorf("raster: invalid geometry: axis %d, cell %d", axis, opts.CellSize)
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	size := axis * opts.CellSize
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	m := Mapper(b, opts)
	cell := float64(opts.CellSize)

	for row := 0; row < axis; row++ {
		for col := 0; col < axis; col++ {
			x, y := m.Origin(grid.Coord{Row: row, Col: col})
			if fill := b.CellFill(row, col); fill != nil {
				dc.SetColor(fill)
				dc.DrawRectangle(float64(x), float64(y), cell, cell)
				if err := dc.Fill(); err != nil {
					dc.Close()
					return nil, fmt.Errorf("raster: fill cell (%d, %d): %w", row, col, err)
				}
			}
		}
	}

	if opts.Grid != nil {
		dc.SetColor(opts.Grid)
		dc.SetLineWidth(opts.LineWidth)
		for i := 1; i < axis; i++ {
			p := float64(i) * cell
			dc.DrawLine(p, 0, p, float64(size))
			dc.DrawLine(0, p, float64(size), p)
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: grid lines: %w", err)
		}
	}

	ink := opts.Ink
	if ink == nil {
		ink = color.Black
	}
	dc.SetColor(ink)
	dc.SetLineWidth(cell / 12)
	pad := cell / 5

	for row := 0; row < axis; row++ {
		for col := 0; col < axis; col++ {
			x, y := m.Origin(grid.Coord{Row: row, Col: col})
			fx, fy := float64(x), float64(y)

			switch b.CellMark(row, col) {
			case MarkX:
				dc.DrawLine(fx+pad, fy+pad, fx+cell-pad, fy+cell-pad)
				dc.DrawLine(fx+cell-pad, fy+pad, fx+pad, fy+cell-pad)
			case MarkO:
				dc.DrawCircle(fx+cell/2, fy+cell/2, cell/2-pad)
			default:
				continue
			}
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("raster: mark (%d, %d): %w", row, col, err)
			}
		}
	}

	return dc, nil
}

// Image renders the board to an in-memory image.
func Image(b Board, opts Options) (image.Image, error) {
	dc, err := Render(b, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG renders the board and writes it to path.
func SavePNG(b Board, path string, opts Options) error {
	dc, err := Render(b, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}
