package floodfill

import (
	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/grid"
)

const (
	hudHeight   = 3 // Title, score line, spacer
	swatchWidth = 4
	swatchGap   = 2
	footerLines = 5 // Spacer, swatches, labels, spacer, status
)

// layout holds the screen positions of everything the player can press.
type layout struct {
	board    grid.Mapper
	swatchX  []int
	swatchY  int
	statusY  int
	tooSmall bool
}

// computeLayout centers the board, shrinking cells to 2x1 when the
// configured size does not fit the screen.
func computeLayout(screenW, screenH, axis, colors int, render config.RenderConfig) layout {
	sizes := []config.RenderConfig{render}
	if render.CellWidth > 2 || render.CellHeight > 1 {
		sizes = append(sizes, config.RenderConfig{CellWidth: 2, CellHeight: 1})
	}

	var l layout
	for _, size := range sizes {
		l = place(screenW, screenH, axis, colors, size)
		if !l.tooSmall {
			break
		}
	}
	return l
}

func place(screenW, screenH, axis, colors int, size config.RenderConfig) layout {
	boardW := axis * size.CellWidth
	boardH := axis * size.CellHeight
	swatchesW := colors*swatchWidth + (colors-1)*swatchGap

	l := layout{
		board: grid.Mapper{
			OriginX: (screenW - boardW) / 2,
			OriginY: hudHeight,
			CellW:   size.CellWidth,
			CellH:   size.CellHeight,
			Axis:    axis,
		},
		swatchY: hudHeight + boardH + 1,
		statusY: hudHeight + boardH + footerLines - 1,
	}
	if l.board.OriginX < 0 {
		l.board.OriginX = 0
	}

	startX := (screenW - swatchesW) / 2
	if startX < 0 {
		startX = 0
	}
	l.swatchX = make([]int, colors)
	for i := range l.swatchX {
		l.swatchX[i] = startX + i*(swatchWidth+swatchGap)
	}

	l.tooSmall = boardW > screenW || swatchesW > screenW || hudHeight+boardH+footerLines > screenH
	return l
}

// swatchAt returns the palette index under a screen position.
func (l layout) swatchAt(x, y int) (int, bool) {
	for i, sx := range l.swatchX {
		if core.NewRect(sx, l.swatchY, swatchWidth, 1).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
