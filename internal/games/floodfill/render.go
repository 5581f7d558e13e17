package floodfill

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/grid"
)

const (
	cellGlyph   = '█'
	cursorColor = core.ColorBrightYellow
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPalette(dst)
	g.renderStatus(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	m := g.layout.board
	dst.DrawTextCentered(0, "FLOOD FILL")

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(m.OriginX, 1, score)

	// Moves only shows when it fits beside the score.
	moves := fmt.Sprintf("Moves: %d", g.moves)
	x := m.OriginX + m.Width() - len(moves)
	if x < m.OriginX+len(score)+1 {
		return
	}
	dst.DrawText(x, 1, moves)
}

func (g *Game) renderBoard(dst *core.Screen) {
	board := g.history.Current()
	m := g.layout.board

	for row := 0; row < board.Axis(); row++ {
		for col := 0; col < board.Axis(); col++ {
			c := grid.Coord{Row: row, Col: col}
			x, y := m.Origin(c)
			color := TerminalColor(board.At(row, col))
			dst.DrawRectColored(core.NewRect(x, y, m.CellW, m.CellH), cellGlyph, color)

			if c == g.cursor && !g.solved {
				g.drawCursor(dst, x, y, color)
			}
		}
	}
}

// drawCursor brackets the cursor cell, or shades it when cells are too
// narrow for brackets.
func (g *Game) drawCursor(dst *core.Screen, x, y int, fill core.Color) {
	m := g.layout.board
	for dy := 0; dy < m.CellH; dy++ {
		if m.CellW >= 3 {
			dst.SetColored(x, y+dy, '[', cursorColor)
			dst.SetColored(x+m.CellW-1, y+dy, ']', cursorColor)
			continue
		}
		for dx := 0; dx < m.CellW; dx++ {
			dst.SetColored(x+dx, y+dy, '▒', fill)
		}
	}
}

func (g *Game) renderPalette(dst *core.Screen) {
	y := g.layout.swatchY
	for i, s := range g.palette {
		x := g.layout.swatchX[i]
		dst.DrawRectColored(core.NewRect(x, y, swatchWidth, 1), cellGlyph, TerminalColor(s.Color))

		label := " " + strconv.Itoa(i+1) + " "
		if i == g.selected {
			label = "[" + strconv.Itoa(i+1) + "]"
		}
		dst.DrawText(x, y+1, label)
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := g.layout.statusY
	if g.notice != "" {
		msg := []rune(g.notice)
		x := (dst.Width() - len(msg)) / 2
		dst.DrawTextColored(x, y, g.notice, core.ColorBrightYellow)
		return
	}
	dst.DrawTextCentered(y, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	m := g.layout.board
	centerX := m.OriginX + m.Width()/2
	centerY := m.OriginY + m.Height()/2

	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.solved {
		drawOverlay(dst, centerX, centerY, "SOLVED!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Fill | 1-" + strconv.Itoa(len(g.palette)) + ": Color | U: Undo | T: Rotate | R: Restart"
}
