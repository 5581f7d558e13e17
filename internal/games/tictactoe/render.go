package tictactoe

import (
	"strconv"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/grid"
)

const (
	hudHeight   = 3
	footerLines = 4 // Spacer, status, spacer, controls
)

var (
	// Large glyphs for cells of at least 5x3.
	glyphX = []string{`\ /`, ` X `, `/ \`}
	glyphO = []string{`╭─╮`, `│ │`, `╰─╯`}
)

var markColors = map[Mark]core.Color{
	X: core.ColorBrightRed,
	O: core.ColorBrightCyan,
}

// computeLayout centers the board, falling back to 4x2 cells on small
// screens.
func (g *Game) computeLayout() {
	sizes := []config.RenderConfig{g.cfg.Render, {CellWidth: 4, CellHeight: 2}}
	for _, size := range sizes {
		boardW := Axis * size.CellWidth
		boardH := Axis * size.CellHeight
		g.mapper = grid.Mapper{
			OriginX: max((g.screenW-boardW)/2, 0),
			OriginY: hudHeight,
			CellW:   size.CellWidth,
			CellH:   size.CellHeight,
			Axis:    Axis,
		}
		g.tooSmall = boardW > g.screenW || hudHeight+boardH+footerLines > g.screenH
		if !g.tooSmall {
			return
		}
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderMarks(dst)

	statusY := g.mapper.OriginY + g.mapper.Height() + 1
	color := core.ColorDefault
	if g.over {
		color = core.ColorBrightYellow
	}
	status := g.Status()
	if g.paused {
		status = "PAUSED - Press P to resume"
	}
	dst.DrawTextColored((dst.Width()-len([]rune(status)))/2, statusY, status, color)
	dst.DrawTextCentered(statusY+2, g.Controls())
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "TIC-TAC-TOE")
	mode := "Hot-seat"
	if g.mode == ModeVsCPU {
		mode = "vs CPU (" + string(g.cpu.Strength()) + ")"
	}
	dst.DrawTextCentered(1, mode)
}

// renderGrid draws the separators along the right and bottom edges of the
// first two rows and columns.
func (g *Game) renderGrid(dst *core.Screen) {
	m := g.mapper
	for i := 1; i < Axis; i++ {
		x := m.OriginX + i*m.CellW - 1
		dst.DrawVLine(x, m.OriginY, m.Height(), '│')

		y := m.OriginY + i*m.CellH - 1
		dst.DrawHLine(m.OriginX, y, m.Width(), '─')
		for j := 1; j < Axis; j++ {
			dst.Set(m.OriginX+j*m.CellW-1, y, '┼')
		}
	}
}

func (g *Game) renderMarks(dst *core.Screen) {
	m := g.mapper
	// Usable interior excludes the separator column and row.
	innerW, innerH := m.CellW-1, m.CellH-1

	for i := 0; i < g.board.Len(); i++ {
		c := g.board.CoordOf(i)
		x, y := m.Origin(c)
		mark := g.board.AtIndex(i)

		switch {
		case mark != Empty && innerW >= 5 && innerH >= 3:
			glyph := glyphX
			if mark == O {
				glyph = glyphO
			}
			gx := x + (innerW-3)/2
			gy := y + (innerH-3)/2
			for row, line := range glyph {
				dst.DrawTextColored(gx, gy+row, line, markColors[mark])
			}
		case mark != Empty:
			dst.SetColored(x+innerW/2, y+innerH/2, []rune(mark.String())[0], markColors[mark])
		default:
			dst.SetColored(x+innerW/2, y+innerH/2, rune('1'+i), core.ColorGray)
		}

		if c == g.cursor && !g.over && !g.cpuTurn() {
			cy := y + innerH/2
			dst.SetColored(x, cy, '[', core.ColorBrightYellow)
			dst.SetColored(x+innerW-1, cy, ']', core.ColorBrightYellow)
		}
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Place | 1-" + strconv.Itoa(Axis*Axis) + ": Cell | R: Restart | Q: Quit"
}
