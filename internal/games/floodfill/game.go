// Package floodfill implements a flood fill color puzzle: pick a color, press
// a cell, and the whole same-colored region around it takes the new color.
// The goal is a single-colored board in as few presses as possible.
package floodfill

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/floodfill/boards"
	"github.com/vovakirdan/grid-arcade/internal/grid"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "floodfill"

// NoUndoNotice is shown when the history holds only the starting board.
const NoUndoNotice = "No moves to undo!"

// BadBoardNotice is shown when a fixed board falls back to a random one.
const BadBoardNotice = "Board has unknown colors, using a random one"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// boardFile stores a fixed starting board set via CLI
var boardFile string

// SetBoardFile makes new games start from the board in path. An empty path
// restores random boards.
func SetBoardFile(path string) {
	boardFile = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the flood fill puzzle.
type Game struct {
	cfg     config.FloodFillConfig
	board   *boards.Board // Fixed start; nil means random
	palette []Swatch
	rng     *rand.Rand
	tick    uint64

	history  *grid.History[RGB]
	selected int // Palette index of the replacement color
	cursor   grid.Coord

	score int
	moves int

	solved bool
	paused bool

	notice      string
	noticeTicks int

	// Screen dimensions and derived layout
	screenW int
	screenH int
	layout  layout
}

// New creates a flood fill game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flood Fill"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Recolor regions until the board is one color"
}

// Reset initializes/restarts the game with a fresh random board, or the
// fixed board when one is set.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadFloodFill(configPath)
	if err != nil {
		cfg = config.DefaultFloodFillConfig()
	}
	config.ApplyFloodFillPreset(&cfg, difficultyPreset)
	if g.board == nil && boardFile != "" {
		if b, err := boards.LoadFile(boardFile); err == nil {
			g.board = &b
		}
	}
	g.reset(rc, cfg)
}

// UseBoard makes every reset start from b instead of a random board.
func (g *Game) UseBoard(b boards.Board) {
	g.board = &b
}

// reset starts a game from an explicit config.
func (g *Game) reset(rc core.RuntimeConfig, cfg config.FloodFillConfig) {
	g.cfg = cfg
	g.palette = PaletteFrom(cfg.Board.Palette)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	start, boardErr := g.fixedStart()
	if start == nil {
		start = grid.New(cfg.Board.Axis, func(int) RGB {
			return g.palette[g.rng.Intn(len(g.palette))].Color
		})
	}
	axis := start.Axis()
	g.history = grid.NewHistory(start)

	g.selected = g.whiteIndex()
	g.cursor = grid.Coord{Row: axis / 2, Col: axis / 2}
	g.score = axis * axis
	g.moves = 0
	g.solved = start.Uniform()
	g.paused = false
	g.notice = ""
	g.noticeTicks = 0
	if boardErr != nil {
		g.notice = BadBoardNotice
		g.noticeTicks = g.cfg.NoticeTicks
	}

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.layout = computeLayout(g.screenW, g.screenH, axis, len(g.palette), cfg.Render)
}

// fixedStart builds the fixed board. It returns nil when there is none or
// the board cannot be drawn with the palette.
func (g *Game) fixedStart() (*grid.Grid[RGB], error) {
	if g.board == nil {
		return nil, nil
	}
	cells, err := g.colorsFor(g.board.Cells())
	if err != nil {
		return nil, err
	}
	return grid.FromCells(g.board.Axis(), cells)
}

// colorsFor maps palette names to colors.
func (g *Game) colorsFor(names []string) ([]RGB, error) {
	out := make([]RGB, len(names))
	for i, name := range names {
		found := false
		for _, s := range g.palette {
			if s.Name == name {
				out[i] = s.Color
				found = true
				break
			}
		}
		if !found {
			return nil, errors.New("floodfill: unknown board color " + strconv.Quote(name))
		}
	}
	return out, nil
}

// Resize recomputes the layout for a new screen size and keeps the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.history == nil {
		return
	}
	g.layout = computeLayout(width, height, g.Axis(), len(g.palette), g.cfg.Render)
}

// whiteIndex returns the palette index of white, the initial replacement.
func (g *Game) whiteIndex() int {
	for i, s := range g.palette {
		if s.Color == (RGB{255, 255, 255}) {
			return i
		}
	}
	return 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.solved {
		g.paused = !g.paused
	}
	if g.paused || g.solved {
		return core.StepResult{State: g.State()}
	}

	for a := core.ActionSlot1; a <= core.ActionSlot9; a++ {
		if in.Has(a) {
			slot, _ := a.Slot()
			g.SelectColor(slot - 1)
		}
	}

	g.moveCursor(in)

	for _, p := range in.Presses {
		g.handlePointer(p)
	}

	switch {
	case in.Has(core.ActionPress):
		g.PressCell(g.cursor.Row, g.cursor.Col)
	case in.Has(core.ActionUndo):
		g.undoWithNotice()
	case in.Has(core.ActionRotate):
		g.Rotate()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	axis := g.Axis()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, axis-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, axis-1)
}

// handlePointer routes a screen press to the board or the palette.
func (g *Game) handlePointer(p core.Point) {
	if c, ok := g.layout.board.CellAt(p.X, p.Y); ok {
		g.cursor = c
		g.PressCell(c.Row, c.Col)
		return
	}
	if i, ok := g.layout.swatchAt(p.X, p.Y); ok {
		g.SelectColor(i)
	}
}

// PressCell floods the region at (row, col) with the selected color.
// Every press on the board costs a point and adds a history entry, even when
// nothing changes. Presses outside the board or after the puzzle is solved
// are ignored. Returns the number of recolored cells.
func (g *Game) PressCell(row, col int) int {
	current := g.history.Current()
	if g.solved || !current.InBounds(row, col) {
		return 0
	}

	if g.score > 0 {
		g.score--
	}
	g.moves++

	next := current.Clone()
	target := next.At(row, col)
	n := grid.FloodFill(next, row, col, target, g.palette[g.selected].Color)
	g.history.Push(next)

	if next.Uniform() {
		g.solved = true
	}
	return n
}

// Undo restores the previous board. The score is not refunded.
func (g *Game) Undo() error {
	if g.solved {
		return nil
	}
	_, err := g.history.Undo()
	return err
}

func (g *Game) undoWithNotice() {
	if err := g.Undo(); errors.Is(err, grid.ErrNothingToUndo) {
		g.notice = NoUndoNotice
		g.noticeTicks = g.cfg.NoticeTicks
	}
}

// Rotate pushes the transpose of the current board.
func (g *Game) Rotate() {
	if g.solved {
		return
	}
	g.history.Push(g.history.Current().Transpose())
}

// SelectColor makes palette entry i the replacement color.
func (g *Game) SelectColor(i int) bool {
	if i < 0 || i >= len(g.palette) {
		return false
	}
	g.selected = i
	return true
}

// Axis returns the number of cells per side.
func (g *Game) Axis() int {
	return g.history.Current().Axis()
}

// Board returns a copy of the current board.
func (g *Game) Board() *grid.Grid[RGB] {
	return g.history.Current().Clone()
}

// Palette returns the selectable colors.
func (g *Game) Palette() []Swatch {
	return append([]Swatch(nil), g.palette...)
}

// Selected returns the current replacement color.
func (g *Game) Selected() Swatch {
	return g.palette[g.selected]
}

// Notice returns the transient message, if any.
func (g *Game) Notice() string {
	return g.notice
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.solved,
		Paused:   g.paused || g.layout.tooSmall,
		Status:   g.status(),
	}
}

func (g *Game) status() string {
	switch {
	case g.notice != "":
		return g.notice
	case g.solved:
		return "Solved!"
	default:
		return "Score: " + strconv.Itoa(g.score)
	}
}
