// Package tictactoe implements tic-tac-toe for two players on one keyboard,
// or one player against the computer.
package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/grid"
	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game identifiers.
const (
	GameID    = "tictactoe"
	CPUGameID = "tictactoe_cpu"
)

// Points awarded to the human at the end of a game against the CPU.
const (
	PointsWin  = 3
	PointsTie  = 1
	PointsLoss = 0
)

var (
	// ErrCellOccupied is returned when placing a mark on a taken cell.
	ErrCellOccupied = errors.New("tictactoe: cell is occupied")

	// ErrGameOver is returned when placing a mark after the game ended.
	ErrGameOver = errors.New("tictactoe: game is over")

	// ErrNotYourTurn is returned when the human tries to move for the CPU.
	ErrNotYourTurn = errors.New("tictactoe: not your turn")
)

// Mode represents the game mode.
type Mode int

const (
	ModeHotSeat Mode = iota // Two humans alternate
	ModeVsCPU               // Human is X, CPU is O
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements tic-tac-toe.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // Overrides the package preset when set
	cfg    config.TicTacToeConfig
	rng    *rand.Rand
	tick   uint64

	board  *grid.Grid[Mark]
	turn   Mark
	winner Mark
	over   bool
	moves  int
	cursor grid.Coord

	cpu     *CPU
	cpuWait int

	paused bool

	// Screen dimensions and derived layout
	screenW  int
	screenH  int
	mapper   grid.Mapper
	tooSmall bool
}

// New creates a hot-seat game.
func New() *Game {
	return &Game{mode: ModeHotSeat}
}

// NewVsCPU creates a game against the computer.
func NewVsCPU() *Game {
	return &Game{mode: ModeVsCPU}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(CPUGameID, func() registry.Game {
		return NewVsCPU()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeVsCPU {
		return CPUGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeVsCPU {
		return "Tic-Tac-Toe (vs CPU)"
	}
	return "Tic-Tac-Toe"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	if g.mode == ModeVsCPU {
		return "Three in a row against the computer"
	}
	return "Three in a row, two players on one keyboard"
}

// Reset initializes/restarts the game with an empty board and X to move.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyTicTacToePreset(&cfg, preset)
	g.reset(rc, cfg)
}

// UsePreset sets a difficulty for this game only, taking effect on the next
// Reset. An empty preset falls back to the package preset.
func (g *Game) UsePreset(preset config.DifficultyPreset) {
	g.preset = preset
}

func (g *Game) reset(rc core.RuntimeConfig, cfg config.TicTacToeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	g.board = NewBoard()
	g.turn = X
	g.winner = Empty
	g.over = false
	g.moves = 0
	g.cursor = grid.Coord{Row: 1, Col: 1}
	g.paused = false

	g.cpu = nil
	if g.mode == ModeVsCPU {
		g.cpu = NewCPU(cfg.CPU.Strength, g.rng)
	}
	g.cpuWait = 0

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.computeLayout()
}

// Resize recomputes the layout for a new screen size and keeps the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.computeLayout()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	if g.cpuTurn() {
		g.stepCPU()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	for a := core.ActionSlot1; a <= core.ActionSlot9; a++ {
		if in.Has(a) {
			slot, _ := a.Slot()
			g.humanPlace(slot - 1)
		}
	}

	for _, p := range in.Presses {
		if c, ok := g.mapper.CellAt(p.X, p.Y); ok {
			g.cursor = c
			g.humanPlace(g.board.Index(c.Row, c.Col))
		}
	}

	if in.Has(core.ActionPress) {
		g.humanPlace(g.board.Index(g.cursor.Row, g.cursor.Col))
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
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
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, Axis-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, Axis-1)
}

// humanPlace ignores rejected presses; the CPU's turn ends human input for
// the rest of the tick.
func (g *Game) humanPlace(index int) {
	if g.cpuTurn() {
		return
	}
	//nolint:errcheck // Occupied cells and finished games are silently ignored
	g.Place(index)
}

func (g *Game) cpuTurn() bool {
	return g.cpu != nil && g.turn == O && !g.over
}

// stepCPU waits out the configured delay, then lets the CPU move.
func (g *Game) stepCPU() {
	g.cpuWait++
	if g.cpuWait < g.cfg.CPU.DelayTicks {
		return
	}
	g.cpuWait = 0
	//nolint:errcheck // The board cannot be full while the game is running
	g.PlayCPU()
}

// PlayCPU makes the computer's move immediately.
func (g *Game) PlayCPU() error {
	if !g.cpuTurn() {
		return ErrNotYourTurn
	}
	i, err := g.cpu.Choose(g.board, O)
	if err != nil {
		return err
	}
	return g.place(i)
}

// Place puts the current player's mark on cell index (0-8, row-major).
// In CPU mode only X may be placed this way.
func (g *Game) Place(index int) error {
	if g.over {
		return ErrGameOver
	}
	if g.cpuTurn() {
		return ErrNotYourTurn
	}
	return g.place(index)
}

func (g *Game) place(index int) error {
	if index < 0 || index >= g.board.Len() {
		return fmt.Errorf("%w: cell %d", grid.ErrOutOfRange, index)
	}
	if g.board.AtIndex(index) != Empty {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, index)
	}

	//nolint:errcheck // index is checked above
	g.board.SetIndex(index, g.turn)
	g.moves++

	switch {
	case HasWon(g.board, g.turn):
		g.winner = g.turn
		g.over = true
	case IsFull(g.board):
		g.over = true
	default:
		g.turn = g.turn.Opponent()
	}
	return nil
}

// Board returns a copy of the board.
func (g *Game) Board() *grid.Grid[Mark] {
	return g.board.Clone()
}

// Turn returns the player to move, or the last mover once the game is over.
func (g *Game) Turn() Mark {
	return g.turn
}

// Winner returns the winning mark, or Empty for a tie or a running game.
func (g *Game) Winner() Mark {
	return g.winner
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Status returns the line shown under the board.
func (g *Game) Status() string {
	switch {
	case g.over && g.winner != Empty:
		return fmt.Sprintf("Player %s wins!", g.winner)
	case g.over:
		return "It's a tie!"
	default:
		return fmt.Sprintf("Player %s's turn", g.turn)
	}
}

// score returns the human's points in CPU mode. Hot-seat games score nothing.
func (g *Game) score() int {
	if g.mode != ModeVsCPU {
		return 0
	}
	if !g.over {
		return 0
	}
	switch g.winner {
	case X:
		return PointsWin
	case O:
		return PointsLoss
	default:
		return PointsTie
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.over,
		Paused:   g.paused || g.tooSmall,
		Status:   g.Status(),
	}
}

// MatchMode reports how this game is played.
func (g *Game) MatchMode() multiplayer.MatchMode {
	if g.mode == ModeVsCPU {
		return multiplayer.MatchModeVsCPU
	}
	return multiplayer.MatchModeHotSeat
}

// Outcome returns the result of a finished game.
func (g *Game) Outcome() (multiplayer.Outcome, bool) {
	if !g.over {
		return multiplayer.Outcome{}, false
	}
	winner := g.winner.String()
	if g.winner == Empty {
		winner = multiplayer.WinnerTie
	}
	return multiplayer.Outcome{Winner: winner, Moves: g.moves}, true
}
