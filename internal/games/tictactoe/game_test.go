package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/grid"
	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/raster"
)

func newHotSeat(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1}, config.DefaultTicTacToeConfig())
	return g
}

func newVsCPU(t *testing.T, strength config.CPUStrength, delay int) *Game {
	t.Helper()
	cfg := config.DefaultTicTacToeConfig()
	cfg.CPU.Strength = strength
	cfg.CPU.DelayTicks = delay

	g := NewVsCPU()
	g.reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 7}, cfg)
	return g
}

func placeAll(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, g.Place(c), "place %d", c)
	}
}

func TestHasWonAllLines(t *testing.T) {
	for _, line := range WinningLines {
		b := NewBoard()
		for _, i := range line {
			require.NoError(t, b.SetIndex(i, O))
		}
		assert.True(t, HasWon(b, O), "line %v", line)
		assert.False(t, HasWon(b, X), "line %v", line)
	}
	assert.False(t, HasWon(NewBoard(), Empty))
}

func TestXWinsOnTopRow(t *testing.T) {
	// Given: X on 0 and 1, O on 3 and 4
	g := newHotSeat(t)
	placeAll(t, g, 0, 3, 1, 4)
	assert.Equal(t, "Player X's turn", g.Status())

	// When: X takes 2
	require.NoError(t, g.Place(2))

	// Then: X wins immediately and the turn does not switch
	assert.Equal(t, X, g.Winner())
	assert.Equal(t, X, g.Turn())
	assert.Equal(t, "Player X wins!", g.Status())
	assert.True(t, g.State().GameOver)
}

func TestTie(t *testing.T) {
	// X O X / X O O / O X X
	g := newHotSeat(t)
	placeAll(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	assert.Equal(t, Empty, g.Winner())
	assert.Equal(t, "It's a tie!", g.Status())
	assert.True(t, g.State().GameOver)
	assert.True(t, IsFull(g.board))
}

func TestWinOnLastCellIsNotATie(t *testing.T) {
	// X O X / O X O / O X X : X completes the diagonal on the ninth move
	g := newHotSeat(t)
	placeAll(t, g, 0, 1, 2, 3, 4, 5, 7, 6, 8)

	assert.Equal(t, X, g.Winner())
	assert.Equal(t, "Player X wins!", g.Status())
}

func TestPlaceRejections(t *testing.T) {
	g := newHotSeat(t)
	require.NoError(t, g.Place(4))

	err := g.Place(4)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, O, g.Turn(), "rejected press keeps the turn")

	assert.ErrorIs(t, g.Place(9), grid.ErrOutOfRange)
	assert.ErrorIs(t, g.Place(-1), grid.ErrOutOfRange)

	placeAll(t, g, 0, 3, 1, 5) // X completes the middle row
	require.Equal(t, X, g.Winner())
	require.True(t, g.State().GameOver)
	assert.ErrorIs(t, g.Place(8), ErrGameOver)
}

func TestInputIgnoredAfterGameOver(t *testing.T) {
	g := newHotSeat(t)
	placeAll(t, g, 0, 3, 1, 4, 2)
	before := g.Snapshot().Board

	in := core.NewInputFrame()
	in.Set(core.ActionSlot9)
	g.Step(in)

	assert.Equal(t, before, g.Snapshot().Board)
}

func TestSlotKeysPlaceMarks(t *testing.T) {
	g := newHotSeat(t)

	in := core.NewInputFrame()
	in.Set(core.ActionSlot1)
	g.Step(in)

	in = core.NewInputFrame()
	in.Set(core.ActionSlot9)
	g.Step(in)

	snap := g.Snapshot()
	assert.Equal(t, "X", snap.Board[0])
	assert.Equal(t, "O", snap.Board[8])
	assert.Equal(t, "X", snap.Turn)
}

func TestPointerPressMapsToCell(t *testing.T) {
	g := newHotSeat(t)
	m := g.mapper
	require.Equal(t, 8, m.CellW)

	x, y := m.Origin(grid.Coord{Row: 2, Col: 1})
	in := core.NewInputFrame()
	in.Press(x+3, y+2)
	g.Step(in)

	assert.Equal(t, "X", g.Snapshot().Board[7])

	// Off-board presses are ignored.
	in = core.NewInputFrame()
	in.Press(0, 0)
	g.Step(in)
	assert.Equal(t, 1, g.Snapshot().Moves)
}

func TestCursorPress(t *testing.T) {
	g := newHotSeat(t)

	for _, a := range []core.Action{core.ActionUp, core.ActionRight, core.ActionRight, core.ActionPress} {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	assert.Equal(t, "X", g.Snapshot().Board[2])
}

func TestCPUAnswersAfterDelay(t *testing.T) {
	g := newVsCPU(t, config.CPUHeuristic, 3)
	require.NoError(t, g.Place(0))
	assert.Equal(t, O, g.Turn())

	// The human cannot move for O.
	assert.ErrorIs(t, g.Place(1), ErrNotYourTurn)

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)
	assert.Equal(t, 1, g.Snapshot().Moves, "CPU waits out its delay")

	g.Step(empty)
	assert.Equal(t, 2, g.Snapshot().Moves)
	assert.Equal(t, "O", g.Snapshot().Board[4], "heuristic CPU takes the center")
	assert.Equal(t, X, g.Turn())
}

func TestHeuristicWinsThenBlocks(t *testing.T) {
	cpu := NewCPU(config.CPUHeuristic, rand.New(rand.NewSource(1)))

	// O can win on 5; X threatens 2.
	b, err := grid.FromCells(Axis, []Mark{
		X, X, Empty,
		O, O, Empty,
		X, Empty, Empty,
	})
	require.NoError(t, err)
	i, err := cpu.Choose(b, O)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	// Only a block is available.
	b, err = grid.FromCells(Axis, []Mark{
		X, X, Empty,
		Empty, O, Empty,
		Empty, Empty, Empty,
	})
	require.NoError(t, err)
	i, err = cpu.Choose(b, O)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestCPUNeverPlaysOccupiedCell(t *testing.T) {
	strengths := []config.CPUStrength{config.CPURandom, config.CPUHeuristic, config.CPUMinimax}
	rng := rand.New(rand.NewSource(99))

	for _, s := range strengths {
		t.Run(string(s), func(t *testing.T) {
			for round := 0; round < 50; round++ {
				g := newVsCPU(t, s, 0)
				for !g.over {
					if g.turn == X {
						empty := EmptyCells(g.board)
						require.NoError(t, g.Place(empty[rng.Intn(len(empty))]))
						continue
					}
					before := g.board.Count(Empty)
					require.NoError(t, g.PlayCPU())
					require.Equal(t, before-1, g.board.Count(Empty))
				}
			}
		})
	}
}

func TestCPUFullBoard(t *testing.T) {
	cpu := NewCPU(config.CPURandom, rand.New(rand.NewSource(1)))
	b := grid.New(Axis, func(int) Mark { return X })

	_, err := cpu.Choose(b, O)
	assert.ErrorIs(t, err, ErrNoAvailableMoves)
}

// xCanWin tries every X move sequence against the CPU and reports whether
// any of them wins.
func xCanWin(t *testing.T, g *Game) bool {
	t.Helper()
	if g.over {
		return g.winner == X
	}
	if g.turn == O {
		snapshot := *g
		snapshot.board = g.board.Clone()
		require.NoError(t, snapshot.PlayCPU())
		return xCanWin(t, &snapshot)
	}
	for _, i := range EmptyCells(g.board) {
		next := *g
		next.board = g.board.Clone()
		require.NoError(t, next.Place(i))
		if xCanWin(t, &next) {
			return true
		}
	}
	return false
}

func TestMinimaxNeverLoses(t *testing.T) {
	g := newVsCPU(t, config.CPUMinimax, 0)
	assert.False(t, xCanWin(t, g))
}

func TestMinimaxTakesWin(t *testing.T) {
	cpu := NewCPU(config.CPUMinimax, nil)
	b, err := grid.FromCells(Axis, []Mark{
		O, X, X,
		Empty, O, X,
		Empty, Empty, Empty,
	})
	require.NoError(t, err)

	i, err := cpu.Choose(b, O)
	require.NoError(t, err)
	assert.Equal(t, 8, i)
}

func TestCPUModeScoring(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		g := newVsCPU(t, config.CPURandom, 0)
		g.cpu = nil // drive both sides by hand
		placeAll(t, g, 0, 3, 1, 4, 2)
		assert.Equal(t, PointsWin, g.State().Score)
	})

	t.Run("loss", func(t *testing.T) {
		g := newVsCPU(t, config.CPURandom, 0)
		g.cpu = nil
		placeAll(t, g, 0, 3, 1, 4, 8, 5)
		assert.Equal(t, O, g.Winner())
		assert.Equal(t, PointsLoss, g.State().Score)
	})

	t.Run("tie", func(t *testing.T) {
		g := newVsCPU(t, config.CPURandom, 0)
		g.cpu = nil
		placeAll(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		assert.Equal(t, PointsTie, g.State().Score)
	})

	t.Run("hot-seat scores nothing", func(t *testing.T) {
		g := newHotSeat(t)
		placeAll(t, g, 0, 3, 1, 4, 2)
		assert.Zero(t, g.State().Score)
	})
}

func TestOutcome(t *testing.T) {
	g := newHotSeat(t)
	_, ok := g.Outcome()
	assert.False(t, ok)

	placeAll(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)
	o, ok := g.Outcome()
	require.True(t, ok)
	assert.Equal(t, multiplayer.Outcome{Winner: multiplayer.WinnerTie, Moves: 9}, o)
	assert.Equal(t, multiplayer.MatchModeHotSeat, g.MatchMode())
	assert.Equal(t, multiplayer.MatchModeVsCPU, NewVsCPU().MatchMode())
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newHotSeat(t)
	placeAll(t, g, 0)

	g.Resize(20, 14)
	assert.Equal(t, 4, g.mapper.CellW)
	assert.False(t, g.tooSmall)
	assert.Equal(t, "X", g.Snapshot().Board[0])
	assert.Equal(t, O, g.Turn())

	g.Resize(8, 8)
	assert.True(t, g.tooSmall)
}

func TestRender(t *testing.T) {
	g := newHotSeat(t)
	placeAll(t, g, 0, 4)

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "TIC-TAC-TOE")
	assert.Contains(t, screen.String(), "Player X's turn")

	// Empty cells show their slot number.
	m := g.mapper
	x, y := m.Origin(grid.Coord{Row: 2, Col: 2})
	assert.Equal(t, '9', screen.Get(x+(m.CellW-1)/2, y+(m.CellH-1)/2))

	// X in the top-left cell uses the large glyph.
	assert.Contains(t, screen.Row(m.OriginY+1), "X")
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(m.OriginX+3, m.OriginY+1).Color)
}

func TestRasterBoardMarks(t *testing.T) {
	g := newHotSeat(t)
	placeAll(t, g, 0, 8)

	b := g.RasterBoard()
	assert.Equal(t, 3, b.Axis())
	assert.Nil(t, b.CellFill(0, 0))
	assert.Equal(t, raster.MarkX, b.CellMark(0, 0))
	assert.Equal(t, raster.MarkO, b.CellMark(2, 2))
	assert.Equal(t, raster.MarkNone, b.CellMark(1, 1))
}

func TestUsePresetOverridesPackagePreset(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := NewVsCPU()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1})
	assert.Equal(t, config.CPURandom, g.cpu.Strength())

	g.UsePreset(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1})
	assert.Equal(t, config.CPUMinimax, g.cpu.Strength())
}
