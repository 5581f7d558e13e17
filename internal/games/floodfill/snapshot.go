package floodfill

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Axis     int
	Cells    []RGB
	Score    int
	Moves    int
	History  int // Snapshots on the undo stack, including the start
	Selected string
	Cursor   [2]int // Row, column
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.tooSmall:
		state = StatePausedSmall
	case g.solved:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	board := g.history.Current()
	return Snapshot{
		Tick:     g.tick,
		Axis:     board.Axis(),
		Cells:    board.Cells(),
		Score:    g.score,
		Moves:    g.moves,
		History:  g.history.Len(),
		Selected: g.palette[g.selected].Name,
		Cursor:   [2]int{g.cursor.Row, g.cursor.Col},
		State:    state,
	}
}
