package tictactoe

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Board  [Axis * Axis]string
	Turn   string
	Winner string
	Moves  int
	Over   bool
	Status string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Turn:   g.turn.String(),
		Winner: g.winner.String(),
		Moves:  g.moves,
		Over:   g.over,
		Status: g.Status(),
	}
	for i := range s.Board {
		s.Board[i] = g.board.AtIndex(i).String()
	}
	return s
}
