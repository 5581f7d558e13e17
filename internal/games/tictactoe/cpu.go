package tictactoe

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/grid"
)

// ErrNoAvailableMoves is returned when the CPU is asked to move on a full board.
var ErrNoAvailableMoves = errors.New("tictactoe: no available moves")

const center = 4

// CPU picks moves for the computer player.
type CPU struct {
	strength config.CPUStrength
	rng      *rand.Rand
}

// NewCPU creates a CPU of the given strength. rng drives random choices.
func NewCPU(strength config.CPUStrength, rng *rand.Rand) *CPU {
	if !strength.Valid() {
		strength = config.CPUHeuristic
	}
	return &CPU{strength: strength, rng: rng}
}

// Strength returns how the CPU chooses moves.
func (c *CPU) Strength() config.CPUStrength {
	return c.strength
}

// Choose returns the cell index the CPU plays as me.
func (c *CPU) Choose(b *grid.Grid[Mark], me Mark) (int, error) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return 0, ErrNoAvailableMoves
	}

	switch c.strength {
	case config.CPURandom:
		return c.random(empty), nil
	case config.CPUMinimax:
		return bestMove(b, me), nil
	default:
		return c.heuristic(b, me, empty), nil
	}
}

func (c *CPU) random(empty []int) int {
	return empty[c.rng.Intn(len(empty))]
}

// heuristic wins if it can, blocks if it must, then takes the center,
// then plays at random.
func (c *CPU) heuristic(b *grid.Grid[Mark], me Mark, empty []int) int {
	if i, ok := completingMove(b, me, empty); ok {
		return i
	}
	if i, ok := completingMove(b, me.Opponent(), empty); ok {
		return i
	}
	if b.AtIndex(center) == Empty {
		return center
	}
	return c.random(empty)
}

// completingMove finds an empty cell that gives player a winning line.
func completingMove(b *grid.Grid[Mark], player Mark, empty []int) (int, bool) {
	for _, i := range empty {
		//nolint:errcheck // i comes from EmptyCells
		b.SetIndex(i, player)
		won := HasWon(b, player)
		//nolint:errcheck // restoring the same cell
		b.SetIndex(i, Empty)
		if won {
			return i, true
		}
	}
	return 0, false
}

// bestMove runs a full minimax search. Ties go to the lowest index.
func bestMove(b *grid.Grid[Mark], me Mark) int {
	work := b.Clone()
	best, bestScore := -1, -2
	for _, i := range EmptyCells(work) {
		//nolint:errcheck // i comes from EmptyCells
		work.SetIndex(i, me)
		score := -negamax(work, me.Opponent())
		//nolint:errcheck // restoring the same cell
		work.SetIndex(i, Empty)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// negamax scores the position for toMove: 1 win, 0 draw, -1 loss.
func negamax(b *grid.Grid[Mark], toMove Mark) int {
	if HasWon(b, toMove.Opponent()) {
		return -1
	}
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return 0
	}

	best := -2
	for _, i := range empty {
		//nolint:errcheck // i comes from EmptyCells
		b.SetIndex(i, toMove)
		score := -negamax(b, toMove.Opponent())
		//nolint:errcheck // restoring the same cell
		b.SetIndex(i, Empty)
		if score > best {
			best = score
			if best == 1 {
				break
			}
		}
	}
	return best
}
