// Package multiplayer provides the match and session bookkeeping shared by
// two-player games and the SSH server.
package multiplayer

import (
	"github.com/google/uuid"
)

// WinnerTie is the recorded winner of a drawn match.
const WinnerTie = "tie"

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// NewMatchID returns a random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.New().String())
}

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game (flood fill).
	MatchModeSolo MatchMode = iota

	// MatchModeHotSeat is two humans sharing one keyboard.
	MatchModeHotSeat

	// MatchModeVsCPU is player vs computer.
	MatchModeVsCPU
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeHotSeat:
		return "Hot-seat"
	case MatchModeVsCPU:
		return "vs CPU"
	default:
		return "Unknown"
	}
}

// Outcome is what a finished two-player game reports.
type Outcome struct {
	Winner string // "X", "O" or WinnerTie
	Moves  int
}

// Reporter is implemented by games that finish with a winner rather than
// (or in addition to) a score.
type Reporter interface {
	MatchMode() MatchMode
	Outcome() (Outcome, bool)
}

// MatchHandle provides access to match metadata.
type MatchHandle interface {
	// ID returns the unique identifier for this match.
	ID() MatchID

	// Mode returns how this match is configured.
	Mode() MatchMode
}

// Match is a concrete implementation of MatchHandle.
// The platform opens one match per round and closes it with a result.
type Match struct {
	id     MatchID
	mode   MatchMode
	gameID string

	// SessionIDs tracks which sessions are part of this match.
	SessionIDs []SessionID
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, gameID string, mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		id:         id,
		mode:       mode,
		gameID:     gameID,
		SessionIDs: sessions,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// GameID returns the registry id of the game being played.
func (m *Match) GameID() string {
	return m.gameID
}

// Sessions returns the session IDs participating in this match.
func (m *Match) Sessions() []SessionID {
	return m.SessionIDs
}

// Result records a finished match for storage.
type Result struct {
	MatchID MatchID
	GameID  string
	Mode    MatchMode
	Winner  string
	Moves   int
	Player  string // Who played X: user name, or empty for local play
}

// Close builds the stored result of this match.
func (m *Match) Close(o Outcome, player string) Result {
	return Result{
		MatchID: m.id,
		GameID:  m.gameID,
		Mode:    m.mode,
		Winner:  o.Winner,
		Moves:   o.Moves,
		Player:  player,
	}
}
