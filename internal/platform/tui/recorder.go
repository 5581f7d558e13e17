package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// leaderboardTimeout bounds a single leaderboard submission.
const leaderboardTimeout = 2 * time.Second

// Recorder persists finished rounds. Recording is best effort and never
// interrupts play.
type Recorder interface {
	RecordScore(gameID string, score int)
	RecordMatch(result multiplayer.Result)
}

// StoreRecorder writes rounds to the local score database and, when set, to
// the shared leaderboard under Player. Nil fields are skipped.
type StoreRecorder struct {
	Store       *storage.Store
	Leaderboard *storage.Leaderboard
	Player      string
	Logger      *log.Logger
}

// NewStoreRecorder returns a recorder for local play.
func NewStoreRecorder(store *storage.Store) *StoreRecorder {
	return &StoreRecorder{Store: store}
}

// RecordScore saves a final score.
func (r *StoreRecorder) RecordScore(gameID string, score int) {
	if r.Store != nil {
		if _, err := r.Store.SaveScore(gameID, score); err != nil {
			r.warn("could not save score", "game", gameID, "error", err)
		} else {
			r.debug("score saved", "game", gameID, "score", score, "player", r.Player)
		}
	}

	if r.Leaderboard == nil || r.Player == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	defer cancel()

	improved, err := r.Leaderboard.Submit(ctx, gameID, r.Player, score)
	if err != nil {
		r.warn("leaderboard submit failed", "game", gameID, "player", r.Player, "error", err)
		return
	}
	if improved {
		r.info("new personal best", "game", gameID, "player", r.Player, "score", score)
	}
}

// RecordMatch saves a finished match.
func (r *StoreRecorder) RecordMatch(result multiplayer.Result) {
	if r.Store == nil {
		return
	}
	if _, err := r.Store.SaveMatch(result); err != nil {
		r.warn("could not save match", "game", result.GameID, "error", err)
		return
	}
	r.debug("match saved", "game", result.GameID, "winner", result.Winner, "moves", result.Moves)
}

func (r *StoreRecorder) debug(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}

func (r *StoreRecorder) info(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Info(msg, keyvals...)
	}
}

func (r *StoreRecorder) warn(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Warn(msg, keyvals...)
	}
}
