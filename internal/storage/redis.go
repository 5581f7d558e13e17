package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardPrefix = "leaderboard:"

// LeaderboardEntry is one row of the shared leaderboard.
type LeaderboardEntry struct {
	Player string
	Score  int
}

// Leaderboard keeps each player's best score per game in Redis sorted sets,
// so several arcade servers can share one ranking.
type Leaderboard struct {
	client *redis.Client
}

// NewLeaderboard connects to Redis at addr and verifies the connection.
func NewLeaderboard(ctx context.Context, addr string) (*Leaderboard, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", addr, err)
	}

	return &Leaderboard{client: client}, nil
}

// NewLeaderboardWithClient wraps an existing client.
func NewLeaderboardWithClient(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

// Close closes the Redis connection.
func (l *Leaderboard) Close() error {
	return l.client.Close()
}

func leaderboardKey(gameID string) string {
	return leaderboardPrefix + gameID
}

// Submit records score for player, keeping only the player's best.
// Reports whether the stored score changed.
func (l *Leaderboard) Submit(ctx context.Context, gameID, player string, score int) (bool, error) {
	changed, err := l.client.ZAddArgs(ctx, leaderboardKey(gameID), redis.ZAddArgs{
		GT:      true,
		Ch:      true,
		Members: []redis.Z{{Score: float64(score), Member: player}},
	}).Result()
	if err != nil {
		return false, fmt.Errorf("storage: cannot submit score: %w", err)
	}
	return changed > 0, nil
}

// Top returns the best n players for a game, highest first.
func (l *Leaderboard) Top(ctx context.Context, gameID string, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}

	members, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey(gameID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		player, _ := m.Member.(string)
		entries = append(entries, LeaderboardEntry{Player: player, Score: int(m.Score)})
	}
	return entries, nil
}

// Rank returns the 1-based position of player, or 0 if the player has no score.
func (l *Leaderboard) Rank(ctx context.Context, gameID, player string) (int, error) {
	rank, err := l.client.ZRevRank(ctx, leaderboardKey(gameID), player).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read rank: %w", err)
	}
	return int(rank) + 1, nil
}

// Reset removes a game's leaderboard.
func (l *Leaderboard) Reset(ctx context.Context, gameID string) error {
	if err := l.client.Del(ctx, leaderboardKey(gameID)).Err(); err != nil {
		return fmt.Errorf("storage: cannot reset leaderboard: %w", err)
	}
	return nil
}
