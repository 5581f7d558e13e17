package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("floodfill", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("floodfill", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("floodfill", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("tictactoe_cpu", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for floodfill
	scores, err := store.TopScores("floodfill", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for tictactoe_cpu
	cpuScores, err := store.TopScores("tictactoe_cpu", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(cpuScores) != 1 {
		t.Errorf("Expected 1 tictactoe_cpu score, got %d", len(cpuScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("floodfill")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("floodfill", 100)
	store.SaveScore("floodfill", 300)
	store.SaveScore("floodfill", 200)

	high, err = store.HighScore("floodfill")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("floodfill", 100)
	store.SaveScore("floodfill", 200)
	store.SaveScore("tictactoe_cpu", 300)

	// Clear only floodfill scores
	err = store.ClearScores("floodfill")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Floodfill should be empty
	floodScores, _ := store.TopScores("floodfill", 10)
	if len(floodScores) != 0 {
		t.Errorf("Expected 0 floodfill scores after clear, got %d", len(floodScores))
	}

	// Tic-tac-toe should still have scores
	cpuScores, _ := store.TopScores("tictactoe_cpu", 10)
	if len(cpuScores) != 1 {
		t.Errorf("Tic-tac-toe scores should not be affected by clearing floodfill")
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	for _, gameID := range []string{"tictactoe", "tictactoe", "tictactoe_cpu"} {
		match := multiplayer.NewMatch(multiplayer.NewMatchID(), gameID, multiplayer.MatchModeHotSeat)
		if _, err := store.SaveMatch(match.Close(multiplayer.Outcome{Winner: "X", Moves: 5}, "")); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	if err := store.ClearMatches("tictactoe"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	tally, err := store.Tally("tictactoe")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Games != 0 {
		t.Errorf("expected no tictactoe matches after clear, got %d", tally.Games)
	}

	other, _ := store.Tally("tictactoe_cpu")
	if other.Games != 1 {
		t.Errorf("clearing tictactoe touched tictactoe_cpu: %+v", other)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveMatch(t *testing.T) {
	store := openTestStore(t)

	match := multiplayer.NewMatch(multiplayer.NewMatchID(), "tictactoe_cpu", multiplayer.MatchModeVsCPU)
	result := match.Close(multiplayer.Outcome{Winner: "O", Moves: 6}, "alice")

	if _, err := store.SaveMatch(result); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	matches, err := store.RecentMatches("tictactoe_cpu", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	got := matches[0]
	if got.MatchID != string(match.ID()) {
		t.Errorf("MatchID = %q, expected %q", got.MatchID, match.ID())
	}
	if got.Winner != "O" || got.Moves != 6 || got.Player != "alice" || got.Mode != "vs CPU" {
		t.Errorf("unexpected match entry: %+v", got)
	}

	// Match IDs are unique
	if _, err := store.SaveMatch(result); err == nil {
		t.Error("expected error saving the same match twice")
	}
}

func TestStoreTallyAndRecentMatches(t *testing.T) {
	store := openTestStore(t)

	winners := []string{"X", "O", "X", multiplayer.WinnerTie, "X"}
	for i, w := range winners {
		m := multiplayer.NewMatch(multiplayer.NewMatchID(), "tictactoe", multiplayer.MatchModeHotSeat)
		if _, err := store.SaveMatch(m.Close(multiplayer.Outcome{Winner: w, Moves: 5 + i}, "")); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	// Another game's matches are not counted
	other := multiplayer.NewMatch(multiplayer.NewMatchID(), "tictactoe_cpu", multiplayer.MatchModeVsCPU)
	if _, err := store.SaveMatch(other.Close(multiplayer.Outcome{Winner: "O", Moves: 7}, "")); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	tally, err := store.Tally("tictactoe")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	want := MatchTally{GameID: "tictactoe", Games: 5, WinsX: 3, WinsO: 1, Ties: 1}
	if *tally != want {
		t.Errorf("Tally() = %+v, want %+v", *tally, want)
	}

	recent, err := store.RecentMatches("tictactoe", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent matches, got %d", len(recent))
	}
	if recent[0].Moves != 9 || recent[1].Moves != 8 {
		t.Errorf("recent matches not newest first: %+v", recent)
	}

	empty, err := store.Tally("floodfill")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if empty.Games != 0 {
		t.Errorf("Expected no matches for floodfill, got %d", empty.Games)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 20, 60} {
		if _, err := store.SaveScore("floodfill", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("floodfill")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 60 || stats.TotalScore != 90 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 30 {
		t.Errorf("Expected average 30, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["floodfill"]; !ok || len(all) != 1 {
		t.Errorf("unexpected stats map: %v", all)
	}
}
