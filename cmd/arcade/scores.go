package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

const cliDate = "2006-01-02 15:04"

var (
	flagGlobal    bool
	flagRedisAddr string
	flagLimit     int
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and match history",
	Long: `Without a game, summarize every game that has recorded scores.

With a game, show its top scores. Games with a winner (tic-tac-toe) also
show their match tally and the most recent matches. With --global, the
shared Redis leaderboard is shown instead of the local database.

Examples:
  arcade scores
  arcade scores floodfill
  arcade scores tictactoe --limit 20
  arcade scores floodfill --global --redis localhost:6379
  arcade scores floodfill --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagGlobal, "global", false, "Show the shared Redis leaderboard")
	scoresCmd.Flags().StringVar(&flagRedisAddr, "redis", envOr("ARCADE_REDIS_ADDR", "localhost:6379"), "Redis address for --global")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the local scores and matches of the game")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// cliTable returns a table styled like the rest of the CLI output.
func cliTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		if flagGlobal || flagClear {
			fail("--global and --clear need a game")
		}
		store := mustOpenStore()
		defer store.Close()
		showSummary(store)
		return
	}

	gameID := args[0]
	requireGame(gameID)
	info, _ := registry.Info(gameID)

	if flagGlobal {
		showGlobalScores(gameID, info.Title)
		return
	}

	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		clearGame(store, gameID, info.Title)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	if _, ok := game.(multiplayer.Reporter); ok {
		if err := showMatches(store, gameID, info.Title); err != nil {
			fail("retrieving matches: %v", err)
		}
	}

	if err := showTopScores(store, gameID, info.Title); err != nil {
		fail("retrieving scores: %v", err)
	}
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	return store
}

// showSummary prints one line per game with recorded scores.
func showSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet. Run 'arcade play floodfill' to set one!")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := cliTable("Game", "Played", "Best", "Average", "Last played")
	for _, id := range ids {
		st := stats[id]
		title := id
		if info, ok := registry.Info(id); ok {
			title = info.Title
		}
		t.Row(title, strconv.Itoa(st.GamesCount), strconv.Itoa(st.HighScore),
			fmt.Sprintf("%.1f", st.AvgScore), st.LastPlayed.Format(cliDate))
	}
	fmt.Println(t)
}

// showTopScores prints the best local scores of a game.
func showTopScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := cliTable("Rank", "Score", "Date")
	for i, e := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Format(cliDate))
	}
	fmt.Println(t)
	return nil
}

// showMatches prints the match tally and recent matches of a game.
func showMatches(store *storage.Store, gameID, title string) error {
	tally, err := store.Tally(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Matches - %s\n", title)
	if tally.Games == 0 {
		fmt.Println("No matches played yet.")
		fmt.Println()
		return nil
	}
	fmt.Printf("Games: %d   X wins: %d   O wins: %d   Ties: %d\n", tally.Games, tally.WinsX, tally.WinsO, tally.Ties)

	matches, err := store.RecentMatches(gameID, flagLimit)
	if err != nil {
		return err
	}

	t := cliTable("Mode", "Winner", "Moves", "Player", "Date")
	for _, m := range matches {
		player := m.Player
		if player == "" {
			player = "-"
		}
		t.Row(m.Mode, m.Winner, strconv.Itoa(m.Moves), player, m.CreatedAt.Format(cliDate))
	}
	fmt.Println(t)
	fmt.Println()
	return nil
}

// clearGame deletes the local history of a game.
func clearGame(store *storage.Store, gameID, title string) {
	if err := store.ClearScores(gameID); err != nil {
		fail("%v", err)
	}
	if err := store.ClearMatches(gameID); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Cleared local scores and matches for %s.\n", title)
}

// showGlobalScores prints the shared leaderboard.
func showGlobalScores(gameID, title string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lb, err := storage.NewLeaderboard(ctx, flagRedisAddr)
	if err != nil {
		fail("%v", err)
	}
	defer lb.Close()

	entries, err := lb.Top(ctx, gameID, flagLimit)
	if err != nil {
		fail("retrieving leaderboard: %v", err)
	}

	fmt.Printf("Global Leaderboard - %s\n", title)
	if len(entries) == 0 {
		fmt.Println("No scores on the shared leaderboard yet.")
		return
	}

	t := cliTable("Rank", "Player", "Best")
	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), e.Player, strconv.Itoa(e.Score))
	}
	fmt.Println(t)
}
