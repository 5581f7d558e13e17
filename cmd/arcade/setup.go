package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/floodfill"
	"github.com/vovakirdan/grid-arcade/internal/games/floodfill/boards"
	"github.com/vovakirdan/grid-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBoard      string
)

// runtimeConfig builds a runtime config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config, --difficulty and --board to the game
// package.
func applyGameFlags(gameID string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	switch gameID {
	case floodfill.GameID:
		floodfill.SetConfigPath(flagConfig)
		floodfill.SetDifficultyPreset(flagDifficulty)
		if flagBoard != "" {
			if _, err := boards.LoadFile(flagBoard); err != nil {
				return err
			}
		}
		floodfill.SetBoardFile(flagBoard)
	case tictactoe.GameID, tictactoe.CPUGameID:
		tictactoe.SetConfigPath(flagConfig)
		tictactoe.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// createGame instantiates a game, applying a per-game difficulty when set.
func createGame(gameID string, preset config.DifficultyPreset) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if t, ok := game.(*tictactoe.Game); ok && preset != "" {
		t.UsePreset(preset)
	}
	return game, nil
}

// openStore opens the score database. A failure is a warning: games still
// run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// requireGame exits when gameID is not registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}
