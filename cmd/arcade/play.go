package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse click      - Press a board cell (or a flood fill palette swatch)
  Arrows/WASD      - Move the cell cursor
  Space/Enter      - Press the cell under the cursor
  1-5              - Select a flood fill color
  1-9              - Place a tic-tac-toe mark on that cell
  U                - Undo (flood fill)
  T                - Rotate the board (flood fill)
  R                - Restart
  P                - Pause
  Ctrl+S           - Screenshot (text and PNG)
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Flood fill 6x6, CPU plays random moves
  normal - Flood fill 9x9, CPU wins and blocks
  hard   - Flood fill 12x12, CPU plays perfectly

Examples:
  arcade play floodfill
  arcade play floodfill --difficulty hard --seed 42
  arcade play tictactoe
  arcade play tictactoe_cpu --difficulty easy
  arcade play floodfill --config ./my-floodfill.yaml
  arcade play floodfill --board ./boards/checker.yaml

Board files list rows of palette color names:
  id: checker
  rows:
    - [white, black]
    - [black, white]`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Flood fill board YAML to start from")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if err := applyGameFlags(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := createGame(gameID, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, tui.NewStoreRecorder(store), runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
