package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with how it is played.`,
	Run:   runList,
}

// gameKind describes how a game is played and scored.
func gameKind(id string) string {
	game, err := registry.Create(id)
	if err != nil {
		return ""
	}
	reporter, ok := game.(multiplayer.Reporter)
	if !ok {
		return "puzzle"
	}
	return reporter.MatchMode().String()
}

// gameTable renders the registered games.
func gameTable(games []registry.GameInfo) string {
	t := cliTable("ID", "Title", "Mode", "Description")
	for _, g := range games {
		t.Row(g.ID, g.Title, gameKind(g.ID), g.Description)
	}
	return t.String()
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println(gameTable(games))
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
