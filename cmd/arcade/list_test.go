package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/games/floodfill"
	"github.com/vovakirdan/grid-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func TestGameKind(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{floodfill.GameID, "puzzle"},
		{tictactoe.GameID, "Hot-seat"},
		{"no_such_game", ""},
	}
	for _, tt := range tests {
		if got := gameKind(tt.id); got != tt.want {
			t.Errorf("gameKind(%q) = %q, expected %q", tt.id, got, tt.want)
		}
	}
}

func TestGameTableListsEveryGame(t *testing.T) {
	out := gameTable(registry.List())
	for _, want := range []string{"ID", "Description", floodfill.GameID, tictactoe.GameID, tictactoe.CPUGameID} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
