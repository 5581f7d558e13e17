package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space presses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPress, false},
		{"enter presses", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPress, false},
		{"undo", runeKey("u"), core.ActionUndo, false},
		{"rotate", runeKey("t"), core.ActionRotate, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"digit 1", runeKey("1"), core.ActionSlot1, false},
		{"digit 9", runeKey("9"), core.ActionSlot9, false},
		{"digit 0 unmapped", runeKey("0"), core.ActionNone, false},
		{"x unmapped", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("5"), &frame) {
		t.Error("digit reported as quit")
	}
	if !frame.Has(core.ActionSlot5) {
		t.Error("expected slot 5 in frame")
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be forwarded to the game")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	p, ok := km.MapMouse(tea.MouseMsg{X: 12, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !ok || p != (core.Point{X: 12, Y: 7}) {
		t.Errorf("left press = %v, %v", p, ok)
	}

	if _, ok := km.MapMouse(tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}); ok {
		t.Error("release should be ignored")
	}
	if _, ok := km.MapMouse(tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}); ok {
		t.Error("right button should be ignored")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
