package registry

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub_b", func() Game { return &stubGame{id: "test_stub_b"} })
	Register("test_stub_a", func() Game { return &stubGame{id: "test_stub_a"} })

	if !Exists("test_stub_a") {
		t.Fatal("expected test_stub_a to be registered")
	}

	g, err := Create("test_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_stub_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	info, ok := Info("test_stub_b")
	if !ok || info.Title != "Stub test_stub_b" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	// List is sorted by ID
	var ids []string
	for _, gi := range List() {
		if gi.ID == "test_stub_a" || gi.ID == "test_stub_b" {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test_stub_a" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if _, ok := Info("no_such_game"); ok {
		t.Error("Info() reported unknown game as registered")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })
}

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "A stub with a blurb" }

func TestRegisterReadsDescription(t *testing.T) {
	Register("test_stub_described", func() Game {
		return &describedGame{stubGame{id: "test_stub_described"}}
	})

	info, ok := Info("test_stub_described")
	if !ok || info.Description != "A stub with a blurb" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	plain, _ := Info("test_stub_a")
	if plain.Description != "" {
		t.Errorf("plain game has description %q", plain.Description)
	}
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty id")
		}
	}()
	Register("", func() Game { return &stubGame{} })
}
