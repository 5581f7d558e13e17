package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/tictactoe"
)

// TicTacToeSelection holds the user's choice from the tic-tac-toe menu.
type TicTacToeSelection struct {
	GameID     string                  // tictactoe.GameID or tictactoe.CPUGameID
	Difficulty config.DifficultyPreset // CPU only; empty keeps the configured strength
}

type cpuLevel struct {
	preset config.DifficultyPreset
	label  string
}

var cpuLevels = []cpuLevel{
	{"", "Default (from config)"},
	{config.DifficultyEasy, "Easy - random moves"},
	{config.DifficultyNormal, "Normal - wins and blocks"},
	{config.DifficultyHard, "Hard - never loses"},
}

// TicTacToeModeModel lets users choose hot-seat or CPU play, and the CPU
// strength.
type TicTacToeModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     TicTacToeSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewTicTacToeModeModel creates a new mode selection model.
func NewTicTacToeModeModel(width, height int) TicTacToeModeModel {
	return TicTacToeModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TicTacToeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TicTacToeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m TicTacToeModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // Hot-seat, vs CPU
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 {
			m.choosing = false
			m.selection = TicTacToeSelection{GameID: tictactoe.GameID}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TicTacToeModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(cpuLevels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = TicTacToeSelection{
			GameID:     tictactoe.CPUGameID,
			Difficulty: cpuLevels[m.levelCursor].preset,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode or CPU strength selection.
func (m TicTacToeModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("T I C - T A C - T O E", m.width))
	b.WriteString("\n\n")

	var options []string
	cursor := m.cursor
	if m.inLevelSelect {
		b.WriteString(centerText("CPU strength:", m.width))
		for _, l := range cpuLevels {
			options = append(options, l.label)
		}
		cursor = m.levelCursor
	} else {
		b.WriteString(centerText("Select game mode:", m.width))
		options = []string{"Hot-seat (2 players)", "vs CPU..."}
	}
	b.WriteString("\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", prefix, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TicTacToeModeModel) Selected() *TicTacToeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m TicTacToeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TicTacToeModeModel) WantsBack() bool {
	return m.back
}

// RunTicTacToeModeSelector runs the mode selection. Returns nil when the
// user backs out or quits.
func RunTicTacToeModeSelector(cfg core.RuntimeConfig) (*TicTacToeSelection, error) {
	p := tea.NewProgram(NewTicTacToeModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TicTacToeModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
