package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/raster"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   Recorder
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	// Match bookkeeping for games that report a winner
	match   *multiplayer.Match
	session multiplayer.SessionID
	player  string

	shotDir    string // Empty disables screenshots
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current round has been recorded
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSession tags recorded matches with an SSH session and player name.
func WithSession(id multiplayer.SessionID, player string) ModelOption {
	return func(m *Model) {
		m.session = id
		m.player = player
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots. An empty dir
// disables them.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given game and starts the
// first round. recorder may be nil.
func NewModel(game registry.Game, recorder Recorder, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		shotDir:    defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.openMatch()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.Press(p.X, p.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games that cannot relayout start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.openMatch()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the round on game over (once)
	if m.gameState.GameOver && !m.recorded {
		m.record()
		m.recorded = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new round with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.openMatch()
}

// openMatch starts match bookkeeping for games that report a winner.
func (m *Model) openMatch() {
	reporter, ok := m.game.(multiplayer.Reporter)
	if !ok {
		m.match = nil
		return
	}

	var sessions []multiplayer.SessionID
	if m.session != "" {
		sessions = append(sessions, m.session)
	}
	m.match = multiplayer.NewMatch(multiplayer.NewMatchID(), m.game.ID(), reporter.MatchMode(), sessions...)
}

// record hands the finished round to the recorder.
func (m *Model) record() {
	if m.recorder == nil {
		return
	}

	if m.gameState.Score > 0 {
		m.recorder.RecordScore(m.game.ID(), m.gameState.Score)
	}

	if reporter, ok := m.game.(multiplayer.Reporter); ok && m.match != nil {
		if outcome, done := reporter.Outcome(); done {
			m.recorder.RecordMatch(m.match.Close(outcome, m.player))
		}
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// saveScreenshot writes the current screen as text and, for games with a
// raster view, the board as PNG. Returns the text file path.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}

	// Render current state
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	path := base + ".txt"
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}

	if src, ok := m.game.(raster.Source); ok {
		if err := raster.SavePNG(src.RasterBoard(), base+".png", raster.DefaultOptions()); err != nil {
			return path, fmt.Errorf("tui: cannot write board image: %w", err)
		}
	}

	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game until the user leaves. Reports whether the user asked to
// quit the arcade rather than return to the menu.
func Run(game registry.Game, recorder Recorder, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.IsQuitting(), nil
	}
	return false, nil
}
