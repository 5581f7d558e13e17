package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

const defaultDBPath = "~/.arcade/scores.db"

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config      config.ServerConfig
	server      *ssh.Server
	store       *storage.Store
	leaderboard *storage.Leaderboard
	sessions    *multiplayer.SessionRegistry
	logger      *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg config.ServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-ssh",
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	// Open storage
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: multiplayer.NewSessionRegistry(),
		logger:   logger,
	}

	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		lb, lbErr := storage.NewLeaderboard(ctx, cfg.RedisAddr)
		cancel()
		if lbErr != nil {
			logger.Warn("shared leaderboard disabled", "error", lbErr)
		} else {
			srv.leaderboard = lb
			logger.Info("shared leaderboard enabled", "redis", cfg.RedisAddr)
		}
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStores()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStores()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		srv.closeStores()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

type sessionIDKey struct{}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	id, _ := sshSession.Context().Value(sessionIDKey{}).(multiplayer.SessionID)
	if id == "" {
		id = multiplayer.NewSessionID()
	}

	recorder := &StoreRecorder{
		Store:       s.store,
		Leaderboard: s.leaderboard,
		Player:      sshSession.User(),
		Logger:      s.logger.With("session", string(id)),
	}

	model := NewSessionModel(recorder, cfg, id, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware tracks SSH sessions and logs their lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		info := multiplayer.SessionInfo{
			ID:        multiplayer.NewSessionID(),
			User:      sshSession.User(),
			Remote:    sshSession.RemoteAddr().String(),
			StartedAt: time.Now(),
		}
		sshSession.Context().SetValue(sessionIDKey{}, info.ID)
		s.sessions.Register(info)

		s.logger.Info("session started",
			"user", info.User,
			"remote", info.Remote,
			"active", s.sessions.Count(),
		)

		next(sshSession)

		s.sessions.Unregister(info.ID)
		s.logger.Info("session ended",
			"user", info.User,
			"remote", info.Remote,
			"duration", time.Since(info.StartedAt).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...", "active", s.sessions.Count())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStores()
	return err
}

func (s *SSHServer) closeStores() {
	if s.store != nil {
		s.store.Close()
	}
	if s.leaderboard != nil {
		s.leaderboard.Close()
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenMode
	screenScores
	screenGame
)

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	recorder  *StoreRecorder
	config    core.RuntimeConfig
	sessionID multiplayer.SessionID
	username  string

	screen    sessionScreen
	menu      MenuModel
	mode      TicTacToeModeModel
	scores    ScoreboardModel
	gameModel Model
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(recorder *StoreRecorder, cfg core.RuntimeConfig, id multiplayer.SessionID, username string) SessionModel {
	return SessionModel{
		recorder:  recorder,
		config:    cfg,
		sessionID: id,
		username:  username,
		menu:      NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
// Sub-models quit their own program when done; the session reads their
// flags first and drops those quit commands.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenMode:
		return m.updateMode(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.recorder.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		selected := m.menu.Selected()
		if selected.NeedsModeSelect() {
			m.screen = screenMode
			m.mode = NewTicTacToeModeModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.mode.Init()
		}
		return m.startGame(selected.GameID, "")
	}

	return m, cmd
}

// updateMode handles the tic-tac-toe mode selector.
func (m SessionModel) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMode, cmd := m.mode.Update(msg)
	if modeModel, ok := newMode.(TicTacToeModeModel); ok {
		m.mode = modeModel
	}

	switch {
	case m.mode.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.mode.WantsBack():
		return m.toMenu()
	case m.mode.Selected() != nil:
		sel := m.mode.Selected()
		return m.startGame(sel.GameID, sel.Difficulty)
	}

	return m, cmd
}

// updateScores handles the scoreboard screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoresModel, ok := newScores.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// startGame creates the game and hands input to it.
func (m SessionModel) startGame(gameID string, preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		return m.toMenu()
	}
	if p, ok := game.(presetter); ok && preset != "" {
		p.UsePreset(preset)
	}

	m.config.Seed = time.Now().UnixNano()
	m.gameModel = NewModel(game, m.recorder, m.config,
		WithSession(m.sessionID, m.username),
		WithScreenshotDir(""),
	)
	m.screen = screenGame
	m.recorder.debug("game started", "game", gameID, "user", m.username)

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenMode:
		return m.mode.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.gameModel.View()
	default:
		return m.menu.View()
	}
}

// presetter is implemented by games with a per-instance difficulty.
type presetter interface {
	UsePreset(preset config.DifficultyPreset)
}
