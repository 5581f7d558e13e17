package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-arcade/internal/multiplayer"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

const (
	boardRows    = 100 // Rows loaded per board
	chromeHeight = 9   // Title, summary, tabs, borders and help
	dateLayout   = "Jan 02 15:04"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = dimStyle.Padding(0, 1)
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = dimStyle.Italic(true).Padding(2, 4)
)

// board is one tab of the scoreboard. Games that report a winner list
// their matches, puzzles list their best scores.
type board struct {
	registry.GameInfo
	matches bool
}

func (b board) heading() string {
	if b.matches {
		return "MATCHES - " + b.Title
	}
	return "HIGH SCORES - " + b.Title
}

// listBoards builds one board per registered game.
func listBoards() []board {
	infos := registry.List()
	out := make([]board, 0, len(infos))
	for _, info := range infos {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		_, reports := g.(multiplayer.Reporter)
		out = append(out, board{GameInfo: info, matches: reports})
	}
	return out
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Reload, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Reload},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/h", "prev game")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards  []board
	current int
	store   *storage.Store

	rows    []table.Row
	summary string

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store. store may be nil, in
// which case every board is empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: listBoards(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

// selected returns the board being shown.
func (m ScoreboardModel) selected() (board, bool) {
	if len(m.boards) == 0 {
		return board{}, false
	}
	return m.boards[m.current], true
}

// load reads the selected board from the store and rebuilds the table.
// Read errors show as an empty board.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.summary = ""

	b, ok := m.selected()
	if ok && m.store != nil {
		if b.matches {
			m.loadMatches(b.ID)
		} else {
			m.loadScores(b.ID)
		}
	}

	m.table = m.buildTable(b.matches)
}

func (m *ScoreboardModel) loadMatches(gameID string) {
	matches, err := m.store.RecentMatches(gameID, boardRows)
	if err != nil {
		return
	}
	for i, e := range matches {
		m.rows = append(m.rows, table.Row{
			strconv.Itoa(i + 1),
			e.Mode,
			e.Winner,
			strconv.Itoa(e.Moves),
			e.CreatedAt.Format(dateLayout),
		})
	}

	if t, err := m.store.Tally(gameID); err == nil && t.Games > 0 {
		m.summary = fmt.Sprintf("Games: %d  X wins: %d  O wins: %d  Ties: %d", t.Games, t.WinsX, t.WinsO, t.Ties)
	}
}

func (m *ScoreboardModel) loadScores(gameID string) {
	scores, err := m.store.TopScores(gameID, boardRows)
	if err != nil {
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format(dateLayout),
		})
	}

	if st, err := m.store.GetGameStats(gameID); err == nil && st.GamesCount > 0 {
		m.summary = fmt.Sprintf("Solved: %d  Best: %d  Average: %.1f", st.GamesCount, st.HighScore, st.AvgScore)
	}
}

// buildTable creates a styled table for the current rows.
func (m ScoreboardModel) buildTable(matches bool) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: len(dateLayout) + 2},
	}
	if matches {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Mode", Width: 9},
			{Title: "Winner", Width: 7},
			{Title: "Moves", Width: 6},
			{Title: "Date", Width: len(dateLayout) + 2},
		}
	}

	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// step moves to the board delta tabs away, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.boards)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		b, _ := m.selected()
		m.table = m.buildTable(b.matches)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	b, ok := m.selected()
	heading := "HIGH SCORES"
	if ok {
		heading = b.heading()
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(centerText(heading, m.width)))
	sb.WriteString("\n")
	sb.WriteString(centerText(m.summary, m.width))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tabs()))
	sb.WriteString("\n")

	body := m.table.View()
	if len(m.rows) == 0 {
		body = emptyStyle.Render(emptyMessage(b.matches))
	}
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frameStyle.Render(body)))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

// tabs renders the game strip, collapsing to "< title >" when it does not
// fit the screen.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.boards))
	for i, b := range m.boards {
		if i == m.current {
			parts[i] = activeTabStyle.Render(b.Title)
		} else {
			parts[i] = tabStyle.Render(b.Title)
		}
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.boards) > 0 {
		line = "< " + m.boards[m.current].Title + " >"
	}
	return line
}

func emptyMessage(matches bool) string {
	if matches {
		return "No matches played yet.\nFinish a game to start the history!"
	}
	return "No scores recorded yet.\nSolve a board to set a high score!"
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
