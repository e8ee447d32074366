package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Below this the player column is dropped
	maxScores     = 100 // Max sessions to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreTab is a difficulty filter; the empty tab shows every difficulty.
type scoreTab struct {
	title      string
	difficulty string
}

func scoreTabs() []scoreTab {
	tabs := []scoreTab{{title: "ALL"}}
	for _, p := range config.Presets() {
		tabs = append(tabs, scoreTab{title: strings.ToUpper(string(p)), difficulty: string(p)})
	}
	return tabs
}

// ScoreboardModel shows the best recorded sessions per difficulty.
type ScoreboardModel struct {
	tabs      []scoreTab
	tabCursor int
	store     *storage.Store
	sessions  []storage.SessionRecord
	stats     map[string]*storage.DifficultyStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int

	withPlayer bool // Wide enough for the player column
}

// NewScoreboardModel creates a new scoreboard model. Sessions are loaded by
// Reload.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tabs:   scoreTabs(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Bits", Width: 6},
		{Title: "Mode", Width: 8},
		{Title: "Date", Width: 14},
	}
	m.withPlayer = m.width-4 >= tableMinWidth+16
	if m.withPlayer {
		columns = append(columns, table.Column{Title: "Player", Width: 14})
	}

	return newTable(columns, m.height-10)
}

// Reload fetches the sessions and aggregates for the current tab.
func (m *ScoreboardModel) Reload() {
	m.sessions = nil
	m.stats = nil
	if m.store != nil {
		if sessions, err := m.store.TopSessions(m.tabs[m.tabCursor].difficulty, maxScores); err == nil {
			m.sessions = sessions
		}
		if stats, err := m.store.GetDifficultyStats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// Resize rebuilds the table for a new terminal size.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Bits),
			s.Difficulty,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
		if m.withPlayer {
			row = append(row, s.Owner)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Update handles key presses for the scoreboard.
func (m ScoreboardModel) Update(msg tea.KeyMsg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
		m.Reload()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
		m.Reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if summary := m.summary(); summary != "" {
		b.WriteString(centerText(helpStyle.Render(summary), m.width))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the difficulty filter as horizontal tabs.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#02021a")).
		Background(lipgloss.Color("#ff00ff")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nFly a run to set a high score!")
	}
	return m.table.View()
}

// summary aggregates the selected tab's difficulty.
func (m ScoreboardModel) summary() string {
	if m.stats == nil {
		return ""
	}

	var total storage.DifficultyStats
	difficulty := m.tabs[m.tabCursor].difficulty
	for d, s := range m.stats {
		if difficulty != "" && d != difficulty {
			continue
		}
		if s.HighScore > total.HighScore {
			total.HighScore = s.HighScore
		}
		total.AvgScore = (total.AvgScore*float64(total.Sessions) + s.AvgScore*float64(s.Sessions)) /
			float64(max(1, total.Sessions+s.Sessions))
		total.Sessions += s.Sessions
		total.TotalBits += s.TotalBits
	}
	if total.Sessions == 0 {
		return ""
	}
	return fmt.Sprintf("%d sessions · best %d · avg %.1f · %d bits collected",
		total.Sessions, total.HighScore, total.AvgScore, total.TotalBits)
}
