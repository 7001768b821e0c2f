package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/storage"
)

// History layout constants
const (
	maxSessions   = 100 // Max sessions to load
	historyChrome = 9   // Rows used by title, stats, borders and help
)

// HistoryStore is the part of the storage layer the history screen reads.
type HistoryStore interface {
	RecentSessions(limit int) ([]storage.Session, error)
	Stats(gameID string) (*storage.GameStats, error)
	ClearSessions(gameID string) error
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Clear, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear (twice)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the play history screen.
type HistoryModel struct {
	gameID       string
	store        HistoryStore
	sessions     []storage.Session
	stats        *storage.GameStats
	table        table.Model
	help         help.Model
	keys         HistoryKeyMap
	theme        Theme
	width        int
	height       int
	confirmClear bool // First Clear press seen, waiting for the second
	err          error
	quitting     bool
}

// NewHistoryModel creates a new history model for gameID.
func NewHistoryModel(store HistoryStore, gameID string, theme Theme, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		theme:  theme,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Pieces", Width: 7},
		{Title: "Rows", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Color(core.ColorBorder)).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.Selected
	t.SetStyles(s)

	return t
}

// load reads sessions and stats from the store.
func (m *HistoryModel) load() {
	m.err = nil
	if m.store == nil {
		m.sessions = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(maxSessions)
	if err != nil {
		log.Warn("could not load history", "err", err)
		m.err = err
		sessions = nil
	}
	m.sessions = sessions

	stats, err := m.store.Stats(m.gameID)
	if err != nil {
		log.Warn("could not load stats", "err", err)
		m.err = err
		stats = nil
	}
	m.stats = stats

	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			s.Player,
			fmt.Sprintf("%d", s.Pieces),
			fmt.Sprintf("%d", s.RowsCleared),
			formatDuration(s.Duration),
			strings.ReplaceAll(s.EndReason, "_", " "),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Clear) {
			m.confirmClear = false
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if !m.confirmClear {
				m.confirmClear = true
				return m, nil
			}
			m.confirmClear = false
			if m.store != nil {
				if err := m.store.ClearSessions(m.gameID); err != nil {
					log.Warn("could not clear history", "err", err)
					m.err = err
					return m, nil
				}
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(centerText("PLAY HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Color(core.ColorBorder)).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	switch {
	case m.confirmClear:
		b.WriteString(m.theme.Title.Render("Press C again to delete all sessions."))
	case m.err != nil:
		b.WriteString(m.theme.Muted.Render("error: " + m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the aggregated stats.
func (m HistoryModel) statsLine() string {
	if m.stats == nil || m.stats.Sessions == 0 {
		return m.theme.Muted.Render("No games played yet.")
	}
	return fmt.Sprintf("Games %d   Best %d rows   Total %d rows / %d pieces   Last %s",
		m.stats.Sessions,
		m.stats.BestRows,
		m.stats.TotalRows,
		m.stats.TotalPieces,
		m.stats.LastPlayed.Format("Jan 02 15:04"),
	)
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := m.theme.Muted.
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nFinish a game to see it here!")
	}

	return m.table.View()
}

// centerText pads s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunHistory runs the history screen until the user quits.
func RunHistory(store HistoryStore, gameID string, theme Theme, width, height int) error {
	model := NewHistoryModel(store, gameID, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
