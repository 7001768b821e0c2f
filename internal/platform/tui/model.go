package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// SessionRecorder persists finished games. *storage.Store implements it.
type SessionRecorder interface {
	SaveSession(sess storage.Session) (int64, error)
}

// Option customizes a Model.
type Option func(*Model)

// WithTheme sets the color theme.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithPlayer sets the player name recorded in the play history.
func WithPlayer(name string) Option {
	return func(m *Model) { m.rec.player = name }
}

// playRecord tracks the game in progress for the play history. Every copy
// of a Model shares one, so a session torn down outside Update can still
// be recorded.
type playRecord struct {
	mu       sync.Mutex
	recorder SessionRecorder
	gameID   string
	player   string
	started  time.Time
	state    core.GameState
	done     bool
}

func (r *playRecord) update(state core.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
}

func (r *playRecord) restart(state core.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.started = time.Now()
	r.done = false
}

func (r *playRecord) recorded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// finish writes the current game to the play history once.
// Games that never spawned a piece are not recorded.
func (r *playRecord) finish(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	r.done = true

	if r.recorder == nil || r.state.Pieces == 0 {
		return
	}

	sess := storage.Session{
		GameID:      r.gameID,
		Player:      r.player,
		Pieces:      r.state.Pieces,
		RowsCleared: r.state.RowsCleared,
		Duration:    time.Since(r.started),
		EndReason:   reason,
	}
	if _, err := r.recorder.SaveSession(sess); err != nil {
		log.Warn("could not record session", "err", err)
		return
	}
	log.Debug("session recorded", "player", sess.Player, "pieces", sess.Pieces, "rows", sess.RowsCleared, "end", reason)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	rec        *playRecord
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	theme      Theme
	renderer   *lipgloss.Renderer
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder may be nil, in which case nothing is recorded.
func NewModel(game registry.Game, recorder SessionRecorder, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		rec: &playRecord{
			recorder: recorder,
			gameID:   game.ID(),
			player:   "local",
			started:  time.Now(),
		},
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		theme:      DefaultTheme(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	m.help.Styles.ShortKey = m.style().Inherit(m.theme.Title).UnsetBold()
	m.help.Styles.ShortDesc = m.style().Inherit(m.theme.Muted)
	m.help.Styles.ShortSeparator = m.style().Inherit(m.theme.Muted)

	// Games must be ready to render before the first tick arrives.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.rec.update(m.gameState)
	return m
}

func (m Model) style() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			log.Warn("screenshot failed", "err", err)
		} else {
			log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.rec.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Games that can follow the new size keep playing; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.rec.restart(m.gameState)
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.rec.update(m.gameState)

	if m.gameState.GameOver {
		m.rec.finish(storage.EndGameOver)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text under the data dir.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Recorded reports whether the current game has been recorded.
func (m Model) Recorded() bool {
	return m.rec.recorded()
}

// Finish records the current game as quit unless it was already recorded.
// It is safe to call from another goroutine once the session has ended.
func (m Model) Finish() {
	m.rec.finish(storage.EndQuit)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.renderer, m.screen, m.theme) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, recorder SessionRecorder, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, recorder, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.Finish()
	return err
}
