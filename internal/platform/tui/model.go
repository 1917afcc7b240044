package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/registry"
	"github.com/vovakirdan/linecraft/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	profile    core.Profile
	theme      Theme
	bell       io.Writer
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithBell rings the terminal bell on w when lines are cleared, unless the
// profile is muted.
func WithBell(w io.Writer) ModelOption {
	return func(m *Model) {
		m.bell = w
	}
}

// WithLogger logs saved results and storage failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithQuitOnBack makes the back key end the program instead of only
// flagging BackToMenu.
func WithQuitOnBack() ModelOption {
	return func(m *Model) {
		m.quitOnBack = true
	}
}

// NewModel creates a model for game played by the owner of profile.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, profile core.Profile, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		profile:    profile,
		theme:      ThemeByName(profile.Theme),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the profile into the game and starts it.
func (m Model) Init() tea.Cmd {
	if pg, ok := m.game.(registry.ProfileGame); ok {
		pg.LoadProfile(m.profile)
	}
	m.game.Reset(m.config)
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.warn("screenshot failed", err)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.syncProfile()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		m.syncProfile()
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if result.Has(core.EventLinesCleared) && !m.profile.Muted && m.bell != nil {
		cmds = append(cmds, bellCmd(m.bell))
	}
	if result.Has(core.EventPlaced) {
		m.syncProfile()
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	return m, tea.Batch(cmds...)
}

// syncProfile reads the progress back from the game and persists it.
func (m *Model) syncProfile() {
	pg, ok := m.game.(registry.ProfileGame)
	if !ok {
		return
	}
	m.profile = pg.Profile()
	if m.store == nil || m.profile.Player == "" {
		return
	}
	if err := m.store.SaveProfile(m.profile); err != nil {
		m.warn("could not save profile", err)
	}
}

func (m *Model) saveResult() {
	m.syncProfile()
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.profile.Player,
		Score:  m.gameState.Score,
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		entry.Lines, entry.Level = s.Summary()
	}

	if _, err := m.store.SaveScore(entry); err != nil {
		m.warn("could not save score", err)
		return
	}
	if m.logger != nil {
		m.logger.Info("score saved", "game", entry.GameID, "player", entry.Player, "score", entry.Score)
	}
}

func (m *Model) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "error", err)
	}
}

func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // a missed bell is harmless
		io.WriteString(w, "\a")
		return nil
	}
}

// saveScreenshot writes the current screen as plain text to
// ~/.linecraft/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".linecraft", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreenTheme(m.screen, m.theme)
}

// Profile returns the player profile as last synced from the game.
func (m Model) Profile() core.Profile {
	return m.profile
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal and returns the updated profile.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, profile core.Profile, logger *log.Logger) (core.Profile, error) {
	model := NewModel(game, store, cfg, profile,
		WithBell(os.Stdout),
		WithLogger(logger),
		WithQuitOnBack(),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return profile, err
	}
	m, ok := final.(Model)
	if !ok {
		return profile, errors.New("tui: unexpected model type")
	}
	return m.Profile(), nil
}
