package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/games/blocks"
	"github.com/vovakirdan/linecraft/internal/i18n"
	"github.com/vovakirdan/linecraft/internal/storage"
)

type menuScreen int

const (
	screenModes menuScreen = iota
	screenSettings
	screenConfirmReset
)

// Settings entries in display order.
const (
	settingTheme = iota
	settingLanguage
	settingSounds
	settingResetBest
	settingDone
	settingCount
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID string
	Mode   blocks.Mode
}

// MenuModel is the Bubble Tea model for the mode picker and settings.
type MenuModel struct {
	modes          []blocks.Mode
	cursor         int
	settingsCursor int
	confirmYes     bool
	screen         menuScreen
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	profile        core.Profile
	highScores     map[string]int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model for the owner of profile.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, profile core.Profile) MenuModel {
	m := MenuModel{
		modes:      blocks.Modes,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		profile:    profile,
		highScores: make(map[string]int),
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		for _, mode := range m.modes {
			if high, err := store.HighScore(mode.ID()); err == nil {
				m.highScores[mode.ID()] = high
			}
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenSettings:
		return m.handleSettingsKey(action)
	case screenConfirmReset:
		return m.handleConfirmKey(action)
	}
	return m.handleModesKey(action)
}

// entries on the main screen: every mode, then settings, then high scores.
func (m MenuModel) entryCount() int {
	return len(m.modes) + 2
}

func (m MenuModel) handleModesKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.entryCount()-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch {
		case m.cursor < len(m.modes):
			mode := m.modes[m.cursor]
			m.selected = &MenuItem{GameID: mode.ID(), Mode: mode}
			return m, tea.Quit
		case m.cursor == len(m.modes):
			m.screen = screenSettings
			m.settingsCursor = 0
		default:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleSettingsKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case MenuActionDown:
		if m.settingsCursor < settingCount-1 {
			m.settingsCursor++
		}
	case MenuActionBack:
		m.screen = screenModes
	case MenuActionSelect, MenuActionLeft, MenuActionRight:
		m.applySetting(action)
	}
	return m, nil
}

func (m *MenuModel) applySetting(action MenuAction) {
	switch m.settingsCursor {
	case settingTheme:
		m.profile.Theme = NextTheme(m.profile.Theme)
	case settingLanguage:
		m.profile.Language = i18n.Next(m.profile.Language)
	case settingSounds:
		m.profile.Muted = !m.profile.Muted
	case settingResetBest:
		if action == MenuActionSelect {
			m.screen = screenConfirmReset
			m.confirmYes = false
		}
		return
	case settingDone:
		if action == MenuActionSelect {
			m.screen = screenModes
		}
		return
	}
	m.saveProfile()
}

func (m MenuModel) handleConfirmKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionLeft, MenuActionRight, MenuActionUp, MenuActionDown:
		m.confirmYes = !m.confirmYes
	case MenuActionBack:
		m.screen = screenSettings
	case MenuActionSelect:
		if m.confirmYes {
			m.resetBest()
		}
		m.screen = screenSettings
	}
	return m, nil
}

func (m *MenuModel) saveProfile() {
	if m.store == nil || m.profile.Player == "" {
		return
	}
	//nolint:errcheck // Best-effort save, menu continues regardless
	m.store.SaveProfile(m.profile)
}

func (m *MenuModel) resetBest() {
	m.profile.Best = 0
	if m.store == nil || m.profile.Player == "" {
		return
	}
	if err := m.store.ResetBest(m.profile.Player); errors.Is(err, storage.ErrNoProfile) {
		m.saveProfile()
	}
}

func (m MenuModel) t(key i18n.Key) string {
	return i18n.T(m.profile.Language, key)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := ThemeByName(m.profile.Theme)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L I N E C R A F T"), m.width))
	b.WriteString("\n\n")

	best := fmt.Sprintf("%s: %d", m.t(i18n.PersonalBest), m.profile.Best)
	b.WriteString(centerText(mutedStyle.Render(best), m.width))
	b.WriteString("\n\n")

	var help string
	switch m.screen {
	case screenSettings:
		m.viewSettings(&b, theme)
		help = m.t(i18n.SettingsHelp)
	case screenConfirmReset:
		m.viewConfirm(&b, theme)
		help = m.t(i18n.SettingsHelp)
	default:
		m.viewModes(&b, theme)
		help = m.t(i18n.MenuHelp)
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(help), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) line(b *strings.Builder, theme Theme, selected bool, text string) {
	style := lipgloss.NewStyle()
	cursor := "  "
	if selected {
		cursor = "> "
		style = style.Bold(true).Foreground(theme.Accent)
	}
	b.WriteString(centerText(style.Render(cursor+text), m.width))
	b.WriteString("\n")
}

func (m MenuModel) viewModes(b *strings.Builder, theme Theme) {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	b.WriteString(centerText(m.t(i18n.SelectMode), m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		title := m.t(mode.TitleKey())
		if high := m.highScores[mode.ID()]; high > 0 {
			title = fmt.Sprintf("%s (%d)", title, high)
		}
		m.line(b, theme, i == m.cursor, title)
		b.WriteString(centerText(mutedStyle.Render(m.t(mode.DescKey())), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.line(b, theme, m.cursor == len(m.modes), m.t(i18n.Settings))
	m.line(b, theme, m.cursor == len(m.modes)+1, m.t(i18n.HighScores))
}

func (m MenuModel) viewSettings(b *strings.Builder, theme Theme) {
	b.WriteString(centerText(m.t(i18n.Settings), m.width))
	b.WriteString("\n\n")

	themeName := m.t(i18n.ThemeDark)
	if m.profile.Theme == LightTheme.Name {
		themeName = m.t(i18n.ThemeLight)
	}
	sounds := m.t(i18n.On)
	if m.profile.Muted {
		sounds = m.t(i18n.Off)
	}

	entries := [settingCount]string{
		fmt.Sprintf("%s: %s", m.t(i18n.Theme), themeName),
		fmt.Sprintf("%s: %s", m.t(i18n.Language), i18n.T(m.profile.Language, i18n.LanguageName)),
		fmt.Sprintf("%s: %s", m.t(i18n.GameSounds), sounds),
		m.t(i18n.ResetBest),
		m.t(i18n.Done),
	}
	for i, text := range entries {
		m.line(b, theme, i == m.settingsCursor, text)
	}
}

func (m MenuModel) viewConfirm(b *strings.Builder, theme Theme) {
	b.WriteString(centerText(m.t(i18n.ConfirmReset), m.width))
	b.WriteString("\n\n")

	selected := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Background(theme.Surface).Padding(0, 1)
	plain := lipgloss.NewStyle().Padding(0, 1)

	yes, no := plain.Render(m.t(i18n.Yes)), selected.Render(m.t(i18n.No))
	if m.confirmYes {
		yes, no = selected.Render(m.t(i18n.Yes)), plain.Render(m.t(i18n.No))
	}
	b.WriteString(centerText(yes+"  "+no, m.width))
	b.WriteString("\n")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Profile returns the profile with any settings changed in the menu.
func (m MenuModel) Profile() core.Profile {
	return m.profile
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	Profile         core.Profile
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, profile core.Profile) (MenuResult, error) {
	model := NewMenuModel(store, cfg, profile)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Profile: profile}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Profile: profile, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarises what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:  m.Config(),
		Profile: m.Profile(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result
}
