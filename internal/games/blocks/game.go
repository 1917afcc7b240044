// Package blocks is the LineCraft session controller: it owns the grid, the
// three-slot tray and the score of one game and drives the engine from
// platform input.
package blocks

import (
	"errors"

	"github.com/vovakirdan/linecraft/internal/config"
	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
	"github.com/vovakirdan/linecraft/internal/i18n"
	"github.com/vovakirdan/linecraft/internal/registry"
)

// Mode selects the board size and whether the session is timed.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeRush    Mode = "rush"
	ModeHard    Mode = "hard"
)

// Modes lists the modes in menu order.
var Modes = []Mode{ModeClassic, ModeRush, ModeHard}

// ID returns the registry and score-table identifier of the mode.
func (m Mode) ID() string {
	switch m {
	case ModeRush:
		return "blocks_rush"
	case ModeHard:
		return "blocks_hard"
	default:
		return "blocks"
	}
}

// TitleKey returns the i18n key of the mode name.
func (m Mode) TitleKey() i18n.Key {
	switch m {
	case ModeRush:
		return i18n.TimeRush
	case ModeHard:
		return i18n.Hard
	default:
		return i18n.Classic
	}
}

// DescKey returns the i18n key of the one-line mode description.
func (m Mode) DescKey() i18n.Key {
	switch m {
	case ModeRush:
		return i18n.TimeRushDesc
	case ModeHard:
		return i18n.HardDesc
	default:
		return i18n.ClassicDesc
	}
}

// ModeOf maps a registry ID back to its mode.
func ModeOf(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID() == id {
			return m, true
		}
	}
	return "", false
}

// ErrNoShape is returned by Place when the selected slot is empty.
var ErrNoShape = errors.New("blocks: no shape selected")

// Package-level variables for config, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

const (
	minScreenW = 40
	hudHeight  = 3
	trayHeight = 7
	flashSecs  = 2
)

// Game is one LineCraft session.
type Game struct {
	mode       Mode
	cfg        config.BlocksConfig
	rules      engine.Rules
	difficulty *config.DifficultyManager
	gen        *engine.Generator

	grid     *engine.Grid
	slots    engine.Slots
	selected int
	cursor   engine.Anchor
	score    engine.Score
	lines    int
	lastTurn *engine.TurnResult

	profile       core.Profile
	profileLoaded bool
	bestAnnounced bool

	tick       uint64
	tickRate   int
	timerTicks int
	timed      bool

	screenW int
	screenH int

	gameOver bool
	timeUp   bool
	paused   bool
	tooSmall bool

	flash      i18n.Key
	flashValue int
	flashTicks int
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{
		mode:    mode,
		profile: core.DefaultProfile(""),
	}
}

func init() {
	for _, m := range Modes {
		m := m
		registry.Register(m.ID(), func() registry.Game {
			return New(m)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "LineCraft: " + i18n.T("en", g.mode.TitleKey())
}

// Description returns the English one-line description for listings.
func (g *Game) Description() string {
	return i18n.T("en", g.mode.DescKey())
}

// Mode returns the session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// LoadProfile sets the persisted best, level and experience the next Reset
// starts from, plus the display language.
func (g *Game) LoadProfile(p core.Profile) {
	if p.Level < 1 {
		p.Level = 1
	}
	g.profile = p
	g.profileLoaded = true
}

// Profile returns the profile with the progress of the current session
// folded in.
func (g *Game) Profile() core.Profile {
	p := g.profile
	if g.grid == nil {
		return p
	}
	if g.score.Best > p.Best {
		p.Best = g.score.Best
	}
	p.Level = g.score.Progress.Level
	p.XP = g.score.Progress.XP
	return p
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.profileLoaded {
		g.profile = g.Profile()
	}
	g.profileLoaded = false

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rules = cfg.EngineRules()
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	modeCfg, ok := cfg.Modes.Mode(string(g.mode))
	if !ok {
		modeCfg = cfg.Modes.Classic
	}

	g.tickRate = rt.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.timerTicks = 0
	g.timed = modeCfg.TimeLimit > 0

	g.gen = engine.NewGenerator(engine.NewRand(rt.Seed), engine.WithRules(g.rules))
	g.grid = engine.NewGrid(modeCfg.GridSize)
	g.score = engine.NewScore(g.profile.Best, engine.Progress{Level: g.profile.Level, XP: g.profile.XP})
	g.score.TimeLeft = modeCfg.TimeLimit
	g.lines = 0
	g.lastTurn = nil
	g.bestAnnounced = false

	g.gameOver = false
	g.timeUp = false
	g.paused = false
	g.clearFlash()

	g.tuneGenerator()
	g.slots = g.gen.GenerateOpeningSet(g.grid)
	g.selected = 0
	g.cursor = g.centeredAnchor()

	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Resize records new terminal dimensions without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	size := 8
	if g.grid != nil {
		size = g.grid.Size
	}
	minW := max(minScreenW, size*cellW+4)
	minH := hudHeight + size + 2 + 1 + trayHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// tuneGenerator applies the difficulty ramp to the next set.
func (g *Game) tuneGenerator() {
	sc, lvl := g.score.Current, g.score.Progress.Level
	g.gen.Configure(
		engine.WithSpecialChance(g.difficulty.SpecialChance(g.rules.SpecialChance, sc, lvl)),
		engine.WithMaxRetries(g.difficulty.MaxRetries(g.rules.MaxSetRetries, sc, lvl)),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.clearFlash()
		}
	}

	if g.timed && g.countdown() {
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Kind: core.EventTimeUp}},
		}
	}

	for _, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if in.Has(a) {
			g.Select(a.SlotIndex())
		}
	}
	if in.Has(core.ActionNextSlot) {
		g.cycle(1)
	}
	if in.Has(core.ActionPrevSlot) {
		g.cycle(-1)
	}

	dr, dc := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dr = -1
	case in.Has(core.ActionDown):
		dr = 1
	}
	switch {
	case in.Has(core.ActionLeft):
		dc = -1
	case in.Has(core.ActionRight):
		dc = 1
	}
	if dr != 0 || dc != 0 {
		g.MoveTo(g.cursor.Row+dr, g.cursor.Col+dc)
	}

	var events []core.Event
	if in.Has(core.ActionConfirm) {
		//nolint:errcheck // an illegal placement only shows a flash message
		events, _ = g.Place(g.cursor.Row, g.cursor.Col)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// countdown advances the Time Rush clock and reports whether it ran out.
func (g *Game) countdown() bool {
	g.timerTicks++
	if g.timerTicks < g.tickRate {
		return false
	}
	g.timerTicks = 0
	g.score.TimeLeft--
	if g.score.TimeLeft > 0 {
		return false
	}
	g.score.TimeLeft = 0
	g.timeUp = true
	g.gameOver = true
	return true
}

// Select makes slot i the active shape. Empty slots are ignored.
func (g *Game) Select(i int) bool {
	if i < 0 || i >= len(g.slots) || g.slots[i] == nil {
		return false
	}
	g.selected = i
	g.MoveTo(g.cursor.Row, g.cursor.Col)
	return true
}

func (g *Game) cycle(dir int) {
	n := len(g.slots)
	for step := 1; step < n; step++ {
		i := ((g.selected+dir*step)%n + n) % n
		if g.Select(i) {
			return
		}
	}
}

func (g *Game) selectFirst() {
	if g.slots[g.selected] != nil {
		return
	}
	for i := range g.slots {
		if g.Select(i) {
			return
		}
	}
}

// MoveTo sets the anchor of the selected shape, clamped so its bounding box
// stays on the grid.
func (g *Game) MoveTo(row, col int) {
	s := g.Selected()
	h, w := 1, 1
	if s != nil {
		h, w = s.Rows(), s.Cols()
	}
	g.cursor = engine.A(
		core.Clamp(row, 0, max(0, g.grid.Size-h)),
		core.Clamp(col, 0, max(0, g.grid.Size-w)),
	)
}

func (g *Game) centeredAnchor() engine.Anchor {
	s := g.Selected()
	if s == nil {
		return engine.A(0, 0)
	}
	return engine.A((g.grid.Size-s.Rows())/2, (g.grid.Size-s.Cols())/2)
}

// Selected returns the active shape, or nil when its slot is empty.
func (g *Game) Selected() *engine.Shape {
	if g.selected < 0 || g.selected >= len(g.slots) {
		return nil
	}
	return g.slots[g.selected]
}

// CanPlaceSelected reports whether the selected shape fits at the cursor.
func (g *Game) CanPlaceSelected() bool {
	s := g.Selected()
	return s != nil && engine.CanPlace(g.grid, s, g.cursor.Row, g.cursor.Col)
}

// Place commits the selected shape at (row, col): place, resolve lines,
// score, refill the tray when it is empty and check for game over. An
// illegal placement leaves the session untouched.
func (g *Game) Place(row, col int) ([]core.Event, error) {
	if g.gameOver {
		return nil, nil
	}
	s := g.Selected()
	if s == nil {
		return nil, ErrNoShape
	}

	turn, err := g.rules.PlayTurn(g.grid, s, row, col, &g.score)
	if err != nil {
		g.setFlash(i18n.NoFit, 0)
		return nil, err
	}

	g.grid = turn.Grid
	g.slots.Take(g.selected)
	g.lines += turn.Clear.LinesCleared
	g.lastTurn = &turn

	events := g.turnEvents(turn)

	if g.slots.Empty() {
		g.tuneGenerator()
		g.slots = g.gen.GenerateSet(g.grid)
	}
	g.selectFirst()
	g.MoveTo(g.cursor.Row, g.cursor.Col)

	if !engine.AnyPlaceable(g.grid, g.slots.List()) {
		g.gameOver = true
	}
	return events, nil
}

func (g *Game) turnEvents(turn engine.TurnResult) []core.Event {
	events := []core.Event{{Kind: core.EventPlaced, Value: turn.Score.Points}}
	flash, value := i18n.Key(""), 0

	if turn.Place.BombTriggered() {
		events = append(events, core.Event{Kind: core.EventBomb, Value: len(turn.Place.Bombs)})
		flash = i18n.Bomb
	}
	if n := turn.Clear.LinesCleared; n > 0 {
		events = append(events, core.Event{Kind: core.EventLinesCleared, Value: n})
		flash, value = i18n.LinesCleared, n
	}
	if len(turn.Clear.Stars) > 0 {
		events = append(events, core.Event{Kind: core.EventStar, Value: len(turn.Clear.Stars)})
		flash, value = i18n.Star, 0
	}
	if turn.Score.LevelsGained > 0 {
		events = append(events, core.Event{Kind: core.EventLevelUp, Value: g.score.Progress.Level})
		flash, value = i18n.LevelUp, g.score.Progress.Level
	}
	if turn.Score.NewBest && !g.bestAnnounced && g.profile.Best > 0 {
		g.bestAnnounced = true
		events = append(events, core.Event{Kind: core.EventNewBest, Value: g.score.Best})
		flash, value = i18n.NewBest, g.score.Best
	}

	if flash != "" {
		g.setFlash(flash, value)
	}
	return events
}

func (g *Game) setFlash(key i18n.Key, value int) {
	g.flash = key
	g.flashValue = value
	g.flashTicks = g.tickRate * flashSecs
}

func (g *Game) clearFlash() {
	g.flash = ""
	g.flashValue = 0
	g.flashTicks = 0
}

// Grid returns the current board. Callers must not modify it.
func (g *Game) Grid() *engine.Grid {
	return g.grid
}

// Slots returns the current tray.
func (g *Game) Slots() engine.Slots {
	return g.slots
}

// Cursor returns the anchor of the selected shape.
func (g *Game) Cursor() engine.Anchor {
	return g.cursor
}

// Score returns the running score.
func (g *Game) Score() engine.Score {
	return g.score
}

// Lines returns the number of lines cleared this session.
func (g *Game) Lines() int {
	return g.lines
}

// Summary returns the lines cleared this session and the current level.
func (g *Game) Summary() (lines, level int) {
	return g.lines, g.score.Progress.Level
}

// LastTurn returns the outcome of the most recent placement, or nil.
func (g *Game) LastTurn() *engine.TurnResult {
	return g.lastTurn
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Current,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
