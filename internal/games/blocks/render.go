package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
	"github.com/vovakirdan/linecraft/internal/i18n"
)

const (
	cellW     = 2 // terminal columns per grid cell
	slotInner = 5 // widest and tallest shape in the catalog, in cells
	slotW     = slotInner*cellW + 2
	slotGap   = 1
	xpBarW    = 20
)

// blockColors maps engine colors to screen colors.
var blockColors = map[engine.Color]core.Color{
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorRed:    core.ColorRed,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorPink:   core.ColorPink,
}

// glyph returns the two runes and color that draw one occupied cell.
func glyph(c engine.Cell) (rune, rune, core.Color) {
	switch c.Special {
	case engine.SpecialBomb:
		return '*', '*', core.ColorBrightRed
	case engine.SpecialStar:
		return '+', '+', core.ColorBrightYellow
	case engine.SpecialFrozen:
		return '#', rune('0' + c.Life%10), core.ColorBrightCyan
	}
	return '█', '█', blockColors[c.Color]
}

func (g *Game) lang() string {
	return g.profile.Language
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.grid.Size
	boardW := size*cellW + 2
	boardH := size + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderGhost(dst, boardX, boardY)
	g.renderFlash(dst, boardY+boardH)
	g.renderTray(dst, boardY+boardH+1)
	dst.DrawTextCenteredColor(g.screenH-1, i18n.T(g.lang(), i18n.GameHelp), core.ColorGray)

	g.renderOverlays(dst, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, i18n.T(g.lang(), i18n.TooSmall))
	dst.DrawTextCentered(y+1, i18n.T(g.lang(), i18n.ResizeHint))
}

// renderHUD draws score, best, combo, level with its XP bar and the timer.
func (g *Game) renderHUD(dst *core.Screen) {
	lang := g.lang()

	title := "LINECRAFT - " + strings.ToUpper(i18n.T(lang, g.mode.TitleKey()))
	dst.DrawTextCenteredColor(0, title, core.ColorBrightWhite)

	scoreStr := fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Score), g.score.Current)
	dst.DrawTextColor(1, 1, scoreStr, core.ColorBrightWhite)

	if g.score.Combo > 1 {
		dst.DrawTextCenteredColor(1, fmt.Sprintf("%s x%d", i18n.T(lang, i18n.Combo), g.score.Combo), core.ColorBrightYellow)
	}

	bestStr := fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Best), g.score.Best)
	dst.DrawTextColor(g.screenW-core.TextWidth(bestStr)-1, 1, bestStr, core.ColorYellow)

	levelStr := fmt.Sprintf("%s %d ", i18n.T(lang, i18n.Level), g.score.Progress.Level)
	dst.DrawText(1, 2, levelStr)
	g.renderXPBar(dst, 1+core.TextWidth(levelStr), 2)

	if g.timed {
		timeStr := fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Time), g.score.TimeLeft)
		c := core.ColorWhite
		if g.score.TimeLeft <= 10 {
			c = core.ColorBrightRed
		}
		dst.DrawTextColor(g.screenW-core.TextWidth(timeStr)-1, 2, timeStr, c)
	}
}

func (g *Game) renderXPBar(dst *core.Screen, x, y int) {
	need := g.rules.RequiredXP(g.score.Progress.Level)
	filled := 0
	if need > 0 {
		filled = core.Clamp(g.score.Progress.XP*xpBarW/need, 0, xpBarW)
	}
	dst.Set(x, y, '[')
	for i := 0; i < xpBarW; i++ {
		if i < filled {
			dst.SetCell(x+1+i, y, '=', core.ColorBrightGreen)
		} else {
			dst.SetCell(x+1+i, y, '-', core.ColorGray)
		}
	}
	dst.Set(x+1+xpBarW, y, ']')
}

func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.grid.Size
	dst.DrawBoxColor(core.NewRect(boardX, boardY, size*cellW+2, size+2), core.ColorGray)

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			x := boardX + 1 + c*cellW
			y := boardY + 1 + r
			cell := g.grid.At(r, c)
			if !cell.Filled {
				dst.SetCell(x, y, '·', core.ColorGray)
				continue
			}
			left, right, color := glyph(cell)
			dst.SetCell(x, y, left, color)
			dst.SetCell(x+1, y, right, color)
		}
	}
}

// renderGhost previews the selected shape at the cursor, dimmed when it fits
// and red when it does not.
func (g *Game) renderGhost(dst *core.Screen, boardX, boardY int) {
	s := g.Selected()
	if s == nil || g.gameOver {
		return
	}

	fits := engine.CanPlace(g.grid, s, g.cursor.Row, g.cursor.Col)
	fill, color := '▒', blockColors[s.Color]
	if !fits {
		fill, color = '░', core.ColorRed
	}

	for _, a := range s.OccupiedCells() {
		x := boardX + 1 + (g.cursor.Col+a.Col)*cellW
		y := boardY + 1 + g.cursor.Row + a.Row
		dst.SetCell(x, y, fill, color)
		dst.SetCell(x+1, y, fill, color)
	}
}

func (g *Game) renderFlash(dst *core.Screen, y int) {
	if g.flash == "" {
		return
	}
	msg := i18n.T(g.lang(), g.flash)
	switch g.flash {
	case i18n.LinesCleared:
		msg = fmt.Sprintf("%d %s", g.flashValue, msg)
	case i18n.LevelUp, i18n.NewBest:
		msg = fmt.Sprintf("%s %d", msg, g.flashValue)
	}
	color := core.ColorBrightGreen
	if g.flash == i18n.NoFit {
		color = core.ColorRed
	}
	dst.DrawTextCenteredColor(y, msg, color)
}

// renderTray draws the three slots side by side. Shapes that fit nowhere are
// drawn gray.
func (g *Game) renderTray(dst *core.Screen, y int) {
	total := len(g.slots)*slotW + (len(g.slots)-1)*slotGap
	x0 := (g.screenW - total) / 2

	for i, s := range g.slots {
		x := x0 + i*(slotW+slotGap)
		border := core.ColorGray
		if i == g.selected && s != nil {
			border = core.ColorBrightWhite
		}
		dst.DrawBoxColor(core.NewRect(x, y, slotW, slotInner+1), border)
		dst.DrawTextColor(x+1, y, fmt.Sprintf("%d", i+1), border)

		if s == nil {
			continue
		}
		usable := engine.Fits(g.grid, s)
		offX := x + 1 + (slotInner*cellW-s.Cols()*cellW)/2
		offY := y + 1 + (slotInner-1-s.Rows())/2
		for _, a := range s.OccupiedCells() {
			cell := engine.PlainCell(s.Color)
			if sp := s.SpecialAt(a.Row, a.Col); sp != engine.SpecialNone {
				cell.Special = sp
				cell.Life = g.rules.FrozenLife
			}
			left, right, color := glyph(cell)
			if !usable {
				color = core.ColorGray
			}
			dst.SetCell(offX+a.Col*cellW, offY+a.Row, left, color)
			dst.SetCell(offX+a.Col*cellW+1, offY+a.Row, right, color)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, centerY int) {
	lang := g.lang()
	centerX := g.screenW / 2

	if g.paused {
		drawOverlay(dst, centerX, centerY, i18n.T(lang, i18n.Paused), i18n.T(lang, i18n.ResumeHint))
		return
	}

	if g.gameOver {
		lines := []string{i18n.T(lang, i18n.Finished)}
		if g.timeUp {
			lines = append(lines, i18n.T(lang, i18n.TimeUp))
		}
		lines = append(lines,
			fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Score), g.score.Current),
			fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Lines), g.lines),
		)
		if g.bestAnnounced {
			lines = append(lines, i18n.T(lang, i18n.NewBest))
		}
		lines = append(lines, i18n.T(lang, i18n.RetryHint))
		drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered box with text lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, core.TextWidth(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-core.TextWidth(line)/2, box.Y+1+i, line)
	}
}
