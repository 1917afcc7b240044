package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/linecraft/internal/core"
)

// Theme maps screen colors to terminal styles.
type Theme struct {
	Name    string
	styles  map[core.Color]lipgloss.Style
	Accent  lipgloss.Color // selected menu entries and titles
	Muted   lipgloss.Color // hints and inactive entries
	Surface lipgloss.Color // selection background
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DarkTheme is the default palette for dark terminals.
var DarkTheme = Theme{
	Name: "dark",
	styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorMagenta:      fg("5"),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightRed:    fg("9"),
		core.ColorBrightGreen:  fg("10"),
		core.ColorBrightYellow: fg("11"),
		core.ColorBrightCyan:   fg("14"),
		core.ColorBrightWhite:  fg("15"),
		core.ColorOrange:       fg("208"),
		core.ColorPink:         fg("213"),
		core.ColorGray:         fg("245"),
	},
	Accent:  lipgloss.Color("229"),
	Muted:   lipgloss.Color("241"),
	Surface: lipgloss.Color("57"),
}

// LightTheme darkens the bright colors so they read on a light background.
var LightTheme = Theme{
	Name: "light",
	styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:      fg("235"),
		core.ColorRed:          fg("124"),
		core.ColorGreen:        fg("28"),
		core.ColorYellow:       fg("136"),
		core.ColorBlue:         fg("25"),
		core.ColorMagenta:      fg("90"),
		core.ColorCyan:         fg("30"),
		core.ColorWhite:        fg("238"),
		core.ColorBrightRed:    fg("160"),
		core.ColorBrightGreen:  fg("34"),
		core.ColorBrightYellow: fg("130"),
		core.ColorBrightCyan:   fg("31"),
		core.ColorBrightWhite:  fg("232"),
		core.ColorOrange:       fg("166"),
		core.ColorPink:         fg("162"),
		core.ColorGray:         fg("246"),
	},
	Accent:  lipgloss.Color("25"),
	Muted:   lipgloss.Color("244"),
	Surface: lipgloss.Color("153"),
}

// Themes lists the selectable themes in settings order.
var Themes = []Theme{DarkTheme, LightTheme}

// ThemeByName returns the named theme, falling back to dark.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DarkTheme
}

// NextTheme returns the name of the theme after name.
func NextTheme(name string) string {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)].Name
		}
	}
	return Themes[0].Name
}

// Style returns the style of a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string using the dark theme.
func RenderScreen(s *core.Screen) string {
	return RenderScreenTheme(s, DarkTheme)
}

// RenderScreenTheme converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreenTheme(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
