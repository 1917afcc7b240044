package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a theme-specific terminal color.
type Color uint8

// Screen colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)
