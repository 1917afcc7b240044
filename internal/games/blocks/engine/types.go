// Package engine implements the placement and line-clearing rules of LineCraft.
// It is UI-agnostic, synchronous and deterministic given a random Source.
package engine

import "strings"

// Color is one of the eight block colors.
type Color uint8

const (
	ColorBlue Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorPurple
	ColorCyan
	ColorOrange
	ColorPink
	ColorCount // Sentinel value for iteration
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII dumps.
func (c Color) Char() rune {
	switch c {
	case ColorBlue:
		return 'B'
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorCyan:
		return 'C'
	case ColorOrange:
		return 'O'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// ParseColor converts a name or single-letter code to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "blue", "b":
		return ColorBlue, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "pink", "k":
		return ColorPink, true
	default:
		return ColorBlue, false
	}
}

// AllColors returns every valid color in declaration order.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Special marks a block that changes how it is cleared.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialBomb         // clears a 3x3 area when placed
	SpecialFrozen       // survives line clears while it has life
	SpecialStar         // clears its whole row and column when swept
)

// String returns the name of the special kind.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialBomb:
		return "bomb"
	case SpecialFrozen:
		return "frozen"
	case SpecialStar:
		return "star"
	default:
		return "unknown"
	}
}

// ParseSpecial converts a name to a Special.
func ParseSpecial(s string) (Special, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return SpecialNone, true
	case "bomb":
		return SpecialBomb, true
	case "frozen":
		return SpecialFrozen, true
	case "star":
		return SpecialStar, true
	default:
		return SpecialNone, false
	}
}

// SpecialKinds lists the kinds a generator may attach to a shape.
var SpecialKinds = []Special{SpecialBomb, SpecialFrozen, SpecialStar}

// Cell is the state of a single grid position.
// Life is only meaningful for frozen cells; use the constructors to build cells.
type Cell struct {
	Filled  bool
	Color   Color
	Special Special
	Life    int
}

// EmptyCell returns an unoccupied cell.
func EmptyCell() Cell {
	return Cell{}
}

// PlainCell returns an occupied cell with no special behavior.
func PlainCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// BombCell returns an occupied bomb cell.
func BombCell(c Color) Cell {
	return Cell{Filled: true, Color: c, Special: SpecialBomb}
}

// StarCell returns an occupied star cell.
func StarCell(c Color) Cell {
	return Cell{Filled: true, Color: c, Special: SpecialStar}
}

// FrozenCell returns an occupied frozen cell with the given remaining life.
func FrozenCell(c Color, life int) Cell {
	if life < 0 {
		life = 0
	}
	return Cell{Filled: true, Color: c, Special: SpecialFrozen, Life: life}
}

// IsFrozen reports whether the cell is a frozen block.
func (c Cell) IsFrozen() bool {
	return c.Filled && c.Special == SpecialFrozen
}

// Shielded reports whether the cell is frozen and still has life left,
// meaning a sweep decrements it instead of clearing it.
func (c Cell) Shielded() bool {
	return c.IsFrozen() && c.Life > 0
}

// Char returns the ASCII representation used in grid dumps.
func (c Cell) Char() rune {
	if !c.Filled {
		return '.'
	}
	switch c.Special {
	case SpecialBomb:
		return '*'
	case SpecialStar:
		return '+'
	case SpecialFrozen:
		return rune('0' + c.Life%10)
	default:
		return c.Color.Char()
	}
}

// Anchor is a (row, col) grid position.
type Anchor struct {
	Row int
	Col int
}

// A is shorthand for constructing an Anchor.
func A(row, col int) Anchor {
	return Anchor{Row: row, Col: col}
}
