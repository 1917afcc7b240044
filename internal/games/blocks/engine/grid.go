package engine

import "strings"

// Grid is a square board of cells stored row-major: index = row*Size + col.
// The size never changes once the grid is created.
type Grid struct {
	Size  int
	Cells []Cell
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

// ParseGrid builds a grid from rows of characters, one string per row.
// '.' is empty, a color letter is a plain cell, '*' a bomb, '+' a star and a
// digit a frozen cell with that life. Special cells take the color blue.
// Rows shorter than the grid are padded with empty cells.
func ParseGrid(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for r, line := range rows {
		for c, ch := range []rune(line) {
			if c >= g.Size {
				break
			}
			switch {
			case ch == '.' || ch == ' ':
				continue
			case ch == '*':
				g.Set(r, c, BombCell(ColorBlue))
			case ch == '+':
				g.Set(r, c, StarCell(ColorBlue))
			case ch >= '0' && ch <= '9':
				g.Set(r, c, FrozenCell(ColorBlue, int(ch-'0')))
			default:
				color, _ := ParseColor(string(ch))
				g.Set(r, c, PlainCell(color))
			}
		}
	}
	return g
}

func (g *Grid) index(row, col int) int {
	return row*g.Size + col
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// At returns the cell at (row, col), or an empty cell when out of bounds.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return EmptyCell()
	}
	return g.Cells[g.index(row, col)]
}

// Set stores a cell at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, cell Cell) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = cell
	}
}

// Clear empties the cell at (row, col).
func (g *Grid) Clear(row, col int) {
	g.Set(row, col, EmptyCell())
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size != other.Size {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// IsEmpty reports whether no cell is occupied.
func (g *Grid) IsEmpty() bool {
	return g.FilledCount() == 0
}

// RowFull reports whether every cell of the row is occupied.
func (g *Grid) RowFull(row int) bool {
	if g.Size == 0 {
		return false
	}
	for col := 0; col < g.Size; col++ {
		if !g.At(row, col).Filled {
			return false
		}
	}
	return true
}

// ColFull reports whether every cell of the column is occupied.
func (g *Grid) ColFull(col int) bool {
	if g.Size == 0 {
		return false
	}
	for row := 0; row < g.Size; row++ {
		if !g.At(row, col).Filled {
			return false
		}
	}
	return true
}

// String renders the grid as newline-separated rows using Cell.Char.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Size*g.Size + g.Size)
	for row := 0; row < g.Size; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < g.Size; col++ {
			sb.WriteRune(g.At(row, col).Char())
		}
	}
	return sb.String()
}
