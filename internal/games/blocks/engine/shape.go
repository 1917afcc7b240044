package engine

import (
	"errors"
	"fmt"
	"strings"
)

// SpecialMark annotates one occupied cell of a shape with a special kind.
// Row and Col are local to the shape matrix.
type SpecialMark struct {
	Row  int
	Col  int
	Kind Special
}

// Shape is a polyomino ready to be placed. It is never modified after
// generation and is consumed by exactly one successful placement.
type Shape struct {
	ID       uint64
	Matrix   [][]uint8
	Color    Color
	Specials []SpecialMark
}

// Errors returned by Shape.Validate.
var (
	ErrEmptyMatrix      = errors.New("engine: shape matrix has no occupied cells")
	ErrRaggedMatrix     = errors.New("engine: shape matrix is not rectangular")
	ErrSpecialNotOnCell = errors.New("engine: special block is not on an occupied cell")
)

// Rows returns the height of the shape's bounding box.
func (s *Shape) Rows() int {
	return len(s.Matrix)
}

// Cols returns the width of the shape's bounding box.
func (s *Shape) Cols() int {
	if len(s.Matrix) == 0 {
		return 0
	}
	return len(s.Matrix[0])
}

// Occupied reports whether the local cell (r, c) is part of the shape.
func (s *Shape) Occupied(r, c int) bool {
	if r < 0 || r >= len(s.Matrix) || c < 0 || c >= len(s.Matrix[r]) {
		return false
	}
	return s.Matrix[r][c] == 1
}

// CellCount returns the number of occupied cells.
func (s *Shape) CellCount() int {
	count := 0
	for _, row := range s.Matrix {
		for _, v := range row {
			if v == 1 {
				count++
			}
		}
	}
	return count
}

// OccupiedCells returns the local coordinates of every occupied cell in
// row-major order.
func (s *Shape) OccupiedCells() []Anchor {
	cells := make([]Anchor, 0, s.CellCount())
	for r, row := range s.Matrix {
		for c, v := range row {
			if v == 1 {
				cells = append(cells, A(r, c))
			}
		}
	}
	return cells
}

// SpecialAt returns the special kind attached to local cell (r, c).
func (s *Shape) SpecialAt(r, c int) Special {
	for _, m := range s.Specials {
		if m.Row == r && m.Col == c {
			return m.Kind
		}
	}
	return SpecialNone
}

// Validate checks the shape invariants: a rectangular matrix with at least one
// occupied cell and specials only on occupied cells.
func (s *Shape) Validate() error {
	if len(s.Matrix) == 0 || len(s.Matrix[0]) == 0 {
		return ErrEmptyMatrix
	}
	width := len(s.Matrix[0])
	for _, row := range s.Matrix {
		if len(row) != width {
			return ErrRaggedMatrix
		}
	}
	if s.CellCount() == 0 {
		return ErrEmptyMatrix
	}
	for _, m := range s.Specials {
		if !s.Occupied(m.Row, m.Col) {
			return fmt.Errorf("%w: (%d,%d)", ErrSpecialNotOnCell, m.Row, m.Col)
		}
	}
	return nil
}

// MustShape panics if the shape violates its invariants and returns it otherwise.
func MustShape(s *Shape) *Shape {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}

// String renders the shape as "<color>:<row>/<row>", with 'x' for plain
// cells, '.' for holes and the special's grid character for marked cells.
func (s *Shape) String() string {
	var sb strings.Builder
	sb.WriteRune(s.Color.Char())
	sb.WriteByte(':')
	for r, line := range s.Matrix {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c, v := range line {
			switch {
			case v == 0:
				sb.WriteByte('.')
			case s.SpecialAt(r, c) == SpecialBomb:
				sb.WriteByte('*')
			case s.SpecialAt(r, c) == SpecialStar:
				sb.WriteByte('+')
			case s.SpecialAt(r, c) == SpecialFrozen:
				sb.WriteByte('#')
			default:
				sb.WriteByte('x')
			}
		}
	}
	return sb.String()
}

// NewShape builds a validated shape from a matrix.
func NewShape(id uint64, color Color, matrix [][]uint8, specials ...SpecialMark) *Shape {
	return MustShape(&Shape{
		ID:       id,
		Matrix:   matrix,
		Color:    color,
		Specials: specials,
	})
}

// Slots holds the shapes currently offered to the player. A nil entry is an
// already used slot.
type Slots [3]*Shape

// Empty reports whether every slot has been used.
func (s Slots) Empty() bool {
	for _, shape := range s {
		if shape != nil {
			return false
		}
	}
	return true
}

// Remaining returns the number of unused slots.
func (s Slots) Remaining() int {
	n := 0
	for _, shape := range s {
		if shape != nil {
			n++
		}
	}
	return n
}

// Take removes and returns the shape in slot i.
func (s *Slots) Take(i int) *Shape {
	if i < 0 || i >= len(s) {
		return nil
	}
	shape := s[i]
	s[i] = nil
	return shape
}

// List returns the slots as a slice, keeping nil entries.
func (s Slots) List() []*Shape {
	return s[:]
}
