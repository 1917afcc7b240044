package engine

import (
	"errors"
	"fmt"
)

// ErrIllegalPlacement is returned when a shape does not fit at the requested anchor.
var ErrIllegalPlacement = errors.New("engine: shape does not fit at anchor")

// CanPlace reports whether every occupied cell of s, offset by (row, col),
// lands inside the grid on an empty cell. It is the single legality check
// used by every other operation.
func CanPlace(g *Grid, s *Shape, row, col int) bool {
	for r, line := range s.Matrix {
		for c, v := range line {
			if v != 1 {
				continue
			}
			tr, tc := row+r, col+c
			if !g.InBounds(tr, tc) || g.At(tr, tc).Filled {
				return false
			}
		}
	}
	return true
}

// Placements returns every anchor at which s can be placed, row-major.
func Placements(g *Grid, s *Shape) []Anchor {
	var anchors []Anchor
	for row := 0; row <= g.Size-s.Rows(); row++ {
		for col := 0; col <= g.Size-s.Cols(); col++ {
			if CanPlace(g, s, row, col) {
				anchors = append(anchors, A(row, col))
			}
		}
	}
	return anchors
}

// Fits reports whether s can be placed anywhere on g.
func Fits(g *Grid, s *Shape) bool {
	for row := 0; row <= g.Size-s.Rows(); row++ {
		for col := 0; col <= g.Size-s.Cols(); col++ {
			if CanPlace(g, s, row, col) {
				return true
			}
		}
	}
	return false
}

// AnyPlaceable reports whether at least one of shapes fits somewhere on g.
// Nil entries are ignored; when nothing is left the answer is vacuously true.
func AnyPlaceable(g *Grid, shapes []*Shape) bool {
	active := 0
	for _, s := range shapes {
		if s == nil {
			continue
		}
		active++
		if Fits(g, s) {
			return true
		}
	}
	return active == 0
}

// PlaceResult is the outcome of writing a shape onto a grid.
type PlaceResult struct {
	Grid  *Grid
	Bombs []Anchor // absolute positions of detonated bombs
}

// BombTriggered reports whether the placement detonated a bomb.
func (p PlaceResult) BombTriggered() bool {
	return len(p.Bombs) > 0
}

// Place writes s at (row, col) on a copy of g using the default rules.
// See Rules.Place.
func Place(g *Grid, s *Shape, row, col int) PlaceResult {
	return DefaultRules().Place(g, s, row, col)
}

// Place writes s at (row, col) on a copy of g. The source grid is untouched.
// Frozen cells get FrozenLife, star cells are written as-is, and each bomb
// clears the 3x3 area around it (clipped to the grid) before returning.
// Callers must check CanPlace first; placing an illegal shape panics.
func (r Rules) Place(g *Grid, s *Shape, row, col int) PlaceResult {
	if !CanPlace(g, s, row, col) {
		panic(fmt.Errorf("%w: shape %d at (%d,%d)", ErrIllegalPlacement, s.ID, row, col))
	}
	r = r.withDefaults()

	out := g.Clone()
	var bombs []Anchor

	for lr, line := range s.Matrix {
		for lc, v := range line {
			if v != 1 {
				continue
			}
			tr, tc := row+lr, col+lc
			var cell Cell
			switch s.SpecialAt(lr, lc) {
			case SpecialFrozen:
				cell = FrozenCell(s.Color, r.FrozenLife)
			case SpecialStar:
				cell = StarCell(s.Color)
			case SpecialBomb:
				cell = BombCell(s.Color)
				bombs = append(bombs, A(tr, tc))
			default:
				cell = PlainCell(s.Color)
			}
			out.Set(tr, tc, cell)
		}
	}

	for _, b := range bombs {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				out.Clear(b.Row+dr, b.Col+dc)
			}
		}
	}

	return PlaceResult{Grid: out, Bombs: bombs}
}
