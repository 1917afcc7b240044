package engine

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ClearResult is the outcome of a line-clear pass.
type ClearResult struct {
	Grid         *Grid
	Rows         []int    // cleared row indices, ascending
	Cols         []int    // cleared column indices, ascending
	Stars        []Anchor // stars that were swept and detonated
	Thawed       []Anchor // frozen cells that lost one life
	LinesCleared int      // len(Rows) + len(Cols)
}

// Resolve runs one line-clear pass over a copy of g.
//
// A row or column is full when every cell in it is occupied. Every occupied
// cell on a full line is swept: a frozen cell with life left loses one life
// and stays, a star adds its own row and column to the clear set. Then every
// cell on a clearing line is emptied except frozen cells that still had life
// at the start of the pass. Rows and columns count separately.
func Resolve(g *Grid) ClearResult {
	out := g.Clone()
	size := out.Size

	rows := mapset.New[int]()
	cols := mapset.New[int]()
	for i := 0; i < size; i++ {
		if out.RowFull(i) {
			rows.Put(i)
		}
		if out.ColFull(i) {
			cols.Put(i)
		}
	}

	if rows.Size() == 0 && cols.Size() == 0 {
		return ClearResult{Grid: out}
	}

	// shielded cells survive this pass even if the sweep takes them to zero
	shielded := mapset.New[Anchor]()
	var stars, thawed []Anchor
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !rows.Has(row) && !cols.Has(col) {
				continue
			}
			cell := out.At(row, col)
			switch {
			case cell.Shielded():
				cell.Life--
				out.Set(row, col, cell)
				shielded.Put(A(row, col))
				thawed = append(thawed, A(row, col))
			case cell.Filled && cell.Special == SpecialStar:
				stars = append(stars, A(row, col))
			}
		}
	}

	for _, s := range stars {
		rows.Put(s.Row)
		cols.Put(s.Col)
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !rows.Has(row) && !cols.Has(col) {
				continue
			}
			cell := out.At(row, col)
			if shielded.Has(A(row, col)) || cell.Shielded() {
				continue
			}
			out.Clear(row, col)
		}
	}

	result := ClearResult{
		Grid:   out,
		Rows:   sortedKeys(rows),
		Cols:   sortedKeys(cols),
		Stars:  stars,
		Thawed: thawed,
	}
	result.LinesCleared = len(result.Rows) + len(result.Cols)
	return result
}

func sortedKeys(s mapset.Set[int]) []int {
	keys := make([]int, 0, s.Size())
	s.Each(func(k int) {
		keys = append(keys, k)
	})
	sort.Ints(keys)
	return keys
}
