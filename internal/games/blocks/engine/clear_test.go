package engine_test

import (
	"testing"

	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
)

func TestResolveNoFullLinesIsIdentity(t *testing.T) {
	grids := []*engine.Grid{
		engine.NewGrid(8),
		engine.ParseGrid(
			"RRR.",
			"R...",
			"R..G",
			".GGG",
		),
		engine.ParseGrid(
			"2R.",
			"R.R",
			".R+",
		),
	}

	for i, g := range grids {
		res := engine.Resolve(g)
		if res.LinesCleared != 0 {
			t.Errorf("grid %d: LinesCleared = %d, expected 0", i, res.LinesCleared)
		}
		if !res.Grid.Equal(g) {
			t.Errorf("grid %d: grid changed:\n%s", i, res.Grid)
		}
	}
}

func TestResolveFullRowEndToEnd(t *testing.T) {
	g := engine.NewGrid(8)
	line := engine.NewShape(1, engine.ColorCyan, [][]uint8{{1, 1, 1, 1, 1, 1, 1, 1}})

	if !engine.CanPlace(g, line, 0, 0) {
		t.Fatal("line should fit on empty grid")
	}
	placed := engine.Place(g, line, 0, 0)
	if !placed.Grid.RowFull(0) {
		t.Fatal("row 0 should be full after placement")
	}

	res := engine.Resolve(placed.Grid)
	if res.LinesCleared != 1 {
		t.Errorf("LinesCleared = %d, expected 1", res.LinesCleared)
	}
	if !res.Grid.IsEmpty() {
		t.Errorf("grid should be empty after clearing row 0:\n%s", res.Grid)
	}
	if len(res.Rows) != 1 || res.Rows[0] != 0 || len(res.Cols) != 0 {
		t.Errorf("Rows = %v, Cols = %v", res.Rows, res.Cols)
	}
}

func TestResolveRowAndColumnCountSeparately(t *testing.T) {
	g := engine.ParseGrid(
		".R..",
		"RRRR",
		".R..",
		".RG.",
	)
	res := engine.Resolve(g)

	if res.LinesCleared != 2 {
		t.Errorf("LinesCleared = %d, expected 2", res.LinesCleared)
	}
	if res.Grid.FilledCount() != 1 || !res.Grid.At(3, 2).Filled {
		t.Errorf("only (3,2) should remain:\n%s", res.Grid)
	}
}

func TestResolveFrozenNeedsThreeClears(t *testing.T) {
	refill := func(g *engine.Grid) *engine.Grid {
		g = g.Clone()
		for c := 1; c < g.Size; c++ {
			g.Set(0, c, engine.PlainCell(engine.ColorRed))
		}
		return g
	}

	g := engine.NewGrid(4)
	g.Set(0, 0, engine.FrozenCell(engine.ColorBlue, engine.DefaultFrozenLife))

	// First clear: life 2 -> 1, survives.
	res := engine.Resolve(refill(g))
	if res.LinesCleared != 1 {
		t.Fatalf("first clear: LinesCleared = %d, expected 1", res.LinesCleared)
	}
	cell := res.Grid.At(0, 0)
	if !cell.IsFrozen() || cell.Life != 1 {
		t.Fatalf("first clear: expected frozen life 1, got %+v", cell)
	}
	if res.Grid.FilledCount() != 1 {
		t.Fatalf("first clear: other cells should be gone:\n%s", res.Grid)
	}

	// Second clear: life 1 -> 0, still survives.
	res = engine.Resolve(refill(res.Grid))
	cell = res.Grid.At(0, 0)
	if !cell.IsFrozen() || cell.Life != 0 {
		t.Fatalf("second clear: expected frozen life 0, got %+v", cell)
	}

	// Third clear removes it.
	res = engine.Resolve(refill(res.Grid))
	if res.LinesCleared != 1 {
		t.Errorf("third clear: LinesCleared = %d, expected 1", res.LinesCleared)
	}
	if !res.Grid.IsEmpty() {
		t.Errorf("third clear: grid should be empty:\n%s", res.Grid)
	}
}

func TestResolveStarChain(t *testing.T) {
	g := engine.ParseGrid(
		"....",
		"R+RR",
		"....",
		"GR..",
	)

	res := engine.Resolve(g)

	if res.LinesCleared != 2 {
		t.Errorf("LinesCleared = %d, expected 2 (row + star column)", res.LinesCleared)
	}
	if len(res.Stars) != 1 || res.Stars[0] != engine.A(1, 1) {
		t.Errorf("Stars = %v, expected [(1,1)]", res.Stars)
	}
	if res.Grid.At(3, 1).Filled {
		t.Error("star column cell (3,1) should be cleared")
	}
	if !res.Grid.At(3, 0).Filled {
		t.Error("(3,0) is outside the star lines and should remain")
	}
	if len(res.Cols) != 1 || res.Cols[0] != 1 {
		t.Errorf("Cols = %v, expected [1]", res.Cols)
	}
}

func TestResolveStarLineSparesFrozen(t *testing.T) {
	g := engine.ParseGrid(
		"....",
		"R+RR",
		"....",
		".2..",
	)

	res := engine.Resolve(g)

	cell := res.Grid.At(3, 1)
	if !cell.IsFrozen() || cell.Life != 2 {
		t.Errorf("frozen cell on a star-forced column should keep life 2, got %+v", cell)
	}
	if len(res.Thawed) != 0 {
		t.Errorf("Thawed = %v, expected none", res.Thawed)
	}
}

func TestResolveStarAtIntersectionCountsOnce(t *testing.T) {
	g := engine.ParseGrid(
		"..R",
		"RR+",
		"..R",
	)
	res := engine.Resolve(g)
	if res.LinesCleared != 2 {
		t.Errorf("LinesCleared = %d, expected 2", res.LinesCleared)
	}
	if !res.Grid.IsEmpty() {
		t.Errorf("grid should be empty:\n%s", res.Grid)
	}
}

func TestResolveDoesNotMutateSource(t *testing.T) {
	g := engine.ParseGrid(
		"2RR",
		"...",
		"...",
	)
	before := g.Clone()
	engine.Resolve(g)
	if !g.Equal(before) {
		t.Error("Resolve modified the source grid")
	}
}

func TestPlaceResolveDeterministic(t *testing.T) {
	g := engine.ParseGrid(
		"RRRRR.",
		"R.....",
		"R..+..",
		"R.....",
		"R.....",
		"......",
	)
	s := engine.NewShape(7, engine.ColorYellow, [][]uint8{{1}, {1}},
		engine.SpecialMark{Row: 1, Col: 0, Kind: engine.SpecialFrozen})

	var first *engine.Grid
	for i := 0; i < 5; i++ {
		res := engine.Resolve(engine.Place(g, s, 0, 5).Grid)
		if first == nil {
			first = res.Grid
			continue
		}
		if !res.Grid.Equal(first) {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, res.Grid, first)
		}
	}
}
