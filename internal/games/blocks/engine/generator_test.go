package engine_test

import (
	"testing"

	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
)

func catalogIndex(t *testing.T, name string) int {
	t.Helper()
	for i, tmpl := range engine.Catalog() {
		if tmpl.Name == name {
			return i
		}
	}
	t.Fatalf("template %q not in catalog", name)
	return -1
}

func fullGrid(size int) *engine.Grid {
	g := engine.NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.Set(r, c, engine.PlainCell(engine.ColorBlue))
		}
	}
	return g
}

func TestCatalogShapesAreValid(t *testing.T) {
	cat := engine.Catalog()
	if len(cat) != 22 {
		t.Fatalf("catalog has %d templates, expected 22", len(cat))
	}
	for _, tmpl := range cat {
		s := &engine.Shape{Matrix: tmpl.Matrix, Color: tmpl.Color}
		if err := s.Validate(); err != nil {
			t.Errorf("%s: %v", tmpl.Name, err)
		}
	}

	// Catalog returns a copy.
	cat[0].Matrix[0][0] = 0
	if engine.Catalog()[0].Matrix[0][0] != 1 {
		t.Error("mutating Catalog() result leaked into the built-in catalog")
	}
}

func TestGenerateScripted(t *testing.T) {
	dot := catalogIndex(t, "dot")
	square := catalogIndex(t, "square2")
	n := len(engine.Catalog())

	src := engine.NewSequenceSource(
		engine.Pick(dot, n), 0.5, // dot, no special
		engine.Pick(square, n), 0.05, engine.Pick(3, 4), engine.Pick(1, 3), // square2, frozen on (1,1)
	)
	gen := engine.NewGenerator(src)

	first := gen.Generate()
	if first.ID != 1 || first.CellCount() != 1 || len(first.Specials) != 0 {
		t.Errorf("first shape = %+v, expected plain dot with ID 1", first)
	}
	if first.Color != engine.ColorBlue {
		t.Errorf("dot color = %v, expected blue", first.Color)
	}

	second := gen.Generate()
	if second.ID != 2 || second.CellCount() != 4 {
		t.Fatalf("second shape = %+v, expected square2 with ID 2", second)
	}
	if len(second.Specials) != 1 {
		t.Fatalf("expected one special, got %v", second.Specials)
	}
	mark := second.Specials[0]
	if mark.Row != 1 || mark.Col != 1 || mark.Kind != engine.SpecialFrozen {
		t.Errorf("special = %+v, expected frozen at (1,1)", mark)
	}
	if src.Consumed() != 6 {
		t.Errorf("consumed %d draws, expected 6", src.Consumed())
	}
}

func TestGenerateSpecialsStayOnOccupiedCells(t *testing.T) {
	gen := engine.NewGenerator(engine.NewRand(42))

	const total = 2000
	withSpecial := 0
	for i := 0; i < total; i++ {
		s := gen.Generate()
		if len(s.Specials) > 1 {
			t.Fatalf("shape %d has %d specials", s.ID, len(s.Specials))
		}
		if len(s.Specials) == 1 {
			withSpecial++
			m := s.Specials[0]
			if !s.Occupied(m.Row, m.Col) {
				t.Fatalf("special %+v on empty matrix cell of %v", m, s.Matrix)
			}
		}
	}

	// Roughly 10% of shapes carry a special.
	if withSpecial < total/20 || withSpecial > total*3/20 {
		t.Errorf("%d of %d shapes had specials, expected about 10%%", withSpecial, total)
	}
}

func TestGenerateSpecialChanceZero(t *testing.T) {
	gen := engine.NewGenerator(engine.NewRand(7), engine.WithSpecialChance(0))
	for i := 0; i < 200; i++ {
		if s := gen.Generate(); len(s.Specials) != 0 {
			t.Fatalf("unexpected special on %+v", s)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := engine.NewGenerator(engine.NewRand(99))
	b := engine.NewGenerator(engine.NewRand(99))
	g := engine.NewGrid(8)

	for i := 0; i < 20; i++ {
		sa, sb := a.GenerateSet(g), b.GenerateSet(g)
		for j := range sa {
			if sa[j].ID != sb[j].ID || sa[j].Color != sb[j].Color ||
				sa[j].CellCount() != sb[j].CellCount() || len(sa[j].Specials) != len(sb[j].Specials) {
				t.Fatalf("set %d slot %d differs: %+v vs %+v", i, j, sa[j], sb[j])
			}
		}
	}
}

func TestGenerateSetAttempts(t *testing.T) {
	tests := []struct {
		name     string
		grid     *engine.Grid
		retries  int
		expected int
	}{
		{"empty grid fits first draw", engine.NewGrid(8), engine.DefaultMaxSetRetries, 1},
		{"full grid exhausts default retries", fullGrid(8), engine.DefaultMaxSetRetries, engine.DefaultMaxSetRetries + 1},
		{"full grid with three retries", fullGrid(8), 3, 4},
		{"full grid without retries", fullGrid(8), 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := engine.NewGenerator(engine.NewRand(1), engine.WithMaxRetries(tc.retries))
			set, attempts := gen.GenerateSetAttempts(tc.grid)
			if attempts != tc.expected {
				t.Errorf("attempts = %d, expected %d", attempts, tc.expected)
			}
			if set.Remaining() != 3 {
				t.Errorf("set has %d shapes, expected 3", set.Remaining())
			}
		})
	}
}

func TestGenerateSetRetriesUntilPlaceable(t *testing.T) {
	// Only a dot fits the single hole. Script: h2 x3 (unplaceable), then a set with a dot.
	h2 := catalogIndex(t, "h2")
	dot := catalogIndex(t, "dot")
	n := len(engine.Catalog())

	g := fullGrid(4)
	g.Clear(2, 2)

	src := engine.NewSequenceSource(
		engine.Pick(h2, n), 0.9,
		engine.Pick(h2, n), 0.9,
		engine.Pick(h2, n), 0.9,
		engine.Pick(h2, n), 0.9,
		engine.Pick(h2, n), 0.9,
		engine.Pick(dot, n), 0.9,
	)
	gen := engine.NewGenerator(src)

	set, attempts := gen.GenerateSetAttempts(g)
	if attempts != 2 {
		t.Fatalf("attempts = %d, expected 2", attempts)
	}
	if !engine.AnyPlaceable(g, set.List()) {
		t.Error("returned set should be placeable")
	}
	if set[2].CellCount() != 1 {
		t.Errorf("third shape should be the dot, got %v", set[2].Matrix)
	}
}

func TestGenerateOpeningSetFindsPlaceableSet(t *testing.T) {
	g := fullGrid(6)
	g.Clear(0, 0)

	gen := engine.NewGenerator(engine.NewRand(5))
	set := gen.GenerateOpeningSet(g)
	if !engine.AnyPlaceable(g, set.List()) {
		t.Error("opening set should contain a shape that fits the single hole")
	}
}

func TestSlots(t *testing.T) {
	gen := engine.NewGenerator(engine.NewRand(3))
	set := gen.GenerateSet(engine.NewGrid(8))

	if set.Empty() || set.Remaining() != 3 {
		t.Fatalf("fresh set: Empty=%v Remaining=%d", set.Empty(), set.Remaining())
	}
	first := set.Take(0)
	if first == nil || set[0] != nil {
		t.Fatal("Take should return the shape and empty the slot")
	}
	if set.Take(0) != nil {
		t.Error("taking an empty slot should return nil")
	}
	set.Take(1)
	set.Take(2)
	if !set.Empty() || len(set.List()) != 3 {
		t.Errorf("after taking all: Empty=%v List=%v", set.Empty(), set.List())
	}
}

func TestConfigure(t *testing.T) {
	gen := engine.NewGenerator(engine.NewRand(1))
	gen.Configure(engine.WithSpecialChance(0.5), engine.WithMaxRetries(-3))

	r := gen.Rules()
	if r.SpecialChance != 0.5 {
		t.Errorf("SpecialChance = %v, expected 0.5", r.SpecialChance)
	}
	if r.MaxSetRetries != 0 {
		t.Errorf("MaxSetRetries = %d, expected negative input clamped to 0", r.MaxSetRetries)
	}
	if r.FrozenLife != engine.DefaultFrozenLife {
		t.Errorf("unrelated rules changed: %+v", r)
	}
}
