package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
)

func TestLineBonus(t *testing.T) {
	tests := []struct {
		lines    int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 10},
		{2, 25},
		{3, 45},
		{4, 70},
		{7, 70},
	}
	for _, tc := range tests {
		if got := engine.LineBonus(tc.lines); got != tc.expected {
			t.Errorf("LineBonus(%d) = %d, expected %d", tc.lines, got, tc.expected)
		}
	}
}

func TestNextCombo(t *testing.T) {
	combo := 1
	for i, lines := range []int{1, 2, 1, 0, 1} {
		combo = engine.NextCombo(combo, lines)
		expected := []int{2, 3, 4, 1, 2}[i]
		if combo != expected {
			t.Fatalf("step %d: combo = %d, expected %d", i, combo, expected)
		}
	}
}

func TestAward(t *testing.T) {
	l3 := shape([]uint8{1, 0}, []uint8{1, 1})

	tests := []struct {
		name     string
		lines    int
		combo    int
		expected int
	}{
		{"no clear", 0, 1, 3},
		{"one line combo 2", 1, 2, 26},
		{"two lines combo 3", 2, 3, 84},
		{"five lines capped bonus", 5, 2, 146},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := engine.Award(l3, tc.lines, tc.combo); got != tc.expected {
				t.Errorf("Award = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	rules := engine.DefaultRules()
	l3 := shape([]uint8{1, 0}, []uint8{1, 1})
	sc := engine.NewScore(20, engine.Progress{Level: 1})

	turn := rules.Apply(&sc, l3, 0)
	if turn.Points != 3 || sc.Current != 3 || sc.Combo != 1 {
		t.Fatalf("no clear: turn=%+v score=%+v", turn, sc)
	}
	if turn.NewBest || sc.Best != 20 {
		t.Errorf("best should stay 20, got %d (NewBest=%v)", sc.Best, turn.NewBest)
	}

	turn = rules.Apply(&sc, l3, 1)
	if turn.Points != 26 || turn.Combo != 2 {
		t.Errorf("one line: turn = %+v, expected 26 points at combo 2", turn)
	}
	if sc.Current != 29 || sc.Best != 29 || !turn.NewBest {
		t.Errorf("score = %+v, expected current and best 29", sc)
	}
	if sc.Progress.XP != 29 {
		t.Errorf("XP = %d, expected 29", sc.Progress.XP)
	}

	rules.Apply(&sc, l3, 0)
	if sc.Combo != 1 {
		t.Errorf("combo should reset to 1, got %d", sc.Combo)
	}
}

func TestGainLevelUp(t *testing.T) {
	tests := []struct {
		name     string
		start    engine.Progress
		points   int
		expected engine.Progress
		gained   int
	}{
		{"no level up", engine.Progress{Level: 1, XP: 0}, 150, engine.Progress{Level: 1, XP: 150}, 0},
		{"carry remainder", engine.Progress{Level: 1, XP: 150}, 100, engine.Progress{Level: 2, XP: 50}, 1},
		{"exact threshold", engine.Progress{Level: 2, XP: 300}, 100, engine.Progress{Level: 3, XP: 0}, 1},
		{"multiple levels", engine.Progress{Level: 1, XP: 0}, 600, engine.Progress{Level: 3, XP: 0}, 2},
		{"level zero treated as one", engine.Progress{}, 250, engine.Progress{Level: 2, XP: 50}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, gained := tc.start.Gain(tc.points)
			if got != tc.expected || gained != tc.gained {
				t.Errorf("Gain = %+v (+%d), expected %+v (+%d)", got, gained, tc.expected, tc.gained)
			}
		})
	}
}

func TestRequiredXP(t *testing.T) {
	if got := engine.RequiredXP(1); got != 200 {
		t.Errorf("RequiredXP(1) = %d, expected 200", got)
	}
	if got := engine.RequiredXP(5); got != 1000 {
		t.Errorf("RequiredXP(5) = %d, expected 1000", got)
	}
	custom := engine.Rules{LevelXPFactor: 50}
	if got := custom.RequiredXP(3); got != 150 {
		t.Errorf("custom RequiredXP(3) = %d, expected 150", got)
	}
}

func TestPlayTurnRejectsIllegalPlacement(t *testing.T) {
	g := engine.ParseGrid(
		"R..",
		"...",
		"...",
	)
	sc := engine.NewScore(0, engine.Progress{Level: 1})
	bar := shape([]uint8{1, 1})

	for _, tc := range []struct {
		name     string
		s        *engine.Shape
		row, col int
	}{
		{"overlap", bar, 0, 0},
		{"out of bounds", bar, 2, 2},
		{"nil shape", nil, 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := engine.PlayTurn(g, tc.s, tc.row, tc.col, &sc)
			if !errors.Is(err, engine.ErrIllegalPlacement) {
				t.Fatalf("err = %v, expected ErrIllegalPlacement", err)
			}
			if res.Grid != g {
				t.Error("rejected turn should hand back the input grid")
			}
			if sc.Current != 0 || sc.Combo != 1 {
				t.Errorf("score changed on rejected turn: %+v", sc)
			}
		})
	}
}

func TestPlayTurnClearsAndScores(t *testing.T) {
	g := engine.ParseGrid(
		"R...",
		"R...",
		"R...",
		"....",
	)
	sc := engine.NewScore(0, engine.Progress{Level: 1})
	bar := shape([]uint8{1, 1, 1})

	res, err := engine.PlayTurn(g, bar, 0, 1, &sc)
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if res.Clear.LinesCleared != 1 {
		t.Errorf("LinesCleared = %d, expected 1", res.Clear.LinesCleared)
	}
	if res.Score.Points != (3+10)*2 {
		t.Errorf("points = %d, expected %d", res.Score.Points, (3+10)*2)
	}
	if res.Grid.FilledCount() != 2 {
		t.Errorf("expected the two column cells below row 0 to remain:\n%s", res.Grid)
	}
	if g.FilledCount() != 3 {
		t.Error("PlayTurn modified the input grid")
	}
}
