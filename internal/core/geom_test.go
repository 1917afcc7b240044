package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 10)
	if inner != NewRect(30, 7, 20, 10) {
		t.Errorf("Centered = %+v", inner)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft, ActionSlot2)
	if !f.Has(ActionLeft) || !f.Has(ActionSlot2) || f.Has(ActionConfirm) {
		t.Fatalf("unexpected frame contents: %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionSlotIndex(t *testing.T) {
	tests := []struct {
		a        Action
		expected int
	}{
		{ActionSlot1, 0},
		{ActionSlot2, 1},
		{ActionSlot3, 2},
		{ActionConfirm, -1},
	}
	for _, tc := range tests {
		if got := tc.a.SlotIndex(); got != tc.expected {
			t.Errorf("%v.SlotIndex() = %d, expected %d", tc.a, got, tc.expected)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventPlaced}, {Kind: EventLinesCleared, Value: 2}}}
	if !r.Has(EventLinesCleared) || r.Has(EventBomb) {
		t.Errorf("Has mismatch for %v", r.Events)
	}
}
