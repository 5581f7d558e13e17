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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSlotActions(t *testing.T) {
	for n := 1; n <= 9; n++ {
		a := SlotAction(n)
		got, ok := a.Slot()
		if !ok || got != n {
			t.Errorf("SlotAction(%d).Slot() = (%d, %v), expected (%d, true)", n, got, ok, n)
		}
	}

	if SlotAction(0) != ActionNone || SlotAction(10) != ActionNone {
		t.Error("SlotAction outside 1..9 should be ActionNone")
	}
	if _, ok := ActionUndo.Slot(); ok {
		t.Error("ActionUndo is not a slot action")
	}
	if ActionSlot3.String() != "Slot3" {
		t.Errorf("ActionSlot3.String() = %q, expected Slot3", ActionSlot3.String())
	}
}

func TestInputFramePresses(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUndo)
	f.Press(3, 4)
	f.Press(5, 6)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionUndo) || len(f.Presses) != 0 {
		t.Error("Clear should drop actions and presses")
	}
	if !clone.Has(ActionUndo) {
		t.Error("Clone should keep actions after the original is cleared")
	}
	if len(clone.Presses) != 2 || clone.Presses[1] != (Point{X: 5, Y: 6}) {
		t.Errorf("Clone presses = %v, expected [{3 4} {5 6}]", clone.Presses)
	}
}
