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
	if r.Empty() {
		t.Error("Empty() = true, expected false")
	}
}

func TestRectFromBounds(t *testing.T) {
	r := RectFromBounds(2, 3, 7, 5)
	if r != NewRect(2, 3, 5, 2) {
		t.Errorf("RectFromBounds() = %+v, expected {2 3 5 2}", r)
	}

	inverted := RectFromBounds(7, 5, 2, 3)
	if !inverted.Empty() {
		t.Errorf("RectFromBounds() with inverted bounds = %+v, expected empty", inverted)
	}
}

func TestRectClip(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(10, 5, 4, 2), NewRect(10, 5, 4, 2)},
		{"past right", NewRect(78, 5, 4, 2), NewRect(78, 5, 2, 2)},
		{"before origin", NewRect(-3, -1, 5, 3), NewRect(0, 0, 2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clip(screen); got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if got := NewRect(100, 0, 5, 5).Clip(screen); !got.Empty() {
		t.Errorf("Clip() of off-screen rect = %+v, expected empty", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
