package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(V(400, 300), 20)

	if r.X != 390 || r.Y != 290 || r.W != 20 || r.H != 20 {
		t.Errorf("RectCentered() = %+v, expected {390 290 20 20}", r)
	}
	if c := r.Center(); c != V(400, 300) {
		t.Errorf("Center() = %+v, expected (400, 300)", c)
	}
	if r.Right() != 410 || r.Bottom() != 310 {
		t.Errorf("Right/Bottom = %v/%v, expected 410/310", r.Right(), r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	got := Dist(V(100, 100), V(150, 120))
	want := math.Sqrt(2500 + 400)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Dist() = %f, expected %f", got, want)
	}
	if Dist(V(0, 0), V(60, 80)) != 100 {
		t.Errorf("Dist() of 3-4-5 triangle should be exactly 100")
	}
}

func TestVecOps(t *testing.T) {
	v := V(3, 4).Add(V(1, 1)).Sub(V(1, 1)).Scale(2)
	if v != V(6, 8) {
		t.Errorf("vector ops = %+v, expected (6, 8)", v)
	}
	if v.Len() != 10 {
		t.Errorf("Len() = %f, expected 10", v.Len())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(15.5, 0, 10) != 10 || ClampF(-1, 0, 10) != 0 || ClampF(5.5, 0, 10) != 5.5 {
		t.Error("ClampF did not restrict value to range")
	}
}
