package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, d     Point
		expected Point
	}{
		{"up", Pt(10, 10), DirUp, Pt(10, 9)},
		{"down", Pt(10, 10), DirDown, Pt(10, 11)},
		{"left", Pt(0, 0), DirLeft, Pt(-1, 0)},
		{"right", Pt(19, 5), DirRight, Pt(20, 5)},
		{"none", Pt(3, 4), DirNone, Pt(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.d); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointManhattan(t *testing.T) {
	tests := []struct {
		p, q     Point
		expected int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(1, 1), Pt(7, 7), 12},
		{Pt(13, 1), Pt(7, 7), 12},
		{Pt(5, 2), Pt(2, 6), 7},
	}

	for _, tc := range tests {
		if got := tc.p.Manhattan(tc.q); got != tc.expected {
			t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.p, tc.q, got, tc.expected)
		}
		if got := tc.q.Manhattan(tc.p); got != tc.expected {
			t.Errorf("Manhattan is not symmetric for %v, %v", tc.p, tc.q)
		}
	}
}

func TestPointIsZero(t *testing.T) {
	if !DirNone.IsZero() {
		t.Error("DirNone should be zero")
	}
	if DirUp.IsZero() {
		t.Error("DirUp should not be zero")
	}
}

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

func TestGridRect(t *testing.T) {
	g := GridRect(20, 20)

	if !g.ContainsPoint(Pt(0, 0)) || !g.ContainsPoint(Pt(19, 19)) {
		t.Error("grid corners should be inside")
	}
	if g.ContainsPoint(Pt(20, 0)) || g.ContainsPoint(Pt(0, -1)) {
		t.Error("cells past the grid edge should be outside")
	}
	if g.Right() != 20 || g.Bottom() != 20 {
		t.Errorf("Right/Bottom = %d/%d, expected 20/20", g.Right(), g.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should cap at max")
	}
	if ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF should floor at min")
	}
	if ClampF(0.7, 0, 1) != 0.7 {
		t.Error("ClampF should pass values in range")
	}
}
