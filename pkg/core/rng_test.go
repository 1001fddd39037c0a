package core

import (
	"slices"
	"testing"
)

func TestScatterDeterministic(t *testing.T) {
	size := Size{W: 16, H: 12}
	a := NewRNG(42).Scatter(size, 0.3)
	b := NewRNG(42).Scatter(size, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("Scatter with equal seeds produced different positions")
	}
	if len(a) == 0 {
		t.Fatal("Scatter with density 0.3 produced no cells")
	}
	for _, p := range a {
		if !size.Contains(p) {
			t.Fatalf("Scatter produced %v outside %dx%d", p, size.W, size.H)
		}
	}
}

func TestScatterDensityBounds(t *testing.T) {
	size := Size{W: 4, H: 3}
	if got := NewRNG(1).Scatter(size, 0); len(got) != 0 {
		t.Fatalf("density 0 produced %d cells", len(got))
	}
	full := NewRNG(1).Scatter(size, 5)
	if len(full) != size.Area() {
		t.Fatalf("density above 1 produced %d cells, expected %d", len(full), size.Area())
	}
	if full[0] != (Pos{X: 0, Y: 0}) || full[1] != (Pos{X: 0, Y: 1}) {
		t.Fatalf("Scatter order starts %v %v, expected column-major scan", full[0], full[1])
	}
}
