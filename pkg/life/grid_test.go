package life

import (
	"errors"
	"math"
	"slices"
	"testing"

	"life-ca/pkg/core"
)

func mustGrid(t *testing.T, rows, cols int, rule Rule, active ...core.Pos) *Grid {
	t.Helper()
	g, err := New(rows, cols, rule, active...)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return g
}

func expectActive(t *testing.T, g *Grid, want []core.Pos, label string) {
	t.Helper()
	expects := map[core.Pos]bool{}
	for _, p := range want {
		expects[p] = true
	}
	for x := 0; x < g.Cols(); x++ {
		for y := 0; y < g.Rows(); y++ {
			p := core.Pos{X: x, Y: y}
			if g.Alive(p) != expects[p] {
				t.Fatalf("%s: cell %v alive=%v, expected %v", label, p, g.Alive(p), expects[p])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	start := []core.Pos{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	g := mustGrid(t, 5, 5, Standard, start...)

	changed := g.Step()
	expectActive(t, g, []core.Pos{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, "after first step")

	wantChanged := []core.Pos{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}}
	if !slices.Equal(changed, wantChanged) {
		t.Fatalf("changed = %v, expected %v", changed, wantChanged)
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after one step", g.Generation())
	}

	changed = g.Step()
	expectActive(t, g, start, "after second step")
	if len(changed) != 4 {
		t.Fatalf("second step changed %d cells, expected 4", len(changed))
	}
	if g.Generation() != 2 {
		t.Fatalf("generation = %d after two steps", g.Generation())
	}
}

func TestOverpopulationDeath(t *testing.T) {
	var all []core.Pos
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			all = append(all, core.Pos{X: x, Y: y})
		}
	}
	g := mustGrid(t, 3, 3, Standard, all...)
	center := core.Pos{X: 1, Y: 1}
	if n, _ := g.NeighborCount(center); n != 8 {
		t.Fatalf("center neighbor count = %d, expected 8", n)
	}
	g.Step()
	if g.Alive(center) {
		t.Fatal("cell with eight neighbors survived under standard rules")
	}
}

func TestHighLifeBirthOnSix(t *testing.T) {
	six := []core.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	center := core.Pos{X: 1, Y: 1}

	std := mustGrid(t, 3, 3, Standard, six...)
	high := mustGrid(t, 3, 3, HighLife, six...)
	if n, _ := std.NeighborCount(center); n != 6 {
		t.Fatalf("center neighbor count = %d, expected 6", n)
	}

	std.Step()
	high.Step()
	if std.Alive(center) {
		t.Fatal("standard rules birthed a cell with six neighbors")
	}
	if !high.Alive(center) {
		t.Fatal("highlife rules did not birth a cell with six neighbors")
	}
}

func TestNeighborCountClipsAtEdges(t *testing.T) {
	rows, cols := 4, 6
	var all []core.Pos
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			all = append(all, core.Pos{X: x, Y: y})
		}
	}
	g := mustGrid(t, rows, cols, nil, all...)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			n, err := g.NeighborCount(core.Pos{X: x, Y: y})
			if err != nil {
				t.Fatalf("NeighborCount(%d,%d): %v", x, y, err)
			}
			edgeX := x == 0 || x == cols-1
			edgeY := y == 0 || y == rows-1
			want := 8
			switch {
			case edgeX && edgeY:
				want = 3
			case edgeX || edgeY:
				want = 5
			}
			if n != want {
				t.Fatalf("cell (%d,%d) neighbor count = %d, expected %d", x, y, n, want)
			}
		}
	}
	if _, err := g.NeighborCount(core.Pos{X: cols, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("NeighborCount outside grid err = %v", err)
	}
}

func TestScoreMatchesEnumeration(t *testing.T) {
	size := core.Size{W: 23, H: 17}
	g := mustGrid(t, size.H, size.W, nil, core.NewRNG(7).Scatter(size, 0.4)...)
	for i := 0; i < 5; i++ {
		count := 0
		for _, c := range g.Cells() {
			if c == 1 {
				count++
			}
		}
		if g.Score() != count {
			t.Fatalf("generation %d: Score() = %d, enumeration = %d", g.Generation(), g.Score(), count)
		}
		if len(g.Active()) != count {
			t.Fatalf("generation %d: Active() has %d positions, expected %d", g.Generation(), len(g.Active()), count)
		}
		g.Step()
	}
}

func TestRestartIdempotent(t *testing.T) {
	g := mustGrid(t, 5, 5, nil, core.Pos{X: 1, Y: 0}, core.Pos{X: 1, Y: 1}, core.Pos{X: 1, Y: 2})
	g.Step()
	g.Restart()
	once := append([]uint8(nil), g.Cells()...)
	g.Restart()
	if !slices.Equal(once, g.Cells()) {
		t.Fatal("second Restart changed the grid")
	}
	if g.Score() != 0 {
		t.Fatalf("score after restart = %d", g.Score())
	}
	if g.Generation() != 1 {
		t.Fatalf("restart changed generation to %d", g.Generation())
	}
}

func TestDeterministicEvolution(t *testing.T) {
	size := core.Size{W: 20, H: 14}
	seed := core.NewRNG(99).Scatter(size, 0.35)
	a := mustGrid(t, size.H, size.W, HighLife, seed...)
	b := mustGrid(t, size.H, size.W, HighLife, seed...)

	toggles := []core.Pos{{X: 3, Y: 4}, {X: 10, Y: 10}, {X: 19, Y: 13}, {X: 0, Y: 0}}
	for i := 0; i < 12; i++ {
		if i < len(toggles) {
			if _, err := a.Toggle(toggles[i]); err != nil {
				t.Fatalf("toggle a: %v", err)
			}
			if _, err := b.Toggle(toggles[i]); err != nil {
				t.Fatalf("toggle b: %v", err)
			}
		}
		ca := a.Step()
		cb := b.Step()
		if !slices.Equal(ca, cb) {
			t.Fatalf("step %d changed lists differ", i)
		}
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("step %d cell arrays differ", i)
		}
	}
	if !a.Equal(b) {
		t.Fatal("grids diverged")
	}
}

func TestStepReadsPreviousGeneration(t *testing.T) {
	// A glider only survives if every cell reads the pre-step state.
	glider := []core.Pos{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := mustGrid(t, 8, 8, Standard, glider...)
	for i := 0; i < 4; i++ {
		g.Step()
	}
	shifted := make([]core.Pos, len(glider))
	for i, p := range glider {
		shifted[i] = core.Pos{X: p.X + 1, Y: p.Y + 1}
	}
	expectActive(t, g, shifted, "glider after four steps")
}

func TestToggleActivateDeactivate(t *testing.T) {
	g := mustGrid(t, 3, 5, nil)
	p := core.Pos{X: 4, Y: 2}
	state, err := g.Toggle(p)
	if err != nil || state != 1 {
		t.Fatalf("Toggle = %d, %v; expected 1, nil", state, err)
	}
	if g.Cells()[2*5+4] != 1 {
		t.Fatal("toggle did not write row-major index y*cols+x")
	}
	if state, _ = g.Toggle(p); state != 0 {
		t.Fatalf("second Toggle = %d, expected 0", state)
	}
	if err := g.Activate(p); err != nil || !g.Alive(p) {
		t.Fatalf("Activate: %v alive=%v", err, g.Alive(p))
	}
	if err := g.Activate(p); err != nil || !g.Alive(p) {
		t.Fatal("Activate is not idempotent")
	}
	if err := g.Deactivate(p); err != nil || g.Alive(p) {
		t.Fatalf("Deactivate: %v alive=%v", err, g.Alive(p))
	}
	if g.Generation() != 0 {
		t.Fatalf("mutations changed generation to %d", g.Generation())
	}

	for _, bad := range []core.Pos{{X: -1, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: 4}} {
		if _, err := g.Toggle(bad); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%v) err = %v, expected ErrOutOfBounds", bad, err)
		}
		if err := g.Activate(bad); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Activate(%v) err = %v, expected ErrOutOfBounds", bad, err)
		}
		if err := g.Deactivate(bad); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Deactivate(%v) err = %v, expected ErrOutOfBounds", bad, err)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 5, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("rows=0 err = %v", err)
	}
	if _, err := New(5, -1, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("cols=-1 err = %v", err)
	}
	if _, err := New(4_000_000_000, 4_000_000_000, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("4e9 x 4e9 err = %v", err)
	}
	if _, err := New(2, math.MaxInt, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("overflowing area err = %v", err)
	}
	if err := CheckDimensions(1<<14, 1<<14); err != nil {
		t.Fatalf("area at the cap rejected: %v", err)
	}
	if err := CheckDimensions(1<<14, 1<<14+1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("area above the cap err = %v", err)
	}
	if _, err := New(5, 5, nil, core.Pos{X: 10, Y: 0}); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("initial (10,0) on 5x5 err = %v", err)
	}
	if _, err := FromPairs([][]int{{1, 2}, {1, 2, 3}}); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("three-value pair err = %v", err)
	}
	ps, err := FromPairs([][]int{{1, 2}, {0, 4}})
	if err != nil || !slices.Equal(ps, []core.Pos{{X: 1, Y: 2}, {X: 0, Y: 4}}) {
		t.Fatalf("FromPairs = %v, %v", ps, err)
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 4
	cfg.Rule = "HighLife"
	cfg.Generation = 12
	cfg.Active = []core.Pos{{X: 3, Y: 5}}
	g, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if g.RuleName() != "highlife" || g.Generation() != 12 || !g.Alive(core.Pos{X: 3, Y: 5}) {
		t.Fatalf("grid rule=%q gen=%d alive=%v", g.RuleName(), g.Generation(), g.Alive(core.Pos{X: 3, Y: 5}))
	}

	cfg.Rule = " s23/b63 "
	if g, err = NewWithConfig(cfg); err != nil {
		t.Fatalf("NewWithConfig(%q): %v", cfg.Rule, err)
	}
	if g.RuleName() != "B36/S23" {
		t.Fatalf("notation rule name = %q, expected B36/S23", g.RuleName())
	}

	cfg.Rule = "seeds"
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("unknown rule err = %v", err)
	}
	cfg.Rule = "standard"
	cfg.Generation = -1
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidGeneration) {
		t.Fatalf("negative generation err = %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 5, 5, nil, core.Pos{X: 1, Y: 0}, core.Pos{X: 1, Y: 1}, core.Pos{X: 1, Y: 2})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from source")
	}
	c.Step()
	if g.Equal(c) {
		t.Fatal("stepping the clone changed the source")
	}
	if g.Generation() != 0 {
		t.Fatalf("source generation = %d", g.Generation())
	}
}
