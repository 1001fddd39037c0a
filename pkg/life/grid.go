// Package life implements a bounded two-state cellular automaton in the
// Game of Life family. Edges are hard: cells outside the grid do not exist and
// never count as neighbors.
package life

import (
	"fmt"

	"life-ca/pkg/core"
)

// MaxCells caps rows*cols so a corrupt save or a bad flag cannot request an
// allocation the process cannot satisfy.
const MaxCells = 1 << 28

// CheckDimensions reports ErrInvalidDimensions unless rows and cols are
// positive and their product stays within MaxCells.
func CheckDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %d rows x %d cols", ErrInvalidDimensions, rows, cols)
	}
	if cols > MaxCells/rows {
		return fmt.Errorf("%w: %d rows x %d cols exceeds %d cells", ErrInvalidDimensions, rows, cols, MaxCells)
	}
	return nil
}

// Config describes a grid to construct.
type Config struct {
	Rows       int
	Cols       int
	Rule       string
	Generation int
	Active     []core.Pos
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 100, Cols: 100, Rule: "standard"}
}

// Grid stores binary cell states in row-major order alongside a scratch buffer
// used to build each next generation.
type Grid struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
	generation int
	rule       Rule
	ruleName   string
}

// New allocates a rows×cols grid, all cells inactive, then activates every
// position in active. A nil rule selects Standard.
func New(rows, cols int, rule Rule, active ...core.Pos) (*Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return nil, err
	}
	name := ""
	if rule == nil {
		rule, name = Standard, "standard"
	}
	cells := make([]uint8, rows*cols)
	g := &Grid{rows: rows, cols: cols, cur: cells, nxt: make([]uint8, len(cells)), rule: rule, ruleName: name}
	for _, p := range active {
		if !g.inBounds(p) {
			return nil, fmt.Errorf("%w: %v outside %dx%d", ErrInvalidCoordinate, p, cols, rows)
		}
		g.cur[g.index(p)] = 1
	}
	return g, nil
}

// NewWithConfig builds a grid from cfg, resolving the rule by name.
func NewWithConfig(cfg Config) (*Grid, error) {
	name := CanonicalRuleName(cfg.Rule)
	if name == "" {
		name = "standard"
	}
	rule, err := LookupRule(name)
	if err != nil {
		return nil, err
	}
	if cfg.Generation < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGeneration, cfg.Generation)
	}
	g, err := New(cfg.Rows, cfg.Cols, rule, cfg.Active...)
	if err != nil {
		return nil, err
	}
	g.ruleName = name
	g.generation = cfg.Generation
	return g, nil
}

// FromPairs converts loose [x, y] pairs into positions. Every pair must hold
// exactly two values.
func FromPairs(pairs [][]int) ([]core.Pos, error) {
	out := make([]core.Pos, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d values, want 2", ErrInvalidCoordinate, i, len(pair))
		}
		out = append(out, core.Pos{X: pair[0], Y: pair[1]})
	}
	return out, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Generation returns the number of completed steps.
func (g *Grid) Generation() int { return g.generation }

// RuleName returns the registered name of the rule, or "" when the grid was
// built from an unnamed rule function.
func (g *Grid) RuleName() string { return g.ruleName }

// Cells exposes the current states in row-major order (index y*cols+x). The
// slice is replaced on every Step; callers must not retain it.
func (g *Grid) Cells() []uint8 { return g.cur }

// Alive reports whether p is inside the grid and active.
func (g *Grid) Alive(p core.Pos) bool {
	return g.inBounds(p) && g.cur[g.index(p)] == 1
}

// Toggle flips the cell at p and returns its new state.
func (g *Grid) Toggle(p core.Pos) (uint8, error) {
	if err := g.check(p); err != nil {
		return 0, err
	}
	idx := g.index(p)
	g.cur[idx] = 1 - g.cur[idx]
	return g.cur[idx], nil
}

// Activate forces the cell at p to 1.
func (g *Grid) Activate(p core.Pos) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.cur[g.index(p)] = 1
	return nil
}

// Deactivate forces the cell at p to 0.
func (g *Grid) Deactivate(p core.Pos) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.cur[g.index(p)] = 0
	return nil
}

// Score returns the number of active cells.
func (g *Grid) Score() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Active lists the active positions in scan order (x outer, y inner).
func (g *Grid) Active() []core.Pos {
	var out []core.Pos
	for x := 0; x < g.cols; x++ {
		for y := 0; y < g.rows; y++ {
			if g.cur[y*g.cols+x] == 1 {
				out = append(out, core.Pos{X: x, Y: y})
			}
		}
	}
	return out
}

// NeighborCount returns the number of active cells among the eight
// surrounding positions that lie inside the grid.
func (g *Grid) NeighborCount(p core.Pos) (int, error) {
	if err := g.check(p); err != nil {
		return 0, err
	}
	return g.neighbors(p.X, p.Y), nil
}

// Step advances the grid by one generation and returns the positions whose
// state changed, x outer and y inner.
func (g *Grid) Step() []core.Pos {
	var changed []core.Pos
	for x := 0; x < g.cols; x++ {
		for y := 0; y < g.rows; y++ {
			idx := y*g.cols + x
			cell := g.cur[idx]
			next := g.rule(cell, g.neighbors(x, y))
			if next != 0 {
				next = 1
			}
			g.nxt[idx] = next
			if next != cell {
				changed = append(changed, core.Pos{X: x, Y: y})
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	return changed
}

// Restart clears every cell. The generation counter is left as is.
func (g *Grid) Restart() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cur = append([]uint8(nil), g.cur...)
	c.nxt = make([]uint8, len(g.nxt))
	return &c
}

// Equal reports whether both grids share dimensions, generation and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || g.generation != o.generation {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}

func (g *Grid) neighbors(x, y int) int {
	left, right := x > 0, x < g.cols-1
	up, down := y > 0, y < g.rows-1
	row := y*g.cols + x
	n := 0
	if up {
		above := row - g.cols
		n += int(g.cur[above])
		if left {
			n += int(g.cur[above-1])
		}
		if right {
			n += int(g.cur[above+1])
		}
	}
	if left {
		n += int(g.cur[row-1])
	}
	if right {
		n += int(g.cur[row+1])
	}
	if down {
		below := row + g.cols
		n += int(g.cur[below])
		if left {
			n += int(g.cur[below-1])
		}
		if right {
			n += int(g.cur[below+1])
		}
	}
	return n
}

func (g *Grid) index(p core.Pos) int { return p.Y*g.cols + p.X }

func (g *Grid) inBounds(p core.Pos) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

func (g *Grid) check(p core.Pos) error {
	if !g.inBounds(p) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, p, g.cols, g.rows)
	}
	return nil
}
