package core

import "fmt"

// Size describes the dimensions of a simulation grid. W counts columns and H
// counts rows.
type Size struct {
	W int
	H int
}

// Contains reports whether p addresses a cell inside the area.
func (s Size) Contains(p Pos) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Pos addresses a single cell. X indexes columns in [0, W) and Y indexes rows
// in [0, H).
type Pos struct {
	X int
	Y int
}

// String formats the position as "(x,y)".
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Change pairs a position with the state it holds after an update.
type Change struct {
	Pos   Pos
	State uint8
}
