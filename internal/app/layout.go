package app

import "life-ca/pkg/core"

// boardPercent is the share of the window height given to the grid; the rest
// holds the scoreboard.
const boardPercent = 85

// Layout maps window pixels to grid cells.
type Layout struct {
	Cols, Rows  int
	Width       int
	BoardHeight int
	HUDHeight   int
}

// NewLayout splits a width×height window between the grid and the scoreboard.
func NewLayout(cols, rows, width, height int) Layout {
	board := height * boardPercent / 100
	if board < 1 {
		board = 1
	}
	return Layout{Cols: cols, Rows: rows, Width: width, BoardHeight: board, HUDHeight: height - board}
}

// CellSize returns the pixel size of one cell.
func (l Layout) CellSize() (float64, float64) {
	return float64(l.Width) / float64(l.Cols), float64(l.BoardHeight) / float64(l.Rows)
}

// CellAt returns the cell under pixel (px, py), or false when the pixel is
// outside the grid area.
func (l Layout) CellAt(px, py int) (core.Pos, bool) {
	if px < 0 || py < 0 || px >= l.Width || py >= l.BoardHeight {
		return core.Pos{}, false
	}
	cw, ch := l.CellSize()
	p := core.Pos{X: int(float64(px) / cw), Y: int(float64(py) / ch)}
	if p.X >= l.Cols || p.Y >= l.Rows {
		return core.Pos{}, false
	}
	return p, true
}
