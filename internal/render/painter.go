//go:build ebiten

package render

import (
	"image/color"

	"life-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of the grid, one pixel per cell, and
// uploads it only when cells changed.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
	dirty   bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: NewPalette(on, off)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Reset repaints every cell from a row-major cell buffer.
func (gp *GridPainter) Reset(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.palette)
	gp.dirty = true
}

// Apply repaints only the listed cells.
func (gp *GridPainter) Apply(changes []core.Change) {
	if applyChanges(gp.buf, gp.w, changes, gp.palette) > 0 {
		gp.dirty = true
	}
}

// Draw uploads pending pixels and draws the grid scaled to the given cell size.
func (gp *GridPainter) Draw(dst *ebiten.Image, cellW, cellH float64) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellW, cellH)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
