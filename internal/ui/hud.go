//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the scoreboard strip below the grid.
type HUD struct {
	top    int
	width  int
	height int
	info   Info
}

// NewHUD constructs a HUD occupying the strip [top, top+height).
func NewHUD(top, width, height int) *HUD {
	return &HUD{top: top, width: width, height: height}
}

// Update stores the values to show on the next Draw.
func (h *HUD) Update(info Info) {
	if h == nil {
		return
	}
	h.info = info
}

// Draw paints the strip and its text.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.height <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, float32(h.top), float32(h.width), float32(h.height), color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)
	face := basicfont.Face7x13
	y := h.top + panelPadding + headerBaseline
	for i, line := range StatusLines(h.info) {
		if y > h.top+h.height {
			break
		}
		c := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 2 {
			c = color.RGBA{R: 240, G: 180, B: 90, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, y, c)
		y += lineHeight
	}
}

const (
	panelPadding   = 8
	lineHeight     = 18
	headerBaseline = 6
)
