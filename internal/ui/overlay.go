//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding help on top of the grid.
type Overlay struct {
	show bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles the overlay on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Visible reports whether the help is shown.
func (o *Overlay) Visible() bool { return o.show }

// Draw paints the help box when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	lines := HelpLines()
	w := float32(200)
	h := float32(len(lines)*lineHeight + 2*panelPadding)
	vector.DrawFilledRect(screen, 10, 10, w, h, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	face := basicfont.Face7x13
	y := 10 + panelPadding + 12
	for _, line := range lines {
		text.Draw(screen, line, face, 10+panelPadding, y, color.White)
		y += lineHeight
	}
}
