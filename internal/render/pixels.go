package render

import (
	"image/color"

	"life-ca/pkg/core"
)

// Palette holds the RGBA bytes used for active and inactive cells.
type Palette struct {
	On  [4]byte
	Off [4]byte
}

// NewPalette converts two colors into a Palette.
func NewPalette(on, off color.Color) Palette {
	return Palette{On: rgba(on), Off: rgba(off)}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (p Palette) color(state uint8) [4]byte {
	if state != 0 {
		return p.On
	}
	return p.Off
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.color(c)
		copy(buf[i*4:i*4+4], col[:])
	}
}

// applyChanges rewrites only the pixels of changed cells. w is the grid width
// in cells; changes outside the buffer are skipped.
func applyChanges(buf []byte, w int, changes []core.Change, p Palette) int {
	n := 0
	for _, ch := range changes {
		if ch.Pos.X < 0 || ch.Pos.X >= w || ch.Pos.Y < 0 {
			continue
		}
		base := (ch.Pos.Y*w + ch.Pos.X) * 4
		if base+4 > len(buf) {
			continue
		}
		col := p.color(ch.State)
		copy(buf[base:base+4], col[:])
		n++
	}
	return n
}
