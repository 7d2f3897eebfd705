package render

import (
	"image/color"

	"torus-life/pkg/core"
)

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// FillRGBA converts the whole board into RGBA pixels in buf.
func FillRGBA(buf []byte, v core.View, on, off color.Color) {
	pOn, pOff := rgba(on), rgba(off)
	for i := 0; i < v.Len(); i++ {
		p := pOff
		if v.At(i) != 0 {
			p = pOn
		}
		copy(buf[i*4:i*4+4], p[:])
	}
}

// Clear paints every pixel of buf with c.
func Clear(buf []byte, c color.Color) {
	p := rgba(c)
	for i := 0; i+4 <= len(buf); i += 4 {
		copy(buf[i:i+4], p[:])
	}
}

// PaintCells paints only the listed cells of a size×size board with c.
// Cells off the board are skipped.
func PaintCells(buf []byte, size int, cells []core.Cell, c color.Color) {
	p := rgba(c)
	sq := core.Square{N: size}
	for _, cell := range cells {
		if !sq.Contains(cell.Col, cell.Row) {
			continue
		}
		base := sq.Index(cell.Col, cell.Row) * 4
		copy(buf[base:base+4], p[:])
	}
}

// ApplyFlips repaints the flipped cells from their current state in v.
func ApplyFlips(buf []byte, v core.View, flipped []core.Cell, on, off color.Color) {
	pOn, pOff := rgba(on), rgba(off)
	sq := core.Square{N: v.Size()}
	for _, cell := range flipped {
		if !sq.Contains(cell.Col, cell.Row) {
			continue
		}
		idx := sq.Index(cell.Col, cell.Row)
		p := pOff
		if v.At(idx) != 0 {
			p = pOn
		}
		copy(buf[idx*4:idx*4+4], p[:])
	}
}
