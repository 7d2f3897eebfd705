//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of the board and patches it from the
// simulation's change lists instead of repainting every frame.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte

	on, off color.Color
}

// NewGridPainter allocates a painter for a size×size board.
func NewGridPainter(size int, on, off color.Color) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size, size),
		buf:  make([]byte, 4*size*size),
		on:   on,
		off:  off,
	}
}

// Full repaints the whole board from v.
func (gp *GridPainter) Full(v core.View) {
	if v.Size() != gp.size {
		return
	}
	FillRGBA(gp.buf, v, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Delta repaints only the flipped cells.
func (gp *GridPainter) Delta(v core.View, flipped []core.Cell) {
	if len(flipped) == 0 || v.Size() != gp.size {
		return
	}
	ApplyFlips(gp.buf, v, flipped, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the cached image onto dst at the given scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the board dimension the painter was built for.
func (gp *GridPainter) Size() int { return gp.size }
