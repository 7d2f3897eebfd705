//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line on top of the board. H toggles it.
type Overlay struct {
	hidden bool
	line   string
	shade  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{shade: ebiten.NewImage(1, 1)}
	o.shade.Fill(color.RGBA{A: 0xb0})
	return o
}

// Update handles the visibility key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// SetLine replaces the text shown on the next Draw.
func (o *Overlay) SetLine(s string) { o.line = s }

// Draw renders the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden || o.line == "" {
		return
	}
	face := basicfont.Face7x13
	w := len(o.line)*face.Advance + 8
	h := face.Height + 6

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	screen.DrawImage(o.shade, op)
	text.Draw(screen, o.line, face, 4, face.Ascent+3, color.White)
}
