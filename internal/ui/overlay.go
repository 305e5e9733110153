//go:build ebiten

package ui

import (
	"image/color"

	"eca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayLeft   = 10
	overlayTop    = 10
	lineHeight    = 16
	titleBaseline = 13
)

var (
	titleColor = color.RGBA{R: 255, G: 128, B: 128, A: 255}
	textColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 180}
)

// Overlay draws the current rule and settings over the grid.
type Overlay struct {
	sim      core.Sim
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, showHelp: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// ToggleHelp shows or hides the key reference.
func (o *Overlay) ToggleHelp() { o.showHelp = !o.showHelp }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	lines := StatusLines(provider.Parameters(), o.showHelp)
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	o.drawPanel(screen, overlayLeft-4, overlayTop-4, width+8, len(lines)*lineHeight+6)
	for i, line := range lines {
		col := textColor
		if i == 0 {
			col = titleColor
		}
		text.Draw(screen, line, face, overlayLeft, overlayTop+titleBaseline+i*lineHeight, col)
	}
}

func (o *Overlay) drawPanel(screen *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(panelColor)
	screen.DrawImage(o.pixel, op)
}
