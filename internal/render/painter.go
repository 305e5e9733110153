//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Upload copies cells into the painter image. Call it after the grid changes.
func (gp *GridPainter) Upload(cells []uint8, on, off color.Color) {
	if gp.img == nil || len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)
}

// Draw renders the last uploaded grid through the camera.
func (gp *GridPainter) Draw(dst *ebiten.Image, cam *Camera) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cam.CellSize, cam.CellSize)
	op.GeoM.Translate(cam.OriginX, cam.OriginY)
	dst.DrawImage(gp.img, op)
}
