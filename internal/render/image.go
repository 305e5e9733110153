package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"eca/internal/core"

	"github.com/pkg/errors"
)

// Image converts g into an RGBA image with each cell drawn as a scale×scale
// block.
func Image(g *core.ByteGrid, scale int, on, off color.Color) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillBinaryRGBA(src.Pix, g.Cells(), on, off)
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			si := src.PixOffset(x/scale, y/scale)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// WritePNG encodes g as a PNG using the alive/dead palette.
func WritePNG(w io.Writer, g *core.ByteGrid, scale int) error {
	if g.W == 0 || g.H == 0 {
		return errors.New("[WritePNG] cannot encode an empty grid")
	}
	if err := png.Encode(w, Image(g, scale, AliveColor, DeadColor)); err != nil {
		return errors.Wrap(err, "[WritePNG] failed to encode image")
	}
	return nil
}

const (
	asciiAlive = "██"
	asciiDead  = "  "
)

// ASCII draws g as text, two characters per cell so the output stays square.
func ASCII(g *core.ByteGrid) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for _, v := range g.Row(y) {
			if v != 0 {
				sb.WriteString(asciiAlive)
			} else {
				sb.WriteString(asciiDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
