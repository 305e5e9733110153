package render

import "math"

const (
	// ZoomStep is the per-tick cell size multiplier for keyboard zoom.
	ZoomStep = 1.02
	// MinCellSize and MaxCellSize bound the on-screen size of a cell in pixels.
	MinCellSize = 1.0
	MaxCellSize = 100.0
)

// Camera maps grid cells to window pixels. OriginX/OriginY is the screen
// position of the top-left corner of cell (0, 0).
type Camera struct {
	CellSize float64
	OriginX  float64
	OriginY  float64

	cells        int
	winW, winH   int
	hasWinExtent bool
}

// NewCamera frames a grid of cells×cells in a winW×winH window. The grid is
// twice as wide as the window with its middle column at the centre of the top
// edge, which is where the pattern of a single-cell seed grows from.
func NewCamera(cells, winW, winH int) *Camera {
	c := &Camera{cells: cells}
	c.frame(winW, winH)
	return c
}

func (c *Camera) frame(winW, winH int) {
	c.winW, c.winH = winW, winH
	c.hasWinExtent = winW > 0 && winH > 0
	if c.cells <= 0 || winW <= 0 {
		c.CellSize = MinCellSize
		return
	}
	c.CellSize = clampCellSize(2 * float64(winW) / float64(c.cells))
	c.OriginX = float64(winW)/2 - float64(c.cells/2)*c.CellSize
	c.OriginY = 0
}

// Window returns the window size the camera is framed for.
func (c *Camera) Window() (int, int) { return c.winW, c.winH }

// Pan moves the grid by the given number of half cells.
func (c *Camera) Pan(dx, dy float64) {
	c.OriginX += dx * 0.5 * c.CellSize
	c.OriginY += dy * 0.5 * c.CellSize
}

// Zoom scales the grid by m about the screen point (cx, cy). If the cell size
// hits a bound it is clamped and the grid is left in place. Reports whether the
// view moved.
func (c *Camera) Zoom(m, cx, cy float64) bool {
	if m <= 0 {
		return false
	}
	size := c.CellSize * m
	if size > MaxCellSize || size < MinCellSize {
		c.CellSize = clampCellSize(size)
		return false
	}
	c.CellSize = size
	c.OriginX = (c.OriginX-cx)*m + cx
	c.OriginY = (c.OriginY-cy)*m + cy
	return true
}

// ZoomCenter zooms about the middle of the window.
func (c *Camera) ZoomCenter(m float64) bool {
	return c.Zoom(m, float64(c.winW)/2, float64(c.winH)/2)
}

// Resize follows a window size change. Cells scale with the window width about
// the top edge and the grid stays horizontally centred.
func (c *Camera) Resize(winW, winH int) {
	if winW == c.winW && winH == c.winH {
		return
	}
	if !c.hasWinExtent {
		c.frame(winW, winH)
		return
	}
	if winW > 0 {
		m := float64(winW) / float64(c.winW)
		c.Zoom(m, float64(c.winW)/2, 0)
		c.OriginX += float64(winW-c.winW) / 2
	}
	c.winW, c.winH = winW, winH
	c.hasWinExtent = winW > 0 && winH > 0
}

// CellAt returns the grid cell under screen point (x, y).
func (c *Camera) CellAt(x, y float64) (int, int, bool) {
	if c.CellSize <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor((x - c.OriginX) / c.CellSize))
	cy := int(math.Floor((y - c.OriginY) / c.CellSize))
	if cx < 0 || cy < 0 || cx >= c.cells || cy >= c.cells {
		return cx, cy, false
	}
	return cx, cy, true
}

func clampCellSize(v float64) float64 {
	if v < MinCellSize {
		return MinCellSize
	}
	if v > MaxCellSize {
		return MaxCellSize
	}
	return v
}
