package breakout

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Visual characters for rendering
const (
	BlockGlyph = '█'
	BallGlyph  = '●'
)

// screenCanvas maps world units onto a region of the terminal grid.
type screenCanvas struct {
	dst    *core.Screen
	area   core.Rect
	sx, sy float64
}

// newScreenCanvas scales a worldW x worldH world onto area.
func newScreenCanvas(dst *core.Screen, area core.Rect, worldW, worldH float64) *screenCanvas {
	return &screenCanvas{
		dst:  dst,
		area: area,
		sx:   float64(area.W) / worldW,
		sy:   float64(area.H) / worldH,
	}
}

// span converts a world interval to cells. Every non-empty interval covers
// at least one cell.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// FillRect implements physics.Canvas.
func (c *screenCanvas) FillRect(r *geom.Rect, color core.Color) {
	x0, x1 := span(r.Left(), r.Right(), c.sx)
	y0, y1 := span(r.Top(), r.Bottom(), c.sy)
	cells := core.RectFromBounds(c.area.X+x0, c.area.Y+y0, c.area.X+x1, c.area.Y+y1).Clip(c.area)
	c.dst.FillRectColored(cells, BlockGlyph, color)
}

// FillCircle implements physics.Canvas. Balls are smaller than a cell, so
// they occupy the single cell holding their center.
func (c *screenCanvas) FillCircle(center geom.Point, _ float64, color core.Color) {
	x, y := c.cell(center)
	if c.area.Contains(x, y) {
		c.dst.SetColored(x, y, BallGlyph, color)
	}
}

// cell returns the screen cell holding world point p.
func (c *screenCanvas) cell(p geom.Point) (int, int) {
	return c.area.X + int(math.Floor(p.X*c.sx)), c.area.Y + int(math.Floor(p.Y*c.sy))
}
