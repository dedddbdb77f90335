package physics

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// PaddleZones is the number of equal-width zones the paddle's top edge is
// divided into.
const PaddleZones = 5

// zoneAngles maps a zone number to its outgoing heading. The center zone is
// absent: it mirrors the incoming vertical motion instead.
var zoneAngles = map[int]float64{
	1: 300,
	2: 330,
	4: 30,
	5: 60,
}

// Paddle is the player-controlled obstacle. Balls striking its top edge leave
// at an angle chosen by where they land; any other contact leaves the
// velocity unchanged.
type Paddle struct {
	rect  *geom.Rect
	color core.Color
	step  float64

	// Horizontal playfield bounds the paddle moves between.
	minX, maxX float64
}

// NewPaddle creates a paddle occupying rect that moves step units per move
// between minX and maxX.
func NewPaddle(rect *geom.Rect, color core.Color, step, minX, maxX float64) *Paddle {
	return &Paddle{
		rect:  rect,
		color: color,
		step:  step,
		minX:  minX,
		maxX:  maxX,
	}
}

// CollisionRect returns the paddle's current bounds.
func (p *Paddle) CollisionRect() *geom.Rect {
	return p.rect
}

// Color returns the paddle color.
func (p *Paddle) Color() core.Color {
	return p.color
}

// Zone returns which of the PaddleZones zones x falls in, numbered from 1 at
// the left edge. Values outside 1..PaddleZones mean x is off the top edge.
func (p *Paddle) Zone(x float64) int {
	zoneWidth := p.rect.Width() / PaddleZones
	return int(math.Floor((x-p.rect.Left())/zoneWidth)) + 1
}

// Hit reflects balls that land on the top edge.
func (p *Paddle) Hit(_ *Ball, at geom.Point, v Velocity) Velocity {
	if !p.rect.Edge(geom.EdgeTop).Contains(at) {
		return v
	}

	zone := p.Zone(at.X)
	if zone == 3 {
		return v.FlipY()
	}
	angle, ok := zoneAngles[zone]
	if !ok {
		return v
	}
	speed := math.Sqrt(v.DX*v.DX + v.DY*v.DY)
	return FromAngleAndSpeed(angle, speed)
}

// MoveLeft shifts the paddle left by one step. A paddle already at the left
// bound wraps around to the right bound.
func (p *Paddle) MoveLeft() {
	ul := p.rect.UpperLeft()
	x := ul.X - p.step
	switch {
	case ul.X <= p.minX+geom.Epsilon:
		x = p.maxX - p.rect.Width()
	case x < p.minX:
		x = p.minX
	}
	p.rect.SetUpperLeft(geom.Point{X: x, Y: ul.Y})
}

// MoveRight shifts the paddle right by one step. A paddle already at the
// right bound wraps around to the left bound.
func (p *Paddle) MoveRight() {
	ul := p.rect.UpperLeft()
	x := ul.X + p.step
	switch {
	case ul.X+p.rect.Width() >= p.maxX-geom.Epsilon:
		x = p.minX
	case x+p.rect.Width() > p.maxX:
		x = p.maxX - p.rect.Width()
	}
	p.rect.SetUpperLeft(geom.Point{X: x, Y: ul.Y})
}

// CenterTop returns the midpoint of the top edge.
func (p *Paddle) CenterTop() geom.Point {
	return p.rect.Edge(geom.EdgeTop).Middle()
}

// Draw renders the paddle.
func (p *Paddle) Draw(c Canvas) {
	c.FillRect(p.rect, p.color)
}

// TimePassed does nothing; the driver moves the paddle from input.
func (p *Paddle) TimePassed() {}
