package breakout

import (
	"context"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
	"github.com/vovakirdan/tui-bricks/internal/physics"
)

// Autopilot picks the input for the next tick: it launches served balls and
// keeps the paddle under the lowest ball that is falling. It never moves
// the paddle into a wall, so the paddle does not wrap around.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.state {
	case StateGameOver, StateWin:
		return in
	case StateServe:
		in.Set(core.ActionJump)
		return in
	}

	target := g.lowestFallingBall()
	if target == nil {
		return in
	}

	// Aim for the three middle zones, away from the steep outer bounces
	paddle := g.paddle.CollisionRect()
	zones := paddle.Edge(geom.EdgeTop).Zones(physics.PaddleZones)
	from, to := zones[1].Start.X, zones[len(zones)-2].End.X
	x := target.Center().X
	border := g.cfg.World.Border

	switch {
	case x < from && paddle.Left() > border:
		in.Set(core.ActionLeft)
	case x > to && paddle.Right() < g.cfg.World.Width-border:
		in.Set(core.ActionRight)
	}
	return in
}

// lowestFallingBall returns the ball closest to the paddle that moves
// down, or the lowest ball when none does.
func (g *Game) lowestFallingBall() *physics.Ball {
	var lowest, falling *physics.Ball
	for _, b := range g.balls {
		if lowest == nil || b.Center().Y > lowest.Center().Y {
			lowest = b
		}
		if b.Velocity().DY > 0 && (falling == nil || b.Center().Y > falling.Center().Y) {
			falling = b
		}
	}
	if falling != nil {
		return falling
	}
	return lowest
}

// RunAutopilot steps g under Autopilot until the game ends or maxSteps ticks
// have run. It returns the number of steps taken. The context is checked
// every 1000 steps.
func RunAutopilot(ctx context.Context, g *Game, maxSteps int) (int, error) {
	for step := range maxSteps {
		if step%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return step, err
			}
		}
		if g.Step(Autopilot(g)).State.GameOver {
			return step + 1, nil
		}
	}
	return maxSteps, nil
}
