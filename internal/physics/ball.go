package physics

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// BackOffFactor is the share of the distance to a collision point a ball
// travels before reflecting. Stopping short keeps the ball outside the
// obstacle so the next query does not report the same hit.
const BackOffFactor = 0.99

// Ball is a moving circular body. Collisions treat it as its center point.
type Ball struct {
	center   geom.Point
	radius   float64
	color    core.Color
	velocity Velocity
	env      *Environment
}

// NewBall creates a ball that collides against env.
func NewBall(center geom.Point, radius float64, color core.Color, v Velocity, env *Environment) *Ball {
	return &Ball{
		center:   center,
		radius:   radius,
		color:    color,
		velocity: v,
		env:      env,
	}
}

func (b *Ball) Center() geom.Point              { return b.center }
func (b *Ball) SetCenter(p geom.Point)          { b.center = p }
func (b *Ball) Radius() float64                 { return b.radius }
func (b *Ball) Color() core.Color               { return b.color }
func (b *Ball) SetColor(c core.Color)           { b.color = c }
func (b *Ball) Velocity() Velocity              { return b.velocity }
func (b *Ball) SetVelocity(v Velocity)          { b.velocity = v }
func (b *Ball) Environment() *Environment       { return b.env }
func (b *Ball) SetEnvironment(env *Environment) { b.env = env }

// Trajectory returns the segment the ball would cover this step.
func (b *Ball) Trajectory() geom.Line {
	return geom.Line{Start: b.center, End: b.velocity.ApplyToPoint(b.center)}
}

// Step advances the ball by one simulation step.
//
// With nothing in the way the ball moves by its velocity. Otherwise it moves
// BackOffFactor of the way to the first collision point on each axis, takes
// the velocity returned by the struck obstacle, and then moves one full step
// with that velocity.
func (b *Ball) Step() {
	trajectory := b.Trajectory()
	if trajectory.Start.Equals(trajectory.End) {
		return
	}

	if b.env == nil {
		b.center = trajectory.End
		return
	}

	info, ok := b.env.ClosestCollision(trajectory)
	if !ok {
		b.center = trajectory.End
		return
	}

	b.center = backOff(b.center, info.Point)
	b.velocity = info.Object.Hit(b, info.Point, b.velocity)
	b.center = b.velocity.ApplyToPoint(b.center)
}

// backOff moves from toward to by BackOffFactor of the gap, independently on
// each axis.
func backOff(from, to geom.Point) geom.Point {
	return geom.Point{
		X: approach(from.X, to.X),
		Y: approach(from.Y, to.Y),
	}
}

func approach(from, to float64) float64 {
	gap := math.Abs(from-to) * BackOffFactor
	if from > to {
		return from - gap
	}
	return from + gap
}

// Draw renders the ball.
func (b *Ball) Draw(c Canvas) {
	c.FillCircle(b.center, b.radius, b.color)
}

// TimePassed advances the ball by one step.
func (b *Ball) TimePassed() {
	b.Step()
}
