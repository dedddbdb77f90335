// Package physics implements the collision engine: moving balls that query an
// Environment of rectangular obstacles once per step, back off just short of
// the first obstacle on their path, and take the velocity the obstacle
// returns.
//
// The package is single-threaded by construction. An Environment holds no
// locks; the driver must not mutate it concurrently with a Ball.Step.
package physics

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// ErrZeroVelocity is returned when an angle is requested from a velocity
// with no magnitude.
var ErrZeroVelocity = errors.New("physics: angle of a zero velocity is undefined")

// Velocity is a displacement per simulation step.
type Velocity struct {
	DX, DY float64
}

// NewVelocity creates a velocity from its components.
func NewVelocity(dx, dy float64) Velocity {
	return Velocity{DX: dx, DY: dy}
}

// FromAngleAndSpeed builds a velocity from a heading in degrees and a speed.
// 0° points straight up and angles grow clockwise, so 90° is to the right.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := angle * math.Pi / 180
	return Velocity{
		DX: math.Sin(rad) * speed,
		DY: -math.Cos(rad) * speed,
	}
}

// RandomVelocity returns a velocity with the given speed and a uniformly
// random heading.
func RandomVelocity(rng *rand.Rand, speed float64) Velocity {
	return FromAngleAndSpeed(rng.Float64()*360, speed)
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// Angle returns the heading in degrees in [0, 360), using the same
// convention as FromAngleAndSpeed.
func (v Velocity) Angle() (float64, error) {
	if v.DX == 0 && v.DY == 0 {
		return 0, ErrZeroVelocity
	}
	deg := math.Atan2(v.DX, -v.DY) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

// IsZero reports whether both components are within tolerance of zero.
func (v Velocity) IsZero() bool {
	return geom.ApproxEqual(v.DX, 0) && geom.ApproxEqual(v.DY, 0)
}

// Equals compares components with the geometry tolerance.
func (v Velocity) Equals(other Velocity) bool {
	return geom.ApproxEqual(v.DX, other.DX) && geom.ApproxEqual(v.DY, other.DY)
}

// FlipX negates the horizontal component.
func (v Velocity) FlipX() Velocity {
	return Velocity{DX: -v.DX, DY: v.DY}
}

// FlipY negates the vertical component.
func (v Velocity) FlipY() Velocity {
	return Velocity{DX: v.DX, DY: -v.DY}
}

// ApplyToPoint returns p moved by one step of v.
func (v Velocity) ApplyToPoint(p geom.Point) geom.Point {
	return geom.Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

func (v Velocity) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.DX, v.DY)
}
