// Package geom provides the floating-point geometry used by the collision
// engine: points, line segments and axis-aligned rectangles.
//
// All comparisons go through ApproxEqual so that values produced by repeated
// geometric construction still classify onto the edges they were computed
// from.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used by every geometric comparison.
const Epsilon = 1e-6

// ApproxEqual reports whether a and b differ by at most Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports whether both coordinates are within Epsilon of other's.
func (p Point) Equals(other Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
