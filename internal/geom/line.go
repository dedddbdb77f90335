package geom

import "math"

// Line is a bounded segment from Start to End.
type Line struct {
	Start, End Point
}

// NewLine creates a segment between two coordinate pairs.
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Point {
	return Point{
		X: (l.Start.X + l.End.X) / 2,
		Y: (l.Start.Y + l.End.Y) / 2,
	}
}

// Equals reports whether both segments have the same endpoint set,
// regardless of direction.
func (l Line) Equals(other Line) bool {
	return (l.Start.Equals(other.Start) && l.End.Equals(other.End)) ||
		(l.Start.Equals(other.End) && l.End.Equals(other.Start))
}

// IsVertical reports whether the segment has no horizontal extent.
func (l Line) IsVertical() bool {
	return ApproxEqual(l.Start.X, l.End.X)
}

// IsHorizontal reports whether the segment has no vertical extent.
func (l Line) IsHorizontal() bool {
	return ApproxEqual(l.Start.Y, l.End.Y)
}

// Contains reports whether p falls inside the segment's axis-aligned bounding
// box. This is deliberately not a colinearity test: edge classification of
// collision points relies on the looser bounding-box semantics.
func (l Line) Contains(p Point) bool {
	minX := math.Min(l.Start.X, l.End.X)
	maxX := math.Max(l.Start.X, l.End.X)
	minY := math.Min(l.Start.Y, l.End.Y)
	maxY := math.Max(l.Start.Y, l.End.Y)

	return p.X >= minX-Epsilon && p.X <= maxX+Epsilon &&
		p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
}

// slope returns dy/dx. Callers must rule out vertical segments first.
func (l Line) slope() float64 {
	return (l.Start.Y - l.End.Y) / (l.Start.X - l.End.X)
}

// yAt evaluates the segment's underlying line at x.
func (l Line) yAt(x float64) float64 {
	if l.IsHorizontal() {
		return l.Start.Y
	}
	return l.Start.Y + l.slope()*(x-l.Start.X)
}

// IntersectionWith returns the single point where the two segments cross.
//
// There is no intersection when both segments are vertical (even if they
// overlap), when the underlying lines are parallel, or when the crossing of
// the infinite lines lies outside either segment's bounding box.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	var p Point

	switch {
	case l.IsVertical() && other.IsVertical():
		return Point{}, false

	case l.IsVertical():
		x := l.Start.X
		p = Point{X: x, Y: other.yAt(x)}

	case other.IsVertical():
		x := other.Start.X
		p = Point{X: x, Y: l.yAt(x)}

	default:
		m1 := l.slope()
		m2 := other.slope()
		if ApproxEqual(m1, m2) {
			return Point{}, false
		}
		b1 := l.Start.Y - m1*l.Start.X
		b2 := other.Start.Y - m2*other.Start.X

		x := (b2 - b1) / (m1 - m2)
		p = Point{X: x, Y: m1*x + b1}
	}

	if !l.Contains(p) || !other.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// IsIntersecting reports whether the segments share exactly one point.
func (l Line) IsIntersecting(other Line) bool {
	_, ok := l.IntersectionWith(other)
	return ok
}

// IsIntersectingBoth reports whether l crosses both a and b. Any pair of
// equal segments among the three yields false.
func (l Line) IsIntersectingBoth(a, b Line) bool {
	if l.Equals(a) || l.Equals(b) || a.Equals(b) {
		return false
	}
	return l.IsIntersecting(a) && l.IsIntersecting(b)
}

// ClosestIntersectionToStart returns the crossing of rect's boundary that is
// nearest to l.Start, or false when l does not cross the boundary at all.
func (l Line) ClosestIntersectionToStart(rect *Rect) (Point, bool) {
	points := rect.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	best := closest.Distance(l.Start)
	for _, p := range points[1:] {
		if d := p.Distance(l.Start); d < best {
			best = d
			closest = p
		}
	}
	return closest, true
}

// Zones splits the segment into n equal-length pieces along its x extent,
// keeping the start's y. Used for horizontal edges only.
func (l Line) Zones(n int) []Line {
	if n <= 0 {
		return nil
	}

	zones := make([]Line, 0, n)
	size := math.Abs(l.End.X-l.Start.X) / float64(n)
	from := l.Start
	for range n {
		to := Point{X: from.X + size, Y: l.Start.Y}
		zones = append(zones, Line{Start: from, End: to})
		from = to
	}
	return zones
}
