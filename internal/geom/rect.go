package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a rectangle is built with a non-positive
// width or height.
var ErrInvalidSize = errors.New("geom: rectangle width and height must be positive")

// Edge names one side of a rectangle.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle anchored at its upper-left corner.
// The y axis grows downward. Width and height are fixed at construction;
// moving obstacles relocate by replacing the upper-left corner.
type Rect struct {
	upperLeft Point
	width     float64
	height    float64
}

// NewRect creates a rectangle. Width and height must both be positive.
func NewRect(upperLeft Point, width, height float64) (*Rect, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %gx%g", ErrInvalidSize, width, height)
	}
	return &Rect{upperLeft: upperLeft, width: width, height: height}, nil
}

// MustRect is like NewRect but panics on invalid dimensions.
// Intended for fixed layouts whose sizes are known to be valid.
func MustRect(x, y, width, height float64) *Rect {
	r, err := NewRect(Point{X: x, Y: y}, width, height)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rect) UpperLeft() Point { return r.upperLeft }
func (r *Rect) Width() float64   { return r.width }
func (r *Rect) Height() float64  { return r.height }

// SetUpperLeft moves the rectangle without changing its size.
func (r *Rect) SetUpperLeft(p Point) {
	r.upperLeft = p
}

// Left returns the x-coordinate of the left edge.
func (r *Rect) Left() float64 { return r.upperLeft.X }

// Right returns the x-coordinate of the right edge.
func (r *Rect) Right() float64 { return r.upperLeft.X + r.width }

// Top returns the y-coordinate of the top edge.
func (r *Rect) Top() float64 { return r.upperLeft.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r *Rect) Bottom() float64 { return r.upperLeft.Y + r.height }

func (r *Rect) UpperRight() Point  { return Point{X: r.Right(), Y: r.Top()} }
func (r *Rect) BottomLeft() Point  { return Point{X: r.Left(), Y: r.Bottom()} }
func (r *Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the center point of the rectangle.
func (r *Rect) Center() Point {
	return Point{X: r.upperLeft.X + r.width/2, Y: r.upperLeft.Y + r.height/2}
}

// Edge returns the boundary segment for the given side.
func (r *Rect) Edge(e Edge) Line {
	switch e {
	case EdgeTop:
		return Line{Start: r.upperLeft, End: r.UpperRight()}
	case EdgeBottom:
		return Line{Start: r.BottomLeft(), End: r.BottomRight()}
	case EdgeLeft:
		return Line{Start: r.upperLeft, End: r.BottomLeft()}
	default:
		return Line{Start: r.UpperRight(), End: r.BottomRight()}
	}
}

// Edges returns the boundary in top, bottom, left, right order.
func (r *Rect) Edges() [4]Line {
	return [4]Line{
		r.Edge(EdgeTop),
		r.Edge(EdgeBottom),
		r.Edge(EdgeLeft),
		r.Edge(EdgeRight),
	}
}

// IntersectionPoints collects every crossing of line with the four edges.
// Each edge is tested independently, so a line through a corner yields the
// same point twice.
func (r *Rect) IntersectionPoints(line Line) []Point {
	var points []Point
	for _, edge := range r.Edges() {
		if p, ok := edge.IntersectionWith(line); ok {
			points = append(points, p)
		}
	}
	return points
}

// EdgesAt returns every edge whose bounding box contains p.
// More than one edge matches at a corner.
func (r *Rect) EdgesAt(p Point) []Edge {
	var edges []Edge
	for i, edge := range r.Edges() {
		if edge.Contains(p) {
			edges = append(edges, Edge(i))
		}
	}
	return edges
}

// OnBoundary reports whether p lies on any edge.
func (r *Rect) OnBoundary(p Point) bool {
	return len(r.EdgesAt(p)) > 0
}

// ContainsStrict reports whether p lies strictly inside the rectangle,
// further than Epsilon from every edge.
func (r *Rect) ContainsStrict(p Point) bool {
	return p.X > r.Left()+Epsilon && p.X < r.Right()-Epsilon &&
		p.Y > r.Top()+Epsilon && p.Y < r.Bottom()-Epsilon
}

func (r *Rect) String() string {
	return fmt.Sprintf("rect%s %gx%g", r.upperLeft, r.width, r.height)
}
