package glyph

import (
	"errors"
	"fmt"
)

// DotRadius is the radius a Dot is drawn and exported with.
const DotRadius = 2.0

// ErrPointCount is returned when a shape is built from the wrong number of
// points for its kind.
var ErrPointCount = errors.New("wrong number of points for shape")

// Point is a coordinate on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Mid returns the point half way between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Kind tells which primitive a Shape is.
type Kind byte

const (
	Dot Kind = iota
	Line
	Curve
	Polygon
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "dot"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case Polygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// minPoints and maxPoints give the allowed number of points per kind, a max
// of 0 means unbounded.
func (k Kind) minPoints() int {
	switch k {
	case Dot:
		return 1
	case Line:
		return 2
	default:
		return 3
	}
}

func (k Kind) maxPoints() int {
	switch k {
	case Dot:
		return 1
	case Line:
		return 2
	default:
		return 0
	}
}

// Shape is one drawn primitive. Shapes are values, the points are copied in
// and out so a Shape never changes after it was built.
type Shape struct {
	kind   Kind
	points []Point
}

// NewDot returns a Dot at p.
func NewDot(p Point) Shape {
	return Shape{kind: Dot, points: []Point{p}}
}

// NewLine returns a straight Line from a to b.
func NewLine(a, b Point) Shape {
	return Shape{kind: Line, points: []Point{a, b}}
}

// NewCurve returns a smoothed polyline through at least 3 points.
func NewCurve(points ...Point) (Shape, error) {
	return New(Curve, points...)
}

// NewPolygon returns a closed, filled region over at least 3 points.
func NewPolygon(points ...Point) (Shape, error) {
	return New(Polygon, points...)
}

// New builds a shape of the given kind, checking the point count.
func New(kind Kind, points ...Point) (Shape, error) {
	if kind > Polygon {
		return Shape{}, fmt.Errorf("glyph: unknown shape kind %d", kind)
	}
	n := len(points)
	if n < kind.minPoints() || (kind.maxPoints() > 0 && n > kind.maxPoints()) {
		return Shape{}, fmt.Errorf("glyph: %s with %d points: %w", kind, n, ErrPointCount)
	}
	return Shape{kind: kind, points: append([]Point(nil), points...)}, nil
}

func (s Shape) Kind() Kind {
	return s.kind
}

// Points returns a copy of the shape's points in stored order.
func (s Shape) Points() []Point {
	return append([]Point(nil), s.points...)
}

// Len is the number of points in the shape.
func (s Shape) Len() int {
	return len(s.points)
}

// At returns the i'th point.
func (s Shape) At(i int) Point {
	return s.points[i]
}

// Bounds returns the bounding box of the shape. A Dot has the box of the
// circle it is drawn as, centred on its point.
func (s Shape) Bounds() (min, max Point) {
	if len(s.points) == 0 {
		return
	}
	if s.kind == Dot {
		p := s.points[0]
		return Pt(p.X-DotRadius, p.Y-DotRadius), Pt(p.X+DotRadius, p.Y+DotRadius)
	}
	min, max = s.points[0], s.points[0]
	for _, p := range s.points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}

// Equal reports whether both shapes have the same kind and the same points
// in the same order.
func (s Shape) Equal(t Shape) bool {
	if s.kind != t.kind || len(s.points) != len(t.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != t.points[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	return fmt.Sprintf("%s%v", s.kind, s.points)
}
