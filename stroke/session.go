package stroke

import (
	"github.com/NinjaSpatial/outil-vecteur/glyph"
)

// GestureState names what a multi-click gesture is waiting for.
type GestureState byte

const (
	Idle GestureState = iota
	AccumulatingLine
	AccumulatingCurve
	AccumulatingPolygon
)

func (g GestureState) String() string {
	switch g {
	case AccumulatingLine:
		return "accumulating line"
	case AccumulatingCurve:
		return "accumulating curve"
	case AccumulatingPolygon:
		return "accumulating polygon"
	default:
		return "idle"
	}
}

// Gesture is the pending part of a multi-click gesture: the point a line
// continues from, the two points a curve continues from, or all points of
// a polygon so far.
type Gesture struct {
	State  GestureState
	Points []glyph.Point
}

// Session collects the shapes of the letter being edited. Clicks are kept
// in a buffer so that lines, curves and polygons can be built from several
// of them. The tool is given with every click, switching tools in the middle
// of a gesture reinterprets the clicks collected so far, unless the session
// was created with ResetOnToolChange.
type Session struct {
	shapes []glyph.Shape
	clicks []glyph.Point
	last   Tool
	strict bool
}

// Option configures a Session.
type Option func(*Session)

// ResetOnToolChange makes a session drop its pending clicks whenever a
// click arrives with a different tool than the one before.
func ResetOnToolChange() Option {
	return func(s *Session) {
		s.strict = true
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Click handles one click at p. If the click completes a shape, the shape is
// appended to the working list and returned with true.
func (s *Session) Click(tool Tool, p glyph.Point) (glyph.Shape, bool) {
	if s.strict && tool != s.last && len(s.clicks) > 0 {
		tracer().Debugf("tool changed %s -> %s, dropping %d clicks", s.last, tool, len(s.clicks))
		s.clicks = nil
	}
	s.last = tool

	var (
		shape glyph.Shape
		ok    bool
		n     = len(s.clicks)
	)
	switch tool {
	case PointTool:
		shape, ok = glyph.NewDot(p), true
		s.clicks = append(s.clicks, p)
	case LineTool:
		if n >= 1 {
			shape, ok = glyph.NewLine(s.clicks[n-1], p), true
		}
		s.clicks = append(s.clicks, p)
	case CurveTool:
		if n >= 2 {
			shape, ok = must(glyph.NewCurve(s.clicks[n-2], s.clicks[n-1], p)), true
		}
		s.clicks = append(s.clicks, p)
	case FillTool:
		s.clicks = append(s.clicks, p)
		if len(s.clicks) >= 3 {
			shape, ok = must(glyph.NewPolygon(s.clicks...)), true
			s.clicks = nil
		}
	default:
		tracer().Errorf("ignoring click with unknown tool %s", tool)
		return glyph.Shape{}, false
	}
	if ok {
		s.shapes = append(s.shapes, shape)
		tracer().Debugf("%s click at %v: %v", tool, p, shape)
	} else {
		tracer().Debugf("%s click at %v: %d clicks pending", tool, p, len(s.clicks))
	}
	return shape, ok
}

// Gesture returns the state of the gesture in progress.
func (s *Session) Gesture() Gesture {
	n := len(s.clicks)
	switch {
	case n == 0:
		return Gesture{State: Idle}
	case s.last == FillTool:
		return Gesture{State: AccumulatingPolygon, Points: s.Pending()}
	case s.last == CurveTool:
		from := n - 2
		if from < 0 {
			from = 0
		}
		return Gesture{State: AccumulatingCurve, Points: append([]glyph.Point(nil), s.clicks[from:]...)}
	default:
		return Gesture{State: AccumulatingLine, Points: []glyph.Point{s.clicks[n-1]}}
	}
}

// Shapes returns a copy of the working list.
func (s *Session) Shapes() []glyph.Shape {
	return append([]glyph.Shape{}, s.shapes...)
}

// Len is the number of shapes in the working list.
func (s *Session) Len() int {
	return len(s.shapes)
}

// Pending returns a copy of the clicks of the gesture in progress.
func (s *Session) Pending() []glyph.Point {
	return append([]glyph.Point(nil), s.clicks...)
}

// Load replaces the working list with shapes and abandons any gesture.
func (s *Session) Load(shapes []glyph.Shape) {
	s.shapes = append([]glyph.Shape(nil), shapes...)
	s.clicks = nil
}

// Abandon drops the pending clicks but keeps the shapes.
func (s *Session) Abandon() {
	s.clicks = nil
}

// Reset clears the working list and the pending clicks.
func (s *Session) Reset() {
	s.shapes = nil
	s.clicks = nil
}

func must(shape glyph.Shape, err error) glyph.Shape {
	if err != nil {
		panic(err)
	}
	return shape
}
