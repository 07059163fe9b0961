package glyph

// Quad is a quadratic bezier segment from From over control point Ctrl to To.
type Quad struct {
	From, Ctrl, To Point
}

// At evaluates the segment at t in [0,1].
func (q Quad) At(t float64) Point {
	tt := 1.0 - t
	return Point{
		X: tt*tt*q.From.X + 2*tt*t*q.Ctrl.X + t*t*q.To.X,
		Y: tt*tt*q.From.Y + 2*tt*t*q.Ctrl.Y + t*t*q.To.Y,
	}
}

// Smooth turns an open polyline into quadratic segments. The inner points
// become control points and the segments meet at the midpoints between
// them, so the result starts at the first and ends at the last point. Three
// points give exactly one segment with the middle point as control.
// Fewer than three points give no segments.
func Smooth(points []Point) []Quad {
	if len(points) < 3 {
		return nil
	}
	segs := make([]Quad, 0, len(points)-2)
	from := points[0]
	for i := 1; i < len(points)-1; i++ {
		to := points[i].Mid(points[i+1])
		if i == len(points)-2 {
			to = points[i+1]
		}
		segs = append(segs, Quad{From: from, Ctrl: points[i], To: to})
		from = to
	}
	return segs
}
