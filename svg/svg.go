// Package svg writes the glyphs of all letters into one SVG document.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
)

// tracer traces with key 'glyphs.svg'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.svg")
}

// Source gives the shapes of a letter. *glyph.Store implements it.
type Source interface {
	Get(glyph.Letter) []glyph.Shape
}

// Exporter turns a Source into SVG text.
type Exporter struct {
	width, height int
	comment       string
	smooth        bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithSize sets the width and height attributes of the root element.
func WithSize(width, height int) Option {
	return func(e *Exporter) {
		e.width, e.height = width, height
	}
}

// WithComment sets the format of the comment written before each letter,
// it gets the letter as its only argument.
func WithComment(format string) Option {
	return func(e *Exporter) {
		e.comment = format
	}
}

// SmoothCurves writes curves as quadratic paths instead of polylines.
func SmoothCurves() Option {
	return func(e *Exporter) {
		e.smooth = true
	}
}

// New returns an exporter for an 800x600 surface.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		width:   800,
		height:  600,
		comment: "Lettre %s",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render returns the document for all letters of src.
func (e *Exporter) Render(src Source) string {
	var b strings.Builder
	_ = e.Write(&b, src)
	return b.String()
}

// Write writes the document for all letters of src to w. The document has
// one comment per letter, followed by that letter's shapes in drawing
// order.
func (e *Exporter) Write(w io.Writer, src Source) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, e.width, e.height)
	n := 0
	for _, l := range glyph.Letters() {
		bw.WriteString("\n<!-- ")
		fmt.Fprintf(bw, e.comment, l)
		bw.WriteString(" -->")
		for _, s := range src.Get(l) {
			bw.WriteByte('\n')
			e.writeShape(bw, s)
			n++
		}
	}
	bw.WriteString("\n</svg>")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("writing svg: %v", err)
		return err
	}
	tracer().Infof("exported %d shapes", n)
	return nil
}

func (e *Exporter) writeShape(w *bufio.Writer, s glyph.Shape) {
	switch s.Kind() {
	case glyph.Dot:
		min, max := s.Bounds()
		c := min.Mid(max)
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="black" />`, num(c.X), num(c.Y), num(glyph.DotRadius))
	case glyph.Line:
		a, b := s.At(0), s.At(1)
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" />`, num(a.X), num(a.Y), num(b.X), num(b.Y))
	case glyph.Curve:
		if e.smooth {
			fmt.Fprintf(w, `<path d="%s" fill="none" stroke="black" />`, pathData(s.Points()))
		} else {
			fmt.Fprintf(w, `<polyline points="%s" fill="none" stroke="black" />`, pointList(s.Points()))
		}
	case glyph.Polygon:
		fmt.Fprintf(w, `<polygon points="%s" fill="black" />`, pointList(s.Points()))
	default:
		panic("unknown shape kind")
	}
}

// pointList formats points as space separated x,y pairs.
func pointList(points []glyph.Point) string {
	pairs := make([]string, len(points))
	for i, p := range points {
		pairs[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(pairs, " ")
}

func pathData(points []glyph.Point) string {
	segs := glyph.Smooth(points)
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M" + num(segs[0].From.X) + "," + num(segs[0].From.Y))
	for _, q := range segs {
		b.WriteString(" Q" + num(q.Ctrl.X) + "," + num(q.Ctrl.Y) + " " + num(q.To.X) + "," + num(q.To.Y))
	}
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
