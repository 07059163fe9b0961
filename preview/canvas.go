// Package preview renders glyphs to raster images with gogpu/gg: a drawing
// surface for the editor and a contact sheet of the whole alphabet.
package preview

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
)

// tracer traces with key 'glyphs.preview'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.preview")
}

// Canvas is an editor surface backed by a gg context: black ink on white.
type Canvas struct {
	dc        *gg.Context
	lineWidth float64
}

// NewCanvas returns a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		dc:        gg.NewContext(width, height),
		lineWidth: 1,
	}
	c.Clear()
	return c
}

// Clear paints the whole canvas white.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(gg.White)
}

// Draw paints s onto the canvas.
func (c *Canvas) Draw(s glyph.Shape) {
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(c.lineWidth)
	if err := drawShape(c.dc, s); err != nil {
		tracer().Errorf("drawing %v: %v", s, err)
	}
}

// Image returns the pixels of the canvas.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// PNG encodes the canvas as PNG.
func (c *Canvas) PNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

// drawShape adds s to the path of dc and fills or strokes it, using the
// current color and transformation of dc.
func drawShape(dc *gg.Context, s glyph.Shape) error {
	switch s.Kind() {
	case glyph.Dot:
		p := s.At(0)
		dc.DrawCircle(p.X, p.Y, glyph.DotRadius)
		return dc.Fill()
	case glyph.Line:
		a, b := s.At(0), s.At(1)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		return dc.Stroke()
	case glyph.Curve:
		segs := glyph.Smooth(s.Points())
		dc.MoveTo(segs[0].From.X, segs[0].From.Y)
		for _, q := range segs {
			dc.QuadraticTo(q.Ctrl.X, q.Ctrl.Y, q.To.X, q.To.Y)
		}
		return dc.Stroke()
	case glyph.Polygon:
		p := s.At(0)
		dc.MoveTo(p.X, p.Y)
		for i := 1; i < s.Len(); i++ {
			p = s.At(i)
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		return dc.Fill()
	default:
		panic("unknown shape kind")
	}
}
