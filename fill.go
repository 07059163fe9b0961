package main

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
)

// span is a horizontal run of pixels from x1 to x2, both inclusive.
type span struct {
	y, x1, x2 int
}

// scanlines rasterizes the polygon into an alpha mask and returns the runs
// of pixels that are at least half covered. The window has no polygon
// fill, so polygons are drawn as horizontal lines.
func scanlines(points []glyph.Point) []span {
	if len(points) < 3 {
		return nil
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	x0, y0 := int(math.Floor(min.X)), int(math.Floor(min.Y))
	w, h := int(math.Ceil(max.X))-x0, int(math.Ceil(max.Y))-y0
	if w <= 0 || h <= 0 {
		return nil
	}

	z := vector.NewRasterizer(w, h)
	at := func(p glyph.Point) (float32, float32) {
		return float32(p.X - float64(x0)), float32(p.Y - float64(y0))
	}
	z.MoveTo(at(points[0]))
	for _, p := range points[1:] {
		z.LineTo(at(p))
	}
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	var spans []span
	for y := 0; y < h; y++ {
		start := -1
		for x := 0; x <= w; x++ {
			in := x < w && mask.AlphaAt(x, y).A >= 0x80
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				spans = append(spans, span{y: y0 + y, x1: x0 + start, x2: x0 + x - 1})
				start = -1
			}
		}
	}
	return spans
}
