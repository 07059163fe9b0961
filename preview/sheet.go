package preview

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/svg"
)

// SheetOptions lays out a contact sheet.
type SheetOptions struct {
	// Width and Height are the size of the surface the glyphs were drawn on.
	Width, Height int
	// Columns is the number of letters per row.
	Columns int
	// CellWidth is the width of one letter cell in pixels, the height follows
	// from the aspect ratio of the surface.
	CellWidth int
	// Labels draws the letter in the corner of each cell.
	Labels bool
}

// DefaultSheetOptions fit the alphabet of an 800x600 surface into 7 columns.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Width:     800,
		Height:    600,
		Columns:   7,
		CellWidth: 160,
		Labels:    true,
	}
}

// Sheet draws all letters of src scaled down into a grid and writes the
// result as PNG to w.
func Sheet(w io.Writer, src svg.Source, opt SheetOptions) error {
	if opt.Width <= 0 || opt.Height <= 0 || opt.Columns <= 0 || opt.CellWidth <= 0 {
		return fmt.Errorf("preview: invalid sheet options %+v", opt)
	}
	scale := float64(opt.CellWidth) / float64(opt.Width)
	cellW := opt.CellWidth
	cellH := int(float64(opt.Height)*scale + 0.5)
	rows := (glyph.LetterCount + opt.Columns - 1) / opt.Columns

	dc := gg.NewContext(opt.Columns*cellW, rows*cellH)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	if opt.Labels {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("preview: loading label font: %w", err)
		}
		defer source.Close()
		dc.SetFont(source.Face(12))
	}

	for i, l := range glyph.Letters() {
		x := float64((i % opt.Columns) * cellW)
		y := float64((i / opt.Columns) * cellH)

		dc.SetRGB(0.8, 0.8, 0.9)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, float64(cellW)-1, float64(cellH)-1)
		if err := dc.Stroke(); err != nil {
			return err
		}

		dc.Push()
		dc.Translate(x, y)
		dc.Scale(scale, scale)
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1 / scale)
		for _, s := range src.Get(l) {
			if err := drawShape(dc, s); err != nil {
				dc.Pop()
				return fmt.Errorf("preview: drawing letter %s: %w", l, err)
			}
		}
		dc.Pop()

		if opt.Labels {
			dc.SetRGB(0.5, 0.2, 0.6)
			dc.DrawString(l.String(), x+4, y+14)
		}
	}
	tracer().Infof("rendered sheet of %d letters", glyph.LetterCount)
	return dc.EncodePNG(w)
}
