package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NinjaSpatial/outil-vecteur/editor"
	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
)

func dark(c *Canvas, x, y int) bool {
	r, g, b, _ := c.Image().At(x, y).RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestCanvasDrawsPolygon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.preview")
	defer teardown()
	//
	c := NewCanvas(100, 100)
	defer c.Close()
	assert.False(t, dark(c, 50, 50))

	poly, err := glyph.NewPolygon(glyph.Pt(10, 10), glyph.Pt(90, 10), glyph.Pt(90, 90), glyph.Pt(10, 90))
	require.NoError(t, err)
	c.Draw(poly)
	assert.True(t, dark(c, 50, 50))
	assert.False(t, dark(c, 5, 5))

	c.Clear()
	assert.False(t, dark(c, 50, 50))
}

func TestCanvasAsEditorSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.preview")
	defer teardown()
	//
	c := NewCanvas(200, 200)
	defer c.Close()
	ed := editor.New(editor.WithSurface(c), editor.WithSize(200, 200))
	ed.Click(stroke.FillTool, 20, 20)
	ed.Click(stroke.FillTool, 180, 20)
	ed.Click(stroke.FillTool, 100, 180)
	assert.True(t, dark(c, 100, 60))

	ed.Next()
	assert.False(t, dark(c, 100, 60), "switching letters clears the surface")
	ed.Previous()
	assert.True(t, dark(c, 100, 60), "and replays the stored shapes")

	var buf bytes.Buffer
	require.NoError(t, c.PNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.preview")
	defer teardown()
	//
	store := glyph.NewStore()
	store.Set('A', []glyph.Shape{glyph.NewLine(glyph.Pt(0, 0), glyph.Pt(800, 600))})
	curve, err := glyph.NewCurve(glyph.Pt(100, 100), glyph.Pt(400, 500), glyph.Pt(700, 100))
	require.NoError(t, err)
	store.Set('B', []glyph.Shape{curve, glyph.NewDot(glyph.Pt(400, 300))})

	var buf bytes.Buffer
	opt := DefaultSheetOptions()
	require.NoError(t, Sheet(&buf, store, opt))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7*160, img.Bounds().Dx())
	assert.Equal(t, 4*120, img.Bounds().Dy())

	opt.Columns = 0
	assert.Error(t, Sheet(&buf, store, opt))
}
