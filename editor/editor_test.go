package editor_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NinjaSpatial/outil-vecteur/editor"
	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
	"github.com/NinjaSpatial/outil-vecteur/svg"
)

// recorder is a surface that remembers what is on it.
type recorder struct {
	shapes []glyph.Shape
	clears int
}

func (r *recorder) Clear() {
	r.shapes = nil
	r.clears++
}

func (r *recorder) Draw(s glyph.Shape) {
	r.shapes = append(r.shapes, s)
}

func equalShapes(t *testing.T, want, got []glyph.Shape) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "shape %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.editor")
	defer teardown()
	//
	surface := &recorder{}
	ed := editor.New(editor.WithSurface(surface))
	require.Equal(t, glyph.Letter('A'), ed.Letter())

	ed.Click(stroke.PointTool, 5, 5)
	ed.Click(stroke.LineTool, 50, 50)
	ed.Click(stroke.CurveTool, 60, 10)
	want := ed.Shapes()
	require.Len(t, want, 3)
	equalShapes(t, want, surface.shapes)

	require.True(t, ed.Next())
	assert.Equal(t, glyph.Letter('B'), ed.Letter())
	assert.Empty(t, ed.Shapes())
	assert.Empty(t, surface.shapes)
	equalShapes(t, want, ed.Store().Get('A'))

	require.True(t, ed.Previous())
	assert.Equal(t, glyph.Letter('A'), ed.Letter())
	equalShapes(t, want, ed.Shapes())
	equalShapes(t, want, surface.shapes)
}

func TestNavigationAbandonsGesture(t *testing.T) {
	ed := editor.New()
	ed.Click(stroke.FillTool, 0, 0)
	ed.Click(stroke.FillTool, 10, 0)
	ed.Next()
	ed.Previous()
	_, ok := ed.Click(stroke.FillTool, 10, 10)
	assert.False(t, ok, "clicks do not survive a letter switch")
	assert.Equal(t, stroke.AccumulatingPolygon, ed.Gesture().State)
}

func TestNavigationBounds(t *testing.T) {
	surface := &recorder{}
	ed := editor.New(editor.WithSurface(surface))
	ed.Click(stroke.PointTool, 1, 1)
	clears := surface.clears

	assert.False(t, ed.Previous())
	assert.Equal(t, glyph.Letter('A'), ed.Letter())
	assert.Len(t, ed.Shapes(), 1)
	assert.Equal(t, clears, surface.clears, "no reload at the first letter")

	ed.GoTo('Z')
	assert.False(t, ed.Next())
	assert.Equal(t, glyph.Letter('Z'), ed.Letter())
	assert.Len(t, ed.Store().Get('A'), 1)
}

func TestClearOnlyTouchesActiveLetter(t *testing.T) {
	surface := &recorder{}
	ed := editor.New(editor.WithSurface(surface))
	ed.Click(stroke.LineTool, 0, 0)
	ed.Click(stroke.LineTool, 10, 10)
	ed.Next()
	ed.Click(stroke.PointTool, 3, 3)
	require.Equal(t, glyph.Letter('B'), ed.Letter())

	ed.Clear()
	assert.Empty(t, ed.Shapes())
	assert.Empty(t, surface.shapes)
	assert.Empty(t, ed.Gesture().Points)
	assert.Len(t, ed.Store().Get('A'), 1)

	ed.Previous()
	assert.Len(t, ed.Shapes(), 1)
	assert.Empty(t, ed.Store().Get('B'))
}

func TestGoToAndCopyFrom(t *testing.T) {
	ed := editor.New(editor.StartAt('K'))
	require.Equal(t, glyph.Letter('K'), ed.Letter())
	ed.Click(stroke.PointTool, 1, 1)
	ed.Click(stroke.PointTool, 2, 2)

	ed.GoTo('M')
	assert.Equal(t, glyph.Letter('M'), ed.Letter())
	assert.Equal(t, 2, ed.Store().Len('K'))

	ed.CopyFrom('K')
	assert.Len(t, ed.Shapes(), 2)
	assert.Equal(t, 0, ed.Store().Len('M'), "copy is not committed before a flush")
	ed.Flush()
	assert.Equal(t, 2, ed.Store().Len('M'))
	assert.Panics(t, func() { ed.GoTo('!') })
}

func TestExportIncludesActiveLetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.editor")
	defer teardown()
	//
	ed := editor.New(editor.WithSize(640, 480))
	ed.Click(stroke.LineTool, 0, 0)
	ed.Click(stroke.LineTool, 10, 10)
	doc := ed.Export()
	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480">`))
	assert.Contains(t, doc, "<!-- Lettre A -->\n"+`<line x1="0" y1="0" x2="10" y2="10" stroke="black" />`)
	assert.Equal(t, 26, strings.Count(doc, "<!-- Lettre "))
	assert.Equal(t, 1, ed.Store().Len('A'))
	assert.Equal(t, ed.Export(), doc, "export is a pure read")
}

func TestExportSmoothOption(t *testing.T) {
	ed := editor.New(editor.WithSVGOptions(svg.SmoothCurves()))
	ed.Click(stroke.CurveTool, 0, 0)
	ed.Click(stroke.CurveTool, 10, 10)
	ed.Click(stroke.CurveTool, 20, 0)
	assert.Contains(t, ed.Export(), `<path d="M0,0 Q10,10 20,0"`)
}

func TestStrictGestures(t *testing.T) {
	ed := editor.New(editor.WithStrictGestures())
	ed.Click(stroke.PointTool, 0, 0)
	_, ok := ed.Click(stroke.LineTool, 10, 10)
	assert.False(t, ok)
}
