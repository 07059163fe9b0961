package script_test

import (
	"errors"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NinjaSpatial/outil-vecteur/editor"
	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/script"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
)

const letterAB = `
# A: two connected lines
tool line
click 10 10
click 50 50
click 90 10

next
tool fill    # B: a triangle
click 0 0
click 10 0
click 10 10
click 0 10   # starts a new polygon
export font.svg
`

func TestRunScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.script")
	defer teardown()
	//
	ed := editor.New()
	out := script.Memory{}
	require.NoError(t, script.Run(strings.NewReader(letterAB), ed, out))

	assert.Equal(t, glyph.Letter('B'), ed.Letter())
	assert.Equal(t, 2, ed.Store().Len('A'))
	assert.Equal(t, 1, ed.Store().Len('B'))
	assert.Equal(t, stroke.AccumulatingPolygon, ed.Gesture().State)

	doc := out.String("font.svg")
	assert.Contains(t, doc, `<line x1="10" y1="10" x2="50" y2="50" stroke="black" />`)
	assert.Contains(t, doc, `<line x1="50" y1="50" x2="90" y2="10" stroke="black" />`)
	assert.Contains(t, doc, `<polygon points="0,0 10,0 10,10" fill="black" />`)
	assert.Equal(t, ed.Export(), doc)
}

func TestRunNavigationCommands(t *testing.T) {
	ed := editor.New()
	r := script.NewRunner(ed, script.Memory{})
	for _, line := range []string{
		"click 5 5",
		"goto D",
		"copy a",
		"click 6 6",
		"prev",
		"clear",
		"next",
	} {
		require.NoError(t, r.Exec(line), line)
	}
	assert.Equal(t, glyph.Letter('D'), ed.Letter())
	assert.Len(t, ed.Shapes(), 2)
	assert.Equal(t, 1, ed.Store().Len('A'))
	assert.Equal(t, 0, ed.Store().Len('C'))
	assert.Equal(t, stroke.PointTool, r.Tool())
}

func TestRunErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.script")
	defer teardown()
	//
	for input, want := range map[string]error{
		"click 1 1\njump":       script.ErrUnknownCommand,
		"tool\n":                script.ErrArguments,
		"tool spray":            script.ErrArguments,
		"click 1":               script.ErrArguments,
		"click x 1":             script.ErrArguments,
		"click NaN 5":           script.ErrArguments,
		"click 5 +Inf":          script.ErrArguments,
		"click 900 10":          script.ErrArguments,
		"click 10 -1":           script.ErrArguments,
		"click 1e9 40":          script.ErrArguments,
		"goto 9":                script.ErrArguments,
		"next now":              script.ErrArguments,
		"export":                script.ErrArguments,
		"\n\n# fine\npreview\n": script.ErrArguments,
	} {
		err := script.Run(strings.NewReader(input), editor.New(), script.Memory{})
		require.Error(t, err, input)
		assert.ErrorIs(t, err, want, input)
		var serr *script.Error
		require.True(t, errors.As(err, &serr), input)
		assert.Equal(t, strings.Count(strings.TrimRight(input, "\n"), "\n")+1, serr.Line, input)
	}
}

func TestClickOutsideSurfaceAddsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphs.script")
	defer teardown()
	//
	ed := editor.New()
	out := script.Memory{}
	err := script.Run(strings.NewReader("click NaN 5\nexport a.svg"), ed, out)
	require.ErrorIs(t, err, script.ErrArguments)
	assert.Empty(t, ed.Shapes())
	assert.Empty(t, ed.Gesture().Points)

	require.NoError(t, script.Run(strings.NewReader("click 799.5 599.5\nexport a.svg"), ed, out))
	assert.Contains(t, out.String("a.svg"), `<circle cx="799.5" cy="599.5" r="2" fill="black" />`)
	assert.NotContains(t, out.String("a.svg"), "NaN")
}

type brokenSink struct{}

func (brokenSink) Create(string) (io.WriteCloser, error) {
	return nil, errors.New("read-only file system")
}

func TestExportSinkFailure(t *testing.T) {
	ed := editor.New()
	ed.Click(stroke.PointTool, 1, 1)
	err := script.Run(strings.NewReader("export x.svg"), ed, brokenSink{})
	assert.ErrorContains(t, err, "read-only file system")
	assert.Equal(t, 1, ed.Store().Len('A'), "the store is unaffected by sink failure")
}

func TestPreviewCommand(t *testing.T) {
	ed := editor.New()
	out := script.Memory{}
	require.NoError(t, script.Run(strings.NewReader("tool fill\nclick 0 0\nclick 799 0\nclick 400 599\npreview a.png"), ed, out))
	img, err := png.Decode(strings.NewReader(out.String("a.png")))
	require.NoError(t, err)
	assert.Equal(t, 7*160, img.Bounds().Dx())
}

func TestExampleScript(t *testing.T) {
	f, err := os.Open("../examples/hi.script")
	require.NoError(t, err)
	defer f.Close()

	ed := editor.New()
	out := script.Memory{}
	require.NoError(t, script.Run(f, ed, out))
	ed.Flush()
	assert.Equal(t, 5, ed.Store().Len('H'))
	assert.Equal(t, 2, ed.Store().Len('I'))
	assert.Equal(t, glyph.Letter('I'), ed.Letter())
}
