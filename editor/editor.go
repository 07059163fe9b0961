/*
Package editor ties the glyph store, the stroke session and the drawing
surface together. An Editor edits one letter at a time; moving to another
letter commits the shapes of the current one and reloads the shapes of the
new one onto the surface.

An Editor is not safe for concurrent use, UI events are expected to be
handled one after another.
*/
package editor

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
	"github.com/NinjaSpatial/outil-vecteur/svg"
)

// tracer traces with key 'glyphs.editor'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.editor")
}

// Surface is what shapes are drawn onto while editing.
type Surface interface {
	Clear()
	Draw(glyph.Shape)
}

type noSurface struct{}

func (noSurface) Clear()           {}
func (noSurface) Draw(glyph.Shape) {}

// Editor is the editing state of the whole alphabet.
type Editor struct {
	store   *glyph.Store
	session *stroke.Session
	surface Surface
	letter  glyph.Letter

	width, height int
	strict        bool
	svgOpts       []svg.Option
}

// Option configures an Editor.
type Option func(*Editor)

// WithSurface makes the editor draw onto s.
func WithSurface(s Surface) Option {
	return func(e *Editor) {
		if s != nil {
			e.surface = s
		}
	}
}

// WithStore makes the editor work on an existing store.
func WithStore(s *glyph.Store) Option {
	return func(e *Editor) {
		if s != nil {
			e.store = s
		}
	}
}

// WithSize sets the size of the drawing surface, it is used for the size of
// the exported document.
func WithSize(width, height int) Option {
	return func(e *Editor) {
		e.width, e.height = width, height
	}
}

// WithStrictGestures drops pending clicks when the tool changes.
func WithStrictGestures() Option {
	return func(e *Editor) {
		e.strict = true
	}
}

// WithSVGOptions passes options on to the SVG exporter.
func WithSVGOptions(opts ...svg.Option) Option {
	return func(e *Editor) {
		e.svgOpts = append(e.svgOpts, opts...)
	}
}

// StartAt makes l the first active letter instead of 'A'.
func StartAt(l glyph.Letter) Option {
	return func(e *Editor) {
		if l.Valid() {
			e.letter = l
		}
	}
}

// New returns an editor with the first letter active.
func New(opts ...Option) *Editor {
	e := &Editor{
		store:   glyph.NewStore(),
		surface: noSurface{},
		letter:  glyph.First,
		width:   800,
		height:  600,
	}
	for _, opt := range opts {
		opt(e)
	}
	var sessionOpts []stroke.Option
	if e.strict {
		sessionOpts = append(sessionOpts, stroke.ResetOnToolChange())
	}
	e.session = stroke.NewSession(sessionOpts...)
	e.reload()
	return e
}

// Letter is the letter being edited.
func (e *Editor) Letter() glyph.Letter {
	return e.letter
}

// Size is the size of the drawing surface.
func (e *Editor) Size() (width, height int) {
	return e.width, e.height
}

// Store returns the committed glyphs. The active letter is only up to date
// after Flush.
func (e *Editor) Store() *glyph.Store {
	return e.store
}

// Shapes returns the working list of the active letter.
func (e *Editor) Shapes() []glyph.Shape {
	return e.session.Shapes()
}

// Gesture returns the multi-click gesture in progress.
func (e *Editor) Gesture() stroke.Gesture {
	return e.session.Gesture()
}

// Click handles a click at x,y with the given tool. A completed shape is
// drawn onto the surface and returned.
func (e *Editor) Click(tool stroke.Tool, x, y float64) (glyph.Shape, bool) {
	shape, ok := e.session.Click(tool, glyph.Pt(x, y))
	if ok {
		e.surface.Draw(shape)
	}
	return shape, ok
}

// Previous moves to the letter before the active one. It does nothing and
// returns false on the first letter.
func (e *Editor) Previous() bool {
	l, ok := e.letter.Prev()
	if !ok {
		return false
	}
	e.switchTo(l)
	return true
}

// Next moves to the letter after the active one. It does nothing and returns
// false on the last letter.
func (e *Editor) Next() bool {
	l, ok := e.letter.Next()
	if !ok {
		return false
	}
	e.switchTo(l)
	return true
}

// GoTo moves to any letter. Going to the active letter only commits it and
// abandons the gesture in progress.
func (e *Editor) GoTo(l glyph.Letter) {
	if !l.Valid() {
		panic("editor: invalid letter " + l.String())
	}
	e.switchTo(l)
}

// CopyFrom replaces the working list with the committed shapes of another
// letter. The store is not changed until the next flush.
func (e *Editor) CopyFrom(l glyph.Letter) {
	if l == e.letter {
		return
	}
	shapes := e.store.Get(l)
	tracer().Infof("copying %d shapes from %s to %s", len(shapes), l, e.letter)
	e.session.Load(shapes)
	e.redraw(shapes)
}

// Clear removes all shapes of the active letter from the working list and
// the surface. Other letters are not touched.
func (e *Editor) Clear() {
	tracer().Debugf("clearing %s", e.letter)
	e.surface.Clear()
	e.session.Reset()
}

// Flush commits the working list to the store under the active letter.
func (e *Editor) Flush() {
	e.store.Set(e.letter, e.session.Shapes())
}

// Export commits the active letter and returns the SVG document of all
// letters.
func (e *Editor) Export() string {
	var b strings.Builder
	_ = e.WriteSVG(&b)
	return b.String()
}

// WriteSVG commits the active letter and writes the SVG document of all
// letters to w.
func (e *Editor) WriteSVG(w io.Writer) error {
	e.Flush()
	return e.exporter().Write(w, e.store)
}

func (e *Editor) exporter() *svg.Exporter {
	opts := append([]svg.Option{svg.WithSize(e.width, e.height)}, e.svgOpts...)
	return svg.New(opts...)
}

func (e *Editor) switchTo(l glyph.Letter) {
	e.Flush()
	tracer().Infof("letter %s -> %s", e.letter, l)
	e.letter = l
	e.reload()
}

// reload makes the stored shapes of the active letter the working list and
// replays them onto the surface.
func (e *Editor) reload() {
	shapes := e.store.Get(e.letter)
	e.session.Load(shapes)
	e.redraw(shapes)
}

func (e *Editor) redraw(shapes []glyph.Shape) {
	e.surface.Clear()
	for _, s := range shapes {
		e.surface.Draw(s)
	}
}
