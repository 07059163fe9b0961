/*
Package script drives an editor from a text file of UI events, one per line:

	# comments and blank lines are ignored
	tool line          select point, line, curve or fill
	click 10 10        click at x, y with the selected tool
	next               next letter
	prev               previous letter
	goto C             jump to a letter
	copy A             copy the shapes of another letter
	clear              clear the active letter
	export out.svg     write the SVG document
	preview out.png    write a PNG contact sheet of all letters

This is the editor without a window, for batch use and for tests.
*/
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/NinjaSpatial/outil-vecteur/editor"
	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/preview"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
)

// tracer traces with key 'glyphs.script'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.script")
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("bad arguments")
)

// Error is a failed script line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Runner executes script commands against an editor.
type Runner struct {
	ed    *editor.Editor
	sink  Sink
	tool  stroke.Tool
	sheet preview.SheetOptions
}

// NewRunner returns a runner with the point tool selected. Exported files go
// to sink.
func NewRunner(ed *editor.Editor, sink Sink) *Runner {
	sheet := preview.DefaultSheetOptions()
	sheet.Width, sheet.Height = ed.Size()
	return &Runner{ed: ed, sink: sink, sheet: sheet}
}

// Select sets the tool used for the following clicks.
func (r *Runner) Select(t stroke.Tool) {
	r.tool = t
}

// Tool is the selected tool.
func (r *Runner) Tool() stroke.Tool {
	return r.tool
}

// Run executes all lines of in. It stops at the first failing line and
// returns an *Error for it.
func Run(in io.Reader, ed *editor.Editor, sink Sink) error {
	return NewRunner(ed, sink).Run(in)
}

// Run executes all lines of in.
func (r *Runner) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		if err := r.Exec(sc.Text()); err != nil {
			tracer().Errorf("line %d: %v", n, err)
			return &Error{Line: n, Err: err}
		}
	}
	return sc.Err()
}

// Exec executes a single command line.
func (r *Runner) Exec(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(f[0]), f[1:]
	switch cmd {
	case "tool":
		if len(args) != 1 {
			return argErr(cmd, "a tool name")
		}
		t, err := stroke.ParseTool(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrArguments, err)
		}
		r.tool = t
	case "click":
		if len(args) != 2 {
			return argErr(cmd, "x and y")
		}
		x, errX := strconv.ParseFloat(args[0], 64)
		y, errY := strconv.ParseFloat(args[1], 64)
		if errX != nil || errY != nil {
			return argErr(cmd, "numeric x and y")
		}
		if !r.inside(x, y) {
			return argErr(cmd, "x and y inside the surface")
		}
		r.ed.Click(r.tool, x, y)
	case "next", "prev", "clear":
		if len(args) != 0 {
			return argErr(cmd, "no arguments")
		}
		switch cmd {
		case "next":
			r.ed.Next()
		case "prev":
			r.ed.Previous()
		default:
			r.ed.Clear()
		}
	case "goto", "copy":
		if len(args) != 1 {
			return argErr(cmd, "a letter")
		}
		l, err := glyph.ParseLetter(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrArguments, err)
		}
		if cmd == "goto" {
			r.ed.GoTo(l)
		} else {
			r.ed.CopyFrom(l)
		}
	case "export":
		if len(args) != 1 {
			return argErr(cmd, "a file name")
		}
		return r.Export(args[0])
	case "preview":
		if len(args) != 1 {
			return argErr(cmd, "a file name")
		}
		return r.Preview(args[0])
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, f[0])
	}
	return nil
}

// Export writes the SVG document of all letters to path in one write.
func (r *Runner) Export(path string) error {
	doc := r.ed.Export()
	return r.write(path, func(w io.Writer) error {
		_, err := io.WriteString(w, doc)
		return err
	})
}

// Preview writes a PNG contact sheet of all letters to path.
func (r *Runner) Preview(path string) error {
	r.ed.Flush()
	return r.write(path, func(w io.Writer) error {
		return preview.Sheet(w, r.ed.Store(), r.sheet)
	})
}

func (r *Runner) write(path string, fn func(io.Writer) error) error {
	w, err := r.sink.Create(path)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	tracer().Infof("wrote %s", path)
	return nil
}

// inside reports whether x,y is a finite point on the drawing surface.
func (r *Runner) inside(x, y float64) bool {
	w, h := r.ed.Size()
	return x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
}

func argErr(cmd, want string) error {
	return fmt.Errorf("%w: %s wants %s", ErrArguments, cmd, want)
}
