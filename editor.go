package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gonutz/prototype/draw"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"

	"github.com/NinjaSpatial/outil-vecteur/editor"
	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/script"
	"github.com/NinjaSpatial/outil-vecteur/settings"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
	"github.com/NinjaSpatial/outil-vecteur/svg"
)

var traceKeys = []string{
	"glyphs.main",
	"glyphs.editor",
	"glyphs.stroke",
	"glyphs.svg",
	"glyphs.preview",
	"glyphs.script",
	"glyphs.settings",
}

// tracer traces with key 'glyphs.main'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.main")
}

func main() {
	settingsPath := flag.String("settings", settings.DefaultPath(), "settings file")
	scriptPath := flag.String("script", "", "run an event script instead of opening a window")
	var flags overrides
	flags.register(flag.CommandLine)
	flag.Parse()
	flags.visit(flag.CommandLine)

	loaded, err := settings.Load(*settingsPath)
	if err != nil {
		pterm.Warning.Println(err.Error())
	}
	conf := flags.apply(loaded)
	conf.ApplyTraceLevel(traceKeys...)

	if *scriptPath != "" {
		if err := runScript(*scriptPath, flags.out, flags.png, conf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	defer func() {
		if err := settings.Save(remember(loaded, conf), *settingsPath); err != nil {
			tracer().Errorf("saving settings: %v", err)
		}
	}()
	check(runWindow(&conf))
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newEditor(conf settings.Settings, surface editor.Surface) *editor.Editor {
	opts := []editor.Option{
		editor.WithSurface(surface),
		editor.WithSize(conf.Width, conf.Height),
		editor.StartAt(conf.ActiveLetter()),
	}
	if conf.StrictGestures {
		opts = append(opts, editor.WithStrictGestures())
	}
	if conf.SmoothCurves {
		opts = append(opts, editor.WithSVGOptions(svg.SmoothCurves()))
	}
	return editor.New(opts...)
}

// runScript replays the events in path without a window and writes the
// export and contact sheet if asked to.
func runScript(path, out, png string, conf settings.Settings) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ed := newEditor(conf, nil)
	r := script.NewRunner(ed, script.Files{})
	r.Select(conf.ActiveTool())
	if err := r.Run(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if out != "" {
		if err := r.Export(out); err != nil {
			return err
		}
		pterm.Success.Printfln("exported %d shapes to %s", ed.Store().Count(), out)
	}
	if png != "" {
		if err := r.Preview(png); err != nil {
			return err
		}
		pterm.Success.Printfln("wrote contact sheet %s", png)
	}
	return nil
}

// displayList is the drawing surface of the window. The window is redrawn
// every frame, so the surface only remembers what is on it.
type displayList struct {
	shapes []glyph.Shape
}

func (d *displayList) Clear() {
	d.shapes = d.shapes[:0]
}

func (d *displayList) Draw(s glyph.Shape) {
	d.shapes = append(d.shapes, s)
}

func runWindow(conf *settings.Settings) error {
	surface := &displayList{}
	ed := newEditor(*conf, surface)
	runner := script.NewRunner(ed, script.Files{})
	tool := conf.ActiveTool()
	status := ""

	const (
		canvasX, canvasY = 10, 10
		buttonW, buttonH = 140, 30
		smallW           = 30
	)
	canvasW, canvasH := ed.Size()
	panelX := canvasX + canvasW + 10
	windowW, windowH := panelX+buttonW+10, canvasY+canvasH+40

	export := func() {
		if err := runner.Export(conf.ExportPath); err != nil {
			status = "export failed"
			pterm.Error.Println(err.Error())
			return
		}
		status = "saved " + conf.ExportPath
	}
	exportPreview := func() {
		if err := runner.Preview(conf.PreviewPath); err != nil {
			status = "preview failed"
			pterm.Error.Println(err.Error())
			return
		}
		status = "saved " + conf.PreviewPath
	}

	return draw.RunWindow("Éditeur de Glyphes Vectoriels", windowW, windowH, func(window draw.Window) {
		defer func() {
			conf.Letter = ed.Letter().String()
			conf.Tool = tool.String()
		}()

		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
		}
		ctrl := window.IsKeyDown(draw.KeyLeftControl) || window.IsKeyDown(draw.KeyRightControl)

		button := func(text string, x, y, w int, selected bool) bool {
			h := buttonH
			mx, my := window.MousePosition()
			contains := func(xx, yy int) bool {
				return xx >= x && yy >= y && xx < x+w && yy < y+h
			}
			color := draw.White
			if selected {
				color = draw.RGB(0.7, 0.85, 1)
			} else if contains(mx, my) {
				color = draw.LightGray
			}
			window.FillRect(x, y, w, h, color)
			tw, th := window.GetTextSize(text)
			window.DrawText(text, x+(w-tw)/2, y+(h-th)/2, draw.Black)
			for _, c := range window.Clicks() {
				if c.Button == draw.LeftButton && contains(c.X, c.Y) {
					return true
				}
			}
			return false
		}

		// letter selector
		if button("<", panelX, canvasY, smallW, false) || window.WasKeyPressed(draw.KeyLeft) {
			ed.Previous()
		}
		if button(">", panelX+buttonW-smallW, canvasY, smallW, false) || window.WasKeyPressed(draw.KeyRight) {
			ed.Next()
		}
		{
			text := "Lettre " + ed.Letter().String()
			tw, th := window.GetTextSize(text)
			window.DrawText(text, panelX+(buttonW-tw)/2, canvasY+(buttonH-th)/2, draw.White)
		}

		// tools
		toolKeys := []draw.Key{draw.Key1, draw.Key2, draw.Key3, draw.Key4}
		toolNames := []string{"Ajouter Point", "Ajouter Ligne", "Ajouter Courbe", "Ajouter Plein"}
		for i, t := range stroke.Tools {
			if button(toolNames[i], panelX, canvasY+60+i*(buttonH+5), buttonW, t == tool) ||
				window.WasKeyPressed(toolKeys[i]) {
				tool = t
			}
		}

		if button("Effacer", panelX, canvasY+230, buttonW, false) {
			ed.Clear()
		}
		if button("Sauvegarder", panelX, canvasY+270, buttonW, false) ||
			(ctrl && window.WasKeyPressed(draw.KeyS)) {
			export()
		}
		if button("Aperçu PNG", panelX, canvasY+310, buttonW, false) ||
			(ctrl && window.WasKeyPressed(draw.KeyP)) {
			exportPreview()
		}
		if status != "" {
			window.DrawText(status, panelX, canvasY+350, draw.White)
		}

		// clicks on the drawing surface
		for _, c := range window.Clicks() {
			x, y := c.X-canvasX, c.Y-canvasY
			if c.Button == draw.LeftButton && x >= 0 && y >= 0 && x < canvasW && y < canvasH {
				ed.Click(tool, float64(x), float64(y))
			}
		}

		window.FillRect(canvasX, canvasY, canvasW, canvasH, draw.White)
		drawShapes(window, surface.shapes, canvasX, canvasY)

		// clicks of the unfinished gesture
		for _, p := range ed.Gesture().Points {
			x, y := canvasX+round(p.X), canvasY+round(p.Y)
			window.DrawRect(x-3, y-3, 7, 7, draw.RGB(1, 0.5, 0.5))
		}

		window.DrawRect(canvasX-1, canvasY-1, canvasW+2, canvasH+2, draw.Purple)
		window.DrawText(
			fmt.Sprintf("%s  %s  %d shapes", tool, ed.Gesture().State, len(surface.shapes)),
			canvasX, canvasY+canvasH+10,
			draw.White,
		)
	})
}

func drawShapes(window draw.Window, shapes []glyph.Shape, dx, dy int) {
	toScreen := func(p glyph.Point) (int, int) {
		return dx + round(p.X), dy + round(p.Y)
	}
	line := func(a, b glyph.Point) {
		x1, y1 := toScreen(a)
		x2, y2 := toScreen(b)
		window.DrawLine(x1, y1, x2, y2, draw.Black)
	}
	for _, s := range shapes {
		switch s.Kind() {
		case glyph.Dot:
			x, y := toScreen(s.At(0))
			r := int(glyph.DotRadius)
			window.FillEllipse(x-r, y-r, 2*r+1, 2*r+1, draw.Black)
		case glyph.Line:
			line(s.At(0), s.At(1))
		case glyph.Curve:
			for _, q := range glyph.Smooth(s.Points()) {
				steps := int(math.Hypot(q.To.X-q.From.X, q.To.Y-q.From.Y)/4) + 4
				last := q.From
				for i := 1; i <= steps; i++ {
					p := q.At(float64(i) / float64(steps))
					line(last, p)
					last = p
				}
			}
		case glyph.Polygon:
			for _, span := range scanlines(s.Points()) {
				window.DrawLine(dx+span.x1, dy+span.y, dx+span.x2+1, dy+span.y, draw.Black)
			}
		default:
			panic("unknown shape kind")
		}
	}
}

func round(f float64) int {
	return int(math.Floor(f + 0.5))
}

func init() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), strings.TrimSpace(usage))
		flag.PrintDefaults()
	}
}

const usage = `
Draw the 26 letters A-Z with points, lines, curves and filled polygons and
export them as one SVG file.

Without -script a window is opened. Keys: Left/Right change the letter,
1-4 select a tool, Ctrl+S saves the SVG, Ctrl+P saves the PNG preview,
Escape quits.
`
