package main

import (
	"flag"

	"github.com/NinjaSpatial/outil-vecteur/settings"
)

// overrides are the command line flags that change settings for one run
// only. They are never written back to the settings file.
type overrides struct {
	out, png, traceLevel string
	strict, smooth       bool
	set                  map[string]bool
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.StringVar(&o.out, "out", "", "SVG file to export to")
	fs.StringVar(&o.png, "preview", "", "PNG file to write the contact sheet to")
	fs.StringVar(&o.traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	fs.BoolVar(&o.strict, "strict", false, "drop pending clicks when the tool changes")
	fs.BoolVar(&o.smooth, "smooth", false, "export curves as smooth paths")
}

// visit records which flags were given on the command line, so that
// -strict=false can turn off a stored true.
func (o *overrides) visit(fs *flag.FlagSet) {
	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})
}

// apply returns conf with the overrides applied.
func (o overrides) apply(conf settings.Settings) settings.Settings {
	if o.out != "" {
		conf.ExportPath = o.out
	}
	if o.png != "" {
		conf.PreviewPath = o.png
	}
	if o.traceLevel != "" {
		conf.TraceLevel = o.traceLevel
	}
	if o.set["strict"] {
		conf.StrictGestures = o.strict
	}
	if o.set["smooth"] {
		conf.SmoothCurves = o.smooth
	}
	return conf
}

// remember returns the settings to store after a session: the settings as
// loaded, with the letter and tool the session ended on.
func remember(loaded, used settings.Settings) settings.Settings {
	loaded.Letter = used.Letter
	loaded.Tool = used.Tool
	return loaded
}
