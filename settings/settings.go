// Package settings loads and saves the editor's settings file. Settings
// survive restarts of the editor, glyphs do not: they only leave the editor
// as exported SVG.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"

	"github.com/NinjaSpatial/outil-vecteur/glyph"
	"github.com/NinjaSpatial/outil-vecteur/stroke"
)

// FileName is the name of the settings file in the user config directory.
const FileName = "outil-vecteur.json"

// Settings is what is remembered between two sessions.
type Settings struct {
	Letter         string
	Tool           string
	ExportPath     string
	PreviewPath    string
	Width          int
	Height         int
	StrictGestures bool
	SmoothCurves   bool
	TraceLevel     string
}

// Default returns the settings used when there is no settings file.
func Default() Settings {
	return Settings{
		Letter:      "A",
		Tool:        stroke.PointTool.String(),
		ExportPath:  "glyphs.svg",
		PreviewPath: "glyphs.png",
		Width:       800,
		Height:      600,
		TraceLevel:  "Error",
	}
}

// DefaultPath is the settings file in the user config directory, or in the
// working directory if there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, FileName)
}

// Load reads the settings at path. A missing file is not an error, the
// defaults are returned instead. Fields missing from the file keep their
// default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as JSON.
func Save(s Settings, path string) error {
	data, err := json.MarshalIndent(&s, "", "\t")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return err
	}
	tracing.Select("glyphs.settings").Debugf("saved settings to %s", path)
	return nil
}

// Validate checks that the letter and tool can be parsed and the surface
// has a size.
func (s Settings) Validate() error {
	if _, err := glyph.ParseLetter(s.Letter); err != nil {
		return err
	}
	if _, err := stroke.ParseTool(s.Tool); err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", s.Width, s.Height)
	}
	return nil
}

// ActiveLetter returns the parsed letter, 'A' if it cannot be parsed.
func (s Settings) ActiveLetter() glyph.Letter {
	l, err := glyph.ParseLetter(s.Letter)
	if err != nil {
		return glyph.First
	}
	return l
}

// ActiveTool returns the parsed tool, the point tool if it cannot be parsed.
func (s Settings) ActiveTool() stroke.Tool {
	t, _ := stroke.ParseTool(s.Tool)
	return t
}

// ApplyTraceLevel sets the tracers selected by keys to TraceLevel. Unknown
// levels select Error.
func (s Settings) ApplyTraceLevel(keys ...string) {
	for _, key := range keys {
		t := tracing.Select(key)
		switch s.TraceLevel {
		case "Debug", "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info", "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
}
