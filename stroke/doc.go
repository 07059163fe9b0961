// Package stroke turns clicks on the drawing surface into shapes, depending
// on the active tool.
package stroke

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphs.stroke'.
func tracer() tracing.Trace {
	return tracing.Select("glyphs.stroke")
}
