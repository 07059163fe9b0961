package stroke

import (
	"fmt"
	"strings"
)

// Tool decides how a click is interpreted.
type Tool byte

const (
	PointTool Tool = iota
	LineTool
	CurveTool
	FillTool
)

// Tools lists all tools in the order they are offered in the UI.
var Tools = []Tool{PointTool, LineTool, CurveTool, FillTool}

func (t Tool) String() string {
	switch t {
	case PointTool:
		return "point"
	case LineTool:
		return "line"
	case CurveTool:
		return "curve"
	case FillTool:
		return "fill"
	default:
		return fmt.Sprintf("Tool(%d)", byte(t))
	}
}

// ParseTool is the inverse of Tool.String, it ignores case.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tools {
		if t.String() == s {
			return t, nil
		}
	}
	return PointTool, fmt.Errorf("stroke: unknown tool %q", s)
}
