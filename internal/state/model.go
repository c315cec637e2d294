package state

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	// ErrInvalidOperation is returned for requests that would break a canvas
	// invariant: deleting the last layer, indexing a missing layer, or resizing
	// to a non-positive size.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrDecode is returned when a history snapshot cannot be turned back into pixels.
	ErrDecode = errors.New("snapshot decode failed")
)

// Point is a position in surface pixel space.
type Point struct{ X, Y float64 }

// Tool selects what a gesture does to the active layer.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolLine
)

var toolNames = [...]string{
	ToolPen:       "pen",
	ToolEraser:    "eraser",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
	ToolLine:      "line",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Freehand reports whether the tool paints along the pointer path.
func (t Tool) Freehand() bool {
	switch t {
	case ToolPen, ToolEraser:
		return true
	case ToolRectangle, ToolCircle, ToolLine:
		return false
	}
	return false
}

// Shape reports whether the tool draws a previewed primitive.
func (t Tool) Shape() bool {
	switch t {
	case ToolRectangle, ToolCircle, ToolLine:
		return true
	case ToolPen, ToolEraser:
		return false
	}
	return false
}

// ParseTool maps a tool name (as used in config files) to a Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolPen, fmt.Errorf("unknown tool %q", name)
}

// ToolConfig is the toolbar selection the engine draws with. It is read-only
// to the engine.
type ToolConfig struct {
	Tool        Tool
	Color       color.NRGBA
	StrokeWidth float64
}

// DefaultToolConfig is a 3px black pen.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Tool:        ToolPen,
		Color:       color.NRGBA{A: 255},
		StrokeWidth: 3,
	}
}

// Valid reports whether the config can be drawn with.
func (c ToolConfig) Valid() bool {
	return c.StrokeWidth > 0 && (c.Tool.Freehand() || c.Tool.Shape())
}
