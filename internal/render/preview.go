package render

import (
	"fmt"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// ShapePreviewer redraws a candidate shape over a saved copy of the surface
// while the pointer moves. The last preview drawn before Disarm is what stays
// on the surface.
type ShapePreviewer struct {
	target *surface.Surface
	saved  []byte
	ink    *inkMask
}

// Arm captures the current content of target.
func (p *ShapePreviewer) Arm(target *surface.Surface) {
	p.target = target
	p.saved = target.Snapshot()
	p.ink = nil
}

// Update restores the captured content and outlines one shape between anchor
// and current.
func (p *ShapePreviewer) Update(anchor, current state.Point, tool state.ToolConfig) error {
	if p.target == nil {
		return fmt.Errorf("update preview while disarmed: %w", state.ErrInvalidOperation)
	}
	if !tool.Tool.Shape() {
		return fmt.Errorf("preview with %s: %w", tool.Tool, state.ErrInvalidOperation)
	}
	if err := p.target.Restore(p.saved); err != nil {
		return err
	}
	shape := Geometry(tool.Tool, anchor, current)
	if translucent(tool.Color) {
		return p.updateInk(shape, tool)
	}
	dc := p.target.Context()
	setPen(dc, tool.Color, tool.StrokeWidth)
	if err := shape.stroke(dc, tool.StrokeWidth); err != nil {
		return fmt.Errorf("preview %s: %w", tool.Tool, err)
	}
	return nil
}

// updateInk outlines a translucent shape through a mask over the saved
// content.
func (p *ShapePreviewer) updateInk(shape Shape, tool state.ToolConfig) error {
	if p.ink == nil {
		ink, err := newInkMask(p.target, p.saved)
		if err != nil {
			return err
		}
		p.ink = ink
	}
	p.ink.reset()
	if err := shape.stroke(p.ink.pen(tool.StrokeWidth), tool.StrokeWidth); err != nil {
		return fmt.Errorf("preview %s: %w", tool.Tool, err)
	}
	p.ink.touch(shape.bounds(tool.StrokeWidth))
	return p.ink.apply(p.target, tool.Color)
}

// Disarm releases the captured content.
func (p *ShapePreviewer) Disarm() {
	p.target = nil
	p.saved = nil
	p.ink = nil
}

// Armed reports whether a preview is in progress.
func (p *ShapePreviewer) Armed() bool { return p.target != nil }
