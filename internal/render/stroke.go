package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// StrokeRenderer paints pen and eraser strokes. Consecutive pointer samples
// are joined by straight segments; there is no smoothing, so sparse input
// shows up as a visible polyline.
type StrokeRenderer struct {
	eraseColor color.NRGBA

	target *surface.Surface
	last   state.Point
	color  color.NRGBA
	width  float64
	ink    *inkMask
}

// NewStrokeRenderer returns a renderer whose eraser paints eraseColor.
func NewStrokeRenderer(eraseColor color.NRGBA) *StrokeRenderer {
	return &StrokeRenderer{eraseColor: eraseColor}
}

// Begin opens a stroke at p on target. Nothing is painted until Extend.
func (r *StrokeRenderer) Begin(target *surface.Surface, p state.Point, tool state.ToolConfig) error {
	r.color = tool.Color
	if tool.Tool == state.ToolEraser {
		r.color = r.eraseColor
	}
	r.ink = nil
	if translucent(r.color) {
		ink, err := newInkMask(target, target.Snapshot())
		if err != nil {
			return fmt.Errorf("begin stroke: %w", err)
		}
		r.ink = ink
	}
	r.target = target
	r.last = p
	r.width = tool.StrokeWidth
	return nil
}

// Extend draws a round-capped segment from the last point to p. A
// translucent stroke is redrawn through its mask so it keeps one alpha
// along its whole length.
func (r *StrokeRenderer) Extend(p state.Point) error {
	if r.target == nil {
		return fmt.Errorf("extend stroke without begin: %w", state.ErrInvalidOperation)
	}
	var dc *gg.Context
	if r.ink != nil {
		dc = r.ink.pen(r.width)
	} else {
		dc = r.target.Context()
		setPen(dc, r.color, r.width)
	}
	if err := segment(dc, r.last, p, r.width); err != nil {
		return fmt.Errorf("stroke segment: %w", err)
	}
	if r.ink != nil {
		r.ink.touch(around(r.last, p, r.width))
		if err := r.ink.apply(r.target, r.color); err != nil {
			return fmt.Errorf("stroke ink: %w", err)
		}
	}
	r.last = p
	return nil
}

// End closes the stroke.
func (r *StrokeRenderer) End() {
	r.target = nil
	r.ink = nil
}

// Active reports whether a stroke is open.
func (r *StrokeRenderer) Active() bool { return r.target != nil }

// Last returns the most recent stroke point.
func (r *StrokeRenderer) Last() state.Point { return r.last }
