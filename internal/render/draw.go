// Package render rasterizes freehand strokes and previewed shapes onto a
// surface.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

func setPen(dc *gg.Context, c color.NRGBA, width float64) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
}

// segment strokes a->b and stamps a round cap on both ends. The caps double
// as round joins between consecutive segments of a polyline.
func segment(dc *gg.Context, a, b state.Point, width float64) error {
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	if err := dc.Stroke(); err != nil {
		return err
	}
	if err := dab(dc, a, width); err != nil {
		return err
	}
	return dab(dc, b, width)
}

func dab(dc *gg.Context, p state.Point, width float64) error {
	dc.DrawCircle(p.X, p.Y, width/2)
	return dc.Fill()
}

// square fills a width×width square centred on p; it closes rectangle corners.
func square(dc *gg.Context, p state.Point, width float64) error {
	h := width / 2
	dc.DrawRectangle(p.X-h, p.Y-h, width, width)
	return dc.Fill()
}

// Shape is the geometry of a previewed primitive.
type Shape struct {
	Kind state.Tool
	// Min and Max are the normalized rectangle corners, or the line endpoints.
	Min, Max state.Point
	// Center and Radius describe a circle.
	Center state.Point
	Radius float64
}

// Geometry derives the primitive a shape tool draws between the gesture
// anchor and the current pointer position. Rectangles are normalized so an
// inverted drag yields the same outline.
func Geometry(kind state.Tool, anchor, current state.Point) Shape {
	s := Shape{Kind: kind}
	switch kind {
	case state.ToolRectangle:
		s.Min = state.Point{X: math.Min(anchor.X, current.X), Y: math.Min(anchor.Y, current.Y)}
		s.Max = state.Point{X: math.Max(anchor.X, current.X), Y: math.Max(anchor.Y, current.Y)}
	case state.ToolCircle:
		s.Center = anchor
		s.Radius = math.Hypot(current.X-anchor.X, current.Y-anchor.Y)
	case state.ToolLine:
		s.Min, s.Max = anchor, current
	case state.ToolPen, state.ToolEraser:
	}
	return s
}

// bounds is the pixel box the outline can touch.
func (s Shape) bounds(width float64) image.Rectangle {
	if s.Kind == state.ToolCircle {
		r := state.Point{X: s.Radius, Y: s.Radius}
		return around(
			state.Point{X: s.Center.X - r.X, Y: s.Center.Y - r.Y},
			state.Point{X: s.Center.X + r.X, Y: s.Center.Y + r.Y},
			width,
		)
	}
	return around(s.Min, s.Max, width)
}

// stroke outlines the shape; shapes are never filled.
func (s Shape) stroke(dc *gg.Context, width float64) error {
	switch s.Kind {
	case state.ToolRectangle:
		corners := [4]state.Point{
			s.Min,
			{X: s.Max.X, Y: s.Min.Y},
			s.Max,
			{X: s.Min.X, Y: s.Max.Y},
		}
		for i := range corners {
			dc.DrawLine(corners[i].X, corners[i].Y, corners[(i+1)%4].X, corners[(i+1)%4].Y)
			if err := dc.Stroke(); err != nil {
				return err
			}
			if err := square(dc, corners[i], width); err != nil {
				return err
			}
		}
		return nil
	case state.ToolCircle:
		if s.Radius == 0 {
			return nil
		}
		dc.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
		return dc.Stroke()
	case state.ToolLine:
		return segment(dc, s.Min, s.Max, width)
	case state.ToolPen, state.ToolEraser:
	}
	return nil
}
