package editor

import (
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// HandlePointer feeds one pointer event through the gesture state machine.
// Input arriving while a restore is in flight is dropped. While a gesture is
// open, events from other pointer ids are ignored.
func (s *Session) HandlePointer(ev PointerEvent) error {
	if s.restoring {
		logger.Warnf("Editor: dropped pointer %s during restore", ev.Kind)
		return nil
	}
	if s.gesture != Idle && ev.ID != s.pointer {
		return nil
	}
	from := s.gesture
	to := Next(from, ev.Kind, s.tool.Tool)
	p := s.toSurface(ev.X, ev.Y)

	switch {
	case from == Idle && to != Idle:
		return s.begin(to, ev.ID, p)
	case from != Idle && to == Idle:
		return s.end()
	case from != Idle && ev.Kind == PointerMove:
		return s.move(p)
	}
	return nil
}

// toSurface converts device coordinates to surface pixels, clamped to the
// canvas.
func (s *Session) toSurface(x, y float64) state.Point {
	return state.Point{
		X: clamp(x-s.originX, 0, float64(s.stack.Width()-1)),
		Y: clamp(y-s.originY, 0, float64(s.stack.Height()-1)),
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func (s *Session) begin(to GestureState, id int, p state.Point) error {
	target := s.stack.Active().Surface
	switch to {
	case FreehandStroke:
		if err := s.strokes.Begin(target, p, s.tool); err != nil {
			return err
		}
	case ShapePreview:
		s.preview.Arm(target)
		s.anchor = p
	case Idle:
		return nil
	}
	s.gesture = to
	s.pointer = id
	s.gestureTool = s.tool
	logger.Debugf("Editor: %s gesture started at (%.1f, %.1f)", to, p.X, p.Y)
	return nil
}

func (s *Session) move(p state.Point) error {
	var err error
	switch s.gesture {
	case FreehandStroke:
		err = s.strokes.Extend(p)
	case ShapePreview:
		err = s.preview.Update(s.anchor, p, s.gestureTool)
	case Idle:
		return nil
	}
	if err != nil {
		return err
	}
	return s.refresh()
}

// end closes the open gesture and checkpoints the result.
func (s *Session) end() error {
	switch s.gesture {
	case FreehandStroke:
		s.strokes.End()
	case ShapePreview:
		s.preview.Disarm()
	case Idle:
		return nil
	}
	logger.Debugf("Editor: %s gesture ended", s.gesture)
	s.gesture = Idle
	return s.commit()
}
