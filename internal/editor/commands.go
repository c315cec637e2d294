package editor

import (
	"context"
	"fmt"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/history"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/layers"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// Undo shows the previous checkpoint. At the oldest checkpoint it does
// nothing. If the snapshot cannot be decoded the canvas and the log cursor
// are left as they were.
func (s *Session) Undo(ctx context.Context) error {
	if err := s.busy("undo"); err != nil {
		return err
	}
	e, ok := s.log.Undo()
	if !ok {
		return nil
	}
	if err := s.restore(ctx, e); err != nil {
		s.log.Redo()
		logger.Errorf("Editor: undo failed: %v", err)
		return err
	}
	return nil
}

// Redo shows the next checkpoint. At the newest checkpoint it does nothing.
func (s *Session) Redo(ctx context.Context) error {
	if err := s.busy("redo"); err != nil {
		return err
	}
	e, ok := s.log.Redo()
	if !ok {
		return nil
	}
	if err := s.restore(ctx, e); err != nil {
		s.log.Undo()
		logger.Errorf("Editor: redo failed: %v", err)
		return err
	}
	return nil
}

// restore decodes e and makes it the canvas content. Checkpoints hold the
// flattened canvas, not layers: the pixels land in one visible layer and every
// other visible layer is cleared, so the composite equals the snapshot.
// Hidden layers are not part of a snapshot and are left alone.
func (s *Session) restore(ctx context.Context, e history.Entry) error {
	s.restoring = true
	img, err := s.codec.Decode(ctx, e)
	s.restoring = false
	if err != nil {
		return err
	}

	snap, err := surface.FromImage(img, s.background)
	if err != nil {
		return err
	}
	if err := snap.Resize(s.stack.Width(), s.stack.Height()); err != nil {
		return err
	}
	target, err := s.restoreTarget()
	if err != nil {
		return err
	}
	if err := target.Surface.CopyFrom(snap.Image()); err != nil {
		return err
	}
	for _, l := range s.stack.Layers() {
		if l != target && l.Visible {
			l.Surface.Clear()
		}
	}
	return s.refresh()
}

// restoreTarget picks the layer that receives a restored snapshot: the active
// layer if it is visible, else the topmost visible layer. When every layer is
// hidden the active layer is shown again.
func (s *Session) restoreTarget() (*layers.Layer, error) {
	if active := s.stack.Active(); active.Visible {
		return active, nil
	}
	ls := s.stack.Layers()
	for i := len(ls) - 1; i >= 0; i-- {
		if ls[i].Visible {
			return ls[i], nil
		}
	}
	if err := s.stack.ToggleVisibility(s.stack.ActiveIndex()); err != nil {
		return nil, err
	}
	logger.Debugf("Editor: every layer hidden, showing %s for restore", s.stack.Active().Name)
	return s.stack.Active(), nil
}

// Clear wipes every layer and checkpoints the blank canvas.
func (s *Session) Clear() error {
	if err := s.busy("clear"); err != nil {
		return err
	}
	s.stack.Clear()
	logger.Debugf("Editor: canvas cleared")
	return s.commit()
}

// AddLayer appends a transparent layer, makes it active and returns its id.
func (s *Session) AddLayer() (string, error) {
	if err := s.busy("add layer"); err != nil {
		return "", err
	}
	id, err := s.stack.AddLayer()
	if err != nil {
		return "", err
	}
	return id, s.refresh()
}

// DeleteLayer removes the layer at index. The last layer cannot be deleted.
func (s *Session) DeleteLayer(index int) error {
	if err := s.busy("delete layer"); err != nil {
		return err
	}
	if err := s.stack.DeleteLayer(index); err != nil {
		return err
	}
	return s.refresh()
}

// ToggleVisibility shows or hides the layer at index.
func (s *Session) ToggleVisibility(index int) error {
	if err := s.busy("toggle visibility"); err != nil {
		return err
	}
	if err := s.stack.ToggleVisibility(index); err != nil {
		return err
	}
	return s.refresh()
}

// SetActiveLayer selects the layer that receives the next gesture.
func (s *Session) SetActiveLayer(index int) error {
	if err := s.busy("select layer"); err != nil {
		return err
	}
	if err := s.stack.SetActive(index); err != nil {
		return err
	}
	if s.OnChange != nil {
		s.OnChange()
	}
	return nil
}

// ResizeViewport resizes every layer, keeping the top-left pixels. An open
// gesture is ended first, as if the pointer had left the canvas.
func (s *Session) ResizeViewport(width, height int) error {
	if s.restoring {
		return s.busy("resize")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize viewport to %dx%d: %w", width, height, state.ErrInvalidOperation)
	}
	if s.gesture != Idle {
		if err := s.end(); err != nil {
			return fmt.Errorf("end gesture before resize: %w", err)
		}
	}
	if err := s.stack.Resize(width, height); err != nil {
		return err
	}
	return s.refresh()
}
