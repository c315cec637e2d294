// Package editor owns an editing session: the layer stack, the undo log, the
// current tool and the pointer state machine that turns raw input into
// strokes, shape previews and checkpoints.
//
// A Session is driven from one goroutine, normally the UI event loop.
package editor

import (
	"fmt"
	"image/color"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/export"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/history"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/layers"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/render"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// Options configures a new Session.
type Options struct {
	Width, Height int
	// HistoryLimit caps the undo log; zero or less keeps every checkpoint.
	HistoryLimit int
	// Background is the opaque colour under all layers and the eraser colour.
	// The zero value means white.
	Background color.NRGBA
	Tool       state.ToolConfig
	// Codec encodes checkpoints. Defaults to PNG.
	Codec history.Codec
}

// Session is the explicit editor state. All mutation goes through its methods.
type Session struct {
	stack      *layers.Stack
	log        *history.Log
	codec      history.Codec
	background color.NRGBA
	tool       state.ToolConfig

	strokes *render.StrokeRenderer
	preview render.ShapePreviewer

	gesture     GestureState
	gestureTool state.ToolConfig
	pointer     int
	anchor      state.Point

	originX, originY float64

	display   *surface.Surface
	restoring bool

	// OnChange is called after anything visible changed: a live stroke
	// segment, a checkpoint, undo/redo, or a layer command.
	OnChange func()
}

// New starts a session with one empty layer and one checkpoint of the blank
// canvas.
func New(opts Options) (*Session, error) {
	if opts.Background == (color.NRGBA{}) {
		opts.Background = surface.White
	}
	if !opts.Tool.Valid() {
		opts.Tool = state.DefaultToolConfig()
	}
	if opts.Codec == nil {
		opts.Codec = history.NewPNGCodec()
	}
	stack, err := layers.NewStack(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	s := &Session{
		stack:      stack,
		log:        history.NewLog(opts.HistoryLimit),
		codec:      opts.Codec,
		background: opts.Background,
		tool:       opts.Tool,
		strokes:    render.NewStrokeRenderer(opts.Background),
	}
	if err := s.commit(); err != nil {
		return nil, err
	}
	logger.Infof("Editor: session started %dx%d, history limit %d", opts.Width, opts.Height, opts.HistoryLimit)
	return s, nil
}

// State returns the current gesture state.
func (s *Session) State() GestureState { return s.gesture }

// Restoring reports whether an undo/redo decode is in flight.
func (s *Session) Restoring() bool { return s.restoring }

// Tool returns the tool used by the next gesture.
func (s *Session) Tool() state.ToolConfig { return s.tool }

// SetTool changes the tool for the next gesture. An open gesture keeps the
// tool it started with.
func (s *Session) SetTool(cfg state.ToolConfig) error {
	if !cfg.Valid() {
		return fmt.Errorf("tool %s width %v: %w", cfg.Tool, cfg.StrokeWidth, state.ErrInvalidOperation)
	}
	s.tool = cfg
	return nil
}

// Background returns the canvas background colour.
func (s *Session) Background() color.NRGBA { return s.background }

// SetOrigin sets the on-screen position of the canvas; it is subtracted from
// every pointer position.
func (s *Session) SetOrigin(x, y float64) {
	s.originX, s.originY = x, y
}

// Display returns the latest composited frame.
func (s *Session) Display() *surface.Surface { return s.display }

// Stack exposes the layer stack for read-only use by exporters.
func (s *Session) Stack() *layers.Stack { return s.stack }

// Layers describes the layers for a layers panel, bottom to top.
func (s *Session) Layers() []layers.Info { return s.stack.Infos() }

func (s *Session) CanUndo() bool { return s.log.CanUndo() }
func (s *Session) CanRedo() bool { return s.log.CanRedo() }

// HistoryPosition returns the log cursor and length.
func (s *Session) HistoryPosition() (cursor, length int) {
	return s.log.Cursor(), s.log.Len()
}

// ExportImage returns the composited canvas as PNG bytes.
func (s *Session) ExportImage() ([]byte, error) {
	return export.PNG(s.stack, s.background)
}

// busy rejects commands that cannot run while a gesture is open or a
// restore is in flight.
func (s *Session) busy(op string) error {
	if s.gesture != Idle {
		return fmt.Errorf("%s during %s gesture: %w", op, s.gesture, state.ErrInvalidOperation)
	}
	if s.restoring {
		return fmt.Errorf("%s during restore: %w", op, state.ErrInvalidOperation)
	}
	return nil
}

// refresh recomposites the display frame.
func (s *Session) refresh() error {
	out, err := layers.Composite(s.stack, s.background)
	if err != nil {
		return err
	}
	s.display = out
	if s.OnChange != nil {
		s.OnChange()
	}
	return nil
}

// commit recomposites and pushes the frame as a checkpoint.
func (s *Session) commit() error {
	if err := s.refresh(); err != nil {
		return err
	}
	e, err := s.codec.Encode(s.display.Image())
	if err != nil {
		return err
	}
	s.log.Checkpoint(e)
	return nil
}
