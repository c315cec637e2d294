package editor

import (
	"fmt"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// GestureState is the input coordinator state.
type GestureState int

const (
	Idle GestureState = iota
	FreehandStroke
	ShapePreview
)

func (g GestureState) String() string {
	switch g {
	case Idle:
		return "idle"
	case FreehandStroke:
		return "freehand"
	case ShapePreview:
		return "shape-preview"
	}
	return fmt.Sprintf("GestureState(%d)", int(g))
}

// PointerKind is the kind of a raw pointer or touch event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// PointerEvent is a pointer or touch sample in device coordinates. ID tells
// touch points apart; mouse input uses a single id.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	X, Y float64
}

// Next is the gesture transition function. Events that do not apply in the
// current state leave it unchanged. Leave ends a gesture exactly like Up.
func Next(s GestureState, kind PointerKind, tool state.Tool) GestureState {
	switch s {
	case Idle:
		if kind != PointerDown {
			return Idle
		}
		switch {
		case tool.Freehand():
			return FreehandStroke
		case tool.Shape():
			return ShapePreview
		}
		return Idle
	case FreehandStroke, ShapePreview:
		switch kind {
		case PointerUp, PointerLeave:
			return Idle
		case PointerDown, PointerMove:
			return s
		}
	}
	return s
}
