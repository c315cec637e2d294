// Package layers holds the ordered layer stack and flattens it for display
// and export.
package layers

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// Layer is one independently visible raster in the stack. The stack owns
// the layer's surface.
type Layer struct {
	ID      string
	Name    string
	Visible bool
	Surface *surface.Surface
}

// Info is the read-only view of a layer shown in a layers panel.
type Info struct {
	ID      string
	Name    string
	Visible bool
	Active  bool
}

// Stack is an ordered list of layers, bottom first, with one active layer.
// It always holds at least one layer and all layers share one size.
type Stack struct {
	layers  []*Layer
	active  int
	width   int
	height  int
	created int
}

// NewStack returns a stack with a single transparent layer.
func NewStack(width, height int) (*Stack, error) {
	st := &Stack{width: width, height: height}
	if _, err := st.AddLayer(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Stack) Width() int  { return st.width }
func (st *Stack) Height() int { return st.height }
func (st *Stack) Len() int    { return len(st.layers) }

// ActiveIndex returns the index of the layer receiving strokes.
func (st *Stack) ActiveIndex() int { return st.active }

// Active returns the layer receiving strokes.
func (st *Stack) Active() *Layer { return st.layers[st.active] }

// Layer returns the layer at index.
func (st *Stack) Layer(index int) (*Layer, error) {
	if err := st.check(index); err != nil {
		return nil, err
	}
	return st.layers[index], nil
}

// Layers returns the stack bottom to top. The slice is a copy; the layers are not.
func (st *Stack) Layers() []*Layer {
	out := make([]*Layer, len(st.layers))
	copy(out, st.layers)
	return out
}

// Infos describes every layer, bottom to top.
func (st *Stack) Infos() []Info {
	out := make([]Info, len(st.layers))
	for i, l := range st.layers {
		out[i] = Info{ID: l.ID, Name: l.Name, Visible: l.Visible, Active: i == st.active}
	}
	return out
}

func (st *Stack) check(index int) error {
	if index < 0 || index >= len(st.layers) {
		return fmt.Errorf("layer index %d of %d: %w", index, len(st.layers), state.ErrInvalidOperation)
	}
	return nil
}

// AddLayer appends a transparent layer on top, makes it active and returns its id.
func (st *Stack) AddLayer() (string, error) {
	s, err := surface.New(st.width, st.height, surface.Transparent)
	if err != nil {
		return "", err
	}
	st.created++
	l := &Layer{
		ID:      state.NewLayerID(),
		Name:    state.LayerName(st.created),
		Visible: true,
		Surface: s,
	}
	st.layers = append(st.layers, l)
	st.active = len(st.layers) - 1
	logger.Debugf("Layers: added %s (%s), count=%d", l.Name, l.ID, len(st.layers))
	return l.ID, nil
}

// DeleteLayer removes the layer at index. The last remaining layer cannot be
// deleted. The active index moves down by one when it would fall off the end
// or when the active layer itself is removed.
func (st *Stack) DeleteLayer(index int) error {
	if err := st.check(index); err != nil {
		return err
	}
	if len(st.layers) == 1 {
		return fmt.Errorf("delete last layer: %w", state.ErrInvalidOperation)
	}
	removed := st.layers[index]
	st.layers = append(st.layers[:index], st.layers[index+1:]...)
	switch {
	case index == st.active:
		st.active = max(0, st.active-1)
	case index < st.active:
		st.active--
	}
	logger.Debugf("Layers: deleted %s, active=%d count=%d", removed.ID, st.active, len(st.layers))
	return nil
}

// ToggleVisibility flips the visible flag of the layer at index.
func (st *Stack) ToggleVisibility(index int) error {
	if err := st.check(index); err != nil {
		return err
	}
	st.layers[index].Visible = !st.layers[index].Visible
	return nil
}

// SetActive selects the layer that receives strokes.
func (st *Stack) SetActive(index int) error {
	if err := st.check(index); err != nil {
		return err
	}
	st.active = index
	return nil
}

// Resize applies one resize to every layer. Replacement buffers are built
// first, so a rejected size leaves every layer untouched.
func (st *Stack) Resize(width, height int) error {
	if width == st.width && height == st.height {
		return nil
	}
	bufs := make([]*gg.Pixmap, len(st.layers))
	for i, l := range st.layers {
		pm, err := l.Surface.Resized(width, height)
		if err != nil {
			return err
		}
		bufs[i] = pm
	}
	for i, l := range st.layers {
		l.Surface.Swap(bufs[i])
	}
	st.width, st.height = width, height
	logger.Debugf("Layers: resized %d layers to %dx%d", len(st.layers), width, height)
	return nil
}

// Clear wipes every layer back to transparent.
func (st *Stack) Clear() {
	for _, l := range st.layers {
		l.Surface.Clear()
	}
}
