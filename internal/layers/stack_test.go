package layers

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func newStack(t *testing.T, n int) *Stack {
	t.Helper()
	st, err := NewStack(16, 16)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err := st.AddLayer()
		require.NoError(t, err)
	}
	return st
}

func TestNewStackHasOneTransparentLayer(t *testing.T) {
	st := newStack(t, 1)
	require.Equal(t, 1, st.Len())
	assert.Equal(t, 0, st.ActiveIndex())
	assert.True(t, st.Active().Visible)
	assert.Equal(t, "Layer 1", st.Active().Name)
	assert.Equal(t, surface.Transparent, st.Active().Surface.NRGBAAt(3, 3))

	_, err := NewStack(0, 10)
	assert.ErrorIs(t, err, state.ErrInvalidOperation)
}

func TestAddLayerBecomesActive(t *testing.T) {
	st := newStack(t, 1)
	id, err := st.AddLayer()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 1, st.ActiveIndex())
	assert.Equal(t, id, st.Active().ID)
	assert.NotEqual(t, st.layers[0].ID, id)
	assert.Equal(t, 16, st.Active().Surface.Width())

	infos := st.Infos()
	require.Len(t, infos, 2)
	assert.False(t, infos[0].Active)
	assert.True(t, infos[1].Active)
	assert.Equal(t, "Layer 2", infos[1].Name)
}

func TestDeleteLastLayerFails(t *testing.T) {
	st := newStack(t, 1)
	assert.ErrorIs(t, st.DeleteLayer(0), state.ErrInvalidOperation)
	assert.Equal(t, 1, st.Len())
}

func TestDeleteLayerClampsActive(t *testing.T) {
	st := newStack(t, 3)
	require.Equal(t, 2, st.ActiveIndex())

	require.NoError(t, st.DeleteLayer(2))
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 1, st.ActiveIndex())

	require.NoError(t, st.SetActive(0))
	require.NoError(t, st.DeleteLayer(0))
	assert.Equal(t, 0, st.ActiveIndex())
	assert.Equal(t, 1, st.Len())
}

func TestDeleteBelowActiveKeepsSelection(t *testing.T) {
	st := newStack(t, 3)
	activeID := st.Active().ID
	require.NoError(t, st.DeleteLayer(0))
	assert.Equal(t, activeID, st.Active().ID)
	assert.Equal(t, 1, st.ActiveIndex())
}

func TestIndexErrors(t *testing.T) {
	st := newStack(t, 2)
	assert.ErrorIs(t, st.DeleteLayer(5), state.ErrInvalidOperation)
	assert.ErrorIs(t, st.ToggleVisibility(-1), state.ErrInvalidOperation)
	assert.ErrorIs(t, st.SetActive(2), state.ErrInvalidOperation)
	_, err := st.Layer(9)
	assert.ErrorIs(t, err, state.ErrInvalidOperation)
}

func TestToggleVisibilityKeepsPixels(t *testing.T) {
	st := newStack(t, 1)
	st.Active().Surface.Fill(red)
	require.NoError(t, st.ToggleVisibility(0))
	assert.False(t, st.Active().Visible)
	assert.Equal(t, red, st.Active().Surface.NRGBAAt(0, 0))
	require.NoError(t, st.ToggleVisibility(0))
	assert.True(t, st.Active().Visible)
}

func TestResizeAllLayers(t *testing.T) {
	st := newStack(t, 2)
	st.layers[0].Surface.Fill(red)
	require.NoError(t, st.Resize(32, 8))
	assert.Equal(t, 32, st.Width())
	for _, l := range st.Layers() {
		assert.Equal(t, 32, l.Surface.Width())
		assert.Equal(t, 8, l.Surface.Height())
	}
	assert.Equal(t, red, st.layers[0].Surface.NRGBAAt(15, 7))
	assert.Equal(t, surface.Transparent, st.layers[0].Surface.NRGBAAt(20, 0))

	assert.ErrorIs(t, st.Resize(0, 8), state.ErrInvalidOperation)
	assert.Equal(t, 32, st.layers[1].Surface.Width())
}

func TestCompositeNoVisibleLayersIsBackground(t *testing.T) {
	st := newStack(t, 2)
	for i, l := range st.Layers() {
		l.Surface.Fill(red)
		require.NoError(t, st.ToggleVisibility(i))
	}
	out, err := Composite(st, surface.White)
	require.NoError(t, err)

	want, err := surface.New(16, 16, surface.White)
	require.NoError(t, err)
	assert.Equal(t, want.Snapshot(), out.Snapshot())
}

func TestCompositeOrderAndSourceOver(t *testing.T) {
	st := newStack(t, 2)
	bottom, top := st.layers[0].Surface, st.layers[1].Surface
	bottom.Fill(red)
	top.Image().SetNRGBA(1, 1, blue)
	top.Image().SetNRGBA(2, 2, color.NRGBA{B: 255, A: 0})

	out, err := Composite(st, surface.White)
	require.NoError(t, err)
	assert.Equal(t, blue, out.NRGBAAt(1, 1))
	assert.Equal(t, red, out.NRGBAAt(2, 2))
	assert.Equal(t, red, out.NRGBAAt(5, 5))

	require.NoError(t, st.ToggleVisibility(0))
	out, err = Composite(st, surface.White)
	require.NoError(t, err)
	assert.Equal(t, surface.White, out.NRGBAAt(5, 5))
	assert.Equal(t, blue, out.NRGBAAt(1, 1))

	assert.Equal(t, red, bottom.NRGBAAt(5, 5), "composite must not touch layers")
}

func TestCompositeHalfAlpha(t *testing.T) {
	st := newStack(t, 1)
	st.Active().Surface.Fill(color.NRGBA{A: 128})
	out, err := Composite(st, surface.White)
	require.NoError(t, err)
	got := out.NRGBAAt(0, 0)
	assert.Equal(t, uint8(255), got.A)
	assert.InDelta(t, 127, int(got.R), 2)
}

func TestClearWipesLayers(t *testing.T) {
	st := newStack(t, 2)
	for _, l := range st.Layers() {
		l.Surface.Fill(red)
	}
	st.Clear()
	for _, l := range st.Layers() {
		assert.Equal(t, surface.Transparent, l.Surface.NRGBAAt(4, 4))
	}
}
