package history

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

func entry(tag byte) Entry { return NewEntry([]byte{tag}, 1, 1) }

// tagOf unwraps an (Entry, bool) pair into the entry's marker byte.
func tagOf(t *testing.T) func(Entry, bool) byte {
	return func(e Entry, ok bool) byte {
		t.Helper()
		require.True(t, ok)
		return e.Bytes()[0]
	}
}

func TestEmptyLog(t *testing.T) {
	l := NewLog(0)
	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
	_, ok := l.Undo()
	assert.False(t, ok)
	_, ok = l.Redo()
	assert.False(t, ok)
	_, ok = l.Current()
	assert.False(t, ok)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	l := NewLog(0)
	const n = 6
	for i := 1; i <= n; i++ {
		l.Checkpoint(entry(byte(i)))
	}
	require.Equal(t, n-1, l.Cursor())

	for i := n - 1; i >= 1; i-- {
		e, ok := l.Undo()
		assert.Equal(t, byte(i), tagOf(t)(e, ok))
	}
	assert.False(t, l.CanUndo())
	_, ok := l.Undo()
	assert.False(t, ok, "undo at the first entry is a no-op")
	assert.Equal(t, 0, l.Cursor())

	for i := 2; i <= n; i++ {
		e, ok := l.Redo()
		assert.Equal(t, byte(i), tagOf(t)(e, ok))
	}
	_, ok = l.Redo()
	assert.False(t, ok, "redo at the tip is a no-op")
	assert.Equal(t, byte(n), tagOf(t)(l.Current()))
}

func TestCheckpointDiscardsRedoBranch(t *testing.T) {
	l := NewLog(0)
	for i := 1; i <= 5; i++ {
		l.Checkpoint(entry(byte(i)))
	}
	l.Undo()
	l.Undo()
	l.Undo()
	require.Equal(t, 1, l.Cursor())

	l.Checkpoint(entry(9))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Cursor())
	assert.False(t, l.CanRedo())
	assert.Equal(t, byte(9), tagOf(t)(l.Current()))
	assert.Equal(t, byte(2), tagOf(t)(l.Undo()))
}

func TestLimitEvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 1; i <= 5; i++ {
		l.Checkpoint(entry(byte(i)))
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Cursor())
	assert.Equal(t, byte(4), tagOf(t)(l.Undo()))
	assert.Equal(t, byte(3), tagOf(t)(l.Undo()))
	_, ok := l.Undo()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	l := NewLog(0)
	l.Checkpoint(entry(1))
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.Cursor())
}

func TestPNGCodecRoundTrip(t *testing.T) {
	img := imaging.New(7, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(3, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	c := NewPNGCodec()
	e, err := c.Encode(img)
	require.NoError(t, err)
	assert.Equal(t, 7, e.Width())
	assert.Equal(t, 5, e.Height())

	out, err := c.Decode(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, imaging.Clone(out).Pix)
}

func TestPNGCodecDecodeFailure(t *testing.T) {
	c := NewPNGCodec()
	_, err := c.Decode(context.Background(), NewEntry([]byte("not a png"), 1, 1))
	assert.ErrorIs(t, err, state.ErrDecode)

	good, err := c.Encode(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	_, err = c.Decode(context.Background(), NewEntry(good.Bytes(), 3, 3))
	assert.ErrorIs(t, err, state.ErrDecode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Decode(ctx, good)
	assert.ErrorIs(t, err, state.ErrDecode)
	assert.ErrorIs(t, err, context.Canceled)
}
