package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// inkMask collects the coverage of one translucent stroke or shape. Geometry
// is drawn opaque into the mask and the ink colour is laid over the saved
// pixels through it in a single pass, so overlapping segments, caps and
// corners do not build up alpha.
type inkMask struct {
	mask  *surface.Surface
	base  []byte
	dirty image.Rectangle
}

func translucent(c color.NRGBA) bool { return c.A < 255 }

// newInkMask prepares a mask over target; base is the target content the ink
// is laid over.
func newInkMask(target *surface.Surface, base []byte) (*inkMask, error) {
	m, err := surface.New(target.Width(), target.Height(), surface.Transparent)
	if err != nil {
		return nil, err
	}
	return &inkMask{mask: m, base: base}, nil
}

// pen returns the mask context set up for opaque drawing.
func (k *inkMask) pen(width float64) *gg.Context {
	dc := k.mask.Context()
	setPen(dc, color.NRGBA{A: 255}, width)
	return dc
}

func (k *inkMask) touch(r image.Rectangle) { k.dirty = k.dirty.Union(r) }

func (k *inkMask) reset() {
	k.mask.Clear()
	k.dirty = image.Rectangle{}
}

// apply restores the base pixels of target and draws c through the mask.
func (k *inkMask) apply(target *surface.Surface, c color.NRGBA) error {
	if err := target.Restore(k.base); err != nil {
		return err
	}
	r := k.dirty.Intersect(target.Bounds())
	draw.DrawMask(target.Image(), r, image.NewUniform(c), image.Point{}, k.mask.Image(), r.Min, draw.Over)
	return nil
}

// around returns the pixel box covering a and b widened by the pen width.
func around(a, b state.Point, width float64) image.Rectangle {
	pad := width/2 + 1
	return image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-pad)),
		int(math.Floor(math.Min(a.Y, b.Y)-pad)),
		int(math.Ceil(math.Max(a.X, b.X)+pad)),
		int(math.Ceil(math.Max(a.Y, b.Y)+pad)),
	)
}
