// Package surface provides the fixed-size RGBA pixel buffer that backs every
// layer and every composited frame.
//
// The pixels live in a gg.Pixmap so the rasterizer can draw into them in
// place. Image returns an image.NRGBA view over the same bytes; the pixmap
// stores straight (non-premultiplied) alpha, which is exactly the NRGBA layout.
package surface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

var (
	// White is the canvas background and the eraser colour.
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Transparent is the background policy of layer surfaces.
	Transparent = color.NRGBA{}
)

// Surface is a width×height RGBA buffer. It is mutated in place and is not
// safe for concurrent use.
type Surface struct {
	pix        *gg.Pixmap
	img        *image.NRGBA
	background color.NRGBA
	dc         *gg.Context
}

// New allocates a surface filled with background. The background is also the
// colour used for area exposed by a later Resize.
func New(width, height int, background color.NRGBA) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, state.ErrInvalidOperation)
	}
	s := &Surface{background: background}
	s.attach(gg.NewPixmap(width, height))
	s.Clear()
	return s, nil
}

// FromImage copies img into a new surface with the given background policy.
func FromImage(img image.Image, background color.NRGBA) (*Surface, error) {
	b := img.Bounds()
	s, err := New(b.Dx(), b.Dy(), background)
	if err != nil {
		return nil, err
	}
	copy(s.img.Pix, imaging.Clone(img).Pix)
	return s, nil
}

func (s *Surface) attach(pm *gg.Pixmap) {
	s.pix = pm
	s.img = &image.NRGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
	s.dc = nil
}

func (s *Surface) Width() int  { return s.pix.Width() }
func (s *Surface) Height() int { return s.pix.Height() }

func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Background returns the fill policy used by Clear and Resize.
func (s *Surface) Background() color.NRGBA { return s.background }

// Image returns a live view of the pixels. Writes through the view modify
// the surface.
func (s *Surface) Image() *image.NRGBA { return s.img }

// NRGBAAt returns the pixel at (x, y), or the zero colour outside the bounds.
func (s *Surface) NRGBAAt(x, y int) color.NRGBA { return s.img.NRGBAAt(x, y) }

// Context returns a drawing context bound to the surface pixels. The context
// is cached until the next Resize.
func (s *Surface) Context() *gg.Context {
	if s.dc == nil {
		s.dc = gg.NewContext(s.Width(), s.Height(), gg.WithPixmap(s.pix))
	}
	return s.dc
}

// Fill overwrites every pixel with c.
func (s *Surface) Fill(c color.NRGBA) {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Clear fills the surface with its background.
func (s *Surface) Clear() { s.Fill(s.background) }

// Snapshot returns a copy of the raw pixel bytes.
func (s *Surface) Snapshot() []byte {
	snap := make([]byte, len(s.img.Pix))
	copy(snap, s.img.Pix)
	return snap
}

// Restore copies a Snapshot taken at the current size back into the surface.
func (s *Surface) Restore(snap []byte) error {
	if len(snap) != len(s.img.Pix) {
		return fmt.Errorf("restore %d bytes into %dx%d surface: %w",
			len(snap), s.Width(), s.Height(), state.ErrInvalidOperation)
	}
	copy(s.img.Pix, snap)
	return nil
}

// CopyFrom replaces the surface content with img, which must have the same size.
func (s *Surface) CopyFrom(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != s.Width() || b.Dy() != s.Height() {
		return fmt.Errorf("copy %dx%d image into %dx%d surface: %w",
			b.Dx(), b.Dy(), s.Width(), s.Height(), state.ErrInvalidOperation)
	}
	copy(s.img.Pix, imaging.Clone(img).Pix)
	return nil
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	c := &Surface{background: s.background}
	c.attach(gg.NewPixmap(s.Width(), s.Height()))
	copy(c.img.Pix, s.img.Pix)
	return c
}
