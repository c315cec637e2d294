package surface

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// Resized builds the replacement buffer for a resize without touching s: the
// overlapping top-left region is copied and the exposed area gets the
// background. Apply it with Swap.
func (s *Surface) Resized(width, height int) (*gg.Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", width, height, state.ErrInvalidOperation)
	}
	out := imaging.Paste(imaging.New(width, height, s.background), s.img, image.Pt(0, 0))
	pm := gg.NewPixmap(width, height)
	copy(pm.Data(), out.Pix)
	return pm, nil
}

// Swap installs a buffer produced by Resized.
func (s *Surface) Swap(pm *gg.Pixmap) {
	s.attach(pm)
}

// Resize changes the surface dimensions. On error the surface is unchanged.
func (s *Surface) Resize(width, height int) error {
	if width == s.Width() && height == s.Height() {
		return nil
	}
	pm, err := s.Resized(width, height)
	if err != nil {
		return err
	}
	s.Swap(pm)
	return nil
}
