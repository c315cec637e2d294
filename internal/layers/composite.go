package layers

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/surface"
)

// Composite flattens the visible layers, bottom to top, over an opaque
// background using source-over blending. Hidden layers are skipped. Layer
// surfaces are only read.
func Composite(st *Stack, background color.NRGBA) (*surface.Surface, error) {
	out := imaging.New(st.width, st.height, background)
	for _, l := range st.layers {
		if !l.Visible {
			continue
		}
		out = imaging.Overlay(out, l.Surface.Image(), image.Pt(0, 0), 1.0)
	}
	return surface.FromImage(out, background)
}
