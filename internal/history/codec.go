package history

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// Codec turns composited frames into log entries and back.
type Codec interface {
	Encode(img image.Image) (Entry, error)
	Decode(ctx context.Context, e Entry) (image.Image, error)
}

// PNGCodec stores snapshots as PNG, which round-trips 8-bit RGBA exactly.
type PNGCodec struct {
	Compression png.CompressionLevel
}

// NewPNGCodec favours encode speed, since a snapshot is taken per gesture.
func NewPNGCodec() *PNGCodec {
	return &PNGCodec{Compression: png.BestSpeed}
}

func (c *PNGCodec) Encode(img image.Image) (Entry, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(c.Compression)); err != nil {
		return Entry{}, fmt.Errorf("encode snapshot: %w", err)
	}
	b := img.Bounds()
	return NewEntry(buf.Bytes(), b.Dx(), b.Dy()), nil
}

func (c *PNGCodec) Decode(ctx context.Context, e Entry) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", state.ErrDecode, err)
	}
	img, err := imaging.Decode(bytes.NewReader(e.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", state.ErrDecode, err)
	}
	if b := img.Bounds(); b.Dx() != e.width || b.Dy() != e.height {
		return nil, fmt.Errorf("%w: snapshot is %dx%d, entry says %dx%d",
			state.ErrDecode, b.Dx(), b.Dy(), e.width, e.height)
	}
	return img, nil
}
