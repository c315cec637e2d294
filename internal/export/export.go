// Package export flattens a layer stack into files handed to a save dialog.
package export

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/layers"
)

const pdfImageName = "canvas"

// PNG returns the composited canvas encoded as PNG.
func PNG(st *layers.Stack, background color.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, st, background); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG writes the composited canvas as PNG to w.
func WritePNG(w io.Writer, st *layers.Stack, background color.NRGBA) error {
	out, err := layers.Composite(st, background)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, out.Image(), imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PDF writes a single-page PDF the size of the canvas, one point per pixel,
// with the composited canvas as its only content.
func PDF(w io.Writer, st *layers.Stack, background color.NRGBA) error {
	img, err := PNG(st, background)
	if err != nil {
		return err
	}
	width, height := float64(st.Width()), float64(st.Height())

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(pdfImageName, opts, bytes.NewReader(img))
	p.ImageOptions(pdfImageName, 0, 0, width, height, false, opts, 0, "")
	if err := p.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return p.Output(w)
}
