package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/export"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
)

// exportFunc writes the composited canvas in one file format.
type exportFunc func(w io.Writer, b *BoardWidget) error

func writePNG(w io.Writer, b *BoardWidget) error {
	s := b.Session()
	return export.WritePNG(w, s.Stack(), s.Background())
}

func writePDF(w io.Writer, b *BoardWidget) error {
	s := b.Session()
	return export.PDF(w, s.Stack(), s.Background())
}

// SaveTo writes the canvas through write and closes the writer.
func SaveTo(writer fyne.URIWriteCloser, b *BoardWidget, write exportFunc) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := write(writer, b); err != nil {
		return fmt.Errorf("export %s: %w", writer.URI().Name(), err)
	}
	logger.Infof("Export: saved %s", writer.URI())
	return nil
}

// showSaveDialog asks for a destination and exports the canvas there.
func showSaveDialog(win fyne.Window, b *BoardWidget, ext string, write exportFunc, status func(string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		if err := SaveTo(writer, b, write); err != nil {
			logger.Errorf("Export: %v", err)
			dialog.ShowError(err, win)
			return
		}
		status(fmt.Sprintf("Saved %s", writer.URI().Name()))
	}, win)
	d.SetFileName("canvas" + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}
