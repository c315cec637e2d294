package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/editor"
)

const appID = "io.github.jainabhishek2004.canvasdraw"

// NewContent assembles the board, toolbar, layers panel and status bar for
// win.
func NewContent(win fyne.Window, s *editor.Session) (*BoardWidget, fyne.CanvasObject) {
	board := NewBoardWidget(s)
	status := widget.NewLabel("Ready")
	board.OnError = func(err error) { status.SetText(err.Error()) }

	saveMenu := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showSaveDialog(win, board, ".png", writePNG, status.SetText)
		}),
		widget.NewToolbarAction(theme.FileIcon(), func() {
			showSaveDialog(win, board, ".pdf", writePDF, status.SetText)
		}),
	)
	controls, toolbar := NewToolbar(board, saveMenu)
	_, layersView := NewLayersPanel(board)
	board.OnChange = controls.sync

	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	win.Canvas().AddShortcut(undo, func(fyne.Shortcut) { controls.Undo() })
	win.Canvas().AddShortcut(redo, func(fyne.Shortcut) { controls.Redo() })

	content := container.NewBorder(toolbar, status, nil, layersView, board)
	return board, content
}

func RunApp(s *editor.Session) {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Canvas")

	_, content := NewContent(myWindow, s)
	myWindow.SetContent(content)
	d := s.Display()
	myWindow.Resize(fyne.NewSize(float32(d.Width())+200, float32(d.Height())+80))
	myWindow.ShowAndRun()
}
