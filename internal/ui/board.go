package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/editor"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
)

// mousePointer is the pointer id used for mouse input.
const mousePointer = 0

// BoardWidget shows the composited canvas and feeds mouse input into the
// editing session. One widget unit maps to one canvas pixel.
type BoardWidget struct {
	widget.BaseWidget
	session *editor.Session

	// OnError reports failed session operations, e.g. to a status bar.
	OnError func(error)
	// OnChange runs after the session redraws, after the board refreshes.
	OnChange func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(s *editor.Session) *BoardWidget {
	b := &BoardWidget{session: s}
	b.ExtendBaseWidget(b)
	s.OnChange = func() {
		b.Refresh()
		if b.OnChange != nil {
			b.OnChange()
		}
	}
	return b
}

func (b *BoardWidget) Session() *editor.Session { return b.session }

func (b *BoardWidget) pointer(kind editor.PointerKind, pos fyne.Position) {
	ev := editor.PointerEvent{Kind: kind, ID: mousePointer, X: float64(pos.X), Y: float64(pos.Y)}
	b.report(b.session.HandlePointer(ev))
}

func (b *BoardWidget) report(err error) {
	if err == nil {
		return
	}
	logger.Errorf("Board: %v", err)
	if b.OnError != nil {
		b.OnError(err)
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(editor.PointerDown, e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(editor.PointerUp, e.Position)
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pointer(editor.PointerMove, e.Position)
}

// DragEnd closes the gesture if MouseUp was not delivered to the board.
func (b *BoardWidget) DragEnd() {
	if b.session.State() != editor.Idle {
		b.pointer(editor.PointerUp, fyne.Position{})
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.pointer(editor.PointerLeave, fyne.Position{})
}

// Resize grows or crops the canvas to the widget, keeping the top-left
// pixels.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if d := b.session.Display(); d.Width() == w && d.Height() == h {
		return
	}
	b.report(b.session.ResizeViewport(w, h))
}

func (b *BoardWidget) frame() image.Image { return b.session.Display().Image() }

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.frame())
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels
	return &boardWidgetRenderer{board: b, image: img}
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Image = r.board.frame()
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *boardWidgetRenderer) Destroy() {}
