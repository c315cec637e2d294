package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// palette is the set of swatches on the toolbar.
var palette = []color.NRGBA{
	{A: 255},                 // Black
	{R: 255, A: 255},         // Red
	{G: 160, A: 255},         // Green
	{B: 255, A: 255},         // Blue
	{R: 255, G: 200, A: 255}, // Yellow
}

// colorSwatch is a tappable palette entry. The selected swatch gets a
// thicker, darker border.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
	selected bool
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

// SetSelected marks the swatch as the current ink.
func (s *colorSwatch) SetSelected(on bool) {
	if s.selected == on {
		return
	}
	s.selected = on
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(s.Color)
	fill.SetMinSize(fyne.NewSize(32, 32))
	border := canvas.NewRectangle(color.Transparent)
	r := &swatchRenderer{swatch: s, fill: fill, border: border}
	r.Refresh()
	return r
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

type swatchRenderer struct {
	swatch       *colorSwatch
	fill, border *canvas.Rectangle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	r.border.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size { return r.fill.MinSize() }

func (r *swatchRenderer) Refresh() {
	r.border.StrokeColor = color.Gray{Y: 150}
	r.border.StrokeWidth = 1
	if r.swatch.selected {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 3
	}
	r.fill.Refresh()
	r.border.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.border}
}

func (r *swatchRenderer) Destroy() {}

// Controls drives the session's tool and history from toolbar widgets.
type Controls struct {
	board *BoardWidget

	undo, redo *widget.Button
	width      *widget.Slider
	toolLabel  *widget.Label
	swatches   []*colorSwatch
}

// setTool applies one change to the current tool configuration.
func (c *Controls) setTool(change func(*state.ToolConfig)) {
	cfg := c.board.Session().Tool()
	change(&cfg)
	c.board.report(c.board.Session().SetTool(cfg))
	c.sync()
}

func (c *Controls) SelectTool(t state.Tool) {
	c.setTool(func(cfg *state.ToolConfig) { cfg.Tool = t })
}

func (c *Controls) SelectColor(col color.NRGBA) {
	c.setTool(func(cfg *state.ToolConfig) {
		cfg.Color = col
		if cfg.Tool == state.ToolEraser {
			cfg.Tool = state.ToolPen
		}
	})
}

func (c *Controls) Undo() {
	c.board.report(c.board.Session().Undo(context.Background()))
	c.sync()
}

func (c *Controls) Redo() {
	c.board.report(c.board.Session().Redo(context.Background()))
	c.sync()
}

func (c *Controls) Clear() {
	c.board.report(c.board.Session().Clear())
	c.sync()
}

// sync enables or disables the history buttons and shows the tool.
func (c *Controls) sync() {
	s := c.board.Session()
	setEnabled(c.undo, s.CanUndo())
	setEnabled(c.redo, s.CanRedo())
	tool := s.Tool()
	c.toolLabel.SetText(tool.Tool.String())
	for _, sw := range c.swatches {
		sw.SetSelected(tool.Tool != state.ToolEraser && sw.Color == tool.Color)
	}
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

// NewToolbar builds the tool, colour, size and history controls. extra
// objects are appended at the right end.
func NewToolbar(board *BoardWidget, extra ...fyne.CanvasObject) (*Controls, fyne.CanvasObject) {
	c := &Controls{board: board, toolLabel: widget.NewLabel("")}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { c.SelectTool(state.ToolPen) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { c.SelectTool(state.ToolEraser) }),
		widget.NewToolbarAction(theme.CheckButtonIcon(), func() { c.SelectTool(state.ToolRectangle) }),
		widget.NewToolbarAction(theme.RadioButtonIcon(), func() { c.SelectTool(state.ToolCircle) }),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() { c.SelectTool(state.ToolLine) }),
	)

	colorBox := container.NewHBox()
	for _, col := range palette {
		sw := newColorSwatch(col, c.SelectColor)
		c.swatches = append(c.swatches, sw)
		colorBox.Add(sw)
	}

	c.width = widget.NewSlider(1.0, 50.0)
	c.width.SetValue(board.Session().Tool().StrokeWidth)
	c.width.OnChanged = func(val float64) {
		c.setTool(func(cfg *state.ToolConfig) { cfg.StrokeWidth = val })
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), c.width)

	c.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), c.Undo)
	c.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), c.Redo)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), c.Clear)
	c.sync()

	items := []fyne.CanvasObject{
		widget.NewLabel("Tool:"),
		tb,
		c.toolLabel,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		c.undo, c.redo, clearBtn,
		layout.NewSpacer(),
	}
	return c, container.NewHBox(append(items, extra...)...)
}
