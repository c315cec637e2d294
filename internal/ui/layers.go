package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LayersPanel lists the layers top to bottom with visibility toggles.
type LayersPanel struct {
	board *BoardWidget
	rows  *fyne.Container
}

func NewLayersPanel(board *BoardWidget) (*LayersPanel, fyne.CanvasObject) {
	p := &LayersPanel{board: board, rows: container.NewVBox()}
	add := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		_, err := p.board.Session().AddLayer()
		p.board.report(err)
		p.Rebuild()
	})
	p.Rebuild()
	header := container.NewHBox(widget.NewLabel("Layers"), add)
	return p, container.NewBorder(header, nil, nil, nil, container.NewVScroll(p.rows))
}

// Rebuild recreates one row per layer from the session.
func (p *LayersPanel) Rebuild() {
	s := p.board.Session()
	infos := s.Layers()
	p.rows.RemoveAll()
	for i := len(infos) - 1; i >= 0; i-- {
		index, info := i, infos[i]

		visible := widget.NewCheck("", func(on bool) {
			if on != s.Layers()[index].Visible {
				p.board.report(s.ToggleVisibility(index))
			}
		})
		visible.SetChecked(info.Visible)

		name := widget.NewButton(info.Name, func() {
			p.board.report(s.SetActiveLayer(index))
			p.Rebuild()
		})
		if info.Active {
			name.Importance = widget.HighImportance
		}

		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			p.board.report(s.DeleteLayer(index))
			p.Rebuild()
		})
		if len(infos) == 1 {
			remove.Disable()
		}
		p.rows.Add(container.NewBorder(nil, nil, visible, remove, name))
	}
	p.rows.Refresh()
}
