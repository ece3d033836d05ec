package model

import (
	"fmt"

	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/panel"
	"github.com/charmbracelet/scroller/internal/ui/styles"
)

// row binds a pooled panel to the index its slot currently shows.
type row struct {
	panel *panel.Panel
	sty   *styles.Styles
	// clicked returns the index of the last clicked item, or -1.
	clicked func() int

	index int
}

var _ scroller.Binder = (*row)(nil)

func newRow(p *panel.Panel, sty *styles.Styles, clicked func() int) *row {
	return &row{
		panel:   p,
		sty:     sty,
		clicked: clicked,
		index:   -1,
	}
}

// IndexChanged implements [scroller.Binder].
func (r *row) IndexChanged(index int) {
	r.index = index
	r.render()
}

// Index returns the item index the row shows.
func (r *row) Index() int {
	return r.index
}

func (r *row) render() {
	label := "Item " + r.sty.Row.Index.Render(fmt.Sprintf("#%d", r.index))

	style := r.sty.Row.Even
	switch {
	case r.clicked != nil && r.clicked() == r.index:
		style = r.sty.Row.Clicked
	case r.index%2 != 0:
		style = r.sty.Row.Odd
	}
	r.panel.SetStyle(style)
	r.panel.SetContent(label)
}
