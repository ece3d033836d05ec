// Package panel provides the terminal widgets recycled by the scroller.
package panel

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/scroller/internal/scroller"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Panel is a rectangle of cells anchored in content space. Along the scroll
// axis it spans its extent; across it, it fills the viewport.
type Panel struct {
	id int

	dir    scroller.Direction
	pos    scroller.Vec
	extent float64

	visible   bool
	destroyed bool

	content string
	style   lipgloss.Style

	handle *scroller.Handle
	bind   BindFunc
}

var (
	_ scroller.Panel    = (*Panel)(nil)
	_ scroller.Bindable = (*Panel)(nil)
)

// ID returns the creation order of the panel within its [Content].
func (p *Panel) ID() int {
	return p.id
}

// Place implements [scroller.Panel].
func (p *Panel) Place(dir scroller.Direction, pos scroller.Vec, extent float64) {
	p.dir = dir
	p.pos = pos
	p.extent = extent
}

// Position returns the anchor of the panel in content space.
func (p *Panel) Position() scroller.Vec {
	return p.pos
}

// SetVisible implements [scroller.Panel].
func (p *Panel) SetVisible(v bool) {
	p.visible = v
}

// Visible implements [scroller.Panel].
func (p *Panel) Visible() bool {
	return p.visible
}

// Destroy implements [scroller.Panel].
func (p *Panel) Destroy() {
	p.destroyed = true
	p.visible = false
	p.handle = nil
}

// Destroyed reports whether the panel was released by the pool.
func (p *Panel) Destroyed() bool {
	return p.destroyed
}

// Bind implements [scroller.Bindable].
func (p *Panel) Bind(h *scroller.Handle) {
	p.handle = h
	if p.bind != nil {
		p.bind(p, h)
	}
}

// Handle returns the handle of the slot the panel belongs to.
func (p *Panel) Handle() *scroller.Handle {
	return p.handle
}

// SetContent sets the text drawn inside the panel.
func (p *Panel) SetContent(s string) {
	p.content = s
}

// SetStyle sets the style the content is rendered with.
func (p *Panel) SetStyle(s lipgloss.Style) {
	p.style = s
}

// start returns the content space coordinate of the panel's leading edge
// along the scroll axis.
func (p *Panel) start() float64 {
	if p.dir == scroller.Horizontal {
		return p.pos.X
	}
	return -p.pos.Y
}

// span returns the screen span of the panel along the scroll axis, relative
// to the viewport position.
func (p *Panel) span(viewport float64) (from, to int) {
	from = int(math.Floor(p.start() - viewport))
	return from, from + int(math.Ceil(p.extent))
}

// render renders the panel at its full size.
func (p *Panel) render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	s := p.style.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(p.content)
	return strings.Split(s, "\n")
}

// drawAt draws the visible part of the panel into area. viewport is the
// position of the viewport along the scroll axis.
func (p *Panel) drawAt(scr uv.Screen, area uv.Rectangle, viewport float64) {
	from, to := p.span(viewport)

	if p.dir == scroller.Horizontal {
		limit := area.Dx()
		if to <= 0 || from >= limit {
			return
		}
		lines := p.render(to-from, area.Dy())
		lo, hi := max(0, -from), min(to-from, limit-from)
		for i := range lines {
			lines[i] = ansi.Cut(lines[i], lo, hi)
		}
		rect := uv.Rect(area.Min.X+from+lo, area.Min.Y, hi-lo, area.Dy())
		uv.NewStyledString(strings.Join(lines, "\n")).Draw(scr, rect)
		return
	}

	limit := area.Dy()
	if to <= 0 || from >= limit {
		return
	}
	lines := p.render(area.Dx(), to-from)
	lo, hi := max(0, -from), min(len(lines), limit-from)
	if lo >= hi {
		return
	}
	lines = lines[lo:hi]
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], area.Dx(), "")
	}
	rect := uv.Rect(area.Min.X, area.Min.Y+from+lo, area.Dx(), hi-lo)
	uv.NewStyledString(strings.Join(lines, "\n")).Draw(scr, rect)
}
