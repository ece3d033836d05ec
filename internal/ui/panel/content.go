package panel

import (
	"slices"

	"github.com/charmbracelet/scroller/internal/scroller"
	uv "github.com/charmbracelet/ultraviolet"
)

// BindFunc is called once for every new panel with the handle of its slot.
// It is where consumers subscribe to index changes.
type BindFunc func(p *Panel, h *scroller.Handle)

// Content owns the live panels and draws them inside the viewport.
type Content struct {
	panels []*Panel
	nextID int
}

// NewContent returns an empty content layer.
func NewContent() *Content {
	return &Content{}
}

// Panels returns the live panels in creation order.
func (c *Content) Panels() []*Panel {
	c.prune()
	return c.panels
}

// Len returns the number of live panels.
func (c *Content) Len() int {
	c.prune()
	return len(c.panels)
}

func (c *Content) add(bind BindFunc) *Panel {
	c.prune()
	p := &Panel{id: c.nextID, visible: true, bind: bind}
	c.nextID++
	c.panels = append(c.panels, p)
	return p
}

func (c *Content) prune() {
	c.panels = slices.DeleteFunc(c.panels, (*Panel).Destroyed)
}

// DrawAt draws every visible panel. It implements the viewport layer.
func (c *Content) DrawAt(scr uv.Screen, area uv.Rectangle, offset scroller.Vec) {
	c.prune()
	for _, p := range c.panels {
		if !p.visible {
			continue
		}
		p.drawAt(scr, area, viewportPosition(p.dir, offset))
	}
}

// PanelAt returns the visible panel under the cell (x, y) of the viewport,
// or nil.
func (c *Content) PanelAt(x, y int, offset scroller.Vec) *Panel {
	c.prune()
	for _, p := range c.panels {
		if !p.visible {
			continue
		}
		pos := y
		if p.dir == scroller.Horizontal {
			pos = x
		}
		from, to := p.span(viewportPosition(p.dir, offset))
		if pos >= from && pos < to {
			return p
		}
	}
	return nil
}

func viewportPosition(dir scroller.Direction, offset scroller.Vec) float64 {
	if dir == scroller.Horizontal {
		return offset.X
	}
	return -offset.Y
}

// Template instantiates panels into a [Content].
type Template struct {
	content *Content
	size    scroller.Vec
	bind    BindFunc
}

var _ scroller.Template = (*Template)(nil)

// NewTemplate returns a template creating panels of the given size in cells.
func NewTemplate(content *Content, size scroller.Vec, bind BindFunc) *Template {
	return &Template{
		content: content,
		size:    size,
		bind:    bind,
	}
}

// Size implements [scroller.Template].
func (t *Template) Size() scroller.Vec {
	return t.size
}

// Instantiate implements [scroller.Template].
func (t *Template) Instantiate() scroller.Panel {
	return t.content.add(t.bind)
}
