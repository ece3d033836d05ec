// Package scrollertest provides headless implementations of the scroller
// collaborators for tests and tooling.
package scrollertest

import (
	"github.com/charmbracelet/scroller/internal/scroller"
)

// Surface is an in-memory [scroller.ScrollSurface]. It never clamps the
// offset; bounds are the host's concern.
type Surface struct {
	Size      scroller.Vec
	Children  int
	Direction scroller.Direction
	Mode      scroller.Movement
	Extent    float64

	offset    scroller.Vec
	listeners map[int]func(scroller.Vec)
	nextID    int
}

// NewSurface returns a surface with a viewport of the given size and one
// child.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		Size:      scroller.Vec{X: width, Y: height},
		Children:  1,
		Mode:      scroller.Elastic,
		listeners: make(map[int]func(scroller.Vec)),
	}
}

func (s *Surface) Offset() scroller.Vec { return s.offset }

func (s *Surface) SetOffset(v scroller.Vec) {
	if v == s.offset {
		return
	}
	s.offset = v
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fn(v)
		}
	}
}

// ScrollTo is shorthand for SetOffset along the configured direction.
func (s *Surface) ScrollTo(axis float64) {
	if s.Direction == scroller.Horizontal {
		s.SetOffset(scroller.Vec{X: axis})
		return
	}
	s.SetOffset(scroller.Vec{Y: axis})
}

func (s *Surface) Listen(fn func(scroller.Vec)) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func(scroller.Vec))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of registered listeners.
func (s *Surface) Listeners() int { return len(s.listeners) }

func (s *Surface) SetDirection(d scroller.Direction) { s.Direction = d }
func (s *Surface) Movement() scroller.Movement       { return s.Mode }
func (s *Surface) SetMovement(m scroller.Movement)   { s.Mode = m }
func (s *Surface) SetContentExtent(extent float64)   { s.Extent = extent }
func (s *Surface) ViewportSize() scroller.Vec        { return s.Size }
func (s *Surface) ViewportChildren() int             { return s.Children }

// Panel records what the pool does to it.
type Panel struct {
	ID        int
	Position  scroller.Vec
	Extent    float64
	Destroyed bool
	Handle    *scroller.Handle
	// Recorder is subscribed to the panel's handle when it is bound.
	Recorder Recorder

	visible bool
}

func (p *Panel) Place(_ scroller.Direction, pos scroller.Vec, extent float64) {
	p.Position = pos
	p.Extent = extent
}

func (p *Panel) SetVisible(v bool) { p.visible = v }
func (p *Panel) Visible() bool     { return p.visible }
func (p *Panel) Destroy()          { p.Destroyed = true }

// Bind implements [scroller.Bindable].
func (p *Panel) Bind(h *scroller.Handle) {
	p.Handle = h
	h.Subscribe(&p.Recorder)
}

// Template creates [Panel]s and remembers all of them.
type Template struct {
	ItemSize scroller.Vec
	Created  []*Panel
	// OnCreate, when set, is called with every new panel.
	OnCreate func(*Panel)
}

// NewTemplate returns a template for items of the given size.
func NewTemplate(width, height float64) *Template {
	return &Template{ItemSize: scroller.Vec{X: width, Y: height}}
}

func (t *Template) Size() scroller.Vec { return t.ItemSize }

func (t *Template) Instantiate() scroller.Panel {
	p := &Panel{ID: len(t.Created), visible: true}
	t.Created = append(t.Created, p)
	if t.OnCreate != nil {
		t.OnCreate(p)
	}
	return p
}

// Live returns the panels that have not been destroyed.
func (t *Template) Live() []*Panel {
	var live []*Panel
	for _, p := range t.Created {
		if !p.Destroyed {
			live = append(live, p)
		}
	}
	return live
}

// Recorder is a [scroller.Binder] that records every notified index.
type Recorder struct {
	Indices []int
}

func (r *Recorder) IndexChanged(index int) {
	r.Indices = append(r.Indices, index)
}

// Last returns the last notified index, or -1.
func (r *Recorder) Last() int {
	if len(r.Indices) == 0 {
		return -1
	}
	return r.Indices[len(r.Indices)-1]
}

// Reset forgets the recorded indices.
func (r *Recorder) Reset() {
	r.Indices = nil
}
