package scroller

// geometry is what the pool needs to know to place and show a slot.
type geometry struct {
	dir     Direction
	loop    bool
	count   int
	extent  float64
	spacing float64
}

// Pool owns the fixed set of pooled panels and the virtual index each of them
// represents. The pool holds the visible count plus one margin slot on each
// side of the viewport.
type Pool struct {
	tmpl Template
	geo  geometry

	panels  []Panel
	handles []*Handle
	// indices holds the represented virtual index of each slot.
	indices []int

	capacity int
	first    int // first index the pool is being built from
}

// NewPool returns an empty pool creating its panels from tmpl.
func NewPool(tmpl Template) *Pool {
	return &Pool{tmpl: tmpl}
}

func (p *Pool) configure(geo geometry) {
	p.geo = geo
}

// Begin prepares an incremental build of visibleCount+2 slots, the first of
// which represents first-1. Any existing slots are destroyed.
func (p *Pool) Begin(visibleCount, first int) {
	p.Destroy()
	p.capacity = max(0, visibleCount) + 2
	p.first = first
}

// CreateNext creates the next slot and reports whether more remain.
func (p *Pool) CreateNext() bool {
	if p.Complete() {
		return false
	}

	slot := len(p.panels)
	panel := p.tmpl.Instantiate()
	handle := newHandle(slot)

	p.panels = append(p.panels, panel)
	p.handles = append(p.handles, handle)
	p.indices = append(p.indices, 0)

	if b, ok := panel.(Bindable); ok {
		b.Bind(handle)
	}
	p.apply(slot, p.first-1+slot)

	return !p.Complete()
}

// Create builds the whole pool at once.
func (p *Pool) Create(visibleCount, first int) {
	p.Begin(visibleCount, first)
	for p.CreateNext() {
	}
}

// Reassign moves the slot representing oldIndex to newIndex. It reports
// false, and does nothing, when no slot represents oldIndex.
func (p *Pool) Reassign(oldIndex, newIndex int) bool {
	slot := p.find(oldIndex)
	if slot < 0 {
		return false
	}
	p.apply(slot, newIndex)
	return true
}

// ReassignSlot moves slot to index regardless of what it represented.
func (p *Pool) ReassignSlot(slot, index int) {
	if slot < 0 || slot >= len(p.panels) {
		return
	}
	p.apply(slot, index)
}

// Destroy releases every panel. It is safe on an empty or partially built
// pool.
func (p *Pool) Destroy() {
	for i, panel := range p.panels {
		if panel != nil {
			panel.Destroy()
		}
		p.handles[i].release()
	}
	p.panels = nil
	p.handles = nil
	p.indices = nil
	p.capacity = 0
}

// Len returns the number of slots created so far.
func (p *Pool) Len() int {
	return len(p.panels)
}

// Cap returns the number of slots the pool is being built to.
func (p *Pool) Cap() int {
	return p.capacity
}

// Complete reports whether every slot has been created.
func (p *Pool) Complete() bool {
	return p.capacity > 0 && len(p.panels) == p.capacity
}

// Indices returns the represented index of every slot, in slot order.
func (p *Pool) Indices() []int {
	return append([]int(nil), p.indices...)
}

// Handle returns the handle of slot, or nil.
func (p *Pool) Handle(slot int) *Handle {
	if slot < 0 || slot >= len(p.handles) {
		return nil
	}
	return p.handles[slot]
}

func (p *Pool) find(index int) int {
	for slot, idx := range p.indices {
		if idx == index {
			return slot
		}
	}
	return -1
}

// apply places slot at index and runs the visibility policy.
func (p *Pool) apply(slot, index int) {
	p.indices[slot] = index
	handle := p.handles[slot]
	handle.represented = index

	panel := p.panels[slot]
	panel.Place(p.geo.dir, ElementPosition(index, p.geo.extent, p.geo.spacing, p.geo.dir), p.geo.extent)

	if index >= 0 && index < p.geo.count {
		if !panel.Visible() {
			panel.SetVisible(true)
		}
		handle.notify(index)
		return
	}

	if !p.geo.loop || p.geo.count <= 0 {
		panel.SetVisible(false)
		return
	}

	if !panel.Visible() {
		panel.SetVisible(true)
	}
	handle.notify(DisplayIndex(index, p.geo.count))
}
