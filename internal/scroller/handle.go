package scroller

// Binder reacts to a pooled widget switching to a different virtual item.
// Implementations must refresh their content idempotently.
type Binder interface {
	IndexChanged(index int)
}

// Handle identifies one pool slot and notifies its subscribers when the slot
// represents a new item.
type Handle struct {
	slot        int
	index       int // last display index notified
	represented int // current virtual index, not reduced

	binders []Binder
}

func newHandle(slot int) *Handle {
	return &Handle{slot: slot}
}

// Slot returns the position of the handle in the pool.
func (h *Handle) Slot() int {
	return h.slot
}

// Index returns the last display index that was notified.
func (h *Handle) Index() int {
	return h.index
}

// Represented returns the virtual index of the slot. For looped lists it is
// not reduced modulo the item count.
func (h *Handle) Represented() int {
	return h.represented
}

// Subscribe adds b to the subscribers. Binders must be comparable; adding
// the same binder twice has no effect.
func (h *Handle) Subscribe(b Binder) {
	if b == nil {
		return
	}
	for _, existing := range h.binders {
		if existing == b {
			return
		}
	}
	h.binders = append(h.binders, b)
}

// Unsubscribe removes b from the subscribers.
func (h *Handle) Unsubscribe(b Binder) {
	for i, existing := range h.binders {
		if existing == b {
			h.binders = append(h.binders[:i], h.binders[i+1:]...)
			return
		}
	}
}

// notify records index and dispatches it synchronously.
func (h *Handle) notify(index int) {
	h.index = index
	// Copy so a binder may unsubscribe itself while being notified.
	binders := append([]Binder(nil), h.binders...)
	for _, b := range binders {
		b.IndexChanged(index)
	}
}

func (h *Handle) release() {
	h.binders = nil
}
