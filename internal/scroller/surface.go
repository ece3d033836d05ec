package scroller

// ScrollSurface is the host scroll container the controller listens to.
type ScrollSurface interface {
	// Offset returns the content position of the viewport's leading edge.
	Offset() Vec
	// SetOffset moves the content. Implementations fire their listeners when
	// the offset changes.
	SetOffset(Vec)
	// Listen registers fn to be called whenever the offset changes and
	// returns a function that removes it.
	Listen(fn func(Vec)) (cancel func())

	// SetDirection restricts scrolling to a single axis.
	SetDirection(Direction)
	Movement() Movement
	SetMovement(Movement)

	// SetContentExtent sets the size of the scrollable region along the
	// scroll axis.
	SetContentExtent(float64)
	// ViewportSize returns the size of the visible area.
	ViewportSize() Vec
	// ViewportChildren returns how many children the viewport holds. A
	// viewport without children cannot be used to size the pool.
	ViewportChildren() int
}

// Panel is a widget owned by the pool and repositioned as the list scrolls.
type Panel interface {
	// Place anchors the panel at pos in content space. The panel spans
	// extent along dir and stretches across the other axis.
	Place(dir Direction, pos Vec, extent float64)
	SetVisible(bool)
	Visible() bool
	// Destroy releases the panel. It is never used again afterwards.
	Destroy()
}

// Template creates panels.
type Template interface {
	// Size returns the size of a single item. The controller caches it when
	// it builds the pool.
	Size() Vec
	Instantiate() Panel
}

// Bindable is implemented by panels that want the [Handle] of their slot.
// Bind is called once, right after the panel is created.
type Bindable interface {
	Bind(h *Handle)
}
