package scroller

import (
	"fmt"
	"log/slog"
	"math"
)

// fallbackExtent is used when the template reports no size along the scroll
// axis.
const fallbackExtent = 1

// Controller wires a [ScrollSurface], a [Template] and the recycling pool
// together. It listens to offset changes of the surface and keeps the pool
// showing the window around the first visible item.
//
// A Controller is not safe for concurrent use. It is meant to be driven from
// a single UI loop.
type Controller struct {
	cfg     Config
	surface ScrollSurface
	tmpl    Template

	pool   *Pool
	engine *Engine

	// geo is the layout inferred at the last initialization.
	geo      *geometry
	unlisten func()

	// build is non-nil while the pool is being created.
	build *bootstrap

	initialized bool
	last        Result
}

// bootstrap tracks a pool build that may span several [Controller.Step]
// calls.
type bootstrap struct {
	start      int
	reposition bool
}

// New returns a controller. Nothing is built until [Controller.Initialize].
func New(cfg Config, surface ScrollSurface, tmpl Template) *Controller {
	pool := NewPool(tmpl)
	return &Controller{
		cfg:     cfg,
		surface: surface,
		tmpl:    tmpl,
		pool:    pool,
		engine:  NewEngine(pool),
	}
}

// Config returns the controller configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. It takes effect on the next
// [Controller.Initialize].
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// Initialize builds the pool and scrolls to start. When the configuration is
// staggered it only prepares the build; the caller then drives it with
// [Controller.Step], once per tick.
//
// A [ConfigurationError] leaves the controller inert. It can be initialized
// again later.
func (c *Controller) Initialize(start int) error {
	return c.initialize(start, false)
}

func (c *Controller) initialize(start int, reposition bool) error {
	if err := c.verify(); err != nil {
		slog.Warn("Verification failed, the initialization will not be performed", "error", err)
		return &ConfigurationError{Err: err}
	}
	if c.unlisten == nil {
		c.unlisten = c.surface.Listen(c.onOffsetChanged)
	}

	c.surface.SetDirection(c.cfg.Direction)
	switch {
	case c.cfg.Loop:
		c.surface.SetMovement(Unrestricted)
	case c.surface.Movement() == Unrestricted:
		c.surface.SetMovement(Elastic)
	}

	c.Clear()

	geo := c.geometry()
	c.geo = &geo
	c.engine.configure(geo)
	c.surface.SetContentExtent(ContentExtent(geo.count, geo.extent, geo.spacing))

	viewport := c.surface.ViewportSize().Axis(c.cfg.Direction)
	visible := int(math.Ceil(viewport / (geo.extent + geo.spacing)))

	c.pool.Begin(visible, start)
	c.build = &bootstrap{start: start, reposition: reposition}

	slog.Debug("Initializing scroller",
		"direction", c.cfg.Direction,
		"loop", c.cfg.Loop,
		"count", geo.count,
		"pool", c.pool.Cap(),
		"start", start,
		"staggered", c.cfg.Staggered,
	)

	if !c.cfg.Staggered {
		for c.Step() {
		}
	}
	return nil
}

// Step creates the next pooled widget of a pending build and reports whether
// more steps are needed. It returns false when no build is pending.
func (c *Controller) Step() bool {
	if c.build == nil {
		return false
	}
	if c.pool.CreateNext() {
		return true
	}
	c.finish()
	return false
}

func (c *Controller) finish() {
	b := c.build
	c.engine.Seed(b.start)
	c.build = nil

	c.ScrollToIndex(b.start)
	// The surface only notifies on change, so run one pass by hand.
	c.onOffsetChanged(c.surface.Offset())
	if b.reposition {
		c.Refresh()
	}
	c.initialized = true
}

// Reinitialize builds the pool again around the last known first index and
// repositions every slot.
func (c *Controller) Reinitialize() error {
	first := 0
	if c.initialized {
		first = c.engine.First()
	}
	slog.Info("Reinitializing scroller", "first", first)
	return c.initialize(first, true)
}

// Refresh repositions every slot relative to the current first index.
func (c *Controller) Refresh() {
	if c.build != nil || !c.pool.Complete() {
		return
	}
	c.engine.Reposition(c.engine.First())
}

// Clear destroys the pool. A pending staggered build is abandoned.
func (c *Controller) Clear() {
	c.pool.Destroy()
	c.build = nil
	c.engine.Reset()
	c.initialized = false
	c.last = Result{}
}

// Close clears the pool and stops listening to the surface.
func (c *Controller) Close() {
	c.Clear()
	if c.unlisten != nil {
		c.unlisten()
		c.unlisten = nil
	}
}

// ElementPosition returns the content position of the item at index, using
// the item extent cached at initialization.
func (c *Controller) ElementPosition(index int) Vec {
	geo := c.geometry()
	if c.geo != nil {
		geo = *c.geo
	}
	return ElementPosition(index, geo.extent, geo.spacing, geo.dir)
}

// ScrollToIndex moves the surface so index is the first visible item.
func (c *Controller) ScrollToIndex(index int) {
	if c.surface == nil {
		return
	}
	c.surface.SetOffset(c.ElementPosition(index))
}

// Initialized reports whether the pool is built and showing a window.
func (c *Controller) Initialized() bool {
	return c.initialized
}

// Building reports whether a staggered build is pending.
func (c *Controller) Building() bool {
	return c.build != nil
}

// PoolSize returns the number of slots the pool holds once built.
func (c *Controller) PoolSize() int {
	return c.pool.Cap()
}

// Pool returns the slot pool.
func (c *Controller) Pool() *Pool {
	return c.pool
}

// Window returns the represented index of every slot, in slot order.
func (c *Controller) Window() []int {
	return c.pool.Indices()
}

// State returns the window state of the engine.
func (c *Controller) State() WindowState {
	return c.engine.State()
}

// LastResult returns what the most recent offset change did.
func (c *Controller) LastResult() Result {
	return c.last
}

// Stats returns the engine counters since the pool was built.
func (c *Controller) Stats() Stats {
	return c.engine.Stats()
}

func (c *Controller) onOffsetChanged(offset Vec) {
	if c.build != nil || !c.pool.Complete() {
		return
	}
	c.last = c.engine.Update(offset)
}

func (c *Controller) verify() error {
	if c.tmpl == nil {
		return ErrNoTemplate
	}
	if c.surface == nil {
		return ErrNoSurface
	}
	if n := c.surface.ViewportChildren(); n <= 0 {
		return fmt.Errorf("sizing reference: %w", ErrNoViewportChildren)
	}
	return nil
}

func (c *Controller) geometry() geometry {
	return geometry{
		dir:     c.cfg.Direction,
		loop:    c.cfg.Loop,
		count:   max(0, c.cfg.Count),
		extent:  c.itemExtent(),
		spacing: max(0, c.cfg.Spacing),
	}
}

func (c *Controller) itemExtent() float64 {
	if c.tmpl == nil {
		return fallbackExtent
	}
	if extent := c.tmpl.Size().Axis(c.cfg.Direction); extent > 0 {
		return extent
	}
	return fallbackExtent
}
