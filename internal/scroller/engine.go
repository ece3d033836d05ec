package scroller

import "log/slog"

// Path is the branch the engine took for an offset change.
type Path uint8

const (
	PathNone Path = iota
	PathReset
	PathForward
	PathBackward
)

// String implements [fmt.Stringer].
func (p Path) String() string {
	switch p {
	case PathReset:
		return "reset"
	case PathForward:
		return "forward"
	case PathBackward:
		return "backward"
	default:
		return "none"
	}
}

// WindowState holds the last two computed snapshots of the visible window.
type WindowState struct {
	FirstOld, First int
	LastOld, Last   int
}

// Result describes what a single offset change did to the pool.
type Result struct {
	First, Last int
	Delta       int
	Path        Path
	// Moves is the number of slots that were actually reassigned.
	Moves int
}

// Stats accumulates engine activity since the pool was last built.
type Stats struct {
	Updates int // offset changes that moved the first index
	Resets  int
	Moves   int
	Misses  int // reassignments that found no slot
}

// Engine maps offsets to first indices and recycles pool slots so the pool
// always shows the contiguous window around the first visible index.
type Engine struct {
	pool  *Pool
	geo   geometry
	state WindowState
	stats Stats
}

// NewEngine returns an engine driving pool.
func NewEngine(pool *Pool) *Engine {
	e := &Engine{pool: pool}
	e.Reset()
	return e
}

func (e *Engine) configure(geo geometry) {
	e.geo = geo
	e.pool.configure(geo)
}

// Reset puts the window state back to its sentinel.
func (e *Engine) Reset() {
	e.state = WindowState{FirstOld: -1, First: -1, LastOld: -1, Last: -1}
	e.stats = Stats{}
}

// Seed records that the pool already holds the window for first, as it does
// right after it is built.
func (e *Engine) Seed(first int) {
	last := first + e.pool.Len() - 2
	e.state = WindowState{FirstOld: first, First: first, LastOld: last, Last: last}
}

// State returns the current window state.
func (e *Engine) State() WindowState {
	return e.state
}

// Stats returns the accumulated counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// First returns the last computed first visible index.
func (e *Engine) First() int {
	return e.state.First
}

// Update handles an offset change.
func (e *Engine) Update(offset Vec) Result {
	first := FirstVisibleIndex(offset, e.geo.extent, e.geo.spacing, e.geo.dir)
	e.state.First = first
	if first == e.state.FirstOld {
		return Result{First: first, Last: e.state.LastOld}
	}

	size := e.pool.Len()
	last := first + size - 2
	e.state.Last = last

	delta := e.state.FirstOld - first
	deltaAbs := delta
	if deltaAbs < 0 {
		deltaAbs = -deltaAbs
	}

	res := Result{First: first, Last: last, Delta: delta}
	e.stats.Updates++

	switch {
	case deltaAbs >= size-2:
		slog.Debug("Window jump, repositioning pool", "from", e.state.FirstOld, "to", first)
		res.Path = PathReset
		res.Moves = e.reposition(first)
		e.stats.Resets++
	case delta > 0:
		// Scrolled toward the start: trailing slots become leading slots.
		res.Path = PathForward
		for i := -1; i < deltaAbs; i++ {
			oldIndex := e.state.LastOld - i
			res.Moves += e.move(oldIndex, oldIndex-size)
		}
	case delta < 0:
		// Scrolled toward the end: leading slots become trailing slots. The
		// leading edge of the window is the margin slot before FirstOld.
		res.Path = PathBackward
		edge := e.state.FirstOld - 1
		for i := -1; i < deltaAbs; i++ {
			oldIndex := edge + i
			res.Moves += e.move(oldIndex, oldIndex+size)
		}
	}

	e.state.FirstOld = first
	e.state.LastOld = last
	return res
}

// Reposition lays every slot out again around first.
func (e *Engine) Reposition(first int) int {
	n := e.reposition(first)
	e.state.First, e.state.FirstOld = first, first
	e.state.Last = first + e.pool.Len() - 2
	e.state.LastOld = e.state.Last
	return n
}

func (e *Engine) reposition(first int) int {
	n := e.pool.Len()
	for slot := range n {
		e.pool.ReassignSlot(slot, first-1+slot)
	}
	e.stats.Moves += n
	return n
}

func (e *Engine) move(oldIndex, newIndex int) int {
	if !e.pool.Reassign(oldIndex, newIndex) {
		e.stats.Misses++
		return 0
	}
	e.stats.Moves++
	return 1
}
