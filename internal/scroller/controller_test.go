package scroller_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/scroller/scrollertest"
	"github.com/stretchr/testify/require"
)

const rowHeight = 64

// newVertical returns a controller over a viewport that fits five rows, so
// the pool holds seven slots.
func newVertical(t *testing.T, cfg scroller.Config) (*scroller.Controller, *scrollertest.Surface, *scrollertest.Template) {
	t.Helper()
	surface := scrollertest.NewSurface(400, 5*rowHeight)
	tmpl := scrollertest.NewTemplate(400, rowHeight)
	return scroller.New(cfg, surface, tmpl), surface, tmpl
}

func requireContiguous(t *testing.T, c *scroller.Controller) {
	t.Helper()
	window := c.Window()
	sorted := slices.Clone(window)
	slices.Sort(sorted)
	first := c.State().First
	for i, idx := range sorted {
		require.Equal(t, first-1+i, idx, "window %v is not contiguous around first index %d", window, first)
	}
}

func resetRecorders(tmpl *scrollertest.Template) {
	for _, p := range tmpl.Created {
		p.Recorder.Reset()
	}
}

func notifications(tmpl *scrollertest.Template) int {
	var n int
	for _, p := range tmpl.Live() {
		n += len(p.Recorder.Indices)
	}
	return n
}

func TestInitializeBuildsWindow(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))

	require.True(t, c.Initialized())
	require.Equal(t, 7, c.PoolSize())
	require.Len(t, tmpl.Live(), 7)
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, c.Window())
	require.Equal(t, 0, c.State().First)
	require.Equal(t, 3200.0, surface.Extent)

	// The margin slot before the first item is out of range.
	require.False(t, tmpl.Created[0].Visible())
	require.Empty(t, tmpl.Created[0].Recorder.Indices)
	for i, p := range tmpl.Created[1:] {
		require.True(t, p.Visible())
		require.Equal(t, i, p.Recorder.Last())
		require.Equal(t, scroller.Vec{Y: float64(-i * rowHeight)}, p.Position)
		require.Equal(t, float64(rowHeight), p.Extent)
	}
}

func TestJumpRepositionsWholePool(t *testing.T) {
	t.Parallel()

	c, surface, _ := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))

	surface.ScrollTo(-10 * rowHeight)

	res := c.LastResult()
	require.Equal(t, scroller.PathReset, res.Path)
	require.Equal(t, 10, res.First)
	require.Equal(t, 7, res.Moves)
	require.Equal(t, []int{9, 10, 11, 12, 13, 14, 15}, c.Window())
}

func TestSingleRowScrollMovesOneSlot(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	resetRecorders(tmpl)

	surface.ScrollTo(-rowHeight)

	res := c.LastResult()
	require.Equal(t, scroller.PathBackward, res.Path)
	require.Equal(t, -1, res.Delta)
	require.Equal(t, 1, res.Moves)
	// The leading margin slot became the trailing one.
	require.Equal(t, []int{6, 0, 1, 2, 3, 4, 5}, c.Window())
	require.Equal(t, 1, notifications(tmpl))
	require.Equal(t, 6, tmpl.Created[0].Recorder.Last())
	require.True(t, tmpl.Created[0].Visible())
	requireContiguous(t, c)

	resetRecorders(tmpl)
	surface.ScrollTo(0)

	res = c.LastResult()
	require.Equal(t, scroller.PathForward, res.Path)
	require.Equal(t, 1, res.Moves)
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, c.Window())
	require.Equal(t, 0, notifications(tmpl))
	require.False(t, tmpl.Created[0].Visible())
}

func TestScrollWithinRowIsNoop(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	surface.ScrollTo(-3 * rowHeight)
	before := c.Window()
	stats := c.Stats()
	resetRecorders(tmpl)

	surface.ScrollTo(-3*rowHeight - 10)
	surface.ScrollTo(-3*rowHeight - 20)

	require.Equal(t, scroller.PathNone, c.LastResult().Path)
	require.Equal(t, before, c.Window())
	require.Equal(t, stats, c.Stats())
	require.Zero(t, notifications(tmpl))
}

func TestLoopDisplayIndices(t *testing.T) {
	t.Parallel()

	c, _, tmpl := newVertical(t, scroller.Config{Count: 10, Loop: true})
	require.NoError(t, c.Initialize(0))

	// The leading margin wraps to the last item instead of hiding.
	first := tmpl.Created[0]
	require.True(t, first.Visible())
	require.Equal(t, 9, first.Recorder.Last())
	require.Equal(t, 9, first.Handle.Index())
	require.Equal(t, -1, first.Handle.Represented())

	c.Pool().ReassignSlot(0, 12)
	require.Equal(t, 2, first.Recorder.Last())
	require.Equal(t, scroller.Vec{Y: -12 * rowHeight}, first.Position)

	c.Pool().ReassignSlot(0, -1)
	require.Equal(t, 9, first.Recorder.Last())
	require.Equal(t, scroller.Vec{Y: rowHeight}, first.Position)
}

func TestLoopForcesUnrestrictedMovement(t *testing.T) {
	t.Parallel()

	c, surface, _ := newVertical(t, scroller.Config{Count: 10, Loop: true})
	surface.Mode = scroller.Clamped
	require.NoError(t, c.Initialize(0))
	require.Equal(t, scroller.Unrestricted, surface.Mode)

	c.SetConfig(scroller.Config{Count: 10})
	require.NoError(t, c.Initialize(0))
	require.Equal(t, scroller.Elastic, surface.Mode)

	surface.Mode = scroller.Clamped
	require.NoError(t, c.Initialize(0))
	require.Equal(t, scroller.Clamped, surface.Mode)
}

func TestRandomScrollKeepsWindowContiguous(t *testing.T) {
	t.Parallel()

	for _, loop := range []bool{false, true} {
		c, surface, tmpl := newVertical(t, scroller.Config{Count: 40, Loop: loop})
		require.NoError(t, c.Initialize(0))

		rng := rand.New(rand.NewPCG(1, 2))
		offset := 0.0
		for range 2000 {
			switch rng.IntN(4) {
			case 0:
				// Jump far away.
				offset = float64(rng.IntN(8000) - 4000)
			default:
				offset += float64(rng.IntN(5*rowHeight) - 5*rowHeight/2)
			}
			surface.ScrollTo(offset)
			requireContiguous(t, c)

			window := c.Window()
			require.Len(t, slices.Compact(slices.Sorted(slices.Values(window))), len(window))

			for _, p := range tmpl.Live() {
				rep := p.Handle.Represented()
				for _, idx := range p.Recorder.Indices {
					require.GreaterOrEqual(t, idx, 0)
					require.Less(t, idx, 40)
				}
				if !loop {
					require.Equal(t, rep >= 0 && rep < 40, p.Visible(), "slot representing %d", rep)
				} else {
					require.True(t, p.Visible())
					require.Equal(t, scroller.DisplayIndex(rep, 40), p.Handle.Index())
				}
				require.Equal(t, c.ElementPosition(rep), p.Position)
			}
		}
	}
}

func TestNonLoopOutOfRangeIsHidden(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	resetRecorders(tmpl)

	surface.ScrollTo(-46 * rowHeight)

	require.Equal(t, []int{45, 46, 47, 48, 49, 50, 51}, c.Window())
	for _, p := range tmpl.Live() {
		rep := p.Handle.Represented()
		if rep >= 50 {
			require.False(t, p.Visible())
		}
		for _, idx := range p.Recorder.Indices {
			require.Less(t, idx, 50)
		}
	}
}

func TestInitializeAtStartIndex(t *testing.T) {
	t.Parallel()

	c, surface, _ := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(10))

	require.Equal(t, scroller.Vec{Y: -10 * rowHeight}, surface.Offset())
	require.Equal(t, []int{9, 10, 11, 12, 13, 14, 15}, c.Window())
	require.Equal(t, 10, c.State().First)
}

func TestHorizontal(t *testing.T) {
	t.Parallel()

	surface := scrollertest.NewSurface(50, 3)
	tmpl := scrollertest.NewTemplate(10, 3)
	c := scroller.New(scroller.Config{Direction: scroller.Horizontal, Count: 100, Spacing: 2}, surface, tmpl)
	require.NoError(t, c.Initialize(0))

	// 50 / (10+2) rounds up to five visible columns.
	require.Equal(t, 7, c.PoolSize())
	require.Equal(t, scroller.Horizontal, surface.Direction)
	require.Equal(t, 100*12.0-2, surface.Extent)
	require.Equal(t, scroller.Vec{X: 24}, c.ElementPosition(2))

	surface.ScrollTo(36)
	require.Equal(t, 3, c.State().First)
	requireContiguous(t, c)
}

func TestVerificationFailures(t *testing.T) {
	t.Parallel()

	t.Run("no template", func(t *testing.T) {
		t.Parallel()
		c := scroller.New(scroller.Config{Count: 5}, scrollertest.NewSurface(10, 10), nil)
		err := c.Initialize(0)
		var cfgErr *scroller.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.ErrorIs(t, err, scroller.ErrNoTemplate)
		require.False(t, c.Initialized())
		require.Zero(t, c.Pool().Len())
	})

	t.Run("no surface", func(t *testing.T) {
		t.Parallel()
		c := scroller.New(scroller.Config{Count: 5}, nil, scrollertest.NewTemplate(10, 1))
		require.ErrorIs(t, c.Initialize(0), scroller.ErrNoSurface)
	})

	t.Run("no viewport children then fixed", func(t *testing.T) {
		t.Parallel()
		c, surface, tmpl := newVertical(t, scroller.Config{Count: 5})
		surface.Children = 0
		require.ErrorIs(t, c.Initialize(0), scroller.ErrNoViewportChildren)
		require.Empty(t, tmpl.Created)
		require.Zero(t, surface.Listeners())

		surface.Children = 1
		require.NoError(t, c.Initialize(0))
		require.True(t, c.Initialized())
		require.Equal(t, 1, surface.Listeners())
	})
}

func TestStaggeredBuild(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50, Staggered: true})
	require.NoError(t, c.Initialize(3))
	require.True(t, c.Building())
	require.False(t, c.Initialized())
	require.Empty(t, tmpl.Created)
	require.Equal(t, 3200.0, surface.Extent)

	for i := 1; i < 7; i++ {
		require.True(t, c.Step())
		require.Len(t, tmpl.Created, i)
		// Offset changes are ignored while the pool is incomplete.
		surface.ScrollTo(float64(-i * rowHeight))
		require.Equal(t, scroller.PathNone, c.LastResult().Path)
	}
	require.False(t, c.Step())
	require.False(t, c.Building())
	require.True(t, c.Initialized())
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, c.Window())
	require.Equal(t, scroller.Vec{Y: -3 * rowHeight}, surface.Offset())
	require.False(t, c.Step())
}

func TestInterruptedStaggeredBuild(t *testing.T) {
	t.Parallel()

	c, _, tmpl := newVertical(t, scroller.Config{Count: 50, Staggered: true})
	require.NoError(t, c.Initialize(0))
	c.Step()
	c.Step()
	c.Step()
	require.Len(t, tmpl.Created, 3)

	c.Clear()
	require.False(t, c.Building())
	require.Empty(t, tmpl.Live())
	require.False(t, c.Step())

	// Clearing twice is fine.
	c.Clear()
	require.Empty(t, c.Window())
}

func TestReinitialize(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	surface.ScrollTo(-20 * rowHeight)
	old := tmpl.Live()

	require.NoError(t, c.Reinitialize())

	for _, p := range old {
		require.True(t, p.Destroyed)
	}
	require.Len(t, tmpl.Live(), 7)
	require.Equal(t, []int{19, 20, 21, 22, 23, 24, 25}, c.Window())
	require.True(t, c.Initialized())
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	surface.ScrollTo(-2 * rowHeight)
	resetRecorders(tmpl)

	c.Refresh()

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, c.Window())
	require.Equal(t, 7, notifications(tmpl))
}

func TestCloseStopsListening(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.NoError(t, c.Initialize(0))
	require.Equal(t, 1, surface.Listeners())

	c.Close()
	require.Zero(t, surface.Listeners())
	require.Empty(t, tmpl.Live())
	require.False(t, c.Initialized())

	surface.ScrollTo(-5 * rowHeight)
	require.Empty(t, c.Window())
}

func TestEmptyLoopHidesEverything(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Loop: true})
	require.NoError(t, c.Initialize(0))
	require.Zero(t, surface.Extent)
	for _, p := range tmpl.Live() {
		require.False(t, p.Visible())
		require.Empty(t, p.Recorder.Indices)
	}
}

func TestScrollToIndexWithFractionalSpacing(t *testing.T) {
	t.Parallel()

	surface := scrollertest.NewSurface(10, 15)
	tmpl := scrollertest.NewTemplate(10, 3)
	c := scroller.New(scroller.Config{Count: 1000, Spacing: 0.1}, surface, tmpl)
	require.NoError(t, c.Initialize(0))

	for i := range 1000 {
		c.ScrollToIndex(i)
		require.Equal(t, i, c.State().First, "scrolled to %d", i)
		requireContiguous(t, c)
	}
}

func TestElementPositionUsesInitializedExtent(t *testing.T) {
	t.Parallel()

	c, surface, tmpl := newVertical(t, scroller.Config{Count: 50})
	require.Equal(t, scroller.Vec{Y: -3 * rowHeight}, c.ElementPosition(3))
	require.NoError(t, c.Initialize(0))

	// Panels already placed keep the extent seen at initialization.
	tmpl.ItemSize = scroller.Vec{X: 400, Y: 2 * rowHeight}
	require.Equal(t, scroller.Vec{Y: -3 * rowHeight}, c.ElementPosition(3))

	c.ScrollToIndex(3)
	require.Equal(t, scroller.Vec{Y: -3 * rowHeight}, surface.Offset())
	require.Equal(t, 3, c.State().First)
	requireContiguous(t, c)

	// The next initialization picks the new extent up.
	require.NoError(t, c.Reinitialize())
	require.Equal(t, scroller.Vec{Y: -3 * 2 * rowHeight}, c.ElementPosition(3))
}
