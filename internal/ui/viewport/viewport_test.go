package viewport

import (
	"strings"
	"testing"

	"github.com/charmbracelet/scroller/internal/scroller"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"
)

type stubLayer struct {
	offsets []scroller.Vec
	area    uv.Rectangle
}

func (s *stubLayer) DrawAt(_ uv.Screen, area uv.Rectangle, offset scroller.Vec) {
	s.area = area
	s.offsets = append(s.offsets, offset)
}

func newViewport(dir scroller.Direction, extent float64) *Viewport {
	v := New()
	v.SetDirection(dir)
	v.SetSize(20, 10)
	v.SetContentExtent(extent)
	return v
}

func TestSetOffsetClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      scroller.Direction
		movement scroller.Movement
		scroll   float64
		want     scroller.Vec
	}{
		{"vertical past end", scroller.Vertical, scroller.Elastic, 500, scroller.Vec{Y: -90}},
		{"vertical before start", scroller.Vertical, scroller.Clamped, -5, scroller.Vec{}},
		{"vertical inside", scroller.Vertical, scroller.Elastic, 12, scroller.Vec{Y: -12}},
		{"horizontal past end", scroller.Horizontal, scroller.Elastic, 500, scroller.Vec{X: 80}},
		{"unrestricted", scroller.Vertical, scroller.Unrestricted, -37, scroller.Vec{Y: 37}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newViewport(tt.dir, 100)
			v.SetMovement(tt.movement)
			v.ScrollTo(tt.scroll)
			require.Equal(t, tt.want, v.Offset())
		})
	}
}

func TestSetOffsetIgnoresCrossAxis(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Vertical, 100)
	v.SetOffset(scroller.Vec{X: 7, Y: -3})
	require.Equal(t, scroller.Vec{Y: -3}, v.Offset())
}

func TestContentShorterThanViewport(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Vertical, 4)
	v.ScrollBy(3)
	require.Equal(t, scroller.Vec{}, v.Offset())
	v.ScrollToEnd()
	require.Equal(t, scroller.Vec{}, v.Offset())
}

func TestListeners(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Vertical, 100)
	var got []float64
	cancel := v.Listen(func(o scroller.Vec) { got = append(got, o.Y) })

	v.ScrollBy(2)
	v.ScrollBy(0)
	v.ScrollBy(-1)
	require.Equal(t, []float64{-2, -1}, got)

	cancel()
	v.ScrollBy(5)
	require.Len(t, got, 2)
}

func TestShrinkingContentReclamps(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Horizontal, 100)
	v.ScrollToEnd()
	require.Equal(t, 80.0, v.Position())

	v.SetContentExtent(30)
	require.Equal(t, 10.0, v.Position())

	v.SetSize(40, 10)
	require.Equal(t, 0.0, v.Position())
}

func TestDrawChildren(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Vertical, 100)
	layer := &stubLayer{}
	v.Add(layer)
	require.Equal(t, 1, v.ViewportChildren())

	v.ScrollBy(4)
	scr := uv.NewScreenBuffer(20, 10)
	v.Draw(&scr, scr.Bounds())

	require.Equal(t, []scroller.Vec{{Y: -4}}, layer.offsets)
	// The scrollbar takes the last column.
	require.Equal(t, 19, layer.area.Dx())
	require.Equal(t, 10, layer.area.Dy())
}

func TestScrollbar(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Vertical, 100)
	area := uv.Rect(0, 0, 20, 10)

	bar := strings.Split(v.scrollbarView(area), "\n")
	require.Len(t, bar, 10)
	require.Equal(t, scrollThumbChar, bar[0])
	require.Equal(t, scrollTrackChar, bar[9])

	v.ScrollToEnd()
	bar = strings.Split(v.scrollbarView(area), "\n")
	require.Equal(t, scrollTrackChar, bar[0])
	require.Equal(t, scrollThumbChar, bar[9])

	v.SetScrollbar(false)
	require.Empty(t, v.scrollbarView(area))
}

func TestScrollbarHiddenWhenContentFits(t *testing.T) {
	t.Parallel()

	v := newViewport(scroller.Horizontal, 15)
	require.Empty(t, v.scrollbarView(uv.Rect(0, 0, 20, 10)))

	layer := &stubLayer{}
	v.Add(layer)
	scr := uv.NewScreenBuffer(20, 10)
	v.Draw(&scr, scr.Bounds())
	require.Equal(t, 20, layer.area.Dx())
	require.Equal(t, 10, layer.area.Dy())
}
