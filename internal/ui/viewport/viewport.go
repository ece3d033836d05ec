// Package viewport implements the terminal scroll surface the recycling list
// is attached to.
package viewport

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/scroller/internal/scroller"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"
	"github.com/charmbracelet/x/exp/ordered"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
	hTrackChar      = "─"
	hThumbChar      = "▀"
)

// Layer is a child drawn inside the viewport. Layers receive the offset so
// they can translate content space into screen space.
type Layer interface {
	DrawAt(scr uv.Screen, area uv.Rectangle, offset scroller.Vec)
}

// Styles holds the scrollbar styles.
type Styles struct {
	Track lipgloss.Style
	Thumb lipgloss.Style
}

// Viewport is a cell based [scroller.ScrollSurface].
type Viewport struct {
	width, height int

	dir      scroller.Direction
	movement scroller.Movement
	offset   scroller.Vec
	// extent is the length of the content along the scroll axis.
	extent float64

	listeners map[int]func(scroller.Vec)
	nextID    int

	children []Layer

	styles    Styles
	scrollbar bool
}

var _ scroller.ScrollSurface = (*Viewport)(nil)

// New returns an empty viewport.
func New() *Viewport {
	return &Viewport{
		movement:  scroller.Elastic,
		listeners: make(map[int]func(scroller.Vec)),
		scrollbar: true,
	}
}

// SetStyles sets the scrollbar styles.
func (v *Viewport) SetStyles(s Styles) {
	v.styles = s
}

// SetScrollbar toggles the scrollbar.
func (v *Viewport) SetScrollbar(show bool) {
	v.scrollbar = show
}

// SetSize sets the viewport size in cells and re-applies the bounds.
func (v *Viewport) SetSize(width, height int) {
	v.width, v.height = width, height
	v.SetOffset(v.offset)
}

// Size returns the viewport size in cells.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Add adds a child layer.
func (v *Viewport) Add(l Layer) {
	v.children = append(v.children, l)
}

// Offset implements [scroller.ScrollSurface].
func (v *Viewport) Offset() scroller.Vec {
	return v.offset
}

// SetOffset implements [scroller.ScrollSurface]. Unless the movement is
// unrestricted, the offset is kept inside the content.
func (v *Viewport) SetOffset(offset scroller.Vec) {
	// Scrolling is restricted to one axis.
	switch v.dir {
	case scroller.Horizontal:
		offset.Y = 0
		if v.movement != scroller.Unrestricted {
			offset.X = ordered.Clamp(offset.X, 0, v.maxPosition())
		}
	default:
		offset.X = 0
		if v.movement != scroller.Unrestricted {
			offset.Y = -ordered.Clamp(-offset.Y, 0, v.maxPosition())
		}
	}

	if offset == v.offset {
		return
	}
	v.offset = offset
	for id := 0; id < v.nextID; id++ {
		if fn, ok := v.listeners[id]; ok {
			fn(offset)
		}
	}
}

// Listen implements [scroller.ScrollSurface].
func (v *Viewport) Listen(fn func(scroller.Vec)) func() {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

// SetDirection implements [scroller.ScrollSurface].
func (v *Viewport) SetDirection(dir scroller.Direction) {
	v.dir = dir
}

// Direction returns the scroll direction.
func (v *Viewport) Direction() scroller.Direction {
	return v.dir
}

// Movement implements [scroller.ScrollSurface].
func (v *Viewport) Movement() scroller.Movement {
	return v.movement
}

// SetMovement implements [scroller.ScrollSurface].
func (v *Viewport) SetMovement(m scroller.Movement) {
	v.movement = m
}

// SetContentExtent implements [scroller.ScrollSurface].
func (v *Viewport) SetContentExtent(extent float64) {
	v.extent = extent
	v.SetOffset(v.offset)
}

// ContentExtent returns the length of the content along the scroll axis.
func (v *Viewport) ContentExtent() float64 {
	return v.extent
}

// ViewportSize implements [scroller.ScrollSurface].
func (v *Viewport) ViewportSize() scroller.Vec {
	return scroller.Vec{X: float64(v.width), Y: float64(v.height)}
}

// ViewportChildren implements [scroller.ScrollSurface].
func (v *Viewport) ViewportChildren() int {
	return len(v.children)
}

// Page returns the viewport length along the scroll axis.
func (v *Viewport) Page() int {
	if v.dir == scroller.Horizontal {
		return v.width
	}
	return v.height
}

// Position returns how far the viewport is from the start of the content.
func (v *Viewport) Position() float64 {
	if v.dir == scroller.Horizontal {
		return v.offset.X
	}
	return -v.offset.Y
}

// ScrollBy scrolls toward the end of the content by cells. Negative values
// scroll toward the start.
func (v *Viewport) ScrollBy(cells float64) {
	v.ScrollTo(v.Position() + cells)
}

// ScrollTo moves the viewport to pos cells from the start of the content.
func (v *Viewport) ScrollTo(pos float64) {
	if v.dir == scroller.Horizontal {
		v.SetOffset(scroller.Vec{X: pos})
		return
	}
	v.SetOffset(scroller.Vec{Y: -pos})
}

// ScrollToEnd scrolls so the end of the content is in view.
func (v *Viewport) ScrollToEnd() {
	v.ScrollTo(v.maxPosition())
}

func (v *Viewport) maxPosition() float64 {
	return max(0, v.extent-float64(v.Page()))
}

// Draw draws the children and the scrollbar into area.
func (v *Viewport) Draw(scr uv.Screen, area uv.Rectangle) {
	screen.ClearArea(scr, area)
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}

	content := area
	bar := v.scrollbarView(area)
	if bar != "" {
		if v.dir == scroller.Horizontal {
			var barArea uv.Rectangle
			content, barArea = uv.SplitVertical(area, uv.Fixed(area.Dy()-1))
			uv.NewStyledString(bar).Draw(scr, barArea)
		} else {
			var barArea uv.Rectangle
			content, barArea = uv.SplitHorizontal(area, uv.Fixed(area.Dx()-1))
			uv.NewStyledString(bar).Draw(scr, barArea)
		}
	}

	for _, child := range v.children {
		child.DrawAt(scr, content, v.offset)
	}
}

// scrollbarView renders the scrollbar for area, or returns an empty string
// when the content fits.
func (v *Viewport) scrollbarView(area uv.Rectangle) string {
	if !v.scrollbar {
		return ""
	}
	track := area.Dy()
	if v.dir == scroller.Horizontal {
		track = area.Dx()
	}
	page := float64(v.Page())
	if track <= 0 || v.extent <= page {
		return ""
	}

	thumb := ordered.Clamp(int(float64(track)*page/v.extent), 1, track)

	pos := v.Position()
	if v.movement == scroller.Unrestricted {
		// Looped content repeats, so show where we are within one lap.
		pos = math.Mod(math.Mod(pos, v.extent)+v.extent, v.extent)
	}
	scrollable := v.extent - page
	top := 0
	if scrollable > 0 {
		top = int(ordered.Clamp(pos/scrollable, 0, 1) * float64(track-thumb))
	}

	cells := make([]string, track)
	for i := range cells {
		thumbCell := i >= top && i < top+thumb
		switch {
		case v.dir == scroller.Horizontal && thumbCell:
			cells[i] = v.styles.Thumb.Render(hThumbChar)
		case v.dir == scroller.Horizontal:
			cells[i] = v.styles.Track.Render(hTrackChar)
		case thumbCell:
			cells[i] = v.styles.Thumb.Render(scrollThumbChar)
		default:
			cells[i] = v.styles.Track.Render(scrollTrackChar)
		}
	}
	if v.dir == scroller.Horizontal {
		return strings.Join(cells, "")
	}
	return strings.Join(cells, "\n")
}
