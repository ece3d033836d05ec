package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/scroller/internal/scroller"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c *Content, w, h int, offset scroller.Vec) []string {
	t.Helper()
	scr := uv.NewScreenBuffer(w, h)
	c.DrawAt(&scr, scr.Bounds(), offset)
	out := strings.ReplaceAll(scr.Render(), "\r\n", "\n")
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestTemplateInstantiate(t *testing.T) {
	t.Parallel()

	c := NewContent()
	var bound []int
	tmpl := NewTemplate(c, scroller.Vec{X: 10, Y: 2}, func(p *Panel, h *scroller.Handle) {
		bound = append(bound, p.ID())
		require.Same(t, h, p.Handle())
	})
	require.Equal(t, scroller.Vec{X: 10, Y: 2}, tmpl.Size())

	a := tmpl.Instantiate().(*Panel)
	b := tmpl.Instantiate().(*Panel)
	require.True(t, a.Visible())
	require.Equal(t, 2, c.Len())

	a.Bind(nil)
	b.Bind(nil)
	require.Equal(t, []int{0, 1}, bound)

	a.Destroy()
	require.True(t, a.Destroyed())
	require.Equal(t, []*Panel{b}, c.Panels())
}

func TestDrawVertical(t *testing.T) {
	t.Parallel()

	c := NewContent()
	tmpl := NewTemplate(c, scroller.Vec{Y: 2}, nil)
	for i := range 3 {
		p := tmpl.Instantiate().(*Panel)
		p.Place(scroller.Vertical, scroller.Vec{Y: float64(-3 * i)}, 2)
		p.SetContent("row " + string(rune('a'+i)) + "\nmore")
	}

	lines := render(t, c, 8, 5, scroller.Vec{})
	require.Equal(t, []string{"row a", "more", "", "row b", "more"}, lines)

	// Scrolled by one cell: the first row is clipped at the top.
	lines = render(t, c, 8, 5, scroller.Vec{Y: -1})
	require.Equal(t, []string{"more", "", "row b", "more", ""}, lines)
}

func TestDrawHorizontal(t *testing.T) {
	t.Parallel()

	c := NewContent()
	tmpl := NewTemplate(c, scroller.Vec{X: 4}, nil)
	for i := range 3 {
		p := tmpl.Instantiate().(*Panel)
		p.Place(scroller.Horizontal, scroller.Vec{X: float64(5 * i)}, 4)
		p.SetContent(strings.Repeat(string(rune('a'+i)), 4))
	}

	lines := render(t, c, 12, 1, scroller.Vec{X: 2})
	require.Equal(t, []string{"aa bbbb cccc"}, lines)
}

func TestHiddenPanelsAreSkipped(t *testing.T) {
	t.Parallel()

	c := NewContent()
	tmpl := NewTemplate(c, scroller.Vec{Y: 1}, nil)
	p := tmpl.Instantiate().(*Panel)
	p.Place(scroller.Vertical, scroller.Vec{}, 1)
	p.SetContent("hidden")
	p.SetVisible(false)

	lines := render(t, c, 8, 1, scroller.Vec{})
	require.Equal(t, []string{""}, lines)
	require.Nil(t, c.PanelAt(0, 0, scroller.Vec{}))
}

func TestPanelAt(t *testing.T) {
	t.Parallel()

	c := NewContent()
	tmpl := NewTemplate(c, scroller.Vec{Y: 2}, nil)
	var panels []*Panel
	for i := range 3 {
		p := tmpl.Instantiate().(*Panel)
		p.Place(scroller.Vertical, scroller.Vec{Y: float64(-3 * i)}, 2)
		panels = append(panels, p)
	}

	offset := scroller.Vec{Y: -2}
	require.Same(t, panels[1], c.PanelAt(0, 1, offset))
	require.Same(t, panels[1], c.PanelAt(5, 2, offset))
	// The spacing between rows belongs to no panel.
	require.Nil(t, c.PanelAt(0, 0, offset))
	require.Same(t, panels[2], c.PanelAt(0, 4, offset))
}
