package model

import (
	"fmt"
	"log/slog"
	"maps"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/common"
	"github.com/charmbracelet/scroller/internal/ui/panel"
	"github.com/charmbracelet/scroller/internal/ui/viewport"
	"github.com/charmbracelet/scroller/internal/uiutil"
	uv "github.com/charmbracelet/ultraviolet"
)

// stepInterval is the delay between two widgets of a staggered build.
const stepInterval = 30 * time.Millisecond

// buildStepMsg drives one step of a staggered build.
type buildStepMsg struct {
	id int
}

// List is the recycling list: a viewport, the panels living in it and the
// controller keeping them on screen.
type List struct {
	com *common.Common

	viewport *viewport.Viewport
	content  *panel.Content
	tmpl     *panel.Template
	ctrl     *scroller.Controller

	rows    map[*panel.Panel]*row
	clicked int

	// build identifies the current staggered build. Steps of older builds
	// are dropped.
	build int
	// start is the first index of the last build.
	start int
}

// NewList creates a new [List] from the configuration in com.
func NewList(com *common.Common) *List {
	l := &List{
		com:     com,
		content: panel.NewContent(),
		rows:    make(map[*panel.Panel]*row),
		clicked: -1,
	}

	l.viewport = viewport.New()
	l.viewport.SetStyles(viewport.Styles{
		Track: com.Styles.Scrollbar.Track,
		Thumb: com.Styles.Scrollbar.Thumb,
	})
	l.viewport.SetMovement(com.Config.Movement)
	l.viewport.Add(l.content)

	l.tmpl = panel.NewTemplate(l.content, com.ItemSize(), l.bind)
	l.ctrl = scroller.New(com.Config.Scroller(), l.viewport, l.tmpl)
	return l
}

func (l *List) bind(p *panel.Panel, h *scroller.Handle) {
	r := newRow(p, &l.com.Styles, l.clickedIndex)
	h.Subscribe(r)
	l.rows[p] = r
}

func (l *List) clickedIndex() int {
	return l.clicked
}

// SetSize sets the size of the list viewport.
func (l *List) SetSize(width, height int) {
	l.viewport.SetSize(width, height)
}

// Size returns the size of the list viewport.
func (l *List) Size() (width, height int) {
	return l.viewport.Size()
}

// Controller returns the scroller controller.
func (l *List) Controller() *scroller.Controller {
	return l.ctrl
}

// Initialize builds the pool and scrolls to start. A staggered build returns
// the command driving it.
func (l *List) Initialize(start int) tea.Cmd {
	l.start = start
	return l.afterInit(l.ctrl.Initialize(start))
}

// Reinitialize rebuilds the pool around the current first index.
func (l *List) Reinitialize() tea.Cmd {
	l.start = 0
	if l.ctrl.Initialized() {
		l.start = l.ctrl.State().First
	}
	return l.afterInit(l.ctrl.Reinitialize())
}

// Rebuild builds the pool again for the current viewport. A pending
// staggered build restarts from its start index.
func (l *List) Rebuild() tea.Cmd {
	switch {
	case l.ctrl.Building():
		return l.Initialize(l.start)
	case l.ctrl.Initialized():
		return l.Reinitialize()
	}
	return nil
}

// Reconfigure applies fn to the scroller configuration and builds the pool
// again around the current first index.
func (l *List) Reconfigure(fn func(cfg *scroller.Config)) tea.Cmd {
	cfg := l.ctrl.Config()
	fn(&cfg)
	l.ctrl.SetConfig(cfg)

	first := 0
	if l.ctrl.Initialized() {
		first = l.ctrl.State().First
	}
	if !cfg.Loop {
		first = scroller.DisplayIndex(first, cfg.Count)
	}
	return l.Initialize(first)
}

func (l *List) afterInit(err error) tea.Cmd {
	l.prune()
	if err != nil {
		return uiutil.ReportError(err)
	}
	if l.ctrl.Building() {
		l.build++
		return l.step()
	}
	return nil
}

// prune forgets the rows of destroyed panels.
func (l *List) prune() {
	maps.DeleteFunc(l.rows, func(p *panel.Panel, _ *row) bool {
		return p.Destroyed()
	})
}

func (l *List) step() tea.Cmd {
	id := l.build
	return tea.Tick(stepInterval, func(time.Time) tea.Msg {
		return buildStepMsg{id: id}
	})
}

// Step handles a staggered build step.
func (l *List) Step(msg buildStepMsg) tea.Cmd {
	if msg.id != l.build || !l.ctrl.Building() {
		return nil
	}
	if l.ctrl.Step() {
		return l.step()
	}
	return uiutil.ReportInfo(fmt.Sprintf("Pool ready with %d widgets", l.ctrl.PoolSize()))
}

// Refresh repositions every slot.
func (l *List) Refresh() {
	l.ctrl.Refresh()
}

// Clear destroys the pool.
func (l *List) Clear() {
	l.ctrl.Clear()
	l.prune()
}

// Close clears the pool and detaches the controller from the viewport.
func (l *List) Close() {
	l.ctrl.Close()
}

// ScrollBy scrolls by the given number of cells.
func (l *List) ScrollBy(cells int) {
	l.viewport.ScrollBy(float64(cells))
}

// PageSize returns the number of cells a page scroll moves.
func (l *List) PageSize() int {
	return max(1, l.viewport.Page())
}

// ScrollToFirst scrolls to the first item.
func (l *List) ScrollToFirst() {
	l.ctrl.ScrollToIndex(0)
}

// ScrollToLast scrolls to the last item.
func (l *List) ScrollToLast() {
	l.ctrl.ScrollToIndex(max(0, l.ctrl.Config().Count-1))
}

// Jump scrolls by whole items.
func (l *List) Jump(items int) {
	l.ctrl.ScrollToIndex(l.ctrl.State().First + items)
}

// Click handles a click at (x, y) relative to the list area.
func (l *List) Click(x, y int) tea.Cmd {
	p := l.content.PanelAt(x, y, l.viewport.Offset())
	if p == nil {
		return nil
	}
	r, ok := l.rows[p]
	if !ok || r.Index() < 0 {
		return nil
	}
	l.clicked = r.Index()
	for _, r := range l.rows {
		r.render()
	}
	slog.Info("Item clicked", "index", l.clicked)
	return uiutil.ReportInfo(fmt.Sprintf("click #%d", l.clicked))
}

// CopyClicked copies the label of the last clicked item to the clipboard.
func (l *List) CopyClicked() tea.Cmd {
	if l.clicked < 0 {
		return uiutil.ReportWarn("Click an item first")
	}
	text := fmt.Sprintf("Item #%d", l.clicked)
	return tea.Sequence(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteAll(text); err != nil {
				slog.Debug("System clipboard unavailable", "error", err)
			}
			return nil
		},
		uiutil.ReportInfo(text+" copied to clipboard"),
	)
}

// Clicked returns the index of the last clicked item, or -1.
func (l *List) Clicked() int {
	return l.clicked
}

// Draw draws the list into area.
func (l *List) Draw(scr uv.Screen, area uv.Rectangle) {
	l.viewport.Draw(scr, area)
}
