package model

import (
	"fmt"
	"image"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/common"
	"github.com/charmbracelet/scroller/internal/uiutil"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"
)

const (
	// Smallest terminal the list is drawn in.
	minWidth  = 20
	minHeight = 6

	// wheelStep is how many cells one wheel notch scrolls.
	wheelStep = 3
	// jumpItems is how many items a jump skips.
	jumpItems = 100
)

// UI represents the main user interface model.
type UI struct {
	com *common.Common

	// The width and height of the terminal in cells.
	width  int
	height int
	layout layout

	keyMap KeyMap
	help   help.Model

	list   *List
	status status

	// started is set once the first window size is known.
	started bool
}

// New creates a new instance of the [UI] model.
func New(com *common.Common) *UI {
	ui := &UI{
		com:    com,
		keyMap: DefaultKeyMap(),
		help:   help.New(),
		list:   NewList(com),
		status: status{com: com},
	}
	ui.help.Styles = com.Styles.Help
	return ui
}

// Init initializes the UI model.
func (m *UI) Init() tea.Cmd {
	return nil
}

// Update handles updates to the UI model.
func (m *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if cmd := m.updateLayoutAndSize(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case buildStepMsg:
		if cmd := m.list.Step(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case uiutil.InfoMsg:
		if cmd := m.status.report(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case uiutil.ClearStatusMsg:
		m.status.clear()
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			break
		}
		pt := image.Pt(msg.X, msg.Y)
		if !pt.In(m.layout.main) {
			break
		}
		if cmd := m.list.Click(msg.X-m.layout.main.Min.X, msg.Y-m.layout.main.Min.Y); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp, tea.MouseWheelLeft:
			m.list.ScrollBy(-wheelStep)
		case tea.MouseWheelDown, tea.MouseWheelRight:
			m.list.ScrollBy(wheelStep)
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPressMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *UI) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	k := &m.keyMap
	switch {
	case key.Matches(msg, k.Quit):
		m.list.Close()
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.updateLayoutAndSize()

	case key.Matches(msg, k.List.Up):
		m.list.ScrollBy(-1)
	case key.Matches(msg, k.List.Down):
		m.list.ScrollBy(1)
	case key.Matches(msg, k.List.PageUp):
		m.list.ScrollBy(-m.list.PageSize())
	case key.Matches(msg, k.List.PageDown):
		m.list.ScrollBy(m.list.PageSize())
	case key.Matches(msg, k.List.Home):
		m.list.ScrollToFirst()
	case key.Matches(msg, k.List.End):
		m.list.ScrollToLast()
	case key.Matches(msg, k.List.JumpBack):
		m.list.Jump(-jumpItems)
	case key.Matches(msg, k.List.JumpForward):
		m.list.Jump(jumpItems)

	case key.Matches(msg, k.Scroller.ToggleLoop):
		return m.list.Reconfigure(func(cfg *scroller.Config) {
			cfg.Loop = !cfg.Loop
		})
	case key.Matches(msg, k.Scroller.ToggleDirection):
		cmd := m.list.Reconfigure(func(cfg *scroller.Config) {
			if cfg.Direction == scroller.Vertical {
				cfg.Direction = scroller.Horizontal
			} else {
				cfg.Direction = scroller.Vertical
			}
		})
		return tea.Batch(cmd, uiutil.ReportInfo(fmt.Sprintf("Scrolling %s", m.list.Controller().Config().Direction)))
	case key.Matches(msg, k.Scroller.Initialize):
		return m.list.Initialize(m.com.Config.StartIndex)
	case key.Matches(msg, k.Scroller.Reinitialize):
		return m.list.Reinitialize()
	case key.Matches(msg, k.Scroller.Refresh):
		m.list.Refresh()
	case key.Matches(msg, k.Scroller.Clear):
		m.list.Clear()
		return uiutil.ReportWarn("Pool cleared, press i to initialize")
	case key.Matches(msg, k.Scroller.Copy):
		return m.list.CopyClicked()
	}
	return nil
}

// Draw implements [tea.Layer] and draws the UI model.
func (m *UI) Draw(scr uv.Screen, area uv.Rectangle) {
	screen.Clear(scr)

	if area.Dx() < minWidth || area.Dy() < minHeight {
		msg := m.com.Styles.WindowTooSmall.Render("Window too small!")
		uv.NewStyledString(msg).Draw(scr, common.CenterRect(area, lipgloss.Width(msg), 1))
		return
	}

	layout := m.layout
	t := &m.com.Styles

	cfg := m.list.Controller().Config()
	header := t.Header.Title.Render("scroller") + " " +
		t.Header.Detail.Render(fmt.Sprintf("%s list of %d items", cfg.Direction, cfg.Count))
	uv.NewStyledString(header).Draw(scr, layout.header)

	m.list.Draw(scr, layout.main)

	uv.NewStyledString(m.status.view(m.list.Controller(), layout.status.Dx())).Draw(scr, layout.status)
	uv.NewStyledString(m.help.View(m)).Draw(scr, layout.help)
}

// View renders the UI model's view.
func (m *UI) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.BackgroundColor = m.com.Styles.Background
	v.MouseMode = tea.MouseModeCellMotion

	canvas := uv.NewScreenBuffer(m.width, m.height)
	m.Draw(canvas, canvas.Bounds())

	content := strings.ReplaceAll(canvas.Render(), "\r\n", "\n") // normalize newlines
	contentLines := strings.Split(content, "\n")
	for i, line := range contentLines {
		// Trim trailing spaces for concise rendering
		contentLines[i] = strings.TrimRight(line, " ")
	}

	v.Content = strings.Join(contentLines, "\n")
	return v
}

// ShortHelp implements [help.KeyMap].
func (m *UI) ShortHelp() []key.Binding {
	k := &m.keyMap
	return []key.Binding{
		k.List.UpDown,
		k.List.JumpForward,
		k.Scroller.ToggleLoop,
		k.Scroller.ToggleDirection,
		k.Help,
		k.Quit,
	}
}

// FullHelp implements [help.KeyMap].
func (m *UI) FullHelp() [][]key.Binding {
	k := &m.keyMap
	help := k.Help
	help.SetHelp("?", "less")
	return [][]key.Binding{
		{k.List.Up, k.List.Down, k.List.PageUp, k.List.PageDown},
		{k.List.Home, k.List.End, k.List.JumpBack, k.List.JumpForward},
		{k.Scroller.ToggleLoop, k.Scroller.ToggleDirection, k.Scroller.Refresh, k.Scroller.Copy},
		{k.Scroller.Initialize, k.Scroller.Reinitialize, k.Scroller.Clear},
		{help, k.Quit},
	}
}

// updateLayoutAndSize updates the layout and sizes of UI components. The
// first call initializes the list when configured to; later calls rebuild
// the pool for the new viewport, including one still being built.
func (m *UI) updateLayoutAndSize() tea.Cmd {
	m.layout = m.generateLayout(m.width, m.height)
	m.help.SetWidth(m.layout.help.Dx())

	w, h := m.list.Size()
	m.list.SetSize(m.layout.main.Dx(), m.layout.main.Dy())
	if m.layout.main.Empty() {
		return nil
	}

	if !m.started {
		m.started = true
		if m.com.Config.InitializeOnStart {
			return m.list.Initialize(m.com.Config.StartIndex)
		}
		return nil
	}
	if w != m.layout.main.Dx() || h != m.layout.main.Dy() {
		return m.list.Rebuild()
	}
	return nil
}

// generateLayout calculates the layout rectangles for all UI components based
// on the terminal dimensions.
func (m *UI) generateLayout(w, h int) layout {
	// The screen area we're working with
	area := image.Rect(0, 0, w, h)
	if w < minWidth || h < minHeight {
		return layout{area: area}
	}

	// The help height
	helpHeight := 1
	headerHeight := 1
	statusHeight := 1

	var helpKeyMap help.KeyMap = m
	if m.help.ShowAll {
		for _, row := range helpKeyMap.FullHelp() {
			helpHeight = max(helpHeight, len(row))
		}
	}

	// Add app margins
	appRect := area
	appRect.Min.X += 1
	appRect.Min.Y += 1
	appRect.Max.X -= 1
	appRect.Max.Y -= 1

	// Layout
	//
	// header
	// ------
	// main
	// ------
	// status
	// help
	appRect, helpRect := uv.SplitVertical(appRect, uv.Fixed(appRect.Dy()-helpHeight))
	headerRect, mainRect := uv.SplitVertical(appRect, uv.Fixed(headerHeight+1))
	headerRect.Max.Y -= 1
	mainRect, statusRect := uv.SplitVertical(mainRect, uv.Fixed(max(0, mainRect.Dy()-statusHeight)))

	return layout{
		area:   area,
		header: headerRect,
		main:   mainRect,
		status: statusRect,
		help:   helpRect,
	}
}

// layout defines the positioning of UI elements.
type layout struct {
	// area is the overall available area.
	area uv.Rectangle

	header uv.Rectangle

	// main is the area of the list.
	main uv.Rectangle

	status uv.Rectangle

	// help is the area for the help view.
	help uv.Rectangle
}
