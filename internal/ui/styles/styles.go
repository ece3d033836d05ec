package styles

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "×"
	WarningIcon string = "⚠"
	InfoIcon    string = "ⓘ"
	LoadingIcon string = "⟳"
	LoopIcon    string = "∞"

	BorderThin  string = "│"
	BorderThick string = "▌"

	SectionSeparator string = "─"
)

type Styles struct {
	WindowTooSmall lipgloss.Style

	// Reusable text styles
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Tags
	TagBase    lipgloss.Style
	TagError   lipgloss.Style
	TagWarn    lipgloss.Style
	TagInfo    lipgloss.Style
	TagSuccess lipgloss.Style

	// Header
	Header struct {
		Title  lipgloss.Style
		Detail lipgloss.Style
	}

	// Rows of the list
	Row struct {
		Even lipgloss.Style
		Odd  lipgloss.Style
		// Index is the "#n" part of the row label.
		Index lipgloss.Style
		// Clicked marks the last row that was clicked.
		Clicked lipgloss.Style
	}

	// Scrollbar
	Scrollbar struct {
		Track lipgloss.Style
		Thumb lipgloss.Style
	}

	// Status bar
	Status struct {
		Base  lipgloss.Style
		Label lipgloss.Style
		Value lipgloss.Style
	}

	// Help
	Help help.Styles

	// Background
	Background color.Color
}

func DefaultStyles() Styles {
	var (
		primary   = charmtone.Charple
		secondary = charmtone.Dolly
		tertiary  = charmtone.Bok

		// Backgrounds
		bgBase        = charmtone.Pepper
		bgBaseLighter = charmtone.BBQ
		bgSubtle      = charmtone.Charcoal

		// Foregrounds
		fgBase      = charmtone.Ash
		fgMuted     = charmtone.Squid
		fgHalfMuted = charmtone.Smoke
		fgSubtle    = charmtone.Oyster

		// Borders
		border = charmtone.Charcoal

		// Status
		warning = charmtone.Zest

		// Colors
		white     = charmtone.Butter
		blueLight = charmtone.Sardine
		greenDark = charmtone.Guac
		redDark   = charmtone.Sriracha
	)

	base := lipgloss.NewStyle().Foreground(fgBase)

	s := Styles{}

	s.Background = bgBase

	s.Help = help.Styles{
		ShortKey:       base.Foreground(fgMuted),
		ShortDesc:      base.Foreground(fgSubtle),
		ShortSeparator: base.Foreground(border),
		Ellipsis:       base.Foreground(border),
		FullKey:        base.Foreground(fgMuted),
		FullDesc:       base.Foreground(fgSubtle),
		FullSeparator:  base.Foreground(border),
	}

	// text presets
	s.Base = lipgloss.NewStyle().Foreground(fgBase)
	s.Muted = lipgloss.NewStyle().Foreground(fgMuted)
	s.Subtle = lipgloss.NewStyle().Foreground(fgSubtle)

	s.WindowTooSmall = s.Muted

	// tag presets
	s.TagBase = lipgloss.NewStyle().Padding(0, 1).Foreground(white)
	s.TagError = s.TagBase.Background(redDark)
	s.TagWarn = s.TagBase.Foreground(bgBase).Background(warning)
	s.TagInfo = s.TagBase.Background(blueLight)
	s.TagSuccess = s.TagBase.Background(greenDark)

	// header
	s.Header.Title = lipgloss.NewStyle().Foreground(primary).Bold(true)
	s.Header.Detail = s.Subtle

	// rows
	s.Row.Even = lipgloss.NewStyle().Foreground(fgBase).Background(bgBaseLighter).PaddingLeft(1)
	s.Row.Odd = lipgloss.NewStyle().Foreground(fgBase).Background(bgSubtle).PaddingLeft(1)
	s.Row.Index = lipgloss.NewStyle().Foreground(tertiary).Bold(true)
	s.Row.Clicked = lipgloss.NewStyle().Foreground(white).Background(secondary).PaddingLeft(1)

	// scrollbar
	s.Scrollbar.Track = lipgloss.NewStyle().Foreground(border)
	s.Scrollbar.Thumb = lipgloss.NewStyle().Foreground(primary)

	// status bar
	s.Status.Base = lipgloss.NewStyle().Foreground(fgHalfMuted)
	s.Status.Label = s.Muted
	s.Status.Value = s.Base.Foreground(fgHalfMuted).Bold(true)

	return s
}
