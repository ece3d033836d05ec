package common

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/scroller/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
)

// Stat is a labelled value shown in the status bar.
type Stat struct {
	Label string
	Value string
}

// StatusLine joins stats into a single line no wider than width. Stats that
// do not fit are dropped from the end.
func StatusLine(t *styles.Styles, stats []Stat, width int) string {
	sep := t.Status.Label.Render(" " + styles.BorderThin + " ")
	var parts []string
	used := 0
	for _, s := range stats {
		part := t.Status.Label.Render(s.Label+" ") + t.Status.Value.Render(s.Value)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += lipgloss.Width(sep)
		}
		if used+w > width {
			break
		}
		used += w
		parts = append(parts, part)
	}
	return t.Status.Base.Render(strings.Join(parts, sep))
}

// Tagged renders a message prefixed with a tag, truncated to width.
func Tagged(tag lipgloss.Style, label, msg string, width int) string {
	prefix := tag.Render(label)
	msg = ansi.Truncate(msg, width-lipgloss.Width(prefix)-1, "…")
	return prefix + " " + msg
}
