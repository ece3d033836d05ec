// Package uiutil provides helpers to turn results into UI messages.
package uiutil

import (
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/scroller/internal/scroller"
)

// DefaultTTL is how long a status message stays up.
const DefaultTTL = 4 * time.Second

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// ReportError reports err in the status bar. Configuration problems of the
// scroller are not fatal and are reported as warnings.
func ReportError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	var cfgErr *scroller.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ReportWarn(cfgErr.Error())
	}
	slog.Error("Error reported", "error", err)
	return CmdHandler(InfoMsg{
		Type: InfoTypeError,
		Msg:  err.Error(),
		TTL:  DefaultTTL,
	})
}

type InfoType int

const (
	InfoTypeInfo InfoType = iota
	InfoTypeSuccess
	InfoTypeWarn
	InfoTypeError
)

func ReportInfo(info string) tea.Cmd {
	return CmdHandler(InfoMsg{
		Type: InfoTypeInfo,
		Msg:  info,
		TTL:  DefaultTTL,
	})
}

func ReportWarn(warn string) tea.Cmd {
	return CmdHandler(InfoMsg{
		Type: InfoTypeWarn,
		Msg:  warn,
		TTL:  DefaultTTL,
	})
}

type (
	InfoMsg struct {
		Type InfoType
		Msg  string
		TTL  time.Duration
	}
	ClearStatusMsg struct{}
)

// ClearAfter clears the status bar once ttl elapses.
func ClearAfter(ttl time.Duration) tea.Cmd {
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
