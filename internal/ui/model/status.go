package model

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/common"
	"github.com/charmbracelet/scroller/internal/ui/styles"
	"github.com/charmbracelet/scroller/internal/uiutil"
	"github.com/dustin/go-humanize"
)

// status is the bar under the list. It shows the pool window and engine
// counters, or the last reported message while it is fresh.
type status struct {
	com *common.Common
	msg *uiutil.InfoMsg
	// at is when msg was reported.
	at time.Time
}

func (s *status) report(msg uiutil.InfoMsg) tea.Cmd {
	s.msg = &msg
	s.at = time.Now()
	return uiutil.ClearAfter(msg.TTL)
}

// clear drops the message once it expired. A newer message keeps its own
// deadline.
func (s *status) clear() {
	if s.msg != nil && time.Since(s.at) >= s.msg.TTL {
		s.msg = nil
	}
}

func (s *status) view(ctrl *scroller.Controller, width int) string {
	t := &s.com.Styles
	if s.msg != nil {
		tag := t.TagInfo
		label := styles.InfoIcon
		switch s.msg.Type {
		case uiutil.InfoTypeSuccess:
			tag, label = t.TagSuccess, styles.CheckIcon
		case uiutil.InfoTypeWarn:
			tag, label = t.TagWarn, styles.WarningIcon
		case uiutil.InfoTypeError:
			tag, label = t.TagError, styles.ErrorIcon
		}
		return common.Tagged(tag, label, s.msg.Msg, width)
	}
	return common.StatusLine(t, stats(ctrl), width)
}

func stats(ctrl *scroller.Controller) []common.Stat {
	cfg := ctrl.Config()
	switch {
	case ctrl.Building():
		return []common.Stat{
			{Label: styles.LoadingIcon, Value: "building"},
			{Label: "pool", Value: fmt.Sprintf("%d/%d", ctrl.Pool().Len(), ctrl.PoolSize())},
		}
	case !ctrl.Initialized():
		return []common.Stat{
			{Label: "scroller", Value: "not initialized"},
			{Label: "items", Value: humanize.Comma(int64(cfg.Count))},
		}
	}

	state := ctrl.State()
	last := ctrl.LastResult()
	st := ctrl.Stats()

	items := humanize.Comma(int64(cfg.Count))
	if cfg.Loop {
		items += " " + styles.LoopIcon
	}
	return []common.Stat{
		{Label: "first", Value: humanize.Comma(int64(state.First))},
		{Label: "window", Value: fmt.Sprintf("%d..%d", state.FirstOld-1, state.LastOld)},
		{Label: "items", Value: items},
		{Label: "pool", Value: fmt.Sprint(ctrl.PoolSize())},
		{Label: "path", Value: last.Path.String()},
		{Label: "moves", Value: humanize.Comma(int64(st.Moves))},
		{Label: "resets", Value: humanize.Comma(int64(st.Resets))},
		{Label: "dir", Value: cfg.Direction.String()},
	}
}
