// Package log installs the process-wide slog handler. The terminal belongs to
// the UI, so records go to a rotating file.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	charmlog "charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var initialized atomic.Bool

// Setup points the default slog logger at a rotating file at path. Debug
// enables debug records.
func Setup(path string, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	slog.SetDefault(slog.New(NewHandler(w, debug)))
	initialized.Store(true)
	return nil
}

// NewHandler returns the handler Setup installs, writing to w.
func NewHandler(w io.Writer, debug bool) slog.Handler {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    debug,
		Prefix:          "scroller",
		Formatter:       charmlog.LogfmtFormatter,
	})
}

// Initialized reports whether Setup has run.
func Initialized() bool {
	return initialized.Load()
}
