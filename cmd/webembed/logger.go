package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds the per-invocation logger.
// quiet wins over verbose when both are set.
func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "webembed",
		ReportTimestamp: false,
	})

	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}
