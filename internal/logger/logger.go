// Package logger builds the process logger. Components receive it by
// injection and attach their own prefix with WithPrefix.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a leveled logger writing to w with millisecond timestamps.
// An unknown level falls back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
