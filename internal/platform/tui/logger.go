package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped stderr logger with the given prefix.
func NewLogger(prefix string) *log.Logger {
	return NewLoggerTo(os.Stderr, prefix)
}

// NewLoggerTo is NewLogger writing to w.
func NewLoggerTo(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// SetLogLevel parses a level name (debug, info, warn, error) and applies it
// to the default logger and to l when non-nil.
func SetLogLevel(l *log.Logger, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	if l != nil {
		l.SetLevel(lvl)
	}
	return nil
}
