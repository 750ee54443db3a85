package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the root logger for a command. Unknown levels fall back
// to info and are reported once on the new logger.
func NewLogger(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
