package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Level      string
	Format     string
	Prefix     string
	TimeFormat string
	Caller     bool
}

var formatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// New builds a slog.Logger writing through a charmbracelet handler. It does
// not touch slog's default logger.
func New(w io.Writer, cfg Config) *slog.Logger {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	if f, ok := formatters[strings.ToLower(cfg.Format)]; ok {
		formatter = f
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.DateTime
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    cfg.Caller,
		TimeFormat:      timeFormat,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	return slog.New(handler)
}
