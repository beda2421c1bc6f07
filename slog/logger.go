// Package slog provides structured logging for askd: logger construction and
// logging decorators for the askd interfaces.
package slog

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Log formats accepted by NewLogger.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Options configures NewLogger.
type Options struct {
	// Format is one of FormatText, FormatJSON or FormatPretty.
	// Unknown values fall back to FormatText.
	Format string

	// Debug lowers the level from Info to Debug.
	Debug bool
}

// NewLogger returns a logger writing to w.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	switch opts.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case FormatPretty:
		charmLevel := charmlog.InfoLevel
		if opts.Debug {
			charmLevel = charmlog.DebugLevel
		}
		return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmLevel,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}
