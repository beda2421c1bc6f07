package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/askd"
)

// Ensure LoggingAsker implements askd.Asker.
var _ askd.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   askd.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next askd.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the outcome.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && askd.ErrorCode(err) != askd.EINVALID {
			level = slog.LevelError
		}
		a.logger.Log(ctx, level, "ask",
			"question_len", len(question),
			"answer_len", len(answer),
			"code", askd.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
