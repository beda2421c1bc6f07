package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/askd"
)

// Ensure LoggingProvider implements askd.Provider.
var _ askd.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with logging.
type LoggingProvider struct {
	next   askd.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next askd.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Generate delegates to the wrapped provider and logs the call.
// Failures are logged at error level, successes at debug level.
func (p *LoggingProvider) Generate(ctx context.Context, model, prompt string) (reply *askd.Reply, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		candidates := 0
		if reply != nil {
			candidates = len(reply.Candidates)
		}
		p.logger.Log(ctx, level, "provider generate",
			"model", model,
			"prompt_len", len(prompt),
			"candidates", candidates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Generate(ctx, model, prompt)
}
