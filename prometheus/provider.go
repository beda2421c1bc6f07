package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/askd"
)

var _ askd.Provider = (*Provider)(nil)

// Provider wraps a Provider with call metrics.
type Provider struct {
	next    askd.Provider
	metrics *Metrics
}

// NewProvider creates a new Provider.
func NewProvider(next askd.Provider, metrics *Metrics) *Provider {
	return &Provider{next: next, metrics: metrics}
}

// Generate delegates to the wrapped provider and records the outcome.
func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	begin := time.Now()
	reply, err := p.next.Generate(ctx, model, prompt)
	p.metrics.ProviderDuration.WithLabelValues(model).Observe(time.Since(begin).Seconds())

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	} else if _, ok := reply.Text(); !ok {
		outcome = OutcomeEmpty
	}
	p.metrics.ProviderRequests.WithLabelValues(model, outcome).Inc()

	return reply, err
}

var _ askd.Asker = (*Asker)(nil)

// Asker wraps an Asker with question metrics.
type Asker struct {
	next    askd.Asker
	metrics *Metrics
}

// NewAsker creates a new Asker.
func NewAsker(next askd.Asker, metrics *Metrics) *Asker {
	return &Asker{next: next, metrics: metrics}
}

// Ask delegates to the wrapped asker and counts the result.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	answer, err := a.next.Ask(ctx, question)

	result := ResultAnswered
	switch {
	case err == nil:
	case askd.ErrorCode(err) == askd.EINVALID:
		result = ResultInvalid
	default:
		result = ResultFailed
	}
	a.metrics.Questions.WithLabelValues(result).Inc()

	return answer, err
}
