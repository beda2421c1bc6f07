package mock

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/askd"
)

var _ askd.Provider = (*Provider)(nil)

// Provider is a mock implementation of askd.Provider.
// Calls counts invocations of Generate.
type Provider struct {
	GenerateFn func(ctx context.Context, model, prompt string) (*askd.Reply, error)

	Calls atomic.Int64
}

func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	p.Calls.Add(1)
	return p.GenerateFn(ctx, model, prompt)
}
