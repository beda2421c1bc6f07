// Package static implements askd.Provider with a fixed answer. It is used to
// check connectivity end to end without calling a real provider.
package static

import (
	"context"

	"github.com/fwojciec/askd"
)

// DefaultAnswer is returned when NewProvider is given an empty answer.
const DefaultAnswer = "Hello World! Your API connection is working perfectly."

var _ askd.Provider = (*Provider)(nil)

// Provider always replies with the same text.
type Provider struct {
	answer string
}

// NewProvider returns a Provider replying with answer.
func NewProvider(answer string) *Provider {
	if answer == "" {
		answer = DefaultAnswer
	}
	return &Provider{answer: answer}
}

// Generate ignores model and prompt.
func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	return askd.NewTextReply(p.answer), nil
}
