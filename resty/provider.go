// Package resty implements askd.Provider by calling the Generative Language
// REST API directly.
package resty

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/askd"
	"resty.dev/v3"
)

// DefaultBaseURL is the Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Ensure Provider implements askd.Provider at compile time.
var _ askd.Provider = (*Provider)(nil)

// Provider implements askd.Provider over HTTP.
type Provider struct {
	client *resty.Client

	baseURL string
	timeout time.Duration
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(p *Provider) {
		p.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		p.timeout = d
	}
}

// NewProvider creates a new Provider authenticated with apiKey.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(p)
	}

	p.client = resty.New().
		SetBaseURL(p.baseURL).
		SetHeader("x-goog-api-key", apiKey).
		SetHeader("Content-Type", "application/json")
	if p.timeout > 0 {
		p.client.SetTimeout(p.timeout)
	}

	return p
}

type generateRequest struct {
	Contents []*askd.Content `json:"contents"`
}

// Generate sends prompt to model as a single user turn.
func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	body := generateRequest{
		Contents: []*askd.Content{{
			Role:  "user",
			Parts: []*askd.Part{{Text: prompt}},
		}},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("model", model).
		SetBody(body).
		SetResult(&askd.Reply{}).
		Post("/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("response error %d: %s", resp.StatusCode(), resp.String())
	}

	reply, _ := resp.Result().(*askd.Reply)
	return reply, nil
}

// Close releases the HTTP client.
func (p *Provider) Close() error {
	return p.client.Close()
}
