// Package gemini implements askd.Provider using the Google GenAI SDK.
package gemini

import (
	"context"
	"net/http"

	"github.com/fwojciec/askd"
	"google.golang.org/genai"
)

// Ensure Provider implements askd.Provider at compile time.
var _ askd.Provider = (*Provider)(nil)

// Provider implements askd.Provider using Google Gemini.
type Provider struct {
	client *genai.Client

	systemInstruction string
	temperature       *float32
}

// Option configures a Provider.
type Option func(*Provider)

// WithSystemInstruction sets a system instruction sent with every request.
func WithSystemInstruction(s string) Option {
	return func(p *Provider) {
		p.systemInstruction = s
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(p *Provider) {
		p.temperature = &t
	}
}

// NewProvider creates a new Provider.
func NewProvider(client *genai.Client, opts ...Option) *Provider {
	p := &Provider{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewClient creates a Gemini API client. httpClient may be nil.
func NewClient(ctx context.Context, apiKey string, httpClient *http.Client) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
}

// Generate sends prompt to model as a single user turn.
func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), p.BuildConfig())
	if err != nil {
		return nil, err
	}
	return ConvertResponse(result), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls,
// or nil when no option was set.
func (p *Provider) BuildConfig() *genai.GenerateContentConfig {
	if p.systemInstruction == "" && p.temperature == nil {
		return nil
	}

	config := &genai.GenerateContentConfig{Temperature: p.temperature}
	if p.systemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: p.systemInstruction}},
		}
	}
	return config
}

// ConvertResponse converts a GenAI response into an askd.Reply.
// Nil candidates, contents and parts are preserved as nil so that
// askd.Reply.Text reports them as missing.
func ConvertResponse(resp *genai.GenerateContentResponse) *askd.Reply {
	if resp == nil {
		return nil
	}

	reply := &askd.Reply{Candidates: make([]*askd.Candidate, 0, len(resp.Candidates))}
	for _, c := range resp.Candidates {
		if c == nil {
			reply.Candidates = append(reply.Candidates, nil)
			continue
		}

		candidate := &askd.Candidate{FinishReason: string(c.FinishReason)}
		if c.Content != nil {
			candidate.Content = &askd.Content{
				Role:  c.Content.Role,
				Parts: make([]*askd.Part, 0, len(c.Content.Parts)),
			}
			for _, part := range c.Content.Parts {
				if part == nil {
					candidate.Content.Parts = append(candidate.Content.Parts, nil)
					continue
				}
				candidate.Content.Parts = append(candidate.Content.Parts, &askd.Part{Text: part.Text})
			}
		}
		reply.Candidates = append(reply.Candidates, candidate)
	}
	return reply
}
