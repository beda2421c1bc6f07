// Package generativeai implements askd.Provider using the legacy
// github.com/google/generative-ai-go SDK.
package generativeai

import (
	"context"

	"github.com/fwojciec/askd"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Ensure Provider implements askd.Provider at compile time.
var _ askd.Provider = (*Provider)(nil)

// Provider implements askd.Provider over a generative-ai-go client.
type Provider struct {
	client *genai.Client
}

// NewProvider creates a new Provider. The provider takes ownership of client.
func NewProvider(client *genai.Client) *Provider {
	return &Provider{client: client}
}

// NewClient creates a client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(apiKey))
}

// Generate sends prompt to model as a single user turn.
func (p *Provider) Generate(ctx context.Context, model, prompt string) (*askd.Reply, error) {
	resp, err := p.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	return ConvertResponse(resp), nil
}

// Close closes the underlying client.
func (p *Provider) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

// ConvertResponse converts a generative-ai-go response into an askd.Reply.
// Parts that are not text become empty parts.
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

		candidate := &askd.Candidate{}
		if c.Content != nil {
			candidate.Content = &askd.Content{
				Role:  c.Content.Role,
				Parts: make([]*askd.Part, 0, len(c.Content.Parts)),
			}
			for _, part := range c.Content.Parts {
				text, _ := part.(genai.Text)
				candidate.Content.Parts = append(candidate.Content.Parts, &askd.Part{Text: string(text)})
			}
		}
		reply.Candidates = append(reply.Candidates, candidate)
	}
	return reply
}
