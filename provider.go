package askd

import "context"

// Provider generates text from a prompt using an external service.
type Provider interface {
	// Generate requests a single-turn completion of prompt from model.
	// A successful call may return a reply with no extractable text.
	Generate(ctx context.Context, model, prompt string) (*Reply, error)
}
