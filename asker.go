package askd

import "context"

// Asker answers a natural language question.
type Asker interface {
	// Ask answers question.
	// Returns EINVALID if the question is empty and EUPSTREAM if the
	// provider fails.
	Ask(ctx context.Context, question string) (string, error)
}
