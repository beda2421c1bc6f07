package askd

import (
	"context"
	"strings"
)

// Defaults for AskConfig.
const (
	DefaultModel        = "gemini-2.5-flash"
	DefaultFallbackText = "No response."
)

// MsgQuestionRequired is reported when a question is missing or empty.
const MsgQuestionRequired = "Please enter a message."

// Ensure AskService implements Asker at compile time.
var _ Asker = (*AskService)(nil)

// AskConfig selects the model and the answer used when a reply has no text.
type AskConfig struct {
	Model        string
	FallbackText string
}

// AskService answers questions by delegating to a Provider.
type AskService struct {
	provider Provider
	config   AskConfig
}

// NewAskService returns a new AskService. Empty config fields take their
// defaults.
func NewAskService(provider Provider, config AskConfig) *AskService {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.FallbackText == "" {
		config.FallbackText = DefaultFallbackText
	}
	return &AskService{provider: provider, config: config}
}

// Config returns the effective configuration.
func (s *AskService) Config() AskConfig {
	return s.config
}

// Ask validates question, passes it verbatim to the provider and returns the
// reply text, or the fallback text when the reply has none.
func (s *AskService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", Errorf(EINVALID, MsgQuestionRequired)
	}

	reply, err := s.provider.Generate(ctx, s.config.Model, question)
	if err != nil {
		return "", WrapError(EUPSTREAM, err)
	}

	if text, ok := reply.Text(); ok {
		return text, nil
	}
	return s.config.FallbackText, nil
}
