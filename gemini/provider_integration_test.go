//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/askd"
	"github.com/fwojciec/askd/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Integration_ReturnsAnswer(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey, nil)
	require.NoError(t, err)

	provider := gemini.NewProvider(client)

	reply, err := provider.Generate(ctx, askd.DefaultModel, "What is 2+2? Answer with a single digit.")

	require.NoError(t, err)
	text, ok := reply.Text()
	require.True(t, ok)
	assert.Contains(t, text, "4")
}
