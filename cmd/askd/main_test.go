package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/askd"
	main "github.com/fwojciec/askd/cmd/askd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMain returns a Main that does not read a .env file.
func newMain() *main.Main {
	m := main.NewMain()
	m.EnvFile = ""
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "ask"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "--provider")
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "serve")
	assert.Contains(t, helpOutput, "ask")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newMain().Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_AskWithStaticProvider(t *testing.T) {
	t.Parallel()

	t.Run("prints answer", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newMain().Run(context.Background(),
			[]string{"--provider=static", "--static-answer=pong", "ask", "ping"},
			stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "pong\n", stdout.String())
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newMain().Run(context.Background(),
			[]string{"--provider=static", "ask", ""},
			stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, askd.EINVALID, askd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: Please enter a message.")
		assert.Empty(t, stdout.String())
	})
}

func TestMain_Run_RejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newMain().Run(context.Background(),
		[]string{"--provider=openai", "ask", "hello"},
		stdout, stderr)

	require.Error(t, err)
}

func TestMain_Run_FailsFastWithoutAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	for _, provider := range []string{"gemini", "generativeai", "rest"} {
		t.Run(provider, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := newMain().Run(context.Background(),
				[]string{"--provider=" + provider, "ask", "hello"},
				stdout, stderr)

			require.Error(t, err)
			assert.Equal(t, "GOOGLE_API_KEY not set", err.Error())
			assert.NotContains(t, err.Error(), "aistudio.google.com")
			assert.Equal(t, 1, strings.Count(stderr.String(), "aistudio.google.com"))
			assert.Contains(t, stderr.String(), "Hint: ")
			assert.Empty(t, stdout.String())
		})
	}
}
