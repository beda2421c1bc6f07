package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/askd"
	"github.com/fwojciec/askd/mock"
	askslog "github.com/fwojciec/askd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("logs answer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "four", nil
			},
		}

		answer, err := askslog.NewLoggingAsker(inner, logger).Ask(context.Background(), "2+2?")

		require.NoError(t, err)
		assert.Equal(t, "four", answer)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=ask")
		assert.Contains(t, output, "question_len=4")
		assert.Contains(t, output, "answer_len=4")
	})

	t.Run("logs validation failure at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "", askd.Errorf(askd.EINVALID, askd.MsgQuestionRequired)
			},
		}

		_, err := askslog.NewLoggingAsker(inner, logger).Ask(context.Background(), "")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "code=invalid")
	})

	t.Run("logs provider failure at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "", askd.WrapError(askd.EUPSTREAM, errors.New("quota exceeded"))
			},
		}

		_, err := askslog.NewLoggingAsker(inner, logger).Ask(context.Background(), "hello")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=upstream")
		assert.Contains(t, output, "quota exceeded")
	})
}
