package main_test

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	main "github.com/fwojciec/askd/cmd/askd"
	"github.com/fwojciec/askd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Asker:  &mock.Asker{},
		}
		cmd := &main.ServeCmd{Host: "127.0.0.1", Port: 0, CORSOrigins: []string{"*"}}

		done := make(chan error, 1)
		go func() { done <- cmd.Run(deps) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not stop")
		}
	})

	t.Run("fails when port is in use", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Asker:  &mock.Asker{},
		}
		cmd := &main.ServeCmd{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port}

		err = cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to listen")
		assert.Contains(t, stderr.String(), "PORT")
	})
}
