package main

import (
	"fmt"
	"net"
	"strconv"

	askhttp "github.com/fwojciec/askd/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the server fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := askhttp.NewServer()
	s.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	s.Asker = deps.Asker
	s.StaticDir = c.StaticDir
	s.AllowedOrigins = c.CORSOrigins
	s.HideErrorDetails = c.HideErrorDetails
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}
	if !c.NoMetrics {
		s.MetricsHandler = deps.Metrics
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set PORT to use a different port\n")
		return fmt.Errorf("failed to listen on %s: %w", s.Addr, err)
	}
	s.Logger.Info("server running", "url", s.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return s.Close()
	})
	return g.Wait()
}
