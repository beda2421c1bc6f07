// Package http exposes an askd.Asker over HTTP.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/askd"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// DefaultShutdownTimeout is the time given for outstanding requests to
// finish before the server is forcibly closed.
const DefaultShutdownTimeout = 5 * time.Second

// Server represents an HTTP server wrapping an askd.Asker.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address to open, e.g. "0.0.0.0:5000".
	Addr string

	// Services used by the HTTP routes.
	Asker askd.Asker

	Logger *slog.Logger

	// Directory served at "/" when set. The root liveness probe is
	// replaced by the directory index.
	StaticDir string

	// Mounted at /metrics when set.
	MetricsHandler http.Handler

	// CORS allowed origins. Defaults to all origins.
	AllowedOrigins []string

	// Omit the underlying error message from 500 responses.
	HideErrorDetails bool

	// Graceful shutdown window. Provider calls outlive their requests, so
	// calls still running when it elapses are dropped.
	ShutdownTimeout time.Duration
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	return &Server{
		Logger:          slog.New(slog.DiscardHandler),
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Handler returns the router for the server's current configuration.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequest)
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/test", s.handleTest)
	r.Post("/ask", s.handleAsk)

	if s.MetricsHandler != nil {
		r.Handle("/metrics", s.MetricsHandler)
	}

	if s.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.StaticDir)))
	} else {
		r.Get("/", s.handleRoot)
	}

	return r
}

// Open binds the listener. Call Serve to start accepting connections.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Serve accepts connections until Close is called. It returns nil after a
// graceful shutdown.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server. Connections still active after
// ShutdownTimeout are closed forcibly.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		s.Logger.Warn("shutdown timed out, dropping in-flight requests", "timeout", s.ShutdownTimeout)
		err = s.server.Close()
	}
	_ = s.ln.Close()
	return err
}

// Port returns the TCP port for the running server.
// This is useful in tests where we allocate a random port by using ":0".
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port())
}
