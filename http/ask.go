package http

import (
	"context"
	"encoding/json"
	"net/http"
)

// MaxBodyBytes limits the size of an /ask request body.
const MaxBodyBytes = 1 << 20

type askRequest struct {
	// Anything other than a JSON string is treated as a missing question.
	Question any `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// handleAsk handles the "POST /ask" route.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Logger.Debug("decode ask request", "err", err)
		req = askRequest{}
	}
	question, _ := req.Question.(string)

	// The provider call outlives a disconnected client.
	answer, err := s.Asker.Ask(context.WithoutCancel(r.Context()), question)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, askResponse{Answer: answer})
}

// Liveness probe bodies.
const (
	MsgAlive   = "Hello World! The server is alive and reachable."
	MsgRunning = "Server is running!"
)

// handleRoot handles the "GET /" route.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeText(w, MsgAlive)
}

// handleTest handles the "GET /test" route.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeText(w, MsgRunning)
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "path", r.URL.Path, "err", err)
	}
}
