package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/askd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Asker   askd.Asker
	Metrics http.Handler
}

// Provider names accepted by --provider.
const (
	ProviderGemini       = "gemini"
	ProviderGenerativeAI = "generativeai"
	ProviderREST         = "rest"
	ProviderStatic       = "static"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ProviderFlags `embed:""`

	LogFormat string `name:"log-format" enum:"text,json,pretty" default:"text" env:"ASKD_LOG_FORMAT" help:"Log format (text, json, pretty)"`
	Debug     bool   `env:"ASKD_DEBUG" help:"Enable debug logging"`

	Serve ServeCmd `cmd:"" help:"Run the HTTP service"`
	Ask   AskCmd   `cmd:"" help:"Ask a single question and print the answer"`
}

// ProviderFlags selects and configures the text generation provider.
type ProviderFlags struct {
	Provider          string        `enum:"gemini,generativeai,rest,static" default:"gemini" env:"ASKD_PROVIDER" help:"Provider (gemini, generativeai, rest, static)"`
	Model             string        `default:"gemini-2.5-flash" env:"ASKD_MODEL" help:"Model identifier"`
	Fallback          string        `default:"No response." env:"ASKD_FALLBACK" help:"Answer used when the model returns no text"`
	APIKey            string        `name:"api-key" env:"GOOGLE_API_KEY,GEMINI_API_KEY" help:"Generative Language API key"`
	Timeout           time.Duration `env:"ASKD_TIMEOUT" help:"Upstream HTTP client timeout (gemini and rest providers, 0 disables)"`
	StaticAnswer      string        `name:"static-answer" env:"ASKD_STATIC_ANSWER" help:"Answer returned by the static provider"`
	SystemInstruction string        `name:"system-instruction" env:"ASKD_SYSTEM_INSTRUCTION" help:"System instruction (gemini provider only)"`
	Temperature       *float64      `env:"ASKD_TEMPERATURE" help:"Sampling temperature (gemini provider only, model default when unset)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host             string   `default:"0.0.0.0" env:"HOST" help:"Interface to bind"`
	Port             int      `default:"5000" env:"PORT" help:"Port to bind"`
	StaticDir        string   `name:"static-dir" env:"ASKD_STATIC_DIR" help:"Directory of static files served at /"`
	CORSOrigins      []string `name:"cors-origin" default:"*" env:"ASKD_CORS_ORIGINS" help:"Allowed CORS origins (repeatable)"`
	HideErrorDetails bool     `name:"hide-error-details" env:"ASKD_HIDE_ERROR_DETAILS" help:"Omit upstream error messages from responses"`
	NoMetrics        bool     `name:"no-metrics" env:"ASKD_NO_METRICS" help:"Disable the /metrics endpoint"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask"`
}
