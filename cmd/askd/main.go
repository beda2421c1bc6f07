package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/askd"
	"github.com/fwojciec/askd/gemini"
	"github.com/fwojciec/askd/generativeai"
	askprom "github.com/fwojciec/askd/prometheus"
	"github.com/fwojciec/askd/resty"
	askslog "github.com/fwojciec/askd/slog"
	"github.com/fwojciec/askd/static"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	stop()
}

// Main represents the program.
type Main struct {
	// Path of an optional .env file. Set before calling Run().
	EnvFile string

	// Providers holding resources released by Close.
	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: defaultEnvFile(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnvFile(m.EnvFile); err != nil {
		return fmt.Errorf("failed to read env file %q: %w", m.EnvFile, err)
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("askd"),
		kong.Description("Answer questions with a generative language model over HTTP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'askd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = askslog.NewLogger(stderr, askslog.Options{
		Format: cli.LogFormat,
		Debug:  cli.Debug,
	})

	provider, err := m.openProvider(ctx, cli.ProviderFlags, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := askprom.NewMetrics(reg)

	provider = askprom.NewProvider(askslog.NewLoggingProvider(provider, deps.Logger), metrics)

	var asker askd.Asker = askd.NewAskService(provider, askd.AskConfig{
		Model:        cli.Model,
		FallbackText: cli.Fallback,
	})
	asker = askslog.NewLoggingAsker(asker, deps.Logger)
	asker = askprom.NewAsker(asker, metrics)

	deps.Asker = asker
	deps.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	return kongCtx.Run(deps)
}

const apiKeyHint = "Hint: Get an API key at https://aistudio.google.com/apikey"

// openProvider creates the provider selected by flags. Providers that call
// a remote API fail here when no API key is configured.
func (m *Main) openProvider(ctx context.Context, flags ProviderFlags, stderr io.Writer) (askd.Provider, error) {
	if flags.Provider == ProviderStatic {
		return static.NewProvider(flags.StaticAnswer), nil
	}

	if flags.APIKey == "" {
		fmt.Fprintln(stderr, apiKeyHint)
		return nil, errors.New("GOOGLE_API_KEY not set")
	}

	switch flags.Provider {
	case ProviderGemini:
		var httpClient *http.Client
		if flags.Timeout > 0 {
			httpClient = &http.Client{Timeout: flags.Timeout}
		}
		client, err := gemini.NewClient(ctx, flags.APIKey, httpClient)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GOOGLE_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewProvider(client, geminiOptions(flags)...), nil

	case ProviderGenerativeAI:
		client, err := generativeai.NewClient(ctx, flags.APIKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GOOGLE_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		p := generativeai.NewProvider(client)
		m.closers = append(m.closers, p)
		return p, nil

	case ProviderREST:
		p := resty.NewProvider(flags.APIKey, resty.WithTimeout(flags.Timeout))
		m.closers = append(m.closers, p)
		return p, nil
	}

	return nil, fmt.Errorf("unknown provider %q", flags.Provider)
}

// geminiOptions translates generation flags into gemini.Provider options.
func geminiOptions(flags ProviderFlags) []gemini.Option {
	var opts []gemini.Option
	if flags.SystemInstruction != "" {
		opts = append(opts, gemini.WithSystemInstruction(flags.SystemInstruction))
	}
	if flags.Temperature != nil {
		opts = append(opts, gemini.WithTemperature(float32(*flags.Temperature)))
	}
	return opts
}
