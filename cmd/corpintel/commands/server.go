package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/corpintel/corpintel/internal/api"
	"github.com/corpintel/corpintel/internal/config"
	"github.com/corpintel/corpintel/internal/intel/orchestrator"
	"github.com/corpintel/corpintel/internal/logging"
	"github.com/corpintel/corpintel/internal/metrics"
	"github.com/corpintel/corpintel/internal/provider"
	"github.com/corpintel/corpintel/internal/search"
	"github.com/corpintel/corpintel/internal/tracing"
)

var (
	configPath         string
	apiPort            int
	model              string
	maxTokens          int
	searchDepth        string
	searchMaxResults   int
	tracingEnabled     bool
	tracingEndpoint    string
	tracingTLSInsecure bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Corpintel API server",
	Long: `Start the Corpintel server which exposes the company research
pipeline over HTTP with a streaming analyze endpoint.`,
	Run: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	serverCmd.Flags().IntVar(&apiPort, "api-port", 8080, "Port the API server listens on")
	serverCmd.Flags().StringVar(&model, "model", "", "Anthropic model for routing and synthesis (overrides config)")
	serverCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Max tokens per model completion (overrides config)")
	serverCmd.Flags().StringVar(&searchDepth, "search-depth", "", "Tavily search depth: basic or advanced (overrides config)")
	serverCmd.Flags().IntVar(&searchMaxResults, "search-max-results", 0, "Max results per search query (overrides config)")
	serverCmd.Flags().BoolVar(&tracingEnabled, "tracing-enabled", false, "Enable OpenTelemetry tracing (default: false)")
	serverCmd.Flags().StringVar(&tracingEndpoint, "tracing-endpoint", "", "OTLP gRPC endpoint for traces (e.g., otel-collector:4317)")
	serverCmd.Flags().BoolVar(&tracingTLSInsecure, "tracing-tls-insecure", false, "Skip TLS certificate verification (insecure, use only for testing)")
}

// loadConfig layers flag overrides on top of file and environment config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("api-port") {
		cfg.APIPort = apiPort
	}
	if model != "" {
		cfg.Model = model
	}
	if maxTokens > 0 {
		cfg.MaxTokens = maxTokens
	}
	if searchDepth != "" {
		cfg.SearchDepth = searchDepth
	}
	if searchMaxResults > 0 {
		cfg.SearchMaxResults = searchMaxResults
	}
	if cmd.Flags().Changed("tracing-enabled") {
		cfg.TracingEnabled = tracingEnabled
	}
	if tracingEndpoint != "" {
		cfg.TracingEndpoint = tracingEndpoint
	}
	if cmd.Flags().Changed("tracing-tls-insecure") {
		cfg.TracingTLSInsecure = tracingTLSInsecure
	}

	return cfg, cfg.Validate()
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	HandleError(err, "Configuration error")

	if err := setupLog(logLevelFlags); err != nil {
		HandleError(err, "Failed to setup logging")
	}
	logger := logging.GetLogger("server")

	logger.Info("Starting Corpintel v%s", Version)
	logger.Debug("Configuration loaded: APIPort=%d Model=%s", cfg.APIPort, cfg.Model)

	tracingProvider, err := tracing.NewProvider(tracing.Config{
		Enabled:     cfg.TracingEnabled,
		Endpoint:    cfg.TracingEndpoint,
		TLSInsecure: cfg.TracingTLSInsecure,
	})
	if err != nil {
		logger.Warn("Failed to initialize tracing (continuing without tracing): %v", err)
		tracingProvider = nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	llm, err := provider.NewAnthropicProvider(cfg.AnthropicAPIKey, provider.Config{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	HandleError(err, "Provider initialization error")

	searchClient := search.NewTavily(search.TavilyConfig{
		APIKey:     cfg.TavilyAPIKey,
		Depth:      cfg.SearchDepth,
		MaxResults: cfg.SearchMaxResults,
	})

	pipeline := orchestrator.New(
		provider.Instrument(llm, m.ObserveModelCall),
		search.Instrument(searchClient, m.ObserveSearch),
		m,
	)

	server := api.New(cfg.APIPort, pipeline, registry)
	if err := server.Start(context.Background()); err != nil {
		HandleError(err, "Failed to start API server")
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal %v, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("API server shutdown error: %v", err)
	}
	if tracingProvider != nil {
		if err := tracingProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("Tracing shutdown error: %v", err)
		}
	}
	logger.Info("Shutdown complete")
}
