package config

// Config holds all configuration for the application
type Config struct {
	// APIPort is the port the API server listens on
	APIPort int `yaml:"api_port"`

	// LogLevel is the logging level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Model is the Anthropic model used for routing and synthesis
	Model string `yaml:"model"`

	// MaxTokens bounds each model completion
	MaxTokens int `yaml:"max_tokens"`

	// AnthropicAPIKey authenticates model calls. Env only, never from file.
	AnthropicAPIKey string `yaml:"-"`

	// TavilyAPIKey authenticates web searches. Env only, never from file.
	TavilyAPIKey string `yaml:"-"`

	// SearchDepth is the Tavily search depth (basic or advanced)
	SearchDepth string `yaml:"search_depth"`

	// SearchMaxResults caps results per search query
	SearchMaxResults int `yaml:"search_max_results"`

	// TracingEnabled indicates whether OpenTelemetry tracing is enabled
	TracingEnabled bool `yaml:"tracing_enabled"`

	// TracingEndpoint is the OTLP gRPC endpoint for trace export
	TracingEndpoint string `yaml:"tracing_endpoint"`

	// TracingTLSInsecure disables TLS on the OTLP exporter connection
	TracingTLSInsecure bool `yaml:"tracing_tls_insecure"`
}

// Default returns the built-in configuration. File and environment values
// layer on top of it.
func Default() *Config {
	return &Config{
		APIPort:          8080,
		LogLevel:         "info",
		Model:            "claude-sonnet-4-5-20250929",
		MaxTokens:        1024,
		SearchDepth:      "basic",
		SearchMaxResults: 3,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.APIPort < 1 || c.APIPort > 65535 {
		return NewConfigError("APIPort must be between 1 and 65535")
	}

	if c.Model == "" {
		return NewConfigError("Model must not be empty")
	}

	if c.MaxTokens < 1 {
		return NewConfigError("MaxTokens must be at least 1")
	}

	if c.SearchDepth != "basic" && c.SearchDepth != "advanced" {
		return NewConfigError("SearchDepth must be basic or advanced")
	}

	if c.SearchMaxResults < 1 || c.SearchMaxResults > 20 {
		return NewConfigError("SearchMaxResults must be between 1 and 20")
	}

	if c.AnthropicAPIKey == "" {
		return NewConfigError("ANTHROPIC_API_KEY must be set")
	}

	if c.TavilyAPIKey == "" {
		return NewConfigError("TAVILY_API_KEY must be set")
	}

	if c.TracingEnabled && c.TracingEndpoint == "" {
		return NewConfigError("TracingEndpoint must be set when tracing is enabled")
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	message string
}

// NewConfigError creates a new configuration error
func NewConfigError(message string) *ConfigError {
	return &ConfigError{message: message}
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return e.message
}
