package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.AnthropicAPIKey = "sk-ant-test"
	cfg.TavilyAPIKey = "tvly-test"
	return cfg
}

func TestDefaultIsValidWithKeys(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.APIPort = 70000 },
			wantErr: "APIPort",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.Model = "" },
			wantErr: "Model",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.MaxTokens = 0 },
			wantErr: "MaxTokens",
		},
		{
			name:    "bad search depth",
			mutate:  func(c *Config) { c.SearchDepth = "thorough" },
			wantErr: "SearchDepth",
		},
		{
			name:    "too many search results",
			mutate:  func(c *Config) { c.SearchMaxResults = 50 },
			wantErr: "SearchMaxResults",
		},
		{
			name:    "missing anthropic key",
			mutate:  func(c *Config) { c.AnthropicAPIKey = "" },
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name:    "missing tavily key",
			mutate:  func(c *Config) { c.TavilyAPIKey = "" },
			wantErr: "TAVILY_API_KEY",
		},
		{
			name:    "tracing enabled without endpoint",
			mutate:  func(c *Config) { c.TracingEnabled = true },
			wantErr: "TracingEndpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "basic", cfg.SearchDepth)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_port: 9090
log_level: debug
search_depth: advanced
search_max_results: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "advanced", cfg.SearchDepth)
	assert.Equal(t, 5, cfg.SearchMaxResults)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1024, cfg.MaxTokens)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadSecretsFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
	t.Setenv("TAVILY_API_KEY", "tvly-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-env", cfg.AnthropicAPIKey)
	assert.Equal(t, "tvly-env", cfg.TavilyAPIKey)
}
