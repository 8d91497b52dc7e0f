package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file, and environment variables for secrets. An empty
// filepath skips the file layer. The result is not validated; callers run
// Validate after applying any flag overrides.
func Load(filepath string) (*Config, error) {
	cfg := Default()

	if filepath != "" {
		// Create new Koanf instance with dot delimiter
		k := koanf.New(".")

		if err := k.Load(file.Provider(filepath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %q: %w", filepath, err)
		}

		if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
			return nil, fmt.Errorf("failed to parse config from %q: %w", filepath, err)
		}
	}

	// Secrets come from the environment only so they never end up in config
	// files checked into version control.
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		cfg.TavilyAPIKey = v
	}

	return cfg, nil
}
