// Package provider implements LLM provider abstractions for the research
// agents. Every model call in the pipeline is a single-turn completion: a
// system prompt plus one user message, answered with plain text.
package provider

import "context"

// Provider is the narrow contract the pipeline needs from a language model.
type Provider interface {
	// Complete sends a single-turn prompt to the model and returns the
	// generated text.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Name returns the provider name for logging and display.
	Name() string

	// Model returns the model identifier being used.
	Model() string
}

// Config contains common configuration for providers.
type Config struct {
	// Model is the model identifier (e.g., "claude-sonnet-4-5-20250929")
	Model string

	// MaxTokens is the maximum number of tokens to generate
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative)
	Temperature float64
}

// DefaultConfig returns sensible defaults for the research pipeline.
func DefaultConfig() Config {
	return Config{
		Model:       "claude-sonnet-4-5-20250929",
		MaxTokens:   1024,
		Temperature: 0.0, // Deterministic for reproducible research output
	}
}
