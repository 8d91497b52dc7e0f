package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider using the Anthropic Claude API.
type AnthropicProvider struct {
	client anthropic.Client
	config Config
}

// NewAnthropicProvider creates a new Anthropic provider with an explicit API
// key. The key is injected by the surrounding service at startup; the
// provider itself never reads the environment.
func NewAnthropicProvider(apiKey string, cfg Config) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key must not be empty")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicProvider{
		client: client,
		config: cfg,
	}, nil
}

// buildParams assembles the request for one single-turn completion.
func (p *AnthropicProvider) buildParams(systemPrompt, userMessage string) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.config.Model),
		MaxTokens:   int64(p.config.MaxTokens),
		Temperature: anthropic.Float(p.config.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	}

	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	return params
}

// Complete implements Provider.Complete for Anthropic.
func (p *AnthropicProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.Messages.New(ctx, p.buildParams(systemPrompt, userMessage))
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	// Join all text blocks; responses without tool use carry exactly one.
	var parts []string
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, ""), nil
}

// Name implements Provider.Name.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Model implements Provider.Model.
func (p *AnthropicProvider) Model() string {
	return p.config.Model
}
