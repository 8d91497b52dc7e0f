package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider("", Config{})
	require.Error(t, err)
}

func TestNewAnthropicProviderFillsDefaults(t *testing.T) {
	p, err := NewAnthropicProvider("sk-ant-test", Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Model, p.Model())
	assert.Equal(t, "anthropic", p.Name())
}

func TestBuildParamsCarriesConfig(t *testing.T) {
	p, err := NewAnthropicProvider("sk-ant-test", Config{
		Model:       "claude-sonnet-4-5-20250929",
		MaxTokens:   512,
		Temperature: 0.7,
	})
	require.NoError(t, err)

	params := p.buildParams("system prompt", "user message")

	assert.Equal(t, "claude-sonnet-4-5-20250929", string(params.Model))
	assert.Equal(t, int64(512), params.MaxTokens)
	require.True(t, params.Temperature.Valid())
	assert.Equal(t, 0.7, params.Temperature.Value)
	require.Len(t, params.System, 1)
	assert.Equal(t, "system prompt", params.System[0].Text)
	require.Len(t, params.Messages, 1)
}

func TestBuildParamsOmitsEmptySystemPrompt(t *testing.T) {
	p, err := NewAnthropicProvider("sk-ant-test", Config{})
	require.NoError(t, err)

	params := p.buildParams("", "user message")
	assert.Empty(t, params.System)
	// Zero temperature is still sent explicitly: deterministic by default.
	require.True(t, params.Temperature.Valid())
	assert.Equal(t, 0.0, params.Temperature.Value)
}
